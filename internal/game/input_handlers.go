package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupInputHandlers routes window events to the input manager and renderer
func SetupInputHandlers(app *App) {
	app.input.Attach(app.window)

	app.window.SetFramebufferSizeCallback(func(_ *glfw.Window, fbWidth, fbHeight int) {
		app.renderer.SetViewport(fbWidth, fbHeight)
		app.refresh()
	})

	app.window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			app.SetPaused(true)
		}
	})
}
