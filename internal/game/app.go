package game

import (
	"context"
	"time"

	"voxel-devil/internal/graphics"
	"voxel-devil/internal/input"
	"voxel-devil/internal/logging"
	"voxel-devil/internal/player"
	"voxel-devil/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// App runs a Session in a window. It starts paused on the orbit camera; a
// click captures the mouse and starts play, Escape releases it again.
type App struct {
	window   *glfw.Window
	input    *input.InputManager
	session  *Session
	renderer *graphics.Renderer

	fpsLimiter *FPSLimiter
	lastTime   time.Time
	slowFrame  time.Duration
	log        *zap.Logger
}

func NewApp(window *glfw.Window, im *input.InputManager, s *Session, r *graphics.Renderer, slowFrame time.Duration, logger *zap.Logger) *App {
	a := &App{
		window:     window,
		input:      im,
		session:    s,
		renderer:   r,
		fpsLimiter: NewFPSLimiter(),
		lastTime:   time.Now(),
		slowFrame:  slowFrame,
		log:        logging.OrNop(logger).Named("app"),
	}
	fbW, fbH := window.GetFramebufferSize()
	r.SetViewport(fbW, fbH)
	a.SetPaused(true)
	return a
}

// Run loops until the window closes or ctx is done
func (a *App) Run(ctx context.Context) {
	for !a.window.ShouldClose() && ctx.Err() == nil {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	glfw.PollEvents()
	a.handleActions()

	var in player.Intent
	if !a.session.Paused() {
		in = a.input.Intent()
	}
	a.session.Update(dt, in)
	a.renderer.Render(a.session.Frame())

	a.window.SwapBuffers()

	warnSlowFrame(a.log, time.Since(startTick), a.slowFrame)

	a.input.PostUpdate()
	a.fpsLimiter.Wait(a.session.Paused())
}

func (a *App) handleActions() {
	if a.input.JustPressed(input.ActionPause) && !a.session.Paused() {
		a.SetPaused(true)
		return
	}
	if a.session.Paused() && a.input.JustPressed(input.ActionAttack) {
		a.SetPaused(false)
	}
	if a.input.JustPressed(input.ActionToggleProfiling) {
		a.log.Info("frame profile", zap.String("top", profiling.TopN(10)))
	}
}

// SetPaused toggles between captured first-person play and the free orbit view
func (a *App) SetPaused(paused bool) {
	a.session.SetPaused(paused)
	if paused {
		a.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	} else {
		a.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}
	a.input.ResetCursor()
}

// refresh repaints during window resizes, when the main loop is blocked
func (a *App) refresh() {
	a.renderer.Render(a.session.Frame())
	a.window.SwapBuffers()
}
