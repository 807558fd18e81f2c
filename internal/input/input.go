package input

import (
	"sync"

	"voxel-devil/internal/player"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical game action, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionAttack
	ActionBreak
	ActionPause
	ActionToggleProfiling
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys and buttons to actions and tracks their
// edges between frames. Event handlers may run on the GLFW callback path;
// readers use the same lock.
type InputManager struct {
	mu sync.RWMutex

	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	// cursor deltas accumulated since the last PostUpdate
	lastX, lastY float64
	dx, dy       float64
	haveCursor   bool
}

// NewInputManager creates an InputManager with the default bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyUp, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyDown, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyLeft, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeyRight, ActionMoveRight)
	im.BindKey(glfw.KeySpace, ActionJump)
	im.BindKey(glfw.KeyF, ActionAttack)
	im.BindKey(glfw.KeyEscape, ActionPause)
	im.BindKey(glfw.KeyV, ActionToggleProfiling)

	im.BindMouseButton(glfw.MouseButtonLeft, ActionAttack)
	im.BindMouseButton(glfw.MouseButtonRight, ActionBreak)

	return im
}

// BindKey binds a physical key to a logical action. Several keys may share an action.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.keyToActions, key)
}

func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// HandleKeyEvent processes a key event. Repeats count as held.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.apply(im.keyToActions[key], action == glfw.Press || action == glfw.Repeat)
}

func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.apply(im.mouseButtonToActions[button], action == glfw.Press)
}

// apply records the new state and its edges; callers hold the lock
func (im *InputManager) apply(actions []Action, isPressed bool) {
	for _, act := range actions {
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !isPressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// HandleCursorPos accumulates cursor movement. The first sample only sets the origin.
func (im *InputManager) HandleCursorPos(x, y float64) {
	im.mu.Lock()
	defer im.mu.Unlock()
	if im.haveCursor {
		im.dx += x - im.lastX
		im.dy += im.lastY - y
	}
	im.lastX, im.lastY = x, y
	im.haveCursor = true
}

// ResetCursor forgets the cursor origin, e.g. after the cursor was recaptured
func (im *InputManager) ResetCursor() {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.haveCursor = false
	im.dx, im.dy = 0, 0
}

// Attach installs the GLFW callbacks for window
func (im *InputManager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		im.HandleCursorPos(x, y)
	})
}

// PostUpdate must be called at the end of each frame to reset edges and deltas
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	for i := range ActionCount {
		im.justPressed[i] = false
		im.justReleased[i] = false
	}
	im.dx, im.dy = 0, 0
}

// IsActive returns true if the action is currently held
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.currentState[action]
}

// JustPressed returns true only in the frame the action was pressed
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}

func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justReleased[action]
}

// Intent maps the current frame's state to player commands. Attack is held,
// Break fires once per press.
func (im *InputManager) Intent() player.Intent {
	im.mu.RLock()
	defer im.mu.RUnlock()

	axis := func(pos, neg Action) float32 {
		var v float32
		if im.currentState[pos] {
			v++
		}
		if im.currentState[neg] {
			v--
		}
		return v
	}

	return player.Intent{
		Forward: axis(ActionMoveForward, ActionMoveBackward),
		Strafe:  axis(ActionMoveRight, ActionMoveLeft),
		Jump:    im.currentState[ActionJump],
		Attack:  im.currentState[ActionAttack],
		Break:   im.justPressed[ActionBreak],
		LookDX:  im.dx,
		LookDY:  im.dy,
	}
}
