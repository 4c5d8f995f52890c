package input

// Key is a platform key code. The platform package supplies the values.
type Key int

// Action represents a logical control, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionYawLeft
	ActionYawRight
	ActionToggleLighting
	ActionScreenshot
	ActionPause
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

// Device is polled once per frame for key and cursor state.
type Device interface {
	KeyDown(k Key) bool
	CursorPos() (x, y float64)
	Size() (width, height int)
}

// Frame is the input snapshot the rest of the frame works from.
type Frame struct {
	Held    [ActionCount]bool
	Pressed [ActionCount]bool

	// raw pointer motion since the previous sample, screen convention (down is +y)
	LookDX, LookDY float64

	CursorX, CursorY float64
	Width, Height    int
}

// Active reports whether a is held this frame.
func (f *Frame) Active(a Action) bool {
	return a >= 0 && a < ActionCount && f.Held[a]
}

// JustPressed reports whether a went down this frame.
func (f *Frame) JustPressed(a Action) bool {
	return a >= 0 && a < ActionCount && f.Pressed[a]
}

// Manager maps physical keys to actions and keeps the previous frame's
// state for edge detection. It is owned by the render thread.
type Manager struct {
	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[Key][]Action

	currentState [ActionCount]bool
	prevState    [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	mouse MouseState
}

// NewManager creates a Manager with no bindings.
func NewManager() *Manager {
	return &Manager{
		keyToActions: make(map[Key][]Action),
	}
}

// BindKey binds a physical key to a logical action.
// Multiple keys can be bound to the same action.
func (m *Manager) BindKey(key Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (m *Manager) UnbindKey(key Key) {
	delete(m.keyToActions, key)
}

// Sample polls dev and returns this frame's snapshot.
func (m *Manager) Sample(dev Device) Frame {
	var state [ActionCount]bool
	for key, actions := range m.keyToActions {
		if !dev.KeyDown(key) {
			continue
		}
		for _, act := range actions {
			state[act] = true
		}
	}

	m.prevState = m.currentState
	m.currentState = state
	for i := range ActionCount {
		m.justPressed[i] = state[i] && !m.prevState[i]
		m.justReleased[i] = !state[i] && m.prevState[i]
	}

	x, y := dev.CursorPos()
	dx, dy := m.mouse.Delta(x, y)
	w, h := dev.Size()

	return Frame{
		Held:    m.currentState,
		Pressed: m.justPressed,
		LookDX:  dx,
		LookDY:  dy,
		CursorX: x,
		CursorY: y,
		Width:   w,
		Height:  h,
	}
}

// ResetMouse forgets the last cursor position so the next sample reports no
// motion. Call it when the cursor is recaptured.
func (m *Manager) ResetMouse() {
	m.mouse.Reset()
}

// IsActive returns true if the action is currently being held down
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return m.currentState[action]
}

// JustPressed returns true only if the action was pressed in the latest sample
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return m.justPressed[action]
}

// JustReleased returns true only if the action was released in the latest sample
func (m *Manager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return m.justReleased[action]
}

// MouseState turns absolute cursor positions into deltas. The zero value is
// ready to use.
type MouseState struct {
	primed       bool
	lastX, lastY float64
}

// Delta returns the motion since the previous call; the first call after a
// reset only records the position.
func (s *MouseState) Delta(x, y float64) (dx, dy float64) {
	if !s.primed {
		s.lastX, s.lastY = x, y
		s.primed = true
		return 0, 0
	}
	dx, dy = x-s.lastX, y-s.lastY
	s.lastX, s.lastY = x, y
	return dx, dy
}

func (s *MouseState) Reset() {
	s.primed = false
}
