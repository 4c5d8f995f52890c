package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"restaurant-gl/internal/input"
)

// DefaultBindings installs the walk-through key map. Arrow keys mirror WASD.
func DefaultBindings(m *input.Manager) {
	bind := func(k glfw.Key, a input.Action) { m.BindKey(input.Key(k), a) }

	bind(glfw.KeyW, input.ActionMoveForward)
	bind(glfw.KeyUp, input.ActionMoveForward)
	bind(glfw.KeyS, input.ActionMoveBackward)
	bind(glfw.KeyDown, input.ActionMoveBackward)
	bind(glfw.KeyA, input.ActionMoveLeft)
	bind(glfw.KeyLeft, input.ActionMoveLeft)
	bind(glfw.KeyD, input.ActionMoveRight)
	bind(glfw.KeyRight, input.ActionMoveRight)

	bind(glfw.KeyZ, input.ActionMoveUp)
	bind(glfw.KeySpace, input.ActionMoveUp)
	bind(glfw.KeyX, input.ActionMoveDown)
	bind(glfw.KeyLeftShift, input.ActionMoveDown)

	bind(glfw.KeyQ, input.ActionYawLeft)
	bind(glfw.KeyE, input.ActionYawRight)

	bind(glfw.KeyL, input.ActionToggleLighting)
	bind(glfw.KeyF12, input.ActionScreenshot)
	bind(glfw.KeyEscape, input.ActionPause)
	bind(glfw.KeyF10, input.ActionQuit)
}
