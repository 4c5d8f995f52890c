package game

import (
	"restaurant-gl/internal/camera"
	"restaurant-gl/internal/input"
)

var moveBindings = [...]struct {
	action input.Action
	dir    camera.Direction
}{
	{input.ActionMoveForward, camera.Forward},
	{input.ActionMoveBackward, camera.Backward},
	{input.ActionMoveLeft, camera.Left},
	{input.ActionMoveRight, camera.Right},
	{input.ActionMoveUp, camera.Up},
	{input.ActionMoveDown, camera.Down},
}

// Controls turns a frame of input into camera motion.
type Controls struct {
	// units per second
	MoveSpeed float32
	// yaw while the cursor sits on the left or right window edge
	EdgeYaw bool
}

// Apply moves cam for one frame lasting dt seconds.
func (c Controls) Apply(cam *camera.Camera, f *input.Frame, dt float64) error {
	if dt < 0 {
		dt = 0
	}
	distance := c.MoveSpeed * float32(dt)
	for _, b := range moveBindings {
		if !f.Active(b.action) {
			continue
		}
		if err := cam.ProcessKeyboard(b.dir, distance); err != nil {
			return err
		}
	}

	yawLeft := f.Active(input.ActionYawLeft)
	yawRight := f.Active(input.ActionYawRight)
	if c.EdgeYaw && f.Width > 0 {
		if f.CursorX <= 0 {
			yawLeft = true
		} else if f.CursorX >= float64(f.Width-1) {
			yawRight = true
		}
	}
	if yawLeft {
		if err := cam.ProcessKeyboard(camera.YawLeft, 0); err != nil {
			return err
		}
	}
	if yawRight {
		if err := cam.ProcessKeyboard(camera.YawRight, 0); err != nil {
			return err
		}
	}

	if f.LookDX != 0 || f.LookDY != 0 {
		cam.ProcessLookDelta(float32(f.LookDX), float32(f.LookDY))
	}
	return nil
}
