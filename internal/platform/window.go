// Package platform owns the glfw window and GL context and exposes the
// keyboard and cursor as an input.Device.
package platform

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"restaurant-gl/internal/config"
	"restaurant-gl/internal/input"
)

// Init must run on the main, OS-locked thread before Open.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("platform: glfw init: %w", err)
	}
	return nil
}

func Terminate() { glfw.Terminate() }

// PollEvents pumps the window system queue; key and cursor state are read
// afterwards through the Device methods.
func PollEvents() { glfw.PollEvents() }

type Window struct {
	win *glfw.Window
	// hidden instead of disabled, so the cursor can reach the window edges
	edgeCursor bool
}

var _ input.Device = (*Window)(nil)

// Open creates an OpenGL 4.1 core window and makes its context current.
func Open(cfg config.Window, edgeCursor bool) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("platform: create window: %w", err)
	}
	win.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		win.Destroy()
		return nil, fmt.Errorf("platform: gl init: %w", err)
	}

	// with vsync off the FPS limiter paces frames
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{win: win, edgeCursor: edgeCursor}
	w.Capture(true)
	return w, nil
}

func (w *Window) KeyDown(k input.Key) bool {
	return w.win.GetKey(glfw.Key(k)) == glfw.Press
}

func (w *Window) CursorPos() (float64, float64) {
	return w.win.GetCursorPos()
}

// Size is the window size in screen coordinates.
func (w *Window) Size() (int, int) {
	return w.win.GetSize()
}

// FramebufferSize is the drawable size in pixels, larger than Size on
// high-density displays.
func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// Capture grabs the cursor for mouse look, or releases it for the pause state.
func (w *Window) Capture(on bool) {
	switch {
	case !on:
		w.win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	case w.edgeCursor:
		w.win.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	default:
		w.win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}
}

func (w *Window) ShouldClose() bool     { return w.win.ShouldClose() }
func (w *Window) SetShouldClose()       { w.win.SetShouldClose(true) }
func (w *Window) SwapBuffers()          { w.win.SwapBuffers() }
func (w *Window) SetTitle(title string) { w.win.SetTitle(title) }

func (w *Window) Close() {
	w.win.Destroy()
}
