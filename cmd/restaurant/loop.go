package main

import (
	"fmt"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"restaurant-gl/internal/assets"
	"restaurant-gl/internal/game"
	"restaurant-gl/internal/graphics"
	"restaurant-gl/internal/platform"
	"restaurant-gl/internal/profiling"
)

var overlayColor = mgl32.Vec3{1, 1, 0.85}

const pausedBanner = "PAUSED"

func (a *app) run() {
	frames, fps := 0, 0
	lastFPSCheckTime := time.Now()
	lastTime := time.Now()
	slowFrame := time.Duration(a.cfg.Render.SlowFrameMs) * time.Millisecond

	for !a.window.ShouldClose() {
		profiling.ResetFrame()
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		func() { defer profiling.Track("glfw.PollEvents")(); platform.PollEvents() }()

		if a.watcher != nil && a.watcher.Poll() {
			func() { defer profiling.Track("scene.Reload")(); a.reloadScene() }()
		}

		frame := a.input.Sample(a.window)
		cmd := a.session.Update(dt, frame)
		if cmd.Has(game.CommandQuit) {
			a.window.SetShouldClose()
			break
		}
		if cmd.Has(game.CommandPause) {
			a.window.Capture(false)
		}
		if cmd.Has(game.CommandResume) {
			a.window.Capture(true)
			a.input.ResetMouse()
		}

		fbw, fbh := a.window.FramebufferSize()
		a.renderer.Viewport(fbw, fbh)
		a.renderer.Begin()
		a.session.Render(a.renderer)

		// capture before the overlay so the shot shows only the scene
		if cmd.Has(game.CommandScreenshot) {
			a.screenshot(fbw, fbh)
		}

		a.overlay.SetViewport(frame.Width, frame.Height)
		a.overlay.RenderLines(a.session.Status(fps), 10, 24, 22, 1, overlayColor)
		if a.session.Paused {
			w, _ := a.overlay.Measure(pausedBanner, 2)
			a.overlay.RenderLines([]string{pausedBanner}, (float32(frame.Width)-w)/2, float32(frame.Height)/2, 0, 2, overlayColor)
		}

		func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()
		frames++

		if time.Since(lastFPSCheckTime) >= time.Second {
			fps = frames
			fmt.Println("FPS: ", frames)
			a.window.SetTitle(fmt.Sprintf("%s - %d FPS", a.cfg.Window.Title, frames))
			frames = 0
			lastFPSCheckTime = time.Now()
		}

		if d := time.Since(now); slowFrame > 0 && d > slowFrame {
			log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
		}

		a.limiter.Wait(a.session.Paused)
	}
}

func (a *app) screenshot(width, height int) {
	defer profiling.Track("screenshot")()
	img := graphics.ReadFramebuffer(width, height)
	path, err := assets.SaveScreenshot(a.cfg.Assets.ScreenshotDir, img, time.Now())
	if err != nil {
		log.Printf("screenshot: %v", err)
		return
	}
	log.Printf("screenshot saved to %s (%dx%d)", path, width, height)
}
