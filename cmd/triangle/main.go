// Command triangle spins, scales and slides a single colored triangle: the
// transform pipeline in its smallest form.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"restaurant-gl/internal/config"
	"restaurant-gl/internal/graphics"
	"restaurant-gl/internal/input"
	"restaurant-gl/internal/platform"
)

func init() {
	runtime.LockOSThread()
}

// x, y, r, g, b
var vertices = []float32{
	0.0, 0.5, 1, 0, 0,
	-0.5, -0.5, 0, 1, 0,
	0.5, -0.5, 0, 0, 1,
}

// transformAt returns scale(|sin t|) · rotZ(sin t · 45°) · translate(sin t, cos t).
func transformAt(t float32) mgl32.Mat4 {
	s := math32.Abs(math32.Sin(t))
	scale := mgl32.Scale3D(s, s, 1)
	rotate := mgl32.HomogRotate3DZ(mgl32.DegToRad(math32.Sin(t) * 45))
	translate := mgl32.Translate3D(math32.Sin(t), math32.Cos(t), 0)
	return scale.Mul4(rotate).Mul4(translate)
}

func main() {
	shaderDir := flag.String("shaders", "assets/shaders", "Directory holding triangle.vert and triangle.frag")
	flag.Parse()

	if err := platform.Init(); err != nil {
		log.Fatal(err)
	}
	defer platform.Terminate()

	cfg := config.Default().Window
	cfg.Width, cfg.Height, cfg.Title = 800, 600, "triangle"
	cfg.VSync = true
	window, err := platform.Open(cfg, false)
	if err != nil {
		log.Fatal(err)
	}
	defer window.Close()
	window.Capture(false)

	shader, err := graphics.NewShader(
		filepath.Join(*shaderDir, "triangle.vert"),
		filepath.Join(*shaderDir, "triangle.frag"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer shader.Delete()

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 5*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 5*4, 2*4)
	defer func() {
		gl.DeleteBuffers(1, &vbo)
		gl.DeleteVertexArrays(1, &vao)
	}()

	im := input.NewManager()
	platform.DefaultBindings(im)

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	shader.Use()

	start := time.Now()
	frames := 0
	last := time.Now()
	for !window.ShouldClose() {
		platform.PollEvents()
		f := im.Sample(window)
		if f.JustPressed(input.ActionPause) || f.JustPressed(input.ActionQuit) {
			window.SetShouldClose()
		}

		fbw, fbh := window.FramebufferSize()
		gl.Viewport(0, 0, int32(fbw), int32(fbh))
		gl.Clear(gl.COLOR_BUFFER_BIT)

		shader.SetMatrix4("transform", transformAt(float32(time.Since(start).Seconds())))
		gl.DrawArrays(gl.TRIANGLES, 0, 3)
		window.SwapBuffers()

		frames++
		if elapsed := time.Since(last).Seconds(); elapsed >= 1 {
			fmt.Printf("FPS: %d\n", int(float64(frames)/elapsed+0.5))
			frames = 0
			last = time.Now()
		}
	}
}
