package game

import (
	"fmt"
	"log"

	"restaurant-gl/internal/camera"
	"restaurant-gl/internal/config"
	"restaurant-gl/internal/input"
	"restaurant-gl/internal/profiling"
	"restaurant-gl/internal/scene"
)

// Command is a set of requests from Update to the platform loop.
type Command uint8

const (
	CommandScreenshot Command = 1 << iota
	CommandPause
	CommandResume
	CommandQuit

	CommandNone Command = 0
)

func (c Command) Has(flag Command) bool { return c&flag != 0 }

type Session struct {
	Camera   *camera.Camera
	Composer *scene.Composer
	Controls Controls

	Paused bool

	scene         *scene.Scene
	fov, near     float32
	far           float32
	width, height int
}

func NewSession(cfg config.Config, sc *scene.Scene) (*Session, error) {
	c := cfg.Camera
	cam := camera.New(
		camera.WithPosition(c.Position),
		camera.WithYaw(c.Yaw),
		camera.WithPitch(c.Pitch),
		camera.WithSensitivity(c.Sensitivity),
		camera.WithYawStep(c.YawStep),
		camera.WithWorldVertical(c.WorldVertical),
	)
	composer, err := scene.NewComposer(c.FOV, cfg.Window.Aspect(), c.Near, c.Far)
	if err != nil {
		return nil, err
	}
	composer.SetLighting(config.GetLighting())

	return &Session{
		Camera:   cam,
		Composer: composer,
		Controls: Controls{MoveSpeed: c.MoveSpeed, EdgeYaw: c.EdgeYaw},
		scene:    sc,
		fov:      c.FOV,
		near:     c.Near,
		far:      c.Far,
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
	}, nil
}

// Update applies one frame of input and advances the scene clock.
func (s *Session) Update(dt float64, f input.Frame) Command {
	defer profiling.Track("session.Update")()

	var cmd Command
	if f.JustPressed(input.ActionQuit) {
		return CommandQuit
	}
	if f.JustPressed(input.ActionPause) {
		s.Paused = !s.Paused
		if s.Paused {
			cmd |= CommandPause
		} else {
			cmd |= CommandResume
		}
	}
	if f.JustPressed(input.ActionScreenshot) {
		cmd |= CommandScreenshot
	}
	if f.JustPressed(input.ActionToggleLighting) {
		on := !s.Composer.Lighting()
		s.Composer.SetLighting(on)
		config.SetLighting(on)
		log.Printf("lighting: %v", on)
	}

	if f.Width != s.width || f.Height != s.height {
		if err := s.Resize(f.Width, f.Height); err != nil {
			log.Printf("resize %dx%d: %v", f.Width, f.Height, err)
		}
	}

	if s.Paused {
		return cmd
	}
	if err := s.Controls.Apply(s.Camera, &f, dt); err != nil {
		log.Printf("controls: %v", err)
	}
	if s.scene != nil && dt > 0 {
		s.scene.Advance(dt)
	}
	return cmd
}

// Resize rebuilds the projection for a new window size. A minimized window
// (zero size) keeps the previous projection.
func (s *Session) Resize(width, height int) error {
	if width == 0 || height == 0 {
		return nil
	}
	if err := s.Composer.SetProjection(s.fov, float32(width)/float32(height), s.near, s.far); err != nil {
		return err
	}
	s.width, s.height = width, height
	return nil
}

func (s *Session) Size() (int, int) { return s.width, s.height }

func (s *Session) Render(r scene.Renderer) {
	defer profiling.Track("session.Render")()
	if s.scene == nil {
		return
	}
	s.Composer.RenderFrame(s.Camera, s.scene, r)
}

// ReplaceScene swaps in a rebuilt scene, keeping the animation clock.
func (s *Session) ReplaceScene(sc *scene.Scene) {
	if s.scene != nil {
		sc.Advance(s.scene.Time() - sc.Time())
	}
	s.scene = sc
}

func (s *Session) Scene() *scene.Scene { return s.scene }

// Status returns the overlay lines for the current frame.
func (s *Session) Status(fps int) []string {
	p := s.Camera.Position()
	light := "off"
	if s.Composer.Lighting() {
		light = "on"
	}
	lines := []string{
		fmt.Sprintf("%d fps", fps),
		fmt.Sprintf("pos %.1f %.1f %.1f  yaw %.0f  pitch %.0f", p[0], p[1], p[2], s.Camera.Yaw(), s.Camera.Pitch()),
		"lighting " + light,
	}
	if s.Paused {
		lines = append(lines, "paused: Esc resumes, F10 quits")
	}
	return lines
}
