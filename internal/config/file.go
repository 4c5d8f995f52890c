package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

var ErrInvalid = errors.New("config: invalid")

// Config is the settings file, restaurant.toml by default.
type Config struct {
	Window Window `toml:"window"`
	Camera Camera `toml:"camera"`
	Render Render `toml:"render"`
	Assets Assets `toml:"assets"`
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

type Camera struct {
	FOV         float32    `toml:"fov"`
	Near        float32    `toml:"near"`
	Far         float32    `toml:"far"`
	Position    [3]float32 `toml:"position"`
	Yaw         float32    `toml:"yaw"`
	Pitch       float32    `toml:"pitch"`
	Sensitivity float32    `toml:"sensitivity"`
	YawStep     float32    `toml:"yaw_step"`
	// units per second
	MoveSpeed     float32 `toml:"move_speed"`
	WorldVertical bool    `toml:"world_vertical"`
	EdgeYaw       bool    `toml:"edge_yaw"`
}

type Render struct {
	FPSLimit   int        `toml:"fps_limit"`
	Lighting   bool       `toml:"lighting"`
	ClearColor [3]float32 `toml:"clear_color"`
	// frames slower than this are logged with the profiler's top entries
	SlowFrameMs int `toml:"slow_frame_ms"`
}

type Assets struct {
	Dir           string `toml:"dir"`
	Scene         string `toml:"scene"`
	ShaderDir     string `toml:"shader_dir"`
	ScreenshotDir string `toml:"screenshot_dir"`
	WatchScene    bool   `toml:"watch_scene"`
}

// Default returns the stock restaurant walk-through settings.
func Default() Config {
	return Config{
		Window: Window{Width: 640, Height: 480, Title: "Restaurant", VSync: true},
		Camera: Camera{
			FOV:         45,
			Near:        0.1,
			Far:         100,
			Position:    [3]float32{0, 4, 25},
			Yaw:         -90,
			Pitch:       0,
			Sensitivity: 0.5,
			YawStep:     0.5,
			MoveSpeed:   15,
			EdgeYaw:     true,
		},
		Render: Render{
			FPSLimit:    120,
			ClearColor:  [3]float32{0, 0, 0.1},
			SlowFrameMs: 16,
		},
		Assets: Assets{
			Dir:           "assets",
			Scene:         "scenes/restaurant.yaml",
			ShaderDir:     "shaders",
			ScreenshotDir: "screenshots",
		},
	}
}

// Load reads a TOML file on top of Default. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the renderer cannot start with.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: fov %v", ErrInvalid, c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far:
		return fmt.Errorf("%w: near %v far %v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case c.Camera.MoveSpeed < 0:
		return fmt.Errorf("%w: move_speed %v", ErrInvalid, c.Camera.MoveSpeed)
	case c.Camera.Sensitivity <= 0:
		return fmt.Errorf("%w: sensitivity %v", ErrInvalid, c.Camera.Sensitivity)
	case c.Assets.Scene == "":
		return fmt.Errorf("%w: empty scene path", ErrInvalid)
	}
	return nil
}

// Aspect returns width/height of the configured window.
func (w Window) Aspect() float32 {
	return float32(w.Width) / float32(w.Height)
}

// Encode renders c as TOML, used to write a starter file.
func Encode(c Config) ([]byte, error) {
	return toml.Marshal(c)
}
