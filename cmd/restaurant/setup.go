package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"restaurant-gl/internal/config"
	"restaurant-gl/internal/game"
	"restaurant-gl/internal/graphics"
	"restaurant-gl/internal/input"
	"restaurant-gl/internal/layout"
	"restaurant-gl/internal/meshing"
	"restaurant-gl/internal/platform"
	"restaurant-gl/internal/text"
)

// overlay text size in pixels
const overlayFontPx = 18

type app struct {
	cfg config.Config

	window   *platform.Window
	input    *input.Manager
	renderer *graphics.SceneRenderer
	overlay  *graphics.Overlay
	textures *graphics.TextureCache
	library  *graphics.Library
	session  *game.Session
	watcher  *layout.Watcher
	meshers  *meshing.WorkerPool

	limiter *game.FPSLimiter
}

// newApp opens the window and loads everything the first frame needs. Any
// error here is fatal: nothing is discovered mid-frame.
func newApp(cfg config.Config) (*app, error) {
	window, err := platform.Open(cfg.Window, cfg.Camera.EdgeYaw)
	if err != nil {
		return nil, err
	}
	a := &app{
		cfg:      cfg,
		window:   window,
		input:    input.NewManager(),
		textures: graphics.NewTextureCache(),
		meshers:  meshing.NewWorkerPool(runtime.NumCPU(), 16),
		limiter:  game.NewFPSLimiter(),
	}
	platform.DefaultBindings(a.input)

	if err := a.load(); err != nil {
		a.dispose()
		return nil, err
	}
	return a, nil
}

func (a *app) load() error {
	shaderDir := filepath.Join(a.cfg.Assets.Dir, a.cfg.Assets.ShaderDir)
	r, err := graphics.NewSceneRenderer(shaderDir, mgl32.Vec3(a.cfg.Render.ClearColor))
	if err != nil {
		return fmt.Errorf("scene shader: %w", err)
	}
	a.renderer = r

	atlas, err := text.DefaultAtlas(overlayFontPx)
	if err != nil {
		return err
	}
	w, h := a.window.Size()
	a.overlay, err = graphics.NewOverlay(shaderDir, atlas, w, h)
	if err != nil {
		return fmt.Errorf("overlay shader: %w", err)
	}

	scenePath := a.scenePath()
	lay, err := layout.Load(scenePath)
	if err != nil {
		return err
	}
	lib, err := graphics.LoadLibrary(context.Background(), a.cfg.Assets.Dir, lay, a.textures, a.meshers)
	if err != nil {
		return err
	}
	a.library = lib
	sc, err := lib.Build(lay)
	if err != nil {
		return err
	}

	a.session, err = game.NewSession(a.cfg, sc)
	if err != nil {
		return err
	}
	a.session.Composer.SetLight(lay.LightPosition(), lay.LightColor())
	if err := a.session.Resize(w, h); err != nil {
		return err
	}
	log.Printf("scene %s: %d instances, %d meshes", scenePath, sc.Len(), len(lay.Meshes))

	if a.cfg.Assets.WatchScene {
		a.watcher, err = layout.Watch(scenePath)
		if err != nil {
			// reload is a convenience; the scene itself is fine
			log.Printf("scene watch disabled: %v", err)
			a.watcher = nil
		}
	}
	return nil
}

func (a *app) scenePath() string {
	return filepath.Join(a.cfg.Assets.Dir, a.cfg.Assets.Scene)
}

// reloadScene rebuilds the scene after the layout file changed. A broken
// edit is logged and the running scene kept.
func (a *app) reloadScene() {
	lay, err := layout.Load(a.scenePath())
	if err != nil {
		log.Printf("scene reload: %v", err)
		return
	}
	lib, err := graphics.LoadLibrary(context.Background(), a.cfg.Assets.Dir, lay, a.textures, a.meshers)
	if err != nil {
		log.Printf("scene reload: %v", err)
		return
	}
	sc, err := lib.Build(lay)
	if err != nil {
		lib.Dispose()
		log.Printf("scene reload: %v", err)
		return
	}

	old := a.library
	a.library = lib
	a.session.ReplaceScene(sc)
	a.session.Composer.SetLight(lay.LightPosition(), lay.LightColor())
	old.Dispose()
	log.Printf("scene reloaded: %d instances", sc.Len())
}

func (a *app) dispose() {
	if a.watcher != nil {
		a.watcher.Close()
	}
	if a.library != nil {
		a.library.Dispose()
	}
	a.textures.Dispose()
	a.meshers.Shutdown()
	if a.overlay != nil {
		a.overlay.Dispose()
	}
	if a.renderer != nil {
		a.renderer.Dispose()
	}
	a.window.Close()
}
