package graphics

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"restaurant-gl/internal/layout"
	"restaurant-gl/internal/meshing"
	"restaurant-gl/internal/profiling"
	"restaurant-gl/internal/scene"
	"restaurant-gl/pkg/boxmodel"
)

var ErrEmptyMesh = errors.New("graphics: mesh has no faces")

// Library is the GPU side of a layout: one vertex array per mesh and one
// texture per image path.
type Library struct {
	Resources *scene.Resources
	// mesh name -> texture named by the model's "all" key
	Defaults map[string]string

	meshes []MeshBuffers
}

// LoadLibrary uploads every mesh and texture the layout declares. Paths are
// relative to assetsDir. Vertex arrays are built on pool; only the upload
// happens on the calling (GL) thread. Nothing is kept on error.
func LoadLibrary(ctx context.Context, assetsDir string, lay *layout.Layout, textures *TextureCache, pool *meshing.WorkerPool) (*Library, error) {
	defer profiling.Track("graphics.LoadLibrary")()

	lib := &Library{
		Resources: scene.NewResources(),
		Defaults:  make(map[string]string),
	}
	loader := boxmodel.NewLoader(assetsDir)

	names := lay.MeshNames()
	models := make(map[string]*boxmodel.Model, len(names))
	for _, name := range names {
		model, err := loader.LoadModel(lay.Meshes[name])
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", name, err)
		}
		models[name] = model
		if tex := model.DefaultTexture(); tex != "" {
			lib.Defaults[name] = tex
		}
	}

	stop := profiling.Track("meshing.BuildAll")
	vertices, err := meshing.BuildAll(ctx, pool, models)
	stop()
	if err != nil {
		return nil, err
	}

	for _, name := range names {
		if len(vertices[name]) == 0 {
			lib.Dispose()
			return nil, fmt.Errorf("%w: %q", ErrEmptyMesh, name)
		}
		buf := UploadMesh(vertices[name])
		lib.meshes = append(lib.meshes, buf)
		lib.Resources.AddMesh(name, scene.Mesh{Handle: scene.MeshHandle(buf.VAO), Count: buf.Count})
	}

	for _, name := range lay.TextureNames() {
		tex, err := textures.Get(filepath.Join(assetsDir, lay.Textures[name]))
		if err != nil {
			lib.Dispose()
			return nil, fmt.Errorf("texture %q: %w", name, err)
		}
		lib.Resources.AddTexture(name, scene.TextureHandle(tex))
	}
	return lib, nil
}

// Build resolves the layout's objects against the library.
func (l *Library) Build(lay *layout.Layout) (*scene.Scene, error) {
	instances, err := lay.Instances(l.Defaults)
	if err != nil {
		return nil, err
	}
	return scene.Build(l.Resources, instances)
}

// Dispose frees the meshes. Textures belong to the cache.
func (l *Library) Dispose() {
	for i := range l.meshes {
		l.meshes[i].Delete()
	}
	l.meshes = nil
}
