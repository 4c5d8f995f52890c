package scene

import "sort"

// MeshHandle and TextureHandle are opaque references into the renderer's tables.
type (
	MeshHandle    uint32
	TextureHandle uint32
)

// Mesh is an uploaded mesh and the vertex count its draw call needs.
type Mesh struct {
	Handle MeshHandle
	Count  int32
}

// Resources maps the names used by a layout to uploaded meshes and textures.
// It is filled by the loader before the first frame.
type Resources struct {
	meshes   map[string]Mesh
	textures map[string]TextureHandle
}

func NewResources() *Resources {
	return &Resources{
		meshes:   make(map[string]Mesh),
		textures: make(map[string]TextureHandle),
	}
}

func (r *Resources) AddMesh(name string, m Mesh) {
	r.meshes[name] = m
}

func (r *Resources) AddTexture(name string, h TextureHandle) {
	r.textures[name] = h
}

func (r *Resources) Mesh(name string) (Mesh, bool) {
	m, ok := r.meshes[name]
	return m, ok
}

func (r *Resources) Texture(name string) (TextureHandle, bool) {
	h, ok := r.textures[name]
	return h, ok
}

// MeshNames returns the registered mesh names in sorted order.
func (r *Resources) MeshNames() []string {
	names := make([]string, 0, len(r.meshes))
	for n := range r.meshes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
