package scene

import (
	"errors"
	"fmt"
)

var (
	ErrMissingMesh    = errors.New("scene: missing mesh")
	ErrMissingTexture = errors.New("scene: missing texture")
)

type drawItem struct {
	instance Instance
	mesh     Mesh
	texture  TextureHandle
}

// Scene is a set of instances whose meshes and textures have been resolved.
// Draw order is the order instances were passed to Build.
type Scene struct {
	items []drawItem
	clock float64
}

// Build resolves every instance against res. Any unknown mesh or texture
// fails the whole scene so nothing is discovered mid-frame.
func Build(res *Resources, instances []Instance) (*Scene, error) {
	s := &Scene{items: make([]drawItem, 0, len(instances))}
	for i, in := range instances {
		name := in.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		mesh, ok := res.Mesh(in.Mesh)
		if !ok {
			return nil, fmt.Errorf("%w %q for instance %s", ErrMissingMesh, in.Mesh, name)
		}
		item := drawItem{instance: in, mesh: mesh}
		if !in.Flat {
			tex, ok := res.Texture(in.Texture)
			if !ok {
				return nil, fmt.Errorf("%w %q for instance %s", ErrMissingTexture, in.Texture, name)
			}
			item.texture = tex
		}
		s.items = append(s.items, item)
	}
	return s, nil
}

// Len returns the number of instances drawn per frame.
func (s *Scene) Len() int { return len(s.items) }

// Advance moves the animation clock forward by dt seconds.
func (s *Scene) Advance(dt float64) { s.clock += dt }

// Time returns the animation clock in seconds.
func (s *Scene) Time() float64 { return s.clock }
