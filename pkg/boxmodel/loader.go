package boxmodel

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrParentCycle = errors.New("boxmodel: parent cycle")

type Loader struct {
	root       string
	modelCache map[string]*Model
	loading    map[string]bool
}

func NewLoader(root string) *Loader {
	return &Loader{
		root:       root,
		modelCache: make(map[string]*Model),
		loading:    make(map[string]bool),
	}
}

// LoadModel reads root/name.json, merging in its parent chain. Results are
// cached by name.
func (l *Loader) LoadModel(name string) (*Model, error) {
	name = strings.TrimSuffix(name, ".json")
	if model, ok := l.modelCache[name]; ok {
		return model, nil
	}
	if l.loading[name] {
		return nil, fmt.Errorf("%w at %q", ErrParentCycle, name)
	}
	l.loading[name] = true
	defer delete(l.loading, name)

	path := filepath.Join(l.root, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read model file: %w", err)
	}

	var model Model
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("could not unmarshal model json %s: %w", path, err)
	}
	if model.Textures == nil {
		model.Textures = make(map[string]string)
	}

	if model.Parent != "" {
		parent, err := l.LoadModel(model.Parent)
		if err != nil {
			return nil, fmt.Errorf("could not load parent model '%s': %w", model.Parent, err)
		}

		// parent elements are shared through the cache, so take copies
		// before face textures are resolved against this model
		if len(model.Elements) == 0 {
			model.Elements = make([]Element, len(parent.Elements))
			for i, e := range parent.Elements {
				model.Elements[i] = e.clone()
			}
		}
		if model.Unit == 0 {
			model.Unit = parent.Unit
		}
		for key, val := range parent.Textures {
			if _, ok := model.Textures[key]; !ok {
				model.Textures[key] = val
			}
		}
	}

	l.resolveTextures(&model)
	l.modelCache[name] = &model
	return &model, nil
}

func (l *Loader) resolveTextures(m *Model) {
	for i := range m.Elements {
		for faceName, face := range m.Elements[i].Faces {
			resolved := m.ResolveTexture(face.Texture)
			if resolved != face.Texture {
				face.Texture = resolved
				m.Elements[i].Faces[faceName] = face
			}
		}
	}
}

// ResolveTexture follows "#name" references through the model's texture map.
func (m *Model) ResolveTexture(textureName string) string {
	for i := 0; i < 10 && strings.HasPrefix(textureName, "#"); i++ {
		key := strings.TrimPrefix(textureName, "#")
		if resolved, ok := m.Textures[key]; ok {
			textureName = resolved
		} else {
			break
		}
	}
	return textureName
}

// DefaultTexture is the texture named by the "all" key, or "" if unset.
func (m *Model) DefaultTexture() string {
	t := m.ResolveTexture("#all")
	if strings.HasPrefix(t, "#") {
		return ""
	}
	return t
}
