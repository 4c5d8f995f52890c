package layout

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"restaurant-gl/internal/scene"
)

var (
	ErrNoPlacement    = errors.New("layout: object has no placement")
	ErrUnknownMesh    = errors.New("layout: unknown mesh")
	ErrUnknownTexture = errors.New("layout: unknown texture")
)

// Layout is a scene file: the assets it needs and where to put them.
type Layout struct {
	// name -> box model path, relative to the assets dir, without .json
	Meshes map[string]string `yaml:"meshes"`
	// name -> image path, relative to the assets dir
	Textures map[string]string `yaml:"textures"`
	Light    Light             `yaml:"light"`
	Objects  []Object          `yaml:"objects"`
}

type Light struct {
	Position [3]float32  `yaml:"position"`
	Color    *[3]float32 `yaml:"color"`
}

type Object struct {
	Name    string `yaml:"name"`
	Mesh    string `yaml:"mesh"`
	Texture string `yaml:"texture"`
	// uniform scale, 0 means 1
	Scale   float32 `yaml:"scale"`
	RotateY float32 `yaml:"rotate_y"`

	At   [][3]float32 `yaml:"at"`
	Grid *Grid        `yaml:"grid"`

	// radians per second about x, y, z
	Spin *[3]float32 `yaml:"spin"`
	Bob  *Bob        `yaml:"bob"`

	Flat  bool        `yaml:"flat"`
	Color *[3]float32 `yaml:"color"`
}

type Grid struct {
	Origin  [3]float32 `yaml:"origin"`
	Count   [3]int     `yaml:"count"`
	Spacing [3]float32 `yaml:"spacing"`
}

type Bob struct {
	Axis      [3]float32 `yaml:"axis"`
	Amplitude float32    `yaml:"amplitude"`
	Frequency float32    `yaml:"frequency"`
}

func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("layout: parse: %w", err)
	}
	return &l, nil
}

func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: read %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// LightPosition and LightColor default to the origin and white.
func (l *Layout) LightPosition() mgl32.Vec3 {
	return mgl32.Vec3(l.Light.Position)
}

func (l *Layout) LightColor() mgl32.Vec3 {
	if l.Light.Color == nil {
		return mgl32.Vec3{1, 1, 1}
	}
	return mgl32.Vec3(*l.Light.Color)
}

// MeshNames returns the declared mesh names, sorted.
func (l *Layout) MeshNames() []string {
	return sortedKeys(l.Meshes)
}

// TextureNames returns the declared texture names, sorted.
func (l *Layout) TextureNames() []string {
	return sortedKeys(l.Textures)
}

// Instances expands every object into one instance per placement, in file
// order. defaults maps a mesh name to the texture used when an object names
// none; it may be nil.
func (l *Layout) Instances(defaults map[string]string) ([]scene.Instance, error) {
	var out []scene.Instance
	for i, obj := range l.Objects {
		label := obj.Name
		if label == "" {
			label = fmt.Sprintf("objects[%d]", i)
		}
		if _, ok := l.Meshes[obj.Mesh]; !ok {
			return nil, fmt.Errorf("%w %q in %s", ErrUnknownMesh, obj.Mesh, label)
		}
		texture := obj.Texture
		if !obj.Flat {
			if texture == "" {
				texture = defaults[obj.Mesh]
			}
			if _, ok := l.Textures[texture]; !ok {
				return nil, fmt.Errorf("%w %q in %s", ErrUnknownTexture, texture, label)
			}
		}

		positions := make([]mgl32.Vec3, 0, len(obj.At))
		for _, p := range obj.At {
			positions = append(positions, mgl32.Vec3(p))
		}
		if obj.Grid != nil {
			positions = append(positions, scene.Grid(
				mgl32.Vec3(obj.Grid.Origin), obj.Grid.Count, mgl32.Vec3(obj.Grid.Spacing))...)
		}
		if len(positions) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoPlacement, label)
		}

		scale := obj.Scale
		if scale == 0 {
			scale = 1
		}
		color := mgl32.Vec3{1, 1, 1}
		if obj.Color != nil {
			color = mgl32.Vec3(*obj.Color)
		}
		anim := obj.animation()

		for j, pos := range positions {
			in := scene.Place(obj.Name, obj.Mesh, texture, pos)
			if len(positions) > 1 {
				in.Name = fmt.Sprintf("%s[%d]", label, j)
			}
			in.Scale = mgl32.Scale3D(scale, scale, scale)
			in.Rotation = mgl32.HomogRotate3DY(mgl32.DegToRad(obj.RotateY))
			in.Animation = anim
			in.Flat = obj.Flat
			in.Color = color
			out = append(out, in)
		}
	}
	return out, nil
}

func (o *Object) animation() scene.Animation {
	var anims scene.Combined
	if o.Bob != nil {
		anims = append(anims, scene.Bob{
			Axis:      mgl32.Vec3(o.Bob.Axis),
			Amplitude: o.Bob.Amplitude,
			Frequency: o.Bob.Frequency,
		})
	}
	if o.Spin != nil {
		anims = append(anims, scene.Spin{Rates: mgl32.Vec3(*o.Spin)})
	}
	switch len(anims) {
	case 0:
		return nil
	case 1:
		return anims[0]
	}
	return anims
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
