package boxmodel

// Model is a mesh made of axis-aligned boxes, stored as JSON.
type Model struct {
	Parent   string            `json:"parent"`
	Textures map[string]string `json:"textures"`
	Elements []Element         `json:"elements"`
	// Unit divides every coordinate; 16 lets a model be authored in sixteenths.
	Unit float32 `json:"unit"`
}

type Element struct {
	From     [3]float32      `json:"from"`
	To       [3]float32      `json:"to"`
	Rotation *Rotation       `json:"rotation"`
	Faces    map[string]Face `json:"faces"`
}

type Rotation struct {
	Origin [3]float32 `json:"origin"`
	Angle  float32    `json:"angle"`
	Axis   string     `json:"axis"`
}

type Face struct {
	UV      *[4]float32 `json:"uv"`
	Texture string      `json:"texture"`
}

// FaceNames lists the faces in the order they are emitted.
var FaceNames = []string{"down", "up", "north", "south", "west", "east"}

func (e Element) clone() Element {
	out := e
	if e.Rotation != nil {
		r := *e.Rotation
		out.Rotation = &r
	}
	if e.Faces != nil {
		out.Faces = make(map[string]Face, len(e.Faces))
		for k, f := range e.Faces {
			if f.UV != nil {
				uv := *f.UV
				f.UV = &uv
			}
			out.Faces[k] = f
		}
	}
	return out
}
