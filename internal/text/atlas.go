// Package text bakes a font into a single-channel glyph atlas and lays out
// strings as textured quads for the status overlay.
package text

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph describes a single character's placement and metrics within the atlas
type Glyph struct {
	// Pixel coordinates of the glyph in the atlas (top-left origin)
	AtlasX, AtlasY float32
	Width, Height  float32
	// Offset from the pen position to the glyph's top-left, y up
	BearingX, BearingY float32
	// Advance in whole pixels
	Advance int
}

type Atlas struct {
	Image  *image.Alpha
	Glyphs map[rune]Glyph
}

const (
	atlasWidth = 512
	padding    = 1
	firstRune  = rune(32)
	lastRune   = rune(126)
)

// DefaultAtlas bakes the Go Regular font at the given pixel size.
func DefaultAtlas(pixels int) (*Atlas, error) {
	return BuildAtlas(goregular.TTF, pixels)
}

// BuildAtlas parses an OpenType font and packs printable ASCII into rows.
func BuildAtlas(fontBytes []byte, pixels int) (*Atlas, error) {
	if pixels <= 0 {
		return nil, fmt.Errorf("text: font size %d", pixels)
	}
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(pixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	// First pass: place glyphs to find the atlas height
	type placed struct {
		r      rune
		x, y   int
		bounds image.Rectangle
	}
	var glyphs []placed
	offsetX, offsetY, rowHeight := 0, 0, 0
	for r := firstRune; r <= lastRune; r++ {
		dr, _, _, _, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		gw, gh := dr.Dx(), dr.Dy()
		if offsetX+gw > atlasWidth {
			offsetX = 0
			offsetY += rowHeight + padding
			rowHeight = 0
		}
		glyphs = append(glyphs, placed{r: r, x: offsetX, y: offsetY, bounds: dr})
		offsetX += gw + padding
		if gh > rowHeight {
			rowHeight = gh
		}
	}
	height := offsetY + rowHeight
	if height == 0 {
		height = 1
	}

	atlas := &Atlas{
		Image:  image.NewAlpha(image.Rect(0, 0, atlasWidth, height)),
		Glyphs: make(map[rune]Glyph, len(glyphs)),
	}

	// Second pass: render each glyph into its slot
	for _, p := range glyphs {
		dr, mask, maskp, advance, _ := face.Glyph(fixed.P(0, 0), p.r)
		gw, gh := dr.Dx(), dr.Dy()
		if gw > 0 && gh > 0 && mask != nil {
			draw.Draw(atlas.Image, image.Rect(p.x, p.y, p.x+gw, p.y+gh), mask, maskp, draw.Src)
		}
		atlas.Glyphs[p.r] = Glyph{
			AtlasX:   float32(p.x),
			AtlasY:   float32(p.y),
			Width:    float32(gw),
			Height:   float32(gh),
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  int(math.Round(float64(advance) / 64.0)),
		}
	}
	return atlas, nil
}

// Measure returns the approximate width and height in pixels the text will occupy at the given scale.
func (a *Atlas) Measure(s string, scale float32) (float32, float32) {
	var width, maxH float32
	for _, r := range s {
		g, ok := a.Glyphs[r]
		if !ok {
			g = a.Glyphs[' ']
		}
		width += float32(g.Advance) * scale
		if g.Height*scale > maxH {
			maxH = g.Height * scale
		}
	}
	return width, maxH
}

// FloatsPerGlyph is six vertices of x, y, u, v.
const FloatsPerGlyph = 6 * 4

// Quads lays s out on a baseline at (x, y) in a y-down pixel space and
// returns two triangles per visible glyph. Missing glyphs advance like a
// space.
func (a *Atlas) Quads(s string, x, y, scale float32) []float32 {
	w := float32(a.Image.Bounds().Dx())
	h := float32(a.Image.Bounds().Dy())
	out := make([]float32, 0, len(s)*FloatsPerGlyph)
	for _, r := range s {
		g, ok := a.Glyphs[r]
		if !ok {
			x += float32(a.Glyphs[' '].Advance) * scale
			continue
		}
		if g.Width > 0 && g.Height > 0 {
			x0 := x + g.BearingX*scale
			y0 := y - g.BearingY*scale
			x1 := x0 + g.Width*scale
			y1 := y0 + g.Height*scale
			u0, v0 := g.AtlasX/w, g.AtlasY/h
			u1, v1 := (g.AtlasX+g.Width)/w, (g.AtlasY+g.Height)/h
			out = append(out,
				x0, y1, u0, v1,
				x0, y0, u0, v0,
				x1, y0, u1, v0,
				x0, y1, u0, v1,
				x1, y0, u1, v0,
				x1, y1, u1, v1,
			)
		}
		x += float32(g.Advance) * scale
	}
	return out
}
