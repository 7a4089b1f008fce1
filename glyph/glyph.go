// Package glyph draws the fixed vector silhouettes used as burst items.
// Every draw function is a pure function of its inputs: the same position,
// size, and color always produce the same pixels.
package glyph

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CanonicalSize is the default extent, in pixels, a glyph is scaled to.
const CanonicalSize = 24.0

// Func draws a silhouette centered at (x, y), spanning roughly size pixels,
// filled with clr.
type Func func(dst *ebiten.Image, x, y, size float64, clr color.Color)

// ByName resolves a config token to a draw function. Unknown tokens fall
// back to Heart.
func ByName(name string) Func {
	switch name {
	case "star":
		return Star
	case "confetti":
		return Confetti
	case "dot":
		return Dot
	default:
		return Heart
	}
}

var (
	whiteOnce sync.Once
	whiteSub  *ebiten.Image
)

// whiteSource is the 1x1 white region used as the triangle texture. Built
// lazily so importing the package never touches the graphics stack.
func whiteSource() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSub = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSub
}

// vertexColor converts clr to per-vertex scale components. RGBA() is
// alpha-premultiplied, so fillPath must draw in premultiplied mode or
// translucent colors darken twice.
func vertexColor(clr color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := clr.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}

func fillPath(dst *ebiten.Image, path *vector.Path, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := vertexColor(clr)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	dst.DrawTriangles(vs, is, whiteSource(), op)
}
