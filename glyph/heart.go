package glyph

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Heart fills a heart silhouette authored as two cubic curves meeting at the
// bottom tip and the top notch.
func Heart(dst *ebiten.Image, x, y, size float64, clr color.Color) {
	if size <= 0 {
		return
	}
	cx := float32(x)
	cy := float32(y)
	s := float32(size)

	var path vector.Path
	// Bottom tip, up the left lobe to the notch, then mirrored down the
	// right lobe.
	path.MoveTo(cx, cy+0.45*s)
	path.CubicTo(cx-0.75*s, cy-0.05*s, cx-0.40*s, cy-0.55*s, cx, cy-0.15*s)
	path.CubicTo(cx+0.40*s, cy-0.55*s, cx+0.75*s, cy-0.05*s, cx, cy+0.45*s)
	path.Close()

	fillPath(dst, &path, clr)
}
