package glyph

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Star fills a five-point star with its top point facing up.
func Star(dst *ebiten.Image, x, y, size float64, clr color.Color) {
	if size <= 0 {
		return
	}
	const points = 5
	outer := size * 0.5
	inner := outer * 0.4

	var path vector.Path
	for i := 0; i < points*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + float64(i)*math.Pi/points
		px := float32(x + math.Cos(a)*r)
		py := float32(y + math.Sin(a)*r)
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()

	fillPath(dst, &path, clr)
}

// Confetti fills a tilted rectangle strip. The tilt is derived from the
// position so identical inputs stay identical while neighbors vary.
func Confetti(dst *ebiten.Image, x, y, size float64, clr color.Color) {
	if size <= 0 {
		return
	}
	angle := math.Mod(x*0.7+y*0.3, math.Pi)
	hw := size * 0.28
	hh := size * 0.45
	cos, sin := math.Cos(angle), math.Sin(angle)

	corner := func(dx, dy float64) (float32, float32) {
		return float32(x + dx*cos - dy*sin), float32(y + dx*sin + dy*cos)
	}

	var path vector.Path
	px, py := corner(-hw, -hh)
	path.MoveTo(px, py)
	for _, c := range [][2]float64{{hw, -hh}, {hw, hh}, {-hw, hh}} {
		px, py = corner(c[0], c[1])
		path.LineTo(px, py)
	}
	path.Close()

	fillPath(dst, &path, clr)
}

// Dot fills a plain circle.
func Dot(dst *ebiten.Image, x, y, size float64, clr color.Color) {
	if size <= 0 {
		return
	}
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(size)*0.5, clr, true)
}
