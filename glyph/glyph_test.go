package glyph

import (
	"image/color"
	"testing"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"heart", "star", "confetti", "dot", "", "unknown"} {
		t.Run(name, func(t *testing.T) {
			if ByName(name) == nil {
				t.Fatalf("ByName(%q) returned nil", name)
			}
		})
	}
}

func TestVertexColorIsPremultiplied(t *testing.T) {
	cases := []struct {
		name       string
		clr        color.Color
		r, g, b, a float32
	}{
		{"opaque_white", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, 1, 1, 1, 1},
		{"opaque_red", color.NRGBA{R: 255, A: 255}, 1, 0, 0, 1},
		{"half_alpha_red", color.NRGBA{R: 255, A: 128}, 0.502, 0, 0, 0.502},
		{"transparent", color.NRGBA{}, 0, 0, 0, 0},
	}

	const eps = 0.005
	near := func(got, want float32) bool {
		d := got - want
		return d < eps && d > -eps
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, g, b, a := vertexColor(c.clr)
			if !near(r, c.r) || !near(g, c.g) || !near(b, c.b) || !near(a, c.a) {
				t.Fatalf("vertexColor = %v %v %v %v, want %v %v %v %v", r, g, b, a, c.r, c.g, c.b, c.a)
			}
			// Premultiplied: no channel may exceed alpha.
			if r > a+eps || g > a+eps || b > a+eps {
				t.Fatalf("channel exceeds alpha: %v %v %v vs %v", r, g, b, a)
			}
		})
	}
}

func TestNonPositiveSizeDrawsNothing(t *testing.T) {
	// A nil destination proves the guard returns before touching the image.
	clr := color.NRGBA{R: 255, A: 255}
	for _, fn := range []Func{Heart, Star, Confetti, Dot} {
		fn(nil, 10, 10, 0, clr)
		fn(nil, 10, 10, -5, clr)
	}
}
