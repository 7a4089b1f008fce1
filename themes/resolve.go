package themes

import "image/color"

// Resolve fills count slots from the ordered tokens, cycling when there are
// fewer tokens than slots and truncating when there are more. Empty inputs
// yield nil.
func Resolve(tokens []color.Color, count int) []color.Color {
	if count <= 0 || len(tokens) == 0 {
		return nil
	}
	out := make([]color.Color, count)
	for i := range out {
		out[i] = tokens[i%len(tokens)]
	}
	return out
}

// fallbackPalette backs Default when the embedded theme cannot be read.
var fallbackPalette = []color.Color{
	color.NRGBA{R: 0xe6, G: 0x3b, B: 0x5a, A: 0xff},
	color.NRGBA{R: 0xf2, G: 0x77, B: 0x8d, A: 0xff},
	color.NRGBA{R: 0xc2, G: 0x18, B: 0x3c, A: 0xff},
}

// Default returns the stock palette: the embedded hearts theme, or a
// hardcoded copy of it if the embed is unreadable.
func Default() []color.Color {
	if spec, err := LoadSpec("hearts"); err == nil {
		if p := spec.Palette(); len(p) > 0 {
			return p
		}
	}
	out := make([]color.Color, len(fallbackPalette))
	copy(out, fallbackPalette)
	return out
}
