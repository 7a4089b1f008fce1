package script

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/popper/common"
	"github.com/milk9111/popper/glyph"
	"github.com/milk9111/popper/popper"
)

// RenderItem adapts the styler into an engine item renderer. base draws
// items the script leaves unstyled, palette backs the script's color
// indices, and count reports the live item count. A failed evaluation
// falls back to the base glyph for that item.
func (s *Styler) RenderItem(base glyph.Func, palette []color.Color, count func() int) popper.RenderItemFunc {
	return func(dst *ebiten.Image, it popper.Item) {
		st, err := s.Style(it.Index, count())
		if err != nil {
			base(dst, it.X, it.Y, glyph.CanonicalSize, it.Color)
			return
		}
		draw := base
		if st.Glyph != "" {
			draw = glyph.ByName(st.Glyph)
		}
		clr := it.Color
		if st.ColorIndex >= 0 && len(palette) > 0 {
			clr = palette[st.ColorIndex%len(palette)]
		}
		size := glyph.CanonicalSize * common.Clamp(st.Scale, 0.2, 3)
		draw(dst, it.X, it.Y, size, clr)
	}
}
