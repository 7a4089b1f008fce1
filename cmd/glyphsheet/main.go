// Command glyphsheet renders every glyph in every embedded theme palette so
// shape and palette edits can be eyeballed without running the full demo.
package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/milk9111/popper/glyph"
	"github.com/milk9111/popper/themes"
)

const (
	sheetWidth  = 520
	sheetHeight = 400
	cellSize    = 72
	labelWidth  = 110
	topPad      = 24
)

var glyphNames = []string{"heart", "star", "confetti", "dot"}

type sheet struct {
	specs []*themes.Spec
}

func (s *sheet) Update() error {
	return nil
}

func (s *sheet) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	for row, spec := range s.specs {
		palette := spec.Palette()
		cy := float64(topPad + row*cellSize + cellSize/2)
		ebitenutil.DebugPrintAt(screen, spec.Name, 12, int(cy)-6)
		for col, name := range glyphNames {
			var clr color.Color = colornames.White
			if len(palette) > 0 {
				clr = palette[col%len(palette)]
			}
			cx := float64(labelWidth + col*cellSize + cellSize/2)
			glyph.ByName(name)(screen, cx, cy, cellSize*0.6, clr)
		}
	}
}

func (s *sheet) Layout(outsideWidth, outsideHeight int) (int, int) {
	return sheetWidth, sheetHeight
}

func main() {
	var specs []*themes.Spec
	for _, name := range themes.Names() {
		spec, err := themes.LoadSpec(name)
		if err != nil {
			log.Printf("skipping theme %s: %v", name, err)
			continue
		}
		specs = append(specs, spec)
	}

	ebiten.SetWindowSize(sheetWidth*2, sheetHeight*2)
	ebiten.SetWindowTitle("glyphsheet")
	if err := ebiten.RunGame(&sheet{specs: specs}); err != nil {
		log.Fatal(err)
	}
}
