package popper

import (
	"image/color"
	"math/rand/v2"

	"github.com/milk9111/popper/themes"
)

// Item is the descriptor handed to a render function: the item's resolved
// position for this frame, its palette color, and its column index.
type Item struct {
	X     float64
	Y     float64
	Color color.Color
	Index int
}

// layout is the static per-item geometry computed once per configuration
// change: one column per item plus a shuffled vertical stagger so items sit
// at uneven heights.
type layout struct {
	columns []float64
	stagger []float64
	colors  []color.Color
}

func itemCountFor(viewportWidth, spacing float64) int {
	if spacing <= 0 || viewportWidth <= 0 {
		return 0
	}
	return int(viewportWidth / spacing)
}

func newLayout(viewportWidth, spacing float64, theme []color.Color) layout {
	n := itemCountFor(viewportWidth, spacing)
	l := layout{
		columns: make([]float64, n),
		stagger: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		l.columns[i] = float64(i) * spacing
		l.stagger[i] = float64(i) * spacing
	}
	l.shuffle()
	l.colors = themes.Resolve(theme, n)
	return l
}

// shuffle redraws the stagger permutation. Called at the start of every
// cycle so each burst lands items at fresh heights; the multiset of offsets
// never changes.
func (l *layout) shuffle() {
	rand.Shuffle(len(l.stagger), func(i, j int) {
		l.stagger[i], l.stagger[j] = l.stagger[j], l.stagger[i]
	})
}
