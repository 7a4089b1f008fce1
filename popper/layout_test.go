package popper

import (
	"image/color"
	"sort"
	"testing"
)

func TestItemCount(t *testing.T) {
	cases := []struct {
		name    string
		width   float64
		spacing float64
		want    int
	}{
		{"exact_fit", 300, 30, 10},
		{"partial_column_dropped", 299, 30, 9},
		{"narrower_than_spacing", 20, 30, 0},
		{"zero_width", 0, 30, 0},
		{"zero_spacing", 300, 0, 0},
		{"negative_spacing", 300, -10, 0},
		{"negative_width", -300, 30, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := itemCountFor(c.width, c.spacing); got != c.want {
				t.Fatalf("itemCountFor(%v, %v) = %d, want %d", c.width, c.spacing, got, c.want)
			}
		})
	}
}

func TestColumnsIncreaseBySpacing(t *testing.T) {
	l := newLayout(300, 30, nil)
	if len(l.columns) != 10 {
		t.Fatalf("expected 10 columns, got %d", len(l.columns))
	}
	for i, x := range l.columns {
		want := float64(i) * 30
		if x != want {
			t.Fatalf("column %d at %v, want %v", i, x, want)
		}
	}
}

func TestStaggerIsPermutation(t *testing.T) {
	// No fixed seed: assert the multiset, never the order.
	for run := 0; run < 20; run++ {
		l := newLayout(300, 30, nil)
		if len(l.stagger) != len(l.columns) {
			t.Fatalf("stagger has %d entries, columns %d", len(l.stagger), len(l.columns))
		}
		got := append([]float64{}, l.stagger...)
		sort.Float64s(got)
		for i, y := range got {
			want := float64(i) * 30
			if y != want {
				t.Fatalf("run %d: sorted stagger[%d] = %v, want %v", run, i, y, want)
			}
		}
	}
}

func TestReshuffleKeepsMultiset(t *testing.T) {
	l := newLayout(300, 30, nil)
	before := append([]float64{}, l.stagger...)
	l.shuffle()
	sort.Float64s(before)
	after := append([]float64{}, l.stagger...)
	sort.Float64s(after)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("shuffle changed the offset multiset at %d: %v vs %v", i, before[i], after[i])
		}
	}
}

func TestColorsCycleOverTheme(t *testing.T) {
	theme := []color.Color{
		color.NRGBA{R: 1, A: 255},
		color.NRGBA{G: 1, A: 255},
		color.NRGBA{B: 1, A: 255},
	}
	l := newLayout(300, 30, theme)
	if len(l.colors) != 10 {
		t.Fatalf("expected 10 colors, got %d", len(l.colors))
	}
	for i, c := range l.colors {
		if c != theme[i%3] {
			t.Fatalf("color %d = %v, want %v", i, c, theme[i%3])
		}
	}
}

func TestEmptyLayout(t *testing.T) {
	l := newLayout(0, 30, nil)
	if len(l.columns) != 0 || len(l.stagger) != 0 || len(l.colors) != 0 {
		t.Fatalf("degenerate viewport should yield an empty layout, got %d/%d/%d",
			len(l.columns), len(l.stagger), len(l.colors))
	}
}
