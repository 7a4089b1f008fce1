// Package popper renders a decorative burst of falling or rising items. One
// shared spring-driven offset translates the whole group; when it nears the
// far edge of the viewport the engine hides itself and rewinds, so an idle
// popper costs nothing per frame.
package popper

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/popper/glyph"
	"github.com/milk9111/popper/spring"
	"github.com/milk9111/popper/themes"
)

// DefaultSpacing is the pixel gap between item columns.
const DefaultSpacing = 30

// exitMargin is how far from the true off-screen edge a burst counts as
// finished. Generous so a fast spring step cannot jump over the threshold
// between two listener notifications.
const exitMargin = 250

// RenderItemFunc draws a single burst item.
type RenderItemFunc func(dst *ebiten.Image, item Item)

func defaultRenderItem(dst *ebiten.Image, item Item) {
	glyph.Heart(dst, item.X, item.Y, glyph.CanonicalSize, item.Color)
}

// Engine owns a burst's layout and lifecycle. It is single-threaded: drive
// it from the game loop with Update and Draw, trigger it with Start.
type Engine struct {
	spacing    float64
	theme      []color.Color
	renderItem RenderItemFunc
	autoPlay   bool
	direction  Direction
	profile    spring.Profile

	vw float64
	vh float64

	layout  layout
	initial float64
	final   float64

	offset  *spring.Value
	visible bool
	unsub   func()
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithSpacing sets the pixel gap between item columns.
func WithSpacing(px float64) Option {
	return func(e *Engine) { e.spacing = px }
}

// WithTheme sets the ordered palette resolved against the item count.
func WithTheme(colors []color.Color) Option {
	return func(e *Engine) { e.theme = colors }
}

// WithRenderItem replaces the default heart renderer.
func WithRenderItem(fn RenderItemFunc) Option {
	return func(e *Engine) { e.renderItem = fn }
}

// WithAutoPlay controls whether the first cycle starts on construction.
// Defaults to true.
func WithAutoPlay(auto bool) Option {
	return func(e *Engine) { e.autoPlay = auto }
}

// WithDirection sets the travel direction. Defaults to Descending.
func WithDirection(d Direction) Option {
	return func(e *Engine) { e.direction = d }
}

// WithProfile sets the spring speed profile. Defaults to spring.Normal.
func WithProfile(p spring.Profile) Option {
	return func(e *Engine) { e.profile = p }
}

// New builds an engine for a viewport. With autoplay on (the default) the
// first burst begins immediately; otherwise the engine stays hidden until
// Start is called.
func New(viewportWidth, viewportHeight float64, opts ...Option) *Engine {
	e := &Engine{
		spacing:   DefaultSpacing,
		autoPlay:  true,
		direction: Descending,
		profile:   spring.Normal,
		vw:        viewportWidth,
		vh:        viewportHeight,
	}
	for _, opt := range opts {
		opt(e)
	}
	if len(e.theme) == 0 {
		e.theme = themes.Default()
	}
	if e.renderItem == nil {
		e.renderItem = defaultRenderItem
	}

	e.relayout()
	e.computeOffsets()
	e.offset = spring.NewValue(e.initial)
	e.subscribeExit()

	if e.autoPlay {
		e.Start()
	}
	return e
}

// Start begins a burst cycle. It is the engine's sole external command.
// While a cycle is already running it does nothing; the next call after the
// cycle exits starts a fresh one with a new stagger shuffle.
func (e *Engine) Start() {
	if e.visible {
		return
	}
	e.layout.shuffle()
	e.visible = true
	e.offset.Animate(e.final, e.profile)
}

// Update advances the in-flight spring by one step. Call once per tick;
// while the engine is hidden it does nothing.
func (e *Engine) Update() {
	if !e.visible {
		return
	}
	e.offset.Update()
}

// Draw renders the burst onto dst. While the engine is hidden nothing is
// drawn at all.
func (e *Engine) Draw(dst *ebiten.Image) {
	if !e.visible {
		return
	}
	off := e.offset.Current()
	for i, x := range e.layout.columns {
		e.renderItem(dst, Item{
			X:     x,
			Y:     e.itemY(i, off),
			Color: e.layout.colors[i],
			Index: i,
		})
	}
}

// itemY staggers items against the travel direction so the whole group sits
// off-screen at the staged offset.
func (e *Engine) itemY(i int, off float64) float64 {
	if e.direction == Ascending {
		return off + e.layout.stagger[i]
	}
	return off - e.layout.stagger[i]
}

func (e *Engine) relayout() {
	e.layout = newLayout(e.vw, e.spacing, e.theme)
}

func (e *Engine) computeOffsets() {
	switch e.direction {
	case Ascending:
		e.initial = e.vh
		e.final = -e.vh
	default:
		e.initial = -e.vh / 2
		e.final = e.vh
	}
}

// exited reports whether off has crossed the near-exit threshold for the
// current direction.
func (e *Engine) exited(off float64) bool {
	if e.direction == Ascending {
		return off < -exitMargin
	}
	return off >= e.vh-exitMargin
}

// subscribeExit installs the listener that retires a cycle the first time
// the offset crosses the threshold. The surface is hidden before the offset
// snaps back to its staged value, so the jump is never visible.
func (e *Engine) subscribeExit() {
	e.unsub = e.offset.AddListener(func(off float64) {
		if !e.visible || !e.exited(off) {
			return
		}
		e.visible = false
		e.offset.SetCurrent(e.initial)
	})
}

// SetDirection reconfigures travel. The exit listener is torn down and
// re-established so a stale threshold can never fire, and the off-screen
// endpoints are recomputed. A mid-flight cycle retargets toward the new
// exit edge.
func (e *Engine) SetDirection(d Direction) {
	if d == e.direction {
		return
	}
	e.direction = d
	e.unsub()
	e.computeOffsets()
	if e.visible {
		e.offset.Animate(e.final, e.profile)
	} else {
		e.offset.SetCurrent(e.initial)
	}
	e.subscribeExit()
}

// SetSpacing changes the column gap and recomputes the layout. Zero or
// negative spacing yields an empty layout.
func (e *Engine) SetSpacing(px float64) {
	if px == e.spacing {
		return
	}
	e.spacing = px
	e.relayout()
}

// SetTheme swaps the palette and re-resolves item colors.
func (e *Engine) SetTheme(colors []color.Color) {
	if len(colors) == 0 {
		colors = themes.Default()
	}
	e.theme = colors
	e.layout.colors = themes.Resolve(colors, len(e.layout.columns))
}

// SetRenderItem swaps the item renderer. Passing nil restores the default
// heart.
func (e *Engine) SetRenderItem(fn RenderItemFunc) {
	if fn == nil {
		fn = defaultRenderItem
	}
	e.renderItem = fn
}

// SetProfile changes the speed profile used by the next cycle.
func (e *Engine) SetProfile(p spring.Profile) {
	e.profile = p
}

// Resize adapts the engine to a new viewport, recomputing the layout and
// the off-screen endpoints. A hidden engine restages at the new initial
// offset; a mid-flight cycle retargets toward the new exit edge so the
// spring cannot settle short of the recomputed threshold.
func (e *Engine) Resize(viewportWidth, viewportHeight float64) {
	if viewportWidth == e.vw && viewportHeight == e.vh {
		return
	}
	e.vw = viewportWidth
	e.vh = viewportHeight
	e.relayout()
	e.computeOffsets()
	if e.visible {
		e.offset.Animate(e.final, e.profile)
	} else {
		e.offset.SetCurrent(e.initial)
	}
}

// Visible reports whether a cycle is running.
func (e *Engine) Visible() bool {
	return e.visible
}

// ItemCount is the number of items in the current layout.
func (e *Engine) ItemCount() int {
	return len(e.layout.columns)
}

// Direction returns the current travel direction.
func (e *Engine) Direction() Direction {
	return e.direction
}

// Offset returns the shared animated offset as of the last step.
func (e *Engine) Offset() float64 {
	return e.offset.Current()
}

// Close releases the exit-listener subscription and hides the engine. The
// engine must not be used after Close.
func (e *Engine) Close() {
	if e.unsub != nil {
		e.unsub()
		e.unsub = nil
	}
	e.visible = false
}
