// Package script evaluates tengo styling scripts against burst items. A
// script defines style(i, n) returning a map of per-item overrides, letting
// theme authors vary scale, palette slot, and glyph without recompiling.
package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

const styleDispatchScript = `
__out = style(__index, __count)
`

// Style is one item's overrides. Zero-ish values mean "keep the engine
// default": Scale <= 0, ColorIndex < 0, empty Glyph.
type Style struct {
	Scale      float64
	ColorIndex int
	Glyph      string
}

// Styler holds a compiled styling script. It is not safe for concurrent
// use; evaluate from the game loop.
type Styler struct {
	compiled *tengo.Compiled
}

// NewStyler compiles src and probes it once so a missing or broken style
// function surfaces at load time rather than mid-burst.
func NewStyler(src []byte) (*Styler, error) {
	full := append(append([]byte{}, src...), []byte("\n"+styleDispatchScript)...)
	script := tengo.NewScript(full)
	_ = script.Add("__index", 0)
	_ = script.Add("__count", 0)
	_ = script.Add("__out", nil)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}

	s := &Styler{compiled: compiled}
	if _, err := s.Style(0, 1); err != nil {
		return nil, fmt.Errorf("script: probe: %w", err)
	}
	return s, nil
}

// Style evaluates the script for item index out of count items.
func (s *Styler) Style(index, count int) (Style, error) {
	st := Style{Scale: 1, ColorIndex: -1}
	if s == nil || s.compiled == nil {
		return st, fmt.Errorf("script: nil styler")
	}
	if err := s.compiled.Set("__index", index); err != nil {
		return st, err
	}
	if err := s.compiled.Set("__count", count); err != nil {
		return st, err
	}
	if err := s.compiled.Run(); err != nil {
		return st, err
	}

	out := s.compiled.Get("__out")
	if out == nil || out.IsUndefined() {
		return st, fmt.Errorf("script: style returned no value")
	}
	m := out.Map()
	if m == nil {
		return st, fmt.Errorf("script: style must return a map")
	}

	if v, ok := toFloat(m["scale"]); ok {
		st.Scale = v
	}
	if v, ok := toFloat(m["color"]); ok && v >= 0 {
		st.ColorIndex = int(v)
	}
	if v, ok := m["glyph"].(string); ok {
		st.Glyph = v
	}
	return st, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
