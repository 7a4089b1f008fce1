// Package themes supplies burst color palettes and the yaml surface that
// configures them.
package themes

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Spec is a theme file: an ordered palette plus optional engine overrides.
// Zero-valued fields mean "keep the engine default".
type Spec struct {
	Name      string      `yaml:"name"`
	Colors    []YAMLColor `yaml:"colors"`
	Spacing   float64     `yaml:"spacing"`
	Glyph     string      `yaml:"glyph"`
	Direction string      `yaml:"direction"`
	Profile   string      `yaml:"profile"`
	Script    string      `yaml:"script"`
}

// LoadSpec reads and parses a theme by basename ("hearts", "hearts.yaml",
// or "themes/hearts.yaml").
func LoadSpec(name string) (*Spec, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("themes: load %s: %w", name, err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("themes: unmarshal %s: %w", name, err)
	}
	return &spec, nil
}

// Palette returns the spec's color tokens in order.
func (s *Spec) Palette() []color.Color {
	if s == nil || len(s.Colors) == 0 {
		return nil
	}
	out := make([]color.Color, 0, len(s.Colors))
	for _, c := range s.Colors {
		if c.Color == nil {
			continue
		}
		out = append(out, c.Color)
	}
	return out
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
