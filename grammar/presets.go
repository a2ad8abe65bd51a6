package grammar

import (
	"fmt"
	"sort"
)

var presets = map[string]Definition{
	"koch": {
		Name:        "koch",
		Description: "Koch curve",
		Axiom:       "F",
		Rules:       map[string]string{"F": "F+F--F+F"},
		Angle:       60,
		Generations: 3,
	},
	"quadratic-koch": {
		Name:        "quadratic-koch",
		Description: "Quadratic Koch island",
		Axiom:       "F+F+F+F",
		Rules:       map[string]string{"F": "F+F-F-F+F"},
		Angle:       90,
		Generations: 3,
	},
	"bush": {
		Name:        "bush",
		Description: "Symmetric branching bush",
		Axiom:       "F",
		Rules:       map[string]string{"F": "F[+F][-F]F"},
		Angle:       12,
		Generations: 3,
	},
	"plant": {
		Name:        "plant",
		Description: "Alternating branch plant",
		Axiom:       "F",
		Rules:       map[string]string{"F": "F[+F]F[-F]F"},
		Angle:       25.7,
		Generations: 5,
	},
	"fractal-plant": {
		Name:        "fractal-plant",
		Description: "Fractal plant grown from a non-drawing apex X",
		Axiom:       "X",
		Rules:       map[string]string{"X": "F[+X][-X]FX", "F": "FF"},
		Angle:       25.7,
		Generations: 7,
	},
}

// Preset returns a copy of the named built-in definition.
func Preset(name string) (Definition, error) {
	d, ok := presets[name]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	rules := make(map[string]string, len(d.Rules))
	for k, v := range d.Rules {
		rules[k] = v
	}
	d.Rules = rules
	return d, nil
}

// Presets returns the names of all built-in definitions in order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
