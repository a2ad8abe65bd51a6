// Package grammar loads L-system definitions from files and provides a set of
// well-known presets.
//
// A definition file is YAML or TOML, chosen by extension:
//
//	name: fractal-plant
//	axiom: X
//	rules:
//	  X: F[+X][-X]FX
//	  F: FF
//	angle: 25.7
//	generations: 6
package grammar

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/viktordanov/lsystem"
	"github.com/viktordanov/lsystem/turtle"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported grammar format")
	ErrUnknownPreset     = errors.New("unknown preset")
)

// Definition describes an L-system together with how to draw it.
// Zero Angle and Length fall back to the turtle defaults.
type Definition struct {
	Name        string            `yaml:"name" toml:"name"`
	Description string            `yaml:"description,omitempty" toml:"description"`
	Axiom       string            `yaml:"axiom" toml:"axiom"`
	Rules       map[string]string `yaml:"rules" toml:"rules"`
	Angle       float64           `yaml:"angle,omitempty" toml:"angle"`
	Length      float64           `yaml:"length,omitempty" toml:"length"`
	Generations int               `yaml:"generations,omitempty" toml:"generations"`
}

// LSystem builds the rewriting engine described by d.
func (d Definition) LSystem() (*lsystem.LSystem, error) {
	rules, err := lsystem.ParseRules(d.Rules)
	if err != nil {
		return nil, fmt.Errorf("grammar %q: %w", d.Name, err)
	}
	ls, err := lsystem.NewLSystem(d.Axiom, rules)
	if err != nil {
		return nil, fmt.Errorf("grammar %q: %w", d.Name, err)
	}
	return ls, nil
}

// PlotterOptions returns the turtle options for d's angle and length.
func (d Definition) PlotterOptions() []turtle.Option {
	var opts []turtle.Option
	if d.Angle != 0 {
		opts = append(opts, turtle.WithAngle(d.Angle))
	}
	if d.Length != 0 {
		opts = append(opts, turtle.WithLength(d.Length))
	}
	return opts
}

// Format identifies a definition encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads a definition file. A missing name defaults to the file's base name.
func Load(path string) (Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Definition{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("failed to read grammar: %w", err)
	}

	d, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return d, nil
}

func Decode(r io.Reader, format Format) (Definition, error) {
	var d Definition
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&d); err != nil {
			return Definition{}, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&d); err != nil {
			return Definition{}, fmt.Errorf("failed to parse toml: %w", err)
		}
	default:
		return Definition{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return d, nil
}

func Encode(w io.Writer, d Definition, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(d)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Resolve returns the preset called nameOrPath, or loads it as a file.
func Resolve(nameOrPath string) (Definition, error) {
	if d, err := Preset(nameOrPath); err == nil {
		return d, nil
	}
	if _, err := os.Stat(nameOrPath); err != nil {
		return Definition{}, fmt.Errorf("%w: %q is neither a preset nor a readable file", ErrUnknownPreset, nameOrPath)
	}
	return Load(nameOrPath)
}
