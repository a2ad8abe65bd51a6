package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viktordanov/lsystem"
	"github.com/viktordanov/lsystem/grammar"
)

// grammarFlags selects the grammar a command works on.
type grammarFlags struct {
	axiom       string
	rules       string
	angle       float64
	length      float64
	generations int
}

func (g *grammarFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&g.axiom, "axiom", "", "axiom of an ad-hoc grammar (with --rules)")
	cmd.Flags().StringVar(&g.rules, "rules", "", `rules of an ad-hoc grammar, e.g. "X -> F[+X]FX; F -> FF"`)
	cmd.Flags().Float64Var(&g.angle, "angle", 0, "turn angle in degrees (overrides the grammar)")
	cmd.Flags().Float64Var(&g.length, "length", 0, "initial step length (overrides the grammar)")
	cmd.Flags().IntVarP(&g.generations, "generations", "n", 0, "number of generations (overrides the grammar)")
}

// resolve builds the definition from the flags or from a preset or file name.
func (g *grammarFlags) resolve(args []string) (grammar.Definition, error) {
	var def grammar.Definition
	switch {
	case g.axiom != "" || g.rules != "":
		if len(args) > 0 {
			return def, errors.New("give either a grammar name or --axiom/--rules, not both")
		}
		rules, err := lsystem.ParseRuleList(g.rules)
		if err != nil {
			return def, err
		}
		def = grammar.Definition{Name: "custom", Axiom: g.axiom, Rules: make(map[string]string, len(rules))}
		for pred, succ := range rules {
			def.Rules[pred.String()] = succ
		}
	case len(args) == 1:
		d, err := grammar.Resolve(args[0])
		if err != nil {
			return def, err
		}
		def = d
	default:
		return def, fmt.Errorf("no grammar given; use a preset (%s), a file, or --axiom/--rules", presetList())
	}

	if g.angle != 0 {
		def.Angle = g.angle
	}
	if g.length != 0 {
		def.Length = g.length
	}
	if g.generations > 0 {
		def.Generations = g.generations
	}
	if def.Generations <= 0 {
		def.Generations = 1
	}
	return def, nil
}

func presetList() string {
	return strings.Join(grammar.Presets(), ", ")
}
