package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viktordanov/lsystem/grammar"
)

func (c *CLI) presetsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "List built-in grammars, or print one as a definition file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				d, err := grammar.Preset(args[0])
				if err != nil {
					return err
				}
				return grammar.Encode(out, d, grammar.Format(format))
			}

			t := newTable("name", "axiom", "rules", "angle", "description")
			for _, name := range grammar.Presets() {
				d, _ := grammar.Preset(name)
				ls, err := d.LSystem()
				if err != nil {
					return err
				}
				t.Row(d.Name, d.Axiom, ls.Rules.String(), fmt.Sprintf("%g", d.Angle), d.Description)
			}
			_, err := fmt.Fprintln(out, t.Render())
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", string(grammar.FormatYAML), "definition format: yaml or toml")
	return cmd
}
