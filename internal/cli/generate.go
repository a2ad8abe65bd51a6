package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) generateCommand() *cobra.Command {
	var gf grammarFlags
	var trace bool

	cmd := &cobra.Command{
		Use:   "generate [preset|file]",
		Short: "Rewrite a grammar and print the resulting state",
		Example: `  lsystem generate koch -n 2
  lsystem generate --axiom F --rules "F -> F[+F]F" -n 3 --trace`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := gf.resolve(args)
			if err != nil {
				return err
			}
			ls, err := def.LSystem()
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()
			if trace {
				return ls.Trace(out, def.Generations)
			}

			prog := newProgress(logger)
			state := ls.Step(def.Generations)
			prog.done(fmt.Sprintf("Rewrote %s to generation %d (%d symbols)", def.Name, ls.Generation(), len([]rune(state))))
			if ls.IsStable() {
				logger.Info("Reached a fixed point", "generation", ls.Generation())
			}
			_, err = fmt.Fprintln(out, state)
			return err
		},
	}
	gf.register(cmd)
	cmd.Flags().BoolVar(&trace, "trace", false, "print every generation")
	return cmd
}
