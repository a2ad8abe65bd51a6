package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func (c *CLI) analyseCommand() *cobra.Command {
	var gf grammarFlags
	var htmlOut string

	cmd := &cobra.Command{
		Use:     "analyse [preset|file]",
		Aliases: []string{"analyze"},
		Short:   "Report how a grammar grows from generation to generation",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := gf.resolve(args)
			if err != nil {
				return err
			}
			ls, err := def.LSystem()
			if err != nil {
				return err
			}

			report := ls.AnalyseGrowth(def.Generations)

			t := newTable("gen", "length", "growth", "variables", "stable")
			for _, s := range report.Samples {
				vars := 0
				for sym := range ls.Variables() {
					vars += s.Counts[sym]
				}
				growth := "-"
				if s.Ratio > 0 {
					growth = strconv.FormatFloat(s.Ratio, 'f', 3, 64)
				}
				t.Row(strconv.Itoa(s.Generation), strconv.Itoa(s.Length), growth, strconv.Itoa(vars), strconv.FormatBool(s.Stable))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, StyleTitle.Render(def.Name), StyleDim.Render(ls.Rules.String()))
			fmt.Fprintln(out, t.Render())
			fmt.Fprintln(out, "average growth", StyleNumber.Render(strconv.FormatFloat(report.AverageGrowth(), 'f', 4, 64)))

			if htmlOut == "" {
				return nil
			}
			f, err := os.Create(htmlOut)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := report.RenderChart(f); err != nil {
				return fmt.Errorf("render chart: %w", err)
			}
			loggerFromContext(cmd.Context()).Info("Wrote growth chart", "path", htmlOut)
			return nil
		},
	}
	gf.register(cmd)
	cmd.Flags().StringVar(&htmlOut, "html", "", "also write an HTML bar chart to this file")
	return cmd
}
