package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viktordanov/lsystem/render"
	"github.com/viktordanov/lsystem/turtle"
)

const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

type drawOptions struct {
	output      string
	format      string
	evolve      bool
	combine     bool
	strokeWidth float64
	scale       float64
	jitter      float64
	seed        uint64
	background  string
}

func (c *CLI) drawCommand() *cobra.Command {
	var gf grammarFlags
	var opts drawOptions

	cmd := &cobra.Command{
		Use:   "draw [preset|file]",
		Short: "Draw a grammar with turtle graphics",
		Long: `Draw rewrites the grammar and renders the final generation. With --evolve every
generation is drawn with half the step length of the one before, either side by
side (--combine) or each to its own numbered file.`,
		Example: `  lsystem draw fractal-plant -n 6 -o plant.png
  lsystem draw bush --evolve -n 4 --combine -o bush.svg`,
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
			if opts.output == "" {
				opts.output = def.Name + "." + FormatSVG
			}
			r, err := opts.renderer()
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)
			p := turtle.NewPlotter(ls, r, append(def.PlotterOptions(), turtle.WithLogger(logger))...)

			if opts.evolve {
				err = p.DrawEvolution(def.Generations, opts.combine)
			} else if err = p.Step(def.Generations).Draw(); err == nil {
				err = p.Done()
			}
			if err != nil {
				return fmt.Errorf("draw %s: %w", def.Name, err)
			}
			prog.done(fmt.Sprintf("Drew %s generation %d to %s", def.Name, ls.Generation(), opts.output))
			return nil
		},
	}
	gf.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <grammar>.svg)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg or png (default from the output extension)")
	cmd.Flags().BoolVar(&opts.evolve, "evolve", false, "draw every generation instead of only the last")
	cmd.Flags().BoolVar(&opts.combine, "combine", false, "with --evolve, place generations side by side on one canvas")
	cmd.Flags().Float64Var(&opts.strokeWidth, "stroke-width", 1, "line width in drawing units")
	cmd.Flags().Float64Var(&opts.scale, "scale", 2, "PNG pixels per drawing unit")
	cmd.Flags().Float64Var(&opts.jitter, "jitter", 0, "SVG hand-drawn jitter in drawing units")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "seed for --jitter")
	cmd.Flags().StringVar(&opts.background, "background", "white", "background color")
	return cmd
}

func (o drawOptions) renderer() (turtle.Renderer, error) {
	format := strings.ToLower(o.format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(o.output)), ".")
	}
	pages := render.FilePages(o.output)

	switch format {
	case FormatSVG:
		opts := []render.SVGOption{render.WithStrokeWidth(o.strokeWidth), render.WithBackground(o.background)}
		if o.jitter > 0 {
			opts = append(opts, render.WithJitter(o.jitter, o.seed))
		}
		return render.NewSVG(pages, opts...), nil
	case FormatPNG:
		return render.NewPNG(pages,
			render.WithScale(o.scale),
			render.WithLineWidth(o.strokeWidth),
			render.WithPNGBackground(o.background),
		), nil
	}
	return nil, fmt.Errorf("unsupported output format %q (want svg or png)", format)
}
