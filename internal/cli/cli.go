// Package cli implements the lsystem command-line interface.
//
// # Commands
//
//   - generate: rewrite a grammar and print the result, or trace every generation
//   - draw: render a grammar as SVG or PNG, optionally one drawing per generation
//   - analyse: report how fast a grammar grows, optionally as an HTML chart
//   - presets: list the built-in grammars or print one as YAML/TOML
//
// A grammar is named by a preset, a definition file, or the --axiom and
// --rules flags.
package cli

import (
	"io"
	"os"
	"runtime/pprof"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "lsystem"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cpuProfile  string
	stopProfile func()
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Rewrite and draw Lindenmayer systems",
		Long:         `lsystem rewrites deterministic context-free L-systems and draws the result with turtle graphics.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.startProfile()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			c.endProfile()
		},
	}
	root.PersistentFlags().StringVar(&c.cpuProfile, "cpuprofile", "", "write cpu profile to file")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.drawCommand())
	root.AddCommand(c.analyseCommand())
	root.AddCommand(c.presetsCommand())

	return root
}

func (c *CLI) startProfile() error {
	if c.cpuProfile == "" {
		return nil
	}
	f, err := os.Create(c.cpuProfile)
	if err != nil {
		return err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return err
	}
	c.stopProfile = func() {
		pprof.StopCPUProfile()
		f.Close()
	}
	return nil
}

func (c *CLI) endProfile() {
	if c.stopProfile != nil {
		c.stopProfile()
		c.stopProfile = nil
	}
}
