// Package cli implements the spcert command-line interface.
//
// This package provides commands for deciding whether a graph is
// series-parallel, generating test graphs, and exporting decomposition
// trees. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - check: Decide series-parallel and authenticate the certificate
//   - gen: Generate random chained-component test graphs
//   - dot: Export an SP-decomposition tree as DOT or SVG
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging and
// --quiet (-q) to reduce output to warnings. Loggers are passed through
// context.Context so library code stays framework-free.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/MathioL132/GSP-SP-OP/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "spcert"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
	LogWarn  = log.WarnLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered. Logging level resolution order: --verbose / --quiet flags,
// then the config file's log_level, then info.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose bool
		quiet   bool
	)

	root := &cobra.Command{
		Use:          appName,
		Short:        "spcert decides series-parallel graphs with checkable certificates",
		Long: `spcert decides, in linear time, whether an undirected simple graph is
series-parallel, and emits a machine-checkable certificate justifying the
answer: a binary SP-decomposition tree for a positive answer, or a
forbidden-subdivision / block-tree witness for a negative one. Every
certificate is re-authenticated against the input graph before spcert
reports success.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig()
			if err != nil {
				c.Logger.Warn("ignoring unreadable config", "err", err)
			}
			level := cfg.logLevel(LogInfo)
			switch {
			case verbose:
				level = LogDebug
			case quiet:
				level = LogWarn
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")

	root.AddCommand(c.checkCommand())
	root.AddCommand(c.genCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.completionCommand())

	return root
}
