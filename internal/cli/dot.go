package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MathioL132/GSP-SP-OP/pkg/cert"
	"github.com/MathioL132/GSP-SP-OP/pkg/errors"
	"github.com/MathioL132/GSP-SP-OP/pkg/sp"
)

// dotCommand creates the dot command for exporting decomposition trees.
func (c *CLI) dotCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "dot <graph-file>",
		Short: "Export the SP-decomposition tree as DOT or SVG",
		Long: `Run recognition on the graph and export the resulting
SP-decomposition tree in Graphviz DOT format, or rendered to SVG.

Only positive results carry a decomposition tree; for a graph that is not
series-parallel the command fails with the negative witness description.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDot(cmd.Context(), args[0], format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runDot recognizes the graph and renders its decomposition tree.
func (c *CLI) runDot(ctx context.Context, path, format, output string) error {
	format = strings.ToLower(format)
	if format != "dot" && format != "svg" {
		return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want dot or svg)", format)
	}

	g, err := readGraph(path)
	if err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	res := sp.Recognize(g, sp.Options{Logger: logger})
	pos, ok := res.Reason.(*cert.Positive)
	if !ok {
		if res.Reason != nil {
			return errors.New(errors.ErrCodeUnsupported, "graph is not series-parallel: %s", res.Reason.Describe())
		}
		return errors.New(errors.ErrCodeMissingCert, "no certificate generated")
	}

	var data []byte
	switch format {
	case "dot":
		data = []byte(pos.Decomposition.ToDOT())
	case "svg":
		data, err = pos.Decomposition.RenderSVG(ctx)
		if err != nil {
			return fmt.Errorf("render SVG: %w", err)
		}
	}

	if output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess("Exported decomposition tree (%d nodes)", pos.Decomposition.Size())
	printFile(output)
	return nil
}
