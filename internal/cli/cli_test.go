package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/MathioL132/GSP-SP-OP/pkg/errors"
)

func newTestCLI() *CLI {
	return New(io.Discard, LogWarn)
}

func writeTempGraph(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	root := newTestCLI().RootCommand()

	want := map[string]bool{"check": false, "gen": false, "dot": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing %q subcommand", name)
		}
	}
}

func TestRunCheck_PositiveGraph(t *testing.T) {
	path := writeTempGraph(t, "3 3\n0 1\n1 2\n2 0\n")
	c := newTestCLI()

	if err := c.runCheck(context.Background(), path); err != nil {
		t.Errorf("runCheck() = %v, want nil", err)
	}
}

func TestRunCheck_NegativeGraphStillAuthenticates(t *testing.T) {
	// A K4 is not series-parallel, but the negative certificate
	// authenticates, so the command succeeds.
	path := writeTempGraph(t, "4 6\n0 1\n0 2\n0 3\n1 2\n1 3\n2 3\n")
	c := newTestCLI()

	if err := c.runCheck(context.Background(), path); err != nil {
		t.Errorf("runCheck() = %v, want nil", err)
	}
}

func TestRunCheck_MissingFile(t *testing.T) {
	c := newTestCLI()
	err := c.runCheck(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestRunCheck_MalformedInput(t *testing.T) {
	path := writeTempGraph(t, "not a graph")
	c := newTestCLI()

	err := c.runCheck(context.Background(), path)
	if !errors.Is(err, errors.ErrCodeInvalidGraph) {
		t.Errorf("error code = %v, want INVALID_GRAPH", errors.GetCode(err))
	}
}

func TestRunCheck_SingleVertexHasNoCertificate(t *testing.T) {
	path := writeTempGraph(t, "1 0\n")
	c := newTestCLI()

	err := c.runCheck(context.Background(), path)
	if !errors.Is(err, errors.ErrCodeMissingCert) {
		t.Errorf("error code = %v, want MISSING_CERTIFICATE", errors.GetCode(err))
	}
}

func TestRunGen_WritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gen.txt")
	c := newTestCLI()

	opts := genOpts{cycles: 2, cycleLen: 4, cliqueSize: 3, seed: 7, output: out}
	if err := c.runGen(opts, true); err != nil {
		t.Fatalf("runGen() = %v", err)
	}

	// The generated file must round-trip through check.
	if err := c.runCheck(context.Background(), out); err != nil {
		t.Errorf("runCheck(generated) = %v, want nil", err)
	}
}

func TestRunGen_InvalidParams(t *testing.T) {
	c := newTestCLI()
	opts := genOpts{cycles: 1, cycleLen: 2, seed: 1}
	if err := c.runGen(opts, true); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("runGen() error = %v, want INVALID_INPUT", err)
	}
}

func TestRunDot_PositiveGraph(t *testing.T) {
	path := writeTempGraph(t, "3 3\n0 1\n1 2\n2 0\n")
	out := filepath.Join(t.TempDir(), "tree.dot")
	c := newTestCLI()

	if err := c.runDot(context.Background(), path, "dot", out); err != nil {
		t.Fatalf("runDot() = %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("runDot() wrote an empty file")
	}
}

func TestRunDot_NegativeGraph(t *testing.T) {
	path := writeTempGraph(t, "4 6\n0 1\n0 2\n0 3\n1 2\n1 3\n2 3\n")
	c := newTestCLI()

	err := c.runDot(context.Background(), path, "dot", "")
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("error code = %v, want UNSUPPORTED", errors.GetCode(err))
	}
}

func TestRunDot_UnknownFormat(t *testing.T) {
	path := writeTempGraph(t, "2 1\n0 1\n")
	c := newTestCLI()

	err := c.runDot(context.Background(), path, "png", "")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want INVALID_INPUT", errors.GetCode(err))
	}
}
