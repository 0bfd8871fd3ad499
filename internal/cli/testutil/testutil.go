// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/leapstack-labs/edudash/internal/cli/config"
	"github.com/leapstack-labs/edudash/internal/cli/output"
	logtest "github.com/leapstack-labs/edudash/internal/testutil"
	"github.com/leapstack-labs/edudash/internal/testutil/teststore"
	"github.com/spf13/cobra"
)

// StoreConfig returns a CLI config pointed at the SQLite file of s, with an
// empty assets directory and markdown output.
func StoreConfig(t *testing.T, s *teststore.Store) *config.Config {
	t.Helper()

	cfg := config.Defaults()
	cfg.Store = config.StoreConfig{Type: "sqlite", Path: s.Config.Path}
	cfg.SeedsDir = teststore.SeedsDir()
	cfg.UI.AssetsDir = t.TempDir()
	cfg.OutputFormat = string(output.ModeMarkdown)
	return cfg
}

// UnreachableConfig returns a CLI config whose store cannot be opened.
func UnreachableConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.Defaults()
	cfg.Store = config.StoreConfig{Type: "sqlite", Path: filepath.Join(t.TempDir(), "missing", "nested", "edu.db")}
	cfg.OutputFormat = string(output.ModeMarkdown)
	return cfg
}

// Result holds the captured streams of one command execution.
type Result struct {
	Out    string
	ErrOut string
	Err    error
}

// Run executes cmd with args under cfg, the way the root command would after
// loading configuration.
func Run(t *testing.T, cmd *cobra.Command, cfg *config.Config, args ...string) Result {
	t.Helper()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)

	ctx := config.WithConfig(context.Background(), cfg)
	ctx = config.WithLogger(ctx, logtest.NewTestLogger(t))

	err := cmd.ExecuteContext(ctx)
	return Result{Out: out.String(), ErrOut: errOut.String(), Err: err}
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.OutputMode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// Output returns the combined stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertValidMarkdown performs basic markdown validation.
// It checks for unclosed code fences and basic structure.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	// Check for balanced code fences
	fenceCount := strings.Count(md, "```")
	if fenceCount%2 != 0 {
		t.Errorf("unbalanced code fences in markdown: found %d occurrences", fenceCount)
	}

	// Check that headers have content
	lines := strings.Split(md, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}
	}
}
