// Package main provides tests for the edudash CLI.
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leapstack-labs/edudash/internal/cli"
	"github.com/leapstack-labs/edudash/pkg/adapter"
)

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("version command error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "edudash") {
		t.Errorf("version output should contain 'edudash', got: %s", output)
	}
}

func TestAdaptersRegistered(t *testing.T) {
	for _, name := range []string{"duckdb", "mysql", "postgres", "sqlite"} {
		if !adapter.IsRegistered(name) {
			t.Errorf("adapter %q should be registered", name)
		}
	}
}

func TestHelpListsCommands(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("help error = %v", err)
	}

	for _, want := range []string{"serve", "query", "country", "gallery", "seed", "shell"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("help should mention %q", want)
		}
	}
}
