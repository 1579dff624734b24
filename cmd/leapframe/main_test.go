// Package main provides tests for the LeapFrame CLI.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/leapframe/internal/cli"
	"github.com/leapstack-labs/leapframe/internal/cli/config"
)

func resetConfig(t *testing.T) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
}

func TestVersionCommand(t *testing.T) {
	resetConfig(t)
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
	if !strings.Contains(output, "LeapFrame") {
		t.Errorf("version output should contain 'LeapFrame', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	resetConfig(t)
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	output := buf.String()
	expectedCommands := []string{"build", "check", "repl", "version"}
	for _, expected := range expectedCommands {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestBuildCommand(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()
	specPath := filepath.Join(dir, "frame.yaml")
	spec := `
columns:
  - name: id
    expr: "[1, 2, 3]"
  - name: label
    expr: "'row'"
`
	if err := os.WriteFile(specPath, []byte(spec), 0o644); err != nil {
		t.Fatalf("failed to write spec: %v", err)
	}
	t.Chdir(dir)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"build", specPath, "--output", "csv"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("build command error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"id,label", "1,row", "3,row"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

func TestCheckCommandInvalidSpec(t *testing.T) {
	resetConfig(t)
	dir := t.TempDir()
	specPath := filepath.Join(dir, "frame.yaml")
	spec := `
columns:
  - name: a
    expr: "[1, 2, 3]"
  - name: b
    expr: "[1, 2]"
`
	if err := os.WriteFile(specPath, []byte(spec), 0o644); err != nil {
		t.Fatalf("failed to write spec: %v", err)
	}
	t.Chdir(dir)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"check", specPath})

	if err := cmd.Execute(); err == nil {
		t.Error("check should fail on a length mismatch")
	}
}

func TestUnknownCommand(t *testing.T) {
	resetConfig(t)
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"no-such-command"})

	if err := cmd.Execute(); err == nil {
		t.Error("unknown command should return an error")
	}
}
