package main

import (
	"bytes"
	"testing"

	"github.com/spboyer/gauss/internal/projectconfig"
	"github.com/spf13/cobra"
)

// withConfig makes commands see cfg instead of a .gauss.yaml on disk.
func withConfig(t *testing.T, cfg *projectconfig.ProjectConfig) {
	t.Helper()
	orig := loadProjectConfig
	loadProjectConfig = func() (*projectconfig.ProjectConfig, error) { return cfg, nil }
	t.Cleanup(func() { loadProjectConfig = orig })
}

// run executes cmd with args and returns what it wrote to stdout.
func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
