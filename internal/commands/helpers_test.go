package commands

import (
	"path/filepath"
	"testing"

	"github.com/gerunddev/curlify/internal/config"
)

// withTestConfigPath points the config at an empty temp dir so parsing
// starts from defaults.
func withTestConfigPath(t *testing.T) {
	t.Helper()
	original := config.ConfigPath
	tmpDir := t.TempDir()
	config.ConfigPath = func() string {
		return filepath.Join(tmpDir, "config.yaml")
	}
	t.Cleanup(func() {
		config.ConfigPath = original
	})
}

func TestParseRunArgsOverrides(t *testing.T) {
	withTestConfigPath(t)

	opts, err := parseRunArgs([]string{"--no-backup", "--style", "corner", "--smart", "a.md", "b.txt"}, false)
	if err != nil {
		t.Fatalf("parseRunArgs failed: %v", err)
	}
	if opts.cfg.Backup {
		t.Error("Expected --no-backup to disable backup")
	}
	if opts.cfg.Style != "corner" {
		t.Errorf("Expected style corner, got %s", opts.cfg.Style)
	}
	if !opts.cfg.Smart {
		t.Error("Expected --smart to enable smart mode")
	}
	if len(opts.files) != 2 || opts.files[0] != "a.md" || opts.files[1] != "b.txt" {
		t.Errorf("Unexpected files: %v", opts.files)
	}
}

func TestParseRunArgsDiffOnlyForCheck(t *testing.T) {
	withTestConfigPath(t)

	if _, err := parseRunArgs([]string{"--diff", "a.md"}, false); err == nil {
		t.Error("Expected error for --diff outside check")
	}

	opts, err := parseRunArgs([]string{"--diff", "a.md"}, true)
	if err != nil {
		t.Fatalf("parseRunArgs failed: %v", err)
	}
	if !opts.diff {
		t.Error("Expected --diff to be recorded for check")
	}
}

func TestParseRunArgsErrors(t *testing.T) {
	withTestConfigPath(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--frobnicate", "a.md"}},
		{name: "no inputs", args: []string{"--no-backup"}},
		{name: "style without value", args: []string{"a.md", "--style"}},
		{name: "unknown style", args: []string{"--style", "fancy", "a.md"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseRunArgs(tt.args, false); err == nil {
				t.Errorf("Expected error for args %v", tt.args)
			}
		})
	}
}
