package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output != "repoed.md" {
		t.Errorf("Output = %q, want %q", cfg.Output, "repoed.md")
	}
	if cfg.CommitCount != 3 {
		t.Errorf("CommitCount = %d, want 3", cfg.CommitCount)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.HTML {
		t.Error("HTML should default to false")
	}
	if len(cfg.Exclude) != 0 {
		t.Errorf("Exclude = %v, want empty", cfg.Exclude)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	configContent := `output: context.md
commit_count: 5
log_level: debug
exclude:
  - notes/private.md
  - secrets.env
html: true
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Output != "context.md" {
		t.Errorf("Output = %q, want %q", cfg.Output, "context.md")
	}
	if cfg.CommitCount != 5 {
		t.Errorf("CommitCount = %d, want 5", cfg.CommitCount)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if !cfg.HTML {
		t.Error("HTML = false, want true")
	}
	wantExclude := []string{"notes/private.md", "secrets.env"}
	if !reflect.DeepEqual(cfg.Exclude, wantExclude) {
		t.Errorf("Exclude = %v, want %v", cfg.Exclude, wantExclude)
	}
}

// TestLoadConfigPartialFile verifies unset fields keep their defaults
func TestLoadConfigPartialFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	if err := os.WriteFile(configPath, []byte("commit_count: 10\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.CommitCount != 10 {
		t.Errorf("CommitCount = %d, want 10", cfg.CommitCount)
	}
	if cfg.Output != "repoed.md" {
		t.Errorf("Output = %q, want default %q", cfg.Output, "repoed.md")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default %q", cfg.LogLevel, "info")
	}
}

// TestLoadConfigMissingFile verifies defaults are returned without error
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("LoadConfig() on missing file error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("LoadConfig() = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

// TestLoadConfigMalformedFile verifies malformed YAML returns an error
func TestLoadConfigMalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	if err := os.WriteFile(configPath, []byte("output: [unclosed\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("expected error for malformed config file")
	}
}
