package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"presetsleuth/internal/config"
)

// chdir stands in for t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(prev) })
}

func TestLoadDefaultsWhenNoFileExists(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, path, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatalf("no config file should exist, resolved %s", path)
	}
	if cfg.Output.Format != "text" || cfg.Output.Color != "auto" || cfg.Output.TopCandidates != 3 {
		t.Fatalf("unexpected output defaults: %+v", cfg.Output)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[output]
format = "JSON"
top_candidates = 5

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %s exists = %v, want %s true", resolved, exists, path)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("format = %q, want json (normalized)", cfg.Output.Format)
	}
	if cfg.Output.TopCandidates != 5 {
		t.Fatalf("top_candidates = %d, want 5", cfg.Output.TopCandidates)
	}
	if cfg.Output.Color != "auto" {
		t.Fatalf("color = %q, want default auto", cfg.Output.Color)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("logging.level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"format":         "[output]\nformat = \"yaml\"\n",
		"color":          "[output]\ncolor = \"sometimes\"\n",
		"top_candidates": "[output]\ntop_candidates = 11\n",
		"log format":     "[logging]\nformat = \"syslog\"\n",
		"log level":      "[logging]\nlevel = \"trace\"\n",
	}
	for name, content := range cases {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, _, _, err := config.Load(path); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestLoadProjectLocalFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	content := "[output]\nformat = \"json\"\n"
	if err := os.WriteFile(filepath.Join(dir, "presetsleuth.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatalf("project-local file not found, resolved %s", resolved)
	}
	if filepath.Base(resolved) != "presetsleuth.toml" {
		t.Fatalf("resolved = %s, want project-local presetsleuth.toml", resolved)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("format = %q, want json", cfg.Output.Format)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config did not load: %v", err)
	}
	if !exists {
		t.Fatal("sample config not found after writing")
	}
	if *cfg != config.Default() {
		t.Fatalf("sample config differs from defaults: %+v", cfg)
	}
}

func TestExpandPathHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	expanded, err := config.ExpandPath("~/presetsleuth/config.toml")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if !strings.HasPrefix(expanded, home) {
		t.Fatalf("expanded = %s, want under %s", expanded, home)
	}
}
