package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("log level default = %q, want info", cfg.LogLevel)
	}
	if cfg.AnalyzerPath != "" {
		t.Errorf("analyzer path default = %q, want empty", cfg.AnalyzerPath)
	}
	if cfg.Wasm.MemoryPages != 256 {
		t.Errorf("memory pages default = %d, want 256", cfg.Wasm.MemoryPages)
	}
	if cfg.Wasm.CacheDir != "" {
		t.Errorf("cache dir default = %q, want empty", cfg.Wasm.CacheDir)
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `log_level: debug
analyzer_path: /opt/kql/analyzer
wasm:
  memory_pages: 512
  cache_dir: /var/cache/kql
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q, want debug", cfg.LogLevel)
	}
	if cfg.AnalyzerPath != "/opt/kql/analyzer" {
		t.Errorf("analyzer path = %q", cfg.AnalyzerPath)
	}
	if cfg.Wasm.MemoryPages != 512 {
		t.Errorf("memory pages = %d, want 512", cfg.Wasm.MemoryPages)
	}
	if cfg.Wasm.CacheDir != "/var/cache/kql" {
		t.Errorf("cache dir = %q", cfg.Wasm.CacheDir)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log level = %q, want warn", cfg.LogLevel)
	}
	if cfg.Wasm.MemoryPages != 256 {
		t.Errorf("unset field lost its default: memory pages = %d", cfg.Wasm.MemoryPages)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
