package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Store.Path != "" {
		t.Errorf("Store.Path = %q, want empty (in-memory)", cfg.Store.Path)
	}
	if cfg.Classify.Workers != 4 {
		t.Errorf("Classify.Workers = %d, want 4", cfg.Classify.Workers)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.Dir != ".prestag" {
		t.Errorf("Logging.Dir = %q, want .prestag", cfg.Logging.Dir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
store:
  path: /tmp/tags.db
classify:
  dimensions: [topics, complexity]
  workers: 8
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if cfg.Store.Path != "/tmp/tags.db" {
		t.Errorf("Store.Path = %q", cfg.Store.Path)
	}
	if len(cfg.Classify.Dimensions) != 2 || cfg.Classify.Dimensions[0] != "topics" {
		t.Errorf("Classify.Dimensions = %v", cfg.Classify.Dimensions)
	}
	if cfg.Classify.Workers != 8 {
		t.Errorf("Classify.Workers = %d, want 8", cfg.Classify.Workers)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	// Unset fields keep their defaults.
	if cfg.Logging.Dir != ".prestag" {
		t.Errorf("Logging.Dir = %q, want default", cfg.Logging.Dir)
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFromFile(missing) error = nil, want error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("store: [not: a: map"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := LoadFromFile(bad); err == nil {
		t.Error("LoadFromFile(malformed) error = nil, want error")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"trace level valid", func(c *Config) { c.Logging.Level = "trace" }, false},
		{"empty level valid", func(c *Config) { c.Logging.Level = "" }, false},
		{"unknown level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"negative workers", func(c *Config) { c.Classify.Workers = -1 }, true},
		{"zero workers valid", func(c *Config) { c.Classify.Workers = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	// Point HOME at an empty dir so no user config file interferes.
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PRESTAG_STORE_PATH", "/data/tags.db")
	t.Setenv("PRESTAG_LOG_LEVEL", "debug")
	t.Setenv("PRESTAG_LOG_DIR", "/var/log/prestag")
	t.Setenv("PRESTAG_WORKERS", "16")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Store.Path != "/data/tags.db" {
		t.Errorf("Store.Path = %q", cfg.Store.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	if cfg.Logging.Dir != "/var/log/prestag" {
		t.Errorf("Logging.Dir = %q", cfg.Logging.Dir)
	}
	if cfg.Classify.Workers != 16 {
		t.Errorf("Classify.Workers = %d", cfg.Classify.Workers)
	}
}

func TestLoad_InvalidWorkerEnvIgnored(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PRESTAG_WORKERS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Classify.Workers != 4 {
		t.Errorf("Classify.Workers = %d, want default 4", cfg.Classify.Workers)
	}
}
