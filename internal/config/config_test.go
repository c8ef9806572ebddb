// config_test.go tests [Load] behavior (defaults, overrides, missing files,
// malformed input), [Config.Validate], and [Config.Save] round-trips.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		config  string // config file content; empty means no file written
		noFile  bool   // if true, skip writing a config file
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:   "empty file yields defaults",
			config: "",
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				def := DefaultConfig()
				if cfg.Output.Precision != def.Output.Precision {
					t.Errorf("Precision = %d, want %d", cfg.Output.Precision, def.Output.Precision)
				}
				if cfg.Output.OnInvalidHex != InvalidHexSkip {
					t.Errorf("OnInvalidHex = %q, want %q", cfg.Output.OnInvalidHex, InvalidHexSkip)
				}
			},
		},
		{
			name: "user overrides applied",
			config: `
[output]
precision = 9
on_invalid_hex = "empty"

[fetch]
retry_max = 5
`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				if cfg.Output.Precision != 9 {
					t.Errorf("Precision = %d, want 9", cfg.Output.Precision)
				}
				if cfg.Output.OnInvalidHex != InvalidHexEmpty {
					t.Errorf("OnInvalidHex = %q, want %q", cfg.Output.OnInvalidHex, InvalidHexEmpty)
				}
				if cfg.Fetch.RetryMax != 5 {
					t.Errorf("RetryMax = %d, want 5", cfg.Fetch.RetryMax)
				}
			},
		},
		{
			name: "partial override preserves other defaults",
			config: `
[log]
level = "debug"
`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				if cfg.Log.Level != "debug" {
					t.Errorf("Level = %q, want debug", cfg.Log.Level)
				}
				def := DefaultConfig()
				if cfg.Log.MaxSizeMB != def.Log.MaxSizeMB {
					t.Errorf("MaxSizeMB = %d, want default %d", cfg.Log.MaxSizeMB, def.Log.MaxSizeMB)
				}
				if cfg.Fetch.TimeoutSeconds != def.Fetch.TimeoutSeconds {
					t.Errorf("TimeoutSeconds = %d, want default %d", cfg.Fetch.TimeoutSeconds, def.Fetch.TimeoutSeconds)
				}
			},
		},
		{
			name:   "missing file returns defaults",
			noFile: true,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				def := DefaultConfig()
				if *cfg != *def {
					t.Errorf("cfg = %+v, want defaults %+v", cfg, def)
				}
			},
		},
		{
			name:    "malformed TOML is an error",
			config:  "[output\nprecision = ",
			wantErr: true,
		},
		{
			name: "invalid value is an error",
			config: `
[output]
on_invalid_hex = "explode"
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if !tt.noFile {
				if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(tt.config), 0o644); err != nil {
					t.Fatalf("write config: %v", err)
				}
			}

			cfg, err := Load(dir)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{"defaults are valid", func(cfg *Config) {}, false},
		{"precision too low", func(cfg *Config) { cfg.Output.Precision = 0 }, true},
		{"precision too high", func(cfg *Config) { cfg.Output.Precision = 18 }, true},
		{"bad policy", func(cfg *Config) { cfg.Output.OnInvalidHex = "maybe" }, true},
		{"negative retries", func(cfg *Config) { cfg.Fetch.RetryMax = -1 }, true},
		{"zero timeout", func(cfg *Config) { cfg.Fetch.TimeoutSeconds = 0 }, true},
		{"bad log level", func(cfg *Config) { cfg.Log.Level = "loud" }, true},
		{"zero log size", func(cfg *Config) { cfg.Log.MaxSizeMB = 0 }, true},
		{"level case-insensitive", func(cfg *Config) { cfg.Log.Level = "WARN" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := DefaultConfig()
	cfg.Output.Precision = 12
	cfg.Output.OnInvalidHex = InvalidHexEmpty
	cfg.Log.Level = "warn"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip = %+v, want %+v", loaded, cfg)
	}
}
