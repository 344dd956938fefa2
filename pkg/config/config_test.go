package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg.SegmentedLangs, []string{"jpn"}) {
		t.Errorf("SegmentedLangs = %v, want [jpn]", cfg.SegmentedLangs)
	}
	if cfg.MaxLineBytes != 4*1024*1024 {
		t.Errorf("MaxLineBytes = %d", cfg.MaxLineBytes)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TATOEASE_SEGMENTED_LANGS", "jpn,cmn")
	t.Setenv("TATOEASE_LOG_FORMAT", "json")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg.SegmentedLangs, []string{"jpn", "cmn"}) {
		t.Errorf("SegmentedLangs = %v", cfg.SegmentedLangs)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q", cfg.Log.Format)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tatoease.yaml")
	content := "segmented_langs: [jpn, tha]\nmax_line_bytes: 65536\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg.SegmentedLangs, []string{"jpn", "tha"}) {
		t.Errorf("SegmentedLangs = %v", cfg.SegmentedLangs)
	}
	if cfg.MaxLineBytes != 65536 {
		t.Errorf("MaxLineBytes = %d", cfg.MaxLineBytes)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "ok", cfg: Config{MaxLineBytes: 4096, Log: LogConfig{Level: "info", Format: "json"}}},
		{name: "level case-insensitive", cfg: Config{MaxLineBytes: 4096, Log: LogConfig{Level: "WARN", Format: "text"}}},
		{name: "small buffer", cfg: Config{MaxLineBytes: 10, Log: LogConfig{Level: "info", Format: "text"}}, wantErr: true},
		{name: "bad format", cfg: Config{MaxLineBytes: 4096, Log: LogConfig{Level: "info", Format: "xml"}}, wantErr: true},
		{name: "bad level", cfg: Config{MaxLineBytes: 4096, Log: LogConfig{Level: "verbose", Format: "text"}}, wantErr: true},
		{name: "empty level", cfg: Config{MaxLineBytes: 4096, Log: LogConfig{Format: "text"}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadRejectsUnknownLevel(t *testing.T) {
	t.Setenv("TATOEASE_LOG_LEVEL", "verbose")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}
