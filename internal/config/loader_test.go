package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// With no custom path and no local file, the embedded default wins.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Display.FPS != 60 {
		t.Errorf("FPS = %d, expected 60", cfg.Display.FPS)
	}
	if cfg.Countdown.SkipOnTap {
		t.Error("skip_on_tap should default to false")
	}
	if cfg.Storage.DBPath == "" {
		t.Error("db_path should have a default")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	body := []byte("display:\n  fps: 30\ncountdown:\n  skip_on_tap: true\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Display.FPS != 30 {
		t.Errorf("FPS = %d, expected 30", cfg.Display.FPS)
	}
	if !cfg.Countdown.SkipOnTap {
		t.Error("skip_on_tap should be true from custom config")
	}
	// Fields the file omitted get defaults.
	if cfg.Storage.DBPath == "" {
		t.Error("omitted db_path should fall back to the default")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("display: ["), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}
