package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatchesEmbeddedYAML(t *testing.T) {
	// The embedded YAML is the canonical default; loading with no custom
	// path and no user/local overrides must reproduce Default().
	// Run from a temp dir so ./configs is not picked up.
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Chdir() failed: %v", err)
	}
	defer os.Chdir(oldWD) //nolint:errcheck

	t.Setenv("HOME", tmpDir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	custom := `
screen:
  width: 640
  height: 360
  fps: 30
balloon:
  count: 5
  radius: 25
  speed: 0.2
  spawn_margin: 10
arrow:
  speed: 2.0
  cull_margin: 40
input:
  turn_divisor: 1000
  deadzone: 0.05
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Screen.Width != 640 || cfg.Screen.FPS != 30 {
		t.Errorf("screen config = %+v", cfg.Screen)
	}
	if cfg.Balloon.Count != 5 || cfg.Balloon.Speed != 0.2 {
		t.Errorf("balloon config = %+v", cfg.Balloon)
	}
	if cfg.Arrow.Speed != 2.0 || cfg.Arrow.CullMargin != 40 {
		t.Errorf("arrow config = %+v", cfg.Arrow)
	}
	if cfg.Input.TurnDivisor != 1000 || cfg.Input.Deadzone != 0.05 {
		t.Errorf("input config = %+v", cfg.Input)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Error("expected an error for a missing custom config path")
	}
}

func TestLoadBadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}
