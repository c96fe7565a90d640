package app_test

import (
	"os"
	"testing"

	"gradebook/internal/app"
)

func TestFromEnv_Defaults(t *testing.T) {
	// t.Setenv registers the restore; the vars must be absent for the test.
	t.Setenv("GRADEBOOK_HOME", "")
	t.Setenv("GRADEBOOK_BACKEND", "")
	os.Unsetenv("GRADEBOOK_HOME")
	os.Unsetenv("GRADEBOOK_BACKEND")

	cfg, err := app.FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Backend != app.BackendFile {
		t.Fatalf("backend: got %q, want %q", cfg.Backend, app.BackendFile)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("GRADEBOOK_HOME", "/tmp/grades")
	t.Setenv("GRADEBOOK_BACKEND", "bolt")

	cfg, err := app.FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Home != "/tmp/grades" || cfg.Backend != app.BackendBolt {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
