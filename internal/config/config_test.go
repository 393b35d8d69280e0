package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TODO_THEME", "TODO_COLOR", "TODO_UI", "TODO_LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{Theme: "classic", Color: "auto", UI: "menu", LogLevel: "warn"}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TODO_THEME", "neon")
	t.Setenv("TODO_COLOR", "never")
	t.Setenv("TODO_UI", "tui")
	t.Setenv("TODO_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{Theme: "neon", Color: "never", UI: "tui", LogLevel: "debug"}
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadDotenvDoesNotOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("TODO_COLOR", "always")

	p := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(p, []byte("TODO_THEME=mono\nTODO_COLOR=never\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "mono" {
		t.Errorf("Theme = %q, want mono from .env", cfg.Theme)
	}
	if cfg.Color != "always" {
		t.Errorf("Color = %q, want the environment value to win", cfg.Color)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		ui      string
		wantErr bool
	}{
		{"menu", false},
		{"tui", false},
		{"TUI", false},
		{"web", true},
		{"", true},
	}
	for _, tt := range tests {
		err := Config{UI: tt.ui}.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(ui=%q) error = %v, wantErr %v", tt.ui, err, tt.wantErr)
		}
	}
}
