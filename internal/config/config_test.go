package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if want := filepath.Join(home, ".codex", "sessions"); cfg.SessionsRoot != want {
		t.Errorf("SessionsRoot = %q, want %q", cfg.SessionsRoot, want)
	}
	if cfg.DatePageSize != 15 || cfg.SessionPageSize != 10 {
		t.Errorf("page sizes = %d/%d, want 15/10", cfg.DatePageSize, cfg.SessionPageSize)
	}
}

func TestLoadOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "cohistory")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	toml := "sessions_root = \"~/logs\"\ndate_page_size = 20\nsession_page_size = 0\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if want := filepath.Join(home, "logs"); cfg.SessionsRoot != want {
		t.Errorf("SessionsRoot = %q, want %q (tilde not expanded?)", cfg.SessionsRoot, want)
	}
	if cfg.DatePageSize != 20 {
		t.Errorf("DatePageSize = %d, want 20", cfg.DatePageSize)
	}
	// invalid page size falls back to the default
	if cfg.SessionPageSize != 10 {
		t.Errorf("SessionPageSize = %d, want 10", cfg.SessionPageSize)
	}
}

func TestExpandHome(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "~/x", want: "/home/u/x"},
		{path: "/abs/path", want: "/abs/path"},
		{path: "~", want: "~"},
		{path: "~user/x", want: "~user/x"},
	}
	for _, tt := range tests {
		if got := expandHome(tt.path, "/home/u"); got != tt.want {
			t.Errorf("expandHome(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
