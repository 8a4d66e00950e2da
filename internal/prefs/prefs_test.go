package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	p := Load("")
	if p != Defaults() {
		t.Fatalf("Load = %#v, want %#v", p, Defaults())
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "smsshield")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	body := "theme = \"Slate\"\nlayout = \"compact\"\n"
	if err := os.WriteFile(filepath.Join(prefsDir, "prefs.toml"), []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p := Load("")
	if p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want %q", p.Theme, "Slate")
	}
	if p.Layout != LayoutCompact {
		t.Fatalf("Layout = %q, want %q", p.Layout, LayoutCompact)
	}
}

func TestLoad_NormalizesValues(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		wantTheme  string
		wantLayout string
	}{
		{"empty theme", "theme = \"\"\n", defaultTheme, LayoutAuto},
		{"layout case", "theme = \"Slate\"\nlayout = \" WIDE \"\n", "Slate", LayoutWide},
		{"unknown layout", "layout = \"sideways\"\n", defaultTheme, LayoutAuto},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.toml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			p := Load(path)
			if p.Theme != tc.wantTheme || p.Layout != tc.wantLayout {
				t.Fatalf("Load = %#v, want theme %q layout %q", p, tc.wantTheme, tc.wantLayout)
			}
		})
	}
}

func TestLoad_InvalidTOMLFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if p := Load(path); p != Defaults() {
		t.Fatalf("Load = %#v, want defaults", p)
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Kanagawa", Layout: LayoutWide}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded := Load(path)
	if loaded.Theme != "Kanagawa" || loaded.Layout != LayoutWide {
		t.Fatalf("Load after Save = %#v", loaded)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "subdir"))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("prefs dir has %d entries, want only prefs.toml", len(entries))
	}
}
