package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/unkn0wn-root/hexpp/internal/errdef"
)

func TestLoadSettingsTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HEXPP_CONFIG_DIR", dir)
	data := "[dump]\nwidth = 8\ntitle = false\nmax_bytes = \"unbounded\"\n"
	if err := os.WriteFile(filepath.Join(dir, "settings.toml"), []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	settings, handle, err := LoadSettings("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if handle.Format != SettingsFormatTOML || handle.Path != filepath.Join(dir, "settings.toml") {
		t.Fatalf("unexpected handle %+v", handle)
	}
	if settings.Dump["width"] != "8" || settings.Dump["title"] != "false" || settings.Dump["max_bytes"] != "unbounded" {
		t.Fatalf("unexpected dump settings %v", settings.Dump)
	}
}

func TestLoadSettingsYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	data := "dump:\n  width: 32\n  ascii: true\n  display_offset: 16\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	settings, handle, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if handle.Format != SettingsFormatYAML {
		t.Fatalf("expected yaml format, got %s", handle.Format)
	}
	got := Keys(settings.Dump)
	if len(got) != 3 || got[0] != "ascii" || got[1] != "display_offset" || got[2] != "width" {
		t.Fatalf("unexpected keys %v", got)
	}
	if settings.Dump["width"] != "32" || settings.Dump["ascii"] != "true" || settings.Dump["display_offset"] != "16" {
		t.Fatalf("unexpected dump settings %v", settings.Dump)
	}
}

func TestLoadSettingsMissingDefault(t *testing.T) {
	t.Setenv("HEXPP_CONFIG_DIR", t.TempDir())
	settings, handle, err := LoadSettings("")
	if err != nil {
		t.Fatalf("missing default file should not fail: %v", err)
	}
	if settings.Dump != nil || filepath.Base(handle.Path) != "settings.toml" {
		t.Fatalf("unexpected result %+v %+v", settings, handle)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := LoadSettings(filepath.Join(dir, "absent.toml")); !errdef.Is(err, errdef.CodeFilesystem) {
		t.Fatalf("expected filesystem error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[dump]\nwidth = { a = 1 }\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := LoadSettings(bad); !errdef.Is(err, errdef.CodeConfig) {
		t.Fatalf("expected config error, got %v", err)
	}
}
