package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockdraw.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.toml")} {
		config, err := loadConfig(path)
		if err != nil {
			t.Fatalf("loadConfig(%q) error: %v", path, err)
		}
		want := BlockParams{Color: "blue", Width: 100, Height: 60, Label: "Block"}
		if got := config.BlockDefaults(); got != want {
			t.Errorf("BlockDefaults() = %+v, want %+v", got, want)
		}
		if config.Port.Size != 10 || config.View.CellWidth != 8 || config.View.CellHeight != 16 {
			t.Errorf("config = %+v", config)
		}
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	exportDir := t.TempDir()
	path := writeConfig(t, `
[block]
color = "#336699"
width = 140
label = "Stage"

[port]
size = 0

[view]
cell_width = 10

[export]
directory = "`+filepath.ToSlash(exportDir)+`"
`)

	config, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	want := BlockParams{Color: "#336699", Width: 140, Height: 60, Label: "Stage"}
	if got := config.BlockDefaults(); got != want {
		t.Errorf("BlockDefaults() = %+v, want %+v", got, want)
	}
	if config.Port.Size != 10 {
		t.Errorf("port size = %v, want default 10", config.Port.Size)
	}
	if config.View.CellWidth != 10 || config.View.CellHeight != 16 {
		t.Errorf("view = %+v", config.View)
	}

	got, err := config.ExportPath("out.png")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(exportDir, "out.png") {
		t.Errorf("ExportPath() = %q", got)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := writeConfig(t, "[block\nwidth = ")
	_, err := loadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("loadConfig() error = %v, want parse error", err)
	}
}

func TestExportPathWithoutDirectory(t *testing.T) {
	config := defaultConfig()
	got, err := config.ExportPath("a.png")
	if err != nil || got != "a.png" {
		t.Errorf("ExportPath() = %q, %v", got, err)
	}
}
