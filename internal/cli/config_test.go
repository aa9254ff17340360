package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/gridboard/pkg/grid"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("loadConfig() = %+v, want defaults", cfg)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := Config{
		DefaultColumns: 6,
		DefaultRows:    8,
		CellWidth:      250,
		CellHeight:     300,
		Theme:          "dark",
		BackupDir:      "/tmp/backups",
	}

	path, err := writeConfig(want)
	if err != nil {
		t.Fatalf("writeConfig() error: %v", err)
	}
	if filepath.Base(path) != "config.toml" {
		t.Errorf("config path = %q", path)
	}

	got, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if got != want {
		t.Errorf("loadConfig() = %+v, want %+v", got, want)
	}
}

func TestLoadConfigBadTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, appName)
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("not [valid"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig()
	if err == nil {
		t.Error("loadConfig() = nil error, want parse failure")
	}
	if cfg != defaultConfig() {
		t.Errorf("loadConfig() = %+v, want defaults on parse failure", cfg)
	}
}

func TestConfigLayoutClamps(t *testing.T) {
	cfg := Config{DefaultColumns: 99, DefaultRows: 0, CellWidth: 10, CellHeight: 9000}

	want := grid.Layout{Columns: 12, Rows: 1, CellSize: grid.CellSize{Width: 100, Height: 500}}
	if got := cfg.Layout(); got != want {
		t.Errorf("Layout() = %+v, want %+v", got, want)
	}
}
