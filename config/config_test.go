package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Field.MaxDroplets != 1200 {
		t.Errorf("max_droplets = %d, want 1200", cfg.Field.MaxDroplets)
	}
	if cfg.Field.GridCellSize != 48 {
		t.Errorf("grid_cell_size = %v, want 48", cfg.Field.GridCellSize)
	}
	if cfg.Merge.OverlapFactor != 0.45 {
		t.Errorf("overlap_factor = %v, want 0.45", cfg.Merge.OverlapFactor)
	}
	if cfg.Physics.MaxDT != 0.05 {
		t.Errorf("max_dt = %v, want 0.05", cfg.Physics.MaxDT)
	}
	if cfg.Derived.ScreenW32 != float32(cfg.Screen.Width) {
		t.Errorf("derived screen width = %v, want %v", cfg.Derived.ScreenW32, cfg.Screen.Width)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	overlay := []byte("field:\n  max_droplets: 50\nwind:\n  max: 0.5\n")
	if err := os.WriteFile(path, overlay, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Field.MaxDroplets != 50 {
		t.Errorf("max_droplets = %d, want 50", cfg.Field.MaxDroplets)
	}
	if cfg.Wind.Max != 0.5 {
		t.Errorf("wind.max = %v, want 0.5", cfg.Wind.Max)
	}
	// Untouched fields keep defaults
	if cfg.Field.GridCellSize != 48 {
		t.Errorf("grid_cell_size = %v, want default 48", cfg.Field.GridCellSize)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		overlay string
	}{
		{"zero cell size", "field:\n  grid_cell_size: 0\n"},
		{"negative cap", "field:\n  max_droplets: -1\n"},
		{"inverted radius", "spawn:\n  min_radius: 4\n  max_radius: 2\n"},
		{"zero max dt", "physics:\n  max_dt: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.overlay), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Defaults()
	cfg.Field.MaxDroplets = 321

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load snapshot error: %v", err)
	}
	if loaded.Field.MaxDroplets != 321 {
		t.Errorf("max_droplets = %d, want 321", loaded.Field.MaxDroplets)
	}
}
