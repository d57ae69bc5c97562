package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load("does/not/exist.toml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.toml")
	body := `
[game]
seed = 42
max_inventory_size = 10

[dungeon]
fov_radius = 12
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Game.Seed != 42 {
		t.Fatalf("expected seed=42, got %d", cfg.Game.Seed)
	}
	if cfg.Game.MaxInventorySize != 10 {
		t.Fatalf("expected max_inventory_size=10, got %d", cfg.Game.MaxInventorySize)
	}
	if cfg.Dungeon.FOVRadius != 12 {
		t.Fatalf("expected fov_radius=12, got %d", cfg.Dungeon.FOVRadius)
	}
	// Untouched sections keep defaults.
	if cfg.Dungeon.Width != 80 {
		t.Fatalf("expected default width=80, got %d", cfg.Dungeon.Width)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected default log level, got %q", cfg.Logging.Level)
	}
}

func TestDefaultDungeonIsSane(t *testing.T) {
	cfg := Default()
	if cfg.Dungeon.RoomMinSize >= cfg.Dungeon.RoomMaxSize {
		t.Fatalf("room_min_size %d must be below room_max_size %d",
			cfg.Dungeon.RoomMinSize, cfg.Dungeon.RoomMaxSize)
	}
	if cfg.Dungeon.FOVRadius <= 0 {
		t.Fatal("fov_radius must be positive")
	}
}
