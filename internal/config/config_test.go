package config

import (
	"os"
	"path/filepath"
	"testing"

	"snakearena/internal/world"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MSPerFrame != 50 || cfg.UniverseSize != 2000 {
		t.Fatalf("Load(\"\") = %+v, want embedded defaults", cfg)
	}
	if cfg.GameModeValue() != world.ModeDefault {
		t.Fatalf("GameModeValue() = %v, want default", cfg.GameModeValue())
	}
}

func TestLoadCustomPathOverridesOnlyGivenKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(path, []byte("SnakeSpeed: 9\nGameMode: venom\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SnakeSpeed != 9 {
		t.Fatalf("SnakeSpeed = %d, want 9", cfg.SnakeSpeed)
	}
	if cfg.MSPerFrame != 50 {
		t.Fatalf("MSPerFrame = %d, want default 50 to survive a partial document", cfg.MSPerFrame)
	}
	if cfg.GameModeValue() != world.ModeVenom {
		t.Fatalf("GameModeValue() = %v, want venom", cfg.GameModeValue())
	}
}

func TestLoadMalformedDocumentFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(path, []byte("not: [valid yaml: at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Walls) != 0 {
		t.Fatalf("Walls = %v, want empty on structural error", cfg.Walls)
	}
	if cfg.MSPerFrame != 50 {
		t.Fatalf("MSPerFrame = %d, want default 50", cfg.MSPerFrame)
	}
}

func TestLoadMissingExplicitPathIsAnError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "no-such-settings.yaml")); err == nil {
		t.Fatal("Load should fail when an explicitly named settings file cannot be read")
	}
}

func TestVenomCounterTicksConversion(t *testing.T) {
	cfg := Settings{MSPerFrame: 50, VenomCounter: 10}
	if got := cfg.VenomCounterTicks(); got != 200 {
		t.Fatalf("VenomCounterTicks() = %d, want 200", got)
	}
}

func TestGameModeValueRejectsUnknown(t *testing.T) {
	cfg := Settings{GameMode: "rabid"}
	if cfg.GameModeValue() != world.ModeDefault {
		t.Fatalf("GameModeValue() = %v, want default for unrecognized mode", cfg.GameModeValue())
	}
}
