// Package config loads the server's settings document: tick pacing,
// respawn/powerup economy, game mode, and the static wall list. The
// document's shape is a detail this package owns; the wire and simulation
// layers never see whether a value came from YAML, a flag, or a default.
package config

import "snakearena/internal/world"

// Settings holds the server's tunable parameters. It is immutable once
// loaded; nothing in the simulation mutates it.
type Settings struct {
	MSPerFrame        int          `yaml:"MSPerFrame"`
	RespawnRate       int          `yaml:"RespawnRate"`
	UniverseSize      int          `yaml:"UniverseSize"`
	SnakeSpeed        int          `yaml:"SnakeSpeed"`
	PowerupDelay      int          `yaml:"PowerupDelay"`
	MaxPowerups       int          `yaml:"MaxPowerups"`
	SnakeGrowthFrames int          `yaml:"SnakeGrowthFrames"`
	SnakeStartingSize int          `yaml:"SnakeStartingSize"`
	GameMode          string       `yaml:"GameMode"`
	VenomCounter      int          `yaml:"VenomCounter"`
	Walls             []WallRecord `yaml:"Walls"`
}

// WallRecord mirrors the settings document's wall shape: an identifier and
// two endpoints.
type WallRecord struct {
	ID int   `yaml:"ID"`
	P1 Point `yaml:"p1"`
	P2 Point `yaml:"p2"`
}

// Point is a settings-document coordinate pair.
type Point struct {
	X int `yaml:"X"`
	Y int `yaml:"Y"`
}

// Default returns the hardcoded fallback settings, used both as the
// in-code default and as the rescue value if the embedded default YAML
// itself ever fails to parse.
func Default() Settings {
	return Settings{
		MSPerFrame:        50,
		RespawnRate:       60,
		UniverseSize:      2000,
		SnakeSpeed:        6,
		PowerupDelay:      100,
		MaxPowerups:       20,
		SnakeGrowthFrames: 24,
		SnakeStartingSize: 120,
		GameMode:          string(world.ModeDefault),
		VenomCounter:      10,
		Walls:             nil,
	}
}

// GameModeValue parses s.GameMode, falling back to ModeDefault for any
// unrecognized value so a typo in the document never panics the server.
func (s Settings) GameModeValue() world.GameMode {
	switch world.GameMode(s.GameMode) {
	case world.ModeDefault, world.ModePoison, world.ModeVenom:
		return world.GameMode(s.GameMode)
	default:
		return world.ModeDefault
	}
}

// VenomCounterTicks converts the seconds-denominated VenomCounter setting
// into ticks at the configured frame rate.
func (s Settings) VenomCounterTicks() int {
	if s.MSPerFrame <= 0 {
		return 0
	}
	return s.VenomCounter * 1000 / s.MSPerFrame
}

// BuildWalls materializes the settings document's wall records into live
// world.Wall values.
func (s Settings) BuildWalls() []*world.Wall {
	walls := make([]*world.Wall, 0, len(s.Walls))
	for _, rec := range s.Walls {
		p1 := world.Vector2D{X: float64(rec.P1.X), Y: float64(rec.P1.Y)}
		p2 := world.Vector2D{X: float64(rec.P2.X), Y: float64(rec.P2.Y)}
		walls = append(walls, world.NewWall(world.WallID(rec.ID), p1, p2))
	}
	return walls
}
