// Package world holds the authoritative game state: snakes, walls,
// powerups, and the scalar parameters that bound the arena. The simulation
// step is the only code that mutates a World during a tick; the connection
// manager is only allowed to stage a pending direction for a snake, and it
// does so through ApplySteer so the same validation rules apply everywhere.
package world

import (
	"sync"

	"snakearena/internal/geom"
)

// Vector2D is re-exported from geom so callers of the world package never
// need to import geom directly.
type Vector2D = geom.Vector2D

// Cardinal directions, re-exported from geom for the same reason.
var (
	Up    = geom.Up
	Down  = geom.Down
	Left  = geom.Left
	Right = geom.Right
)

// SnakeID, PowerupID and WallID are monotonically assigned and never reused
// within a server's lifetime.
type SnakeID int64
type PowerupID int64
type WallID int

// Domain constants. The settings document (see internal/config) does not
// expose these as tunables; the wire protocol and the collision kernel both
// assume these exact values.
const (
	SnakeWidth    = 10.0
	PowerupWidth  = 16.0
	WallBlockSize = 50.0
	WallPadding   = WallBlockSize / 2

	PowerupScore  = 10
	RespawnMargin = 50.0

	// MaxRespawnPlacementAttempts bounds the placement search so a map
	// with no free interior point warns instead of hanging the tick. A
	// single attempt is a handful of point samples, so even a crowded
	// arena resolves in single-digit attempts.
	MaxRespawnPlacementAttempts = 500
)

// GameMode selects the kill/absorb variant applied by the simulation step.
type GameMode string

const (
	ModeDefault GameMode = "default"
	ModePoison  GameMode = "poison"
	ModeVenom   GameMode = "venom"
)

// World is the single shared arena. All fields are mutated only while
// holding mu; the zero value is not usable, use New.
type World struct {
	mu sync.Mutex

	UniverseSize float64

	snakes     map[SnakeID]*Snake
	snakeOrder []SnakeID // insertion order, for deterministic iteration

	powerups     map[PowerupID]*Powerup
	powerupOrder []PowerupID

	walls map[WallID]*Wall

	nextSnakeID   SnakeID
	nextPowerupID PowerupID

	Frame uint64
}

// New creates an empty arena of the given square universe size, seeded with
// the given walls (identifiers taken as given, duplicates overwrite).
func New(universeSize float64, walls []*Wall) *World {
	w := &World{
		UniverseSize:  universeSize,
		snakes:        make(map[SnakeID]*Snake),
		powerups:      make(map[PowerupID]*Powerup),
		walls:         make(map[WallID]*Wall),
		nextSnakeID:   1,
		nextPowerupID: 1,
	}
	for _, wall := range walls {
		w.walls[wall.ID] = wall
	}
	return w
}

// Lock acquires the world's coarse lock. The simulation step holds it for
// the duration of a tick; the connection manager holds it only briefly, to
// register/unregister a client's snake or stage a direction command.
func (w *World) Lock() { w.mu.Lock() }

// Unlock releases the world's coarse lock.
func (w *World) Unlock() { w.mu.Unlock() }

// Walls returns the static wall set. Safe to call without holding the lock:
// walls are immutable after New.
func (w *World) Walls() map[WallID]*Wall {
	return w.walls
}

// Snakes returns the live snake map. Caller must hold the lock.
func (w *World) Snakes() map[SnakeID]*Snake {
	return w.snakes
}

// SnakeOrder returns snake identifiers in insertion order. Caller must hold
// the lock. This is the order every deterministic scan walks, including the
// head-to-head score tiebreak.
func (w *World) SnakeOrder() []SnakeID {
	return w.snakeOrder
}

// Powerups returns the live powerup map. Caller must hold the lock.
func (w *World) Powerups() map[PowerupID]*Powerup {
	return w.powerups
}

// PowerupOrder returns powerup identifiers in insertion order. Caller must
// hold the lock.
func (w *World) PowerupOrder() []PowerupID {
	return w.powerupOrder
}

// AddSnake assigns the next snake ID, inserts a fresh (not yet placed)
// snake with the given display name, and returns it. The snake starts
// !Alive with Respawn=0 so the next tick's respawn scan places it
// immediately and stamps Join=true. Caller must hold the lock.
func (w *World) AddSnake(name string) *Snake {
	id := w.nextSnakeID
	w.nextSnakeID++

	s := &Snake{
		ID:       id,
		Name:     name,
		RealName: name,
		Alive:    false,
		Respawn:  0,
	}
	w.snakes[id] = s
	w.snakeOrder = append(w.snakeOrder, id)
	return s
}

// RemoveSnake deletes a snake from the world. Caller must hold the lock.
func (w *World) RemoveSnake(id SnakeID) {
	delete(w.snakes, id)
	for i, sid := range w.snakeOrder {
		if sid == id {
			w.snakeOrder = append(w.snakeOrder[:i], w.snakeOrder[i+1:]...)
			break
		}
	}
}

// AddPowerup assigns the next powerup ID and inserts p. Caller must hold
// the lock.
func (w *World) AddPowerup(loc Vector2D) *Powerup {
	id := w.nextPowerupID
	w.nextPowerupID++
	p := &Powerup{ID: id, Loc: loc}
	w.powerups[id] = p
	w.powerupOrder = append(w.powerupOrder, id)
	return p
}

// RemovePowerup deletes a powerup from the world. Caller must hold the lock.
func (w *World) RemovePowerup(id PowerupID) {
	delete(w.powerups, id)
	for i, pid := range w.powerupOrder {
		if pid == id {
			w.powerupOrder = append(w.powerupOrder[:i], w.powerupOrder[i+1:]...)
			break
		}
	}
}

// ApplySteer validates and stages a direction command for snake id. It is
// safe to call from any goroutine; it takes the world lock itself. Returns
// false if the command was rejected (snake unknown, dead,
// or the requested direction was illegal); callers should simply drop the
// command in that case, never close the connection over it.
func (w *World) ApplySteer(id SnakeID, dir Vector2D) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	s, ok := w.snakes[id]
	if !ok || !s.Alive {
		return false
	}
	if !isCardinal(dir) {
		return false
	}
	if s.Direction.IsCardinalOpposite(dir) {
		return false
	}
	if s.wouldCollideWithNeck(dir) {
		return false
	}
	s.PendingDirection = &dir
	return true
}

func isCardinal(v Vector2D) bool {
	return v == Up || v == Down || v == Left || v == Right
}
