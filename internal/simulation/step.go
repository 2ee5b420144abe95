// Package simulation advances the arena by one tick at a time: the ordered
// respawn scan, per-snake movement and collision resolution, powerup
// spawning, and the post-encode garbage pass. It is the only code that
// mutates a world.World's snake and powerup collections.
package simulation

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"snakearena/internal/collision"
	"snakearena/internal/config"
	"snakearena/internal/world"
)

// Step runs one tick's worth of simulation against a world.World. It owns
// the powerup spawn gate and the random source used for respawn placement;
// both are tick-scoped state that does not belong on World itself.
type Step struct {
	settings    config.Settings
	rng         *rand.Rand
	logger      *log.Logger
	powerupGate int
}

// New builds a Step for the given settings. rng should be seeded
// independently per server start; logger receives the one recoverable
// warning this package ever emits: respawn placement exhaustion.
func New(settings config.Settings, rng *rand.Rand, logger *log.Logger) *Step {
	return &Step{
		settings:    settings,
		rng:         rng,
		logger:      logger,
		powerupGate: rng.Intn(max1(settings.PowerupDelay)),
	}
}

func max1(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

// Tick runs one full simulation step against w, returning the wire
// snapshots that must be encoded and broadcast before the garbage pass
// that follows removes their terminal entries. Callers must not retain w's
// internal pointers past the call; the returned snapshots are independent
// copies.
func (st *Step) Tick(w *world.World) (snakes []world.SnakeWire, powerups []world.PowerupWire) {
	w.Lock()
	defer w.Unlock()

	st.respawnScan(w)
	st.moveAndCollideAll(w)
	st.spawnPowerups(w)

	snakes, powerups = st.snapshot(w)

	st.garbageCollect(w)
	w.Frame++
	return snakes, powerups
}

// respawnScan clears the one-tick died/join flags and counts dead snakes
// down toward their replacement.
func (st *Step) respawnScan(w *world.World) {
	for _, id := range w.SnakeOrder() {
		s := w.Snakes()[id]
		if s.DC {
			continue
		}
		s.Died = false
		s.Join = false
		if s.Alive {
			continue
		}
		if s.Respawn > 0 {
			s.Respawn--
		}
		if s.Respawn == 0 {
			st.placeSnake(w, s)
		}
	}
}

// placeSnake searches for a collision-free spot and seeds a fresh vertical
// body there, head above tail.
func (st *Step) placeSnake(w *world.World, s *world.Snake) {
	size := float64(st.settings.SnakeStartingSize)
	for attempt := 0; attempt < world.MaxRespawnPlacementAttempts; attempt++ {
		origin := randomInteriorPoint(st.rng, w.UniverseSize)
		body := verticalSnakeBody(origin, size)
		if !placementFree(w, sampleAlong(body, world.SnakeWidth), world.SnakeWidth) {
			continue
		}
		s.Body = body
		s.Direction = world.Up
		s.PrevDirection = world.Up
		s.PendingDirection = nil
		s.Speed = float64(st.settings.SnakeSpeed)
		s.Alive = true
		s.Join = true
		s.Score = 0
		s.Growth = 0
		s.Venomous = false
		s.VenomCounter = 0
		s.Respawn = 0
		return
	}
	st.logger.Warn("respawn placement exhausted attempts, will retry next tick",
		"snake", s.ID, "attempts", world.MaxRespawnPlacementAttempts)
	s.Respawn = 1
}

// moveAndCollideAll moves and resolves every alive snake, in insertion
// order, so collision outcomes never depend on map iteration.
func (st *Step) moveAndCollideAll(w *world.World) {
	order := w.SnakeOrder()
	for i, id := range order {
		s := w.Snakes()[id]
		if !s.Alive {
			continue
		}
		st.moveSnake(s, w.UniverseSize)
		st.collideSnake(w, s, i, order)
		if s.Venomous {
			s.VenomCounter--
			if s.VenomCounter <= 0 {
				s.Venomous = false
				s.VenomCounter = 0
			}
		}
	}
}

// moveSnake applies corner insertion on a direction change, then
// translation, wrap, and tail consumption.
func (st *Step) moveSnake(s *world.Snake, universeSize float64) {
	if s.PendingDirection != nil && *s.PendingDirection != s.Direction {
		head := s.Head()
		s.Body = append(s.Body, head)
		s.PrevDirection = s.Direction
		s.Direction = *s.PendingDirection
	}
	s.PendingDirection = nil

	head := s.Head()
	s.Body[len(s.Body)-1] = head.Add(s.Direction.Scale(s.Speed))

	st.wrapIfNeeded(s, universeSize)
	consumeTail(s, s.Speed)
}

// wrapIfNeeded teleports a snake whose head has crossed a world edge: the
// body is reseeded on the opposite edge preserving the overshoot, and
// growth is reset to a full body-length of ticks so the tail does not eat
// through the new short body.
func (st *Step) wrapIfNeeded(s *world.Snake, universeSize float64) {
	half := universeSize/2 - world.SnakeWidth/2
	head := s.Head()

	nx, ny := head.X, head.Y
	overshoot := 0.0
	wrapped := false

	switch {
	case head.X > half:
		overshoot = head.X - half
		nx = -half
		wrapped = true
	case head.X < -half:
		overshoot = -half - head.X
		nx = half
		wrapped = true
	}
	switch {
	case head.Y > half:
		overshoot = head.Y - half
		ny = -half
		wrapped = true
	case head.Y < -half:
		overshoot = -half - head.Y
		ny = half
		wrapped = true
	}
	if !wrapped {
		return
	}

	totalLen := totalBodyLength(s.Body)
	edge := world.Vector2D{X: nx, Y: ny}
	advanced := edge.Add(s.Direction.Scale(overshoot))
	s.Body = []world.Vector2D{edge, advanced}
	s.Growth = ceilDiv(totalLen, s.Speed)
}

// consumeTail advances the tail by up to speed units, unless the snake
// still owes itself growth.
func consumeTail(s *world.Snake, speed float64) {
	if s.Growth > 0 {
		s.Growth--
		return
	}
	remaining := speed
	for remaining > 0 && len(s.Body) > 1 {
		seg := s.Body[1].Sub(s.Body[0])
		segLen := seg.Length()
		if segLen <= remaining && len(s.Body) > 2 {
			remaining -= segLen
			s.Body = s.Body[1:]
			continue
		}
		// Final segment: shift the tail point toward its neighbour by
		// whatever is left, never dropping below the two-point minimum.
		dir := seg.Normalized()
		s.Body[0] = s.Body[0].Add(dir.Scale(min(remaining, segLen)))
		remaining = 0
	}
}

// collideSnake runs one snake's collision tests in their load-bearing
// order: powerups, inter-snake, wall, self.
func (st *Step) collideSnake(w *world.World, s *world.Snake, index int, order []world.SnakeID) {
	head := s.Head()

	for _, pid := range append([]world.PowerupID(nil), w.PowerupOrder()...) {
		p, ok := w.Powerups()[pid]
		if !ok || p.Died {
			continue
		}
		if collision.HitsPowerup(head, world.SnakeWidth, p) {
			st.absorbPowerup(s, p)
		}
	}

	if !s.Alive {
		return
	}

	for j, otherID := range order {
		if otherID == s.ID {
			continue
		}
		other := w.Snakes()[otherID]
		if !other.Alive {
			continue
		}
		if !collision.HitsSnakeBody(head, world.SnakeWidth, other) {
			continue
		}
		mutual := collision.HitsSnakeBody(other.Head(), world.SnakeWidth, s)
		st.resolveInterSnake(s, other, mutual, index < j)
		if !s.Alive {
			return
		}
	}

	for _, wall := range w.Walls() {
		if collision.HitsWall(head, world.SnakeWidth, wall) {
			st.killSnake(s)
			return
		}
	}

	if collision.HitsSelf(head, world.SnakeWidth, s) {
		st.killSnake(s)
	}
}

// spawnPowerups places one powerup when the spawn gate reaches zero and
// the arena is below its cap, then reseeds the gate.
func (st *Step) spawnPowerups(w *world.World) {
	if st.powerupGate > 0 {
		st.powerupGate--
		return
	}
	if len(w.Powerups()) >= st.settings.MaxPowerups {
		return
	}
	for attempt := 0; attempt < world.MaxRespawnPlacementAttempts; attempt++ {
		loc := randomInteriorPoint(st.rng, w.UniverseSize)
		if !placementFree(w, []world.Vector2D{loc}, world.PowerupWidth) {
			continue
		}
		w.AddPowerup(loc)
		break
	}
	st.powerupGate = st.rng.Intn(max1(st.settings.PowerupDelay))
}

// snapshot walks all snakes then all powerups and maps each to its wire
// snapshot, before the garbage pass removes anything; entities carrying a
// terminal flag must be broadcast exactly once.
func (st *Step) snapshot(w *world.World) (snakes []world.SnakeWire, powerups []world.PowerupWire) {
	mode := st.settings.GameModeValue()
	for _, id := range w.SnakeOrder() {
		s := w.Snakes()[id]
		snakes = append(snakes, s.ToWire(mode, st.settings.MSPerFrame))
	}
	for _, id := range w.PowerupOrder() {
		p := w.Powerups()[id]
		powerups = append(powerups, p.ToWire())
	}
	return snakes, powerups
}

// garbageCollect removes disconnected snakes and consumed powerups, after
// the frame carrying their terminal flags has been handed to the encoder.
func (st *Step) garbageCollect(w *world.World) {
	for _, id := range append([]world.SnakeID(nil), w.SnakeOrder()...) {
		if w.Snakes()[id].DC {
			w.RemoveSnake(id)
		}
	}
	for _, id := range append([]world.PowerupID(nil), w.PowerupOrder()...) {
		if w.Powerups()[id].Died {
			w.RemovePowerup(id)
		}
	}
}
