package world

import "fmt"

// Snake is a player's body and movement state. Body is a polyline: Body[0]
// is the tail, Body[len(Body)-1] is the head. The segment between two
// consecutive points is a straight run in one cardinal direction; a corner
// is represented by inserting an extra point, not by a direction change
// mid-segment.
type Snake struct {
	ID   SnakeID
	Name string

	// RealName is the name the client supplied at handshake. The wire
	// name diverges from it only in venom mode, where the broadcast name
	// is RealName plus the remaining venom seconds; RealName itself is
	// never emitted.
	RealName string

	Body []Vector2D

	Direction     Vector2D
	PrevDirection Vector2D

	// PendingDirection is staged by ApplySteer and consumed by the next
	// simulation step. nil means "keep going the same way".
	PendingDirection *Vector2D

	Speed float64

	Score int

	// Growth is the number of upcoming ticks in which the tail must NOT
	// advance, i.e. how many more ticks of growth the snake still owes
	// itself from powerups, mode-specific absorption, or a wrap.
	Growth int

	Venomous bool
	// VenomCounter counts down in ticks while Venomous. The settings
	// document specifies venom time in seconds; config converts it once.
	VenomCounter int

	Alive bool
	Died  bool // true for exactly the tick of death, cleared at the next respawn scan
	DC    bool // true once the socket has failed; snake is removed after one more broadcast

	// Join is true for exactly the tick a snake is (re)placed into the
	// arena, cleared at the next respawn scan.
	Join bool

	// Respawn counts down the ticks remaining before this (dead) snake is
	// eligible for placement again. Zero means eligible now.
	Respawn int
}

// Head returns the snake's head point. Body must be non-empty.
func (s *Snake) Head() Vector2D {
	return s.Body[len(s.Body)-1]
}

// Tail returns the snake's tail point. Body must be non-empty.
func (s *Snake) Tail() Vector2D {
	return s.Body[0]
}

// Neck returns the point preceding the head, or the head itself if the
// body has fewer than two points.
func (s *Snake) Neck() Vector2D {
	if len(s.Body) < 2 {
		return s.Head()
	}
	return s.Body[len(s.Body)-2]
}

// HeadSegmentLength returns the length of the last body segment, the one
// between Neck and Head.
func (s *Snake) HeadSegmentLength() float64 {
	return s.Head().Sub(s.Neck()).Length()
}

// wouldCollideWithNeck rejects a steer that would drive the head back
// through the leg it just turned off of,
// which can happen even when the new direction is not the literal
// cardinal-opposite of Direction, if the head segment is still short. The
// head-to-neck run is always parallel to Direction by construction, so the
// leg that matters here is the one before the most recent turn: PrevDirection.
func (s *Snake) wouldCollideWithNeck(dir Vector2D) bool {
	if s.HeadSegmentLength() > SnakeWidth {
		return false
	}
	return s.PrevDirection.IsCardinalOpposite(dir)
}

// ToWire produces the externally-visible snapshot of this snake for frame
// encoding, decoupling internal simulation fields (PendingDirection,
// Respawn, VenomCounter, RealName) from what actually crosses the wire. In
// venom mode a venomous snake's wire name is RealName suffixed by its
// remaining venom time in seconds.
func (s *Snake) ToWire(mode GameMode, msPerFrame int) SnakeWire {
	name := s.RealName
	if mode == ModeVenom && s.Venomous {
		seconds := s.VenomCounter * msPerFrame / 1000
		name = fmt.Sprintf("%s %d", s.RealName, seconds)
	}
	return SnakeWire{
		ID:    s.ID,
		Name:  name,
		Body:  append([]Vector2D(nil), s.Body...),
		Dir:   s.Direction,
		Score: s.Score,
		Died:  s.Died,
		Alive: s.Alive,
		DC:    s.DC,
		Join:  s.Join,
	}
}

// SnakeWire is the frame-encoder's view of a snake: exactly the fields a
// client needs to render and nothing the simulation uses internally.
type SnakeWire struct {
	ID    SnakeID
	Name  string
	Body  []Vector2D
	Dir   Vector2D
	Score int
	Died  bool
	Alive bool
	DC    bool
	Join  bool
}
