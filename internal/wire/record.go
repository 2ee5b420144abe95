// Package wire implements the protocol's line-delimited JSON records and
// client command parsing. It has no knowledge of sockets; it only maps
// between world snapshots and wire records.
package wire

import "snakearena/internal/world"

// Point is the wire representation of a Vector2D.
type Point struct {
	X float64 `json:"X"`
	Y float64 `json:"Y"`
}

func pointOf(v world.Vector2D) Point {
	return Point{X: v.X, Y: v.Y}
}

// SnakeRecord is one line of a snake's broadcast state. The field named
// "snake" doubles as both the type discriminator and the snake's
// identifier.
type SnakeRecord struct {
	Snake int64   `json:"snake"`
	Name  string  `json:"name"`
	Body  []Point `json:"body"`
	Dir   Point   `json:"dir"`
	Score int     `json:"score"`
	Died  bool    `json:"died"`
	Alive bool    `json:"alive"`
	DC    bool    `json:"dc"`
	Join  bool    `json:"join"`
}

// NewSnakeRecord maps a snake's wire snapshot onto its wire record.
func NewSnakeRecord(s world.SnakeWire) SnakeRecord {
	body := make([]Point, len(s.Body))
	for i, p := range s.Body {
		body[i] = pointOf(p)
	}
	return SnakeRecord{
		Snake: int64(s.ID),
		Name:  s.Name,
		Body:  body,
		Dir:   pointOf(s.Dir),
		Score: s.Score,
		Died:  s.Died,
		Alive: s.Alive,
		DC:    s.DC,
		Join:  s.Join,
	}
}

// PowerupRecord is one line of a powerup's broadcast state.
type PowerupRecord struct {
	Power int64 `json:"power"`
	Loc   Point `json:"loc"`
	Died  bool  `json:"died"`
}

// NewPowerupRecord maps a powerup's wire snapshot onto its wire record.
func NewPowerupRecord(p world.PowerupWire) PowerupRecord {
	return PowerupRecord{Power: int64(p.ID), Loc: pointOf(p.Loc), Died: p.Died}
}

// WallRecord is the handshake-only wire record for a wall.
type WallRecord struct {
	Wall int   `json:"wall"`
	P1   Point `json:"p1"`
	P2   Point `json:"p2"`
}

// NewWallRecord maps a wall's wire snapshot onto its wire record.
func NewWallRecord(w world.WallWire) WallRecord {
	return WallRecord{Wall: int(w.ID), P1: pointOf(w.P1), P2: pointOf(w.P2)}
}

// ClientCommand is the JSON object a client sends to steer its snake.
type ClientCommand struct {
	Moving string `json:"moving"`
}

// ParseMoving maps a client command's "moving" value onto a cardinal
// direction. ok is false for "none" and any unrecognized value; callers
// must silently drop the command in that case rather than close the
// connection.
func ParseMoving(moving string) (dir world.Vector2D, ok bool) {
	switch moving {
	case "up":
		return world.Up, true
	case "down":
		return world.Down, true
	case "left":
		return world.Left, true
	case "right":
		return world.Right, true
	default:
		return world.Vector2D{}, false
	}
}
