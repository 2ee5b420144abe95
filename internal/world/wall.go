package world

import "snakearena/internal/geom"

// Wall is a static obstacle composed of 50-pixel-wide blocks. P1 and P2 are
// axis-aligned endpoints: a single-block wall has P1 == P2; otherwise the
// two share exactly one coordinate. The outer AABB is cached at
// construction since walls never move.
type Wall struct {
	ID WallID
	P1 Vector2D
	P2 Vector2D

	aabb geom.AABB
}

// NewWall builds a wall and caches its outer AABB, padded by ±25 (half the
// block size) on both axes past the two endpoints.
func NewWall(id WallID, p1, p2 Vector2D) *Wall {
	raw := geom.NewAABB(p1, p2)
	aabb := geom.AABB{
		BL: Vector2D{X: raw.BL.X - WallPadding, Y: raw.BL.Y - WallPadding},
		TR: Vector2D{X: raw.TR.X + WallPadding, Y: raw.TR.Y + WallPadding},
	}
	return &Wall{ID: id, P1: p1, P2: p2, aabb: aabb}
}

// AABB returns the wall's cached outer bounding box.
func (w *Wall) AABB() geom.AABB {
	return w.aabb
}

// ToWire produces the externally-visible snapshot of this wall.
func (w *Wall) ToWire() WallWire {
	return WallWire{ID: w.ID, P1: w.P1, P2: w.P2}
}

// WallWire is the frame-encoder's view of a wall, sent only during
// handshake.
type WallWire struct {
	ID WallID
	P1 Vector2D
	P2 Vector2D
}
