package world

import "snakearena/internal/geom"

// Powerup is a consumable entity. When a snake's head AABB intersects it,
// the snake absorbs it per the active game mode's rules.
type Powerup struct {
	ID   PowerupID
	Loc  Vector2D
	Died bool // terminal flag, emitted once then garbage-collected
}

// AABB returns the powerup's collision box: its location inflated by half
// the powerup width on every side.
func (p *Powerup) AABB() geom.AABB {
	half := PowerupWidth / 2
	return geom.NewAABB(
		Vector2D{X: p.Loc.X - half, Y: p.Loc.Y - half},
		Vector2D{X: p.Loc.X + half, Y: p.Loc.Y + half},
	)
}

// ToWire produces the externally-visible snapshot of this powerup.
func (p *Powerup) ToWire() PowerupWire {
	return PowerupWire{ID: p.ID, Loc: p.Loc, Died: p.Died}
}

// PowerupWire is the frame-encoder's view of a powerup.
type PowerupWire struct {
	ID   PowerupID
	Loc  Vector2D
	Died bool
}
