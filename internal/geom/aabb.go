package geom

// AABB is an axis-aligned bounding box, inclusive on both corners. All
// intersection tests in the collision kernel reduce to AABB-vs-AABB or
// AABB-vs-point tests against one of these.
type AABB struct {
	BL, TR Vector2D // bottom-left and top-right corners
}

// NewAABB builds an AABB from two arbitrary corners, normalizing order.
func NewAABB(a, b Vector2D) AABB {
	bl := Vector2D{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
	tr := Vector2D{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
	return AABB{BL: bl, TR: tr}
}

// Expanded returns the AABB grown by margin on every side.
func (b AABB) Expanded(margin float64) AABB {
	return AABB{
		BL: Vector2D{X: b.BL.X - margin, Y: b.BL.Y - margin},
		TR: Vector2D{X: b.TR.X + margin, Y: b.TR.Y + margin},
	}
}

// Contains reports whether p lies within b, inclusive of both edges.
func (b AABB) Contains(p Vector2D) bool {
	return p.X >= b.BL.X && p.X <= b.TR.X && p.Y >= b.BL.Y && p.Y <= b.TR.Y
}

// Intersects reports whether b and other overlap, inclusive of shared edges.
func (b AABB) Intersects(other AABB) bool {
	if b.TR.X < other.BL.X || other.TR.X < b.BL.X {
		return false
	}
	if b.TR.Y < other.BL.Y || other.TR.Y < b.BL.Y {
		return false
	}
	return true
}
