// Package collision implements the arena's point-vs-region AABB tests: a
// query point (a snake's head, inflated to a small square) against a snake
// body, a wall, a powerup, or the snake's own trailing body.
package collision

import (
	"snakearena/internal/geom"
	"snakearena/internal/world"
)

// IsWrapSegment reports whether the segment from a to b is an artifact of
// a wrap teleport rather than real travel: on the axis where the two
// points differ, their coordinates have equal magnitude and opposite sign.
func IsWrapSegment(a, b world.Vector2D) bool {
	if a.X != b.X && a.X == -b.X {
		return true
	}
	if a.Y != b.Y && a.Y == -b.Y {
		return true
	}
	return false
}

// segmentAABB returns the inflated bounding box for a body segment: the
// rectangle spanning a and b, grown by half the body width plus half the
// query size on every side (the Minkowski-sum point-vs-region trick).
func segmentAABB(a, b world.Vector2D, bodyWidth, querySize float64) geom.AABB {
	return geom.NewAABB(a, b).Expanded(bodyWidth/2 + querySize/2)
}

// HitsSnakeBody reports whether a query point of the given size intersects
// any non-wrap segment of snake's body.
func HitsSnakeBody(point world.Vector2D, querySize float64, snake *world.Snake) bool {
	body := snake.Body
	for i := 1; i < len(body); i++ {
		a, b := body[i-1], body[i]
		if IsWrapSegment(a, b) {
			continue
		}
		if segmentAABB(a, b, world.SnakeWidth, querySize).Contains(point) {
			return true
		}
	}
	return false
}

// HitsWall reports whether a query point of the given size intersects
// wall's cached outer AABB.
func HitsWall(point world.Vector2D, querySize float64, wall *world.Wall) bool {
	return wall.AABB().Expanded(querySize / 2).Contains(point)
}

// HitsPowerup reports whether a query point of the given size intersects
// p's collision box.
func HitsPowerup(point world.Vector2D, querySize float64, p *world.Powerup) bool {
	return p.AABB().Expanded(querySize / 2).Contains(point)
}

// HitsSelf tests the head point against snake's own trailing body, gated
// so the head can safely exit its own
// neck after a U-turn. Walking from the head toward the tail, each
// segment's direction is its travel direction (earlier point toward later
// point); segments are only tested once a segment traveling in the
// cardinal-opposite of snake's current Direction has been observed. The
// segments between the head and that opposite run are exactly the neck
// the head is backing out of; everything beyond it is a genuine coil.
func HitsSelf(point world.Vector2D, querySize float64, snake *world.Snake) bool {
	body := snake.Body
	sawOppositeRun := false
	for i := len(body) - 1; i > 0; i-- {
		a, b := body[i], body[i-1]
		if IsWrapSegment(a, b) {
			continue
		}
		// Compared as dot == -length rather than on a normalized vector:
		// dividing by the length can round (49 * (1/49) != 1), which would
		// keep an axis-aligned opposite run from opening the gate.
		travel := a.Sub(b)
		if !sawOppositeRun {
			if l := travel.Length(); l > 0 && travel.Dot(snake.Direction) == -l {
				sawOppositeRun = true
			}
			continue
		}
		if segmentAABB(a, b, world.SnakeWidth, querySize).Contains(point) {
			return true
		}
	}
	return false
}

// ResolveHeadToHead breaks a mutual head-to-head collision: between two
// snakes whose heads simultaneously intersect each other's bodies, the
// strictly lower score loses. On an exact tie the snake that is NOT first
// in insertion order loses, so the first-iterated snake deterministically
// survives.
func ResolveHeadToHead(aID, bID world.SnakeID, aScore, bScore int, aFirst bool) (loser world.SnakeID) {
	switch {
	case aScore < bScore:
		return aID
	case bScore < aScore:
		return bID
	case aFirst:
		return bID
	default:
		return aID
	}
}
