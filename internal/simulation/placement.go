package simulation

import (
	"math"
	"math/rand"

	"snakearena/internal/collision"
	"snakearena/internal/world"
)

// randomInteriorPoint samples a point uniformly within the arena's
// interior margin.
func randomInteriorPoint(rng *rand.Rand, universeSize float64) world.Vector2D {
	half := universeSize/2 - world.RespawnMargin
	return world.Vector2D{
		X: rng.Float64()*2*half - half,
		Y: rng.Float64()*2*half - half,
	}
}

// verticalSnakeBody builds the provisional two-point body for a snake
// respawn: a straight vertical run of the given length, head above tail
// (pointing Up, i.e. lower Y).
func verticalSnakeBody(origin world.Vector2D, length float64) []world.Vector2D {
	return []world.Vector2D{
		origin,
		{X: origin.X, Y: origin.Y - length},
	}
}

// sampleAlong returns points spaced stride apart along body's polyline,
// including both endpoints of every segment, for the placement-free scan.
// A single-point body (the powerup variant) returns that point unchanged.
func sampleAlong(body []world.Vector2D, stride float64) []world.Vector2D {
	if len(body) == 1 {
		return body
	}
	var pts []world.Vector2D
	for i := 1; i < len(body); i++ {
		a, b := body[i-1], body[i]
		seg := b.Sub(a)
		length := seg.Length()
		if length == 0 {
			pts = append(pts, a)
			continue
		}
		dir := seg.Normalized()
		for d := 0.0; d < length; d += stride {
			pts = append(pts, a.Add(dir.Scale(d)))
		}
		pts = append(pts, b)
	}
	return pts
}

// placementFree reports whether every sample point clears all walls, all
// live snakes, and all live powerups, at the given query size.
func placementFree(w *world.World, samples []world.Vector2D, querySize float64) bool {
	for _, pt := range samples {
		for _, wall := range w.Walls() {
			if collision.HitsWall(pt, querySize, wall) {
				return false
			}
		}
		for _, id := range w.SnakeOrder() {
			s := w.Snakes()[id]
			if !s.Alive {
				continue
			}
			if collision.HitsSnakeBody(pt, querySize, s) {
				return false
			}
		}
		for _, id := range w.PowerupOrder() {
			p := w.Powerups()[id]
			if collision.HitsPowerup(pt, querySize, p) {
				return false
			}
		}
	}
	return true
}

// totalBodyLength sums the length of every segment in body.
func totalBodyLength(body []world.Vector2D) float64 {
	var total float64
	for i := 1; i < len(body); i++ {
		total += body[i].Sub(body[i-1]).Length()
	}
	return total
}

func ceilDiv(total, speed float64) int {
	if speed <= 0 {
		return 0
	}
	return int(math.Ceil(total / speed))
}
