package collision

import (
	"testing"

	"snakearena/internal/world"
)

func TestIsWrapSegment(t *testing.T) {
	tests := []struct {
		name     string
		a, b     world.Vector2D
		expected bool
	}{
		{"wrap on x", world.Vector2D{X: 995, Y: 10}, world.Vector2D{X: -995, Y: 10}, true},
		{"wrap on y", world.Vector2D{X: 10, Y: 995}, world.Vector2D{X: 10, Y: -995}, true},
		{"ordinary travel", world.Vector2D{X: 0, Y: 0}, world.Vector2D{X: 6, Y: 0}, false},
		{"identical points", world.Vector2D{X: 5, Y: 5}, world.Vector2D{X: 5, Y: 5}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsWrapSegment(tc.a, tc.b); got != tc.expected {
				t.Errorf("IsWrapSegment(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestHitsSnakeBodySkipsWrapSegment(t *testing.T) {
	s := &world.Snake{
		Body: []world.Vector2D{{X: 995, Y: 10}, {X: -995, Y: 10}, {X: -990, Y: 10}},
	}
	// A point that would fall inside the (bogus) wrap segment's AABB, far
	// from the real segment, must not register as a hit.
	if HitsSnakeBody(world.Vector2D{X: 0, Y: 10}, 0, s) {
		t.Fatal("HitsSnakeBody should skip the wrap segment")
	}
	if !HitsSnakeBody(world.Vector2D{X: -992, Y: 10}, 0, s) {
		t.Fatal("HitsSnakeBody should hit the real segment")
	}
}

func TestHitsWall(t *testing.T) {
	wall := world.NewWall(1, world.Vector2D{X: 0, Y: 0}, world.Vector2D{X: 0, Y: 0})
	if !HitsWall(world.Vector2D{X: 0, Y: 0}, 0, wall) {
		t.Fatal("HitsWall should hit its own block center")
	}
	if HitsWall(world.Vector2D{X: 1000, Y: 1000}, 0, wall) {
		t.Fatal("HitsWall should not hit a far point")
	}
}

func TestHitsPowerup(t *testing.T) {
	p := &world.Powerup{ID: 1, Loc: world.Vector2D{X: 100, Y: 100}}
	if !HitsPowerup(world.Vector2D{X: 100, Y: 100}, 0, p) {
		t.Fatal("HitsPowerup should hit its own location")
	}
	if HitsPowerup(world.Vector2D{X: 500, Y: 500}, 0, p) {
		t.Fatal("HitsPowerup should not hit a far point")
	}
}

func TestHitsSelfAllowsUTurnExit(t *testing.T) {
	// The snake traveled Right along y=0, turned Up at x=30, then Left one
	// tick later: a tight U-turn. Its head at {24,-6} is well inside the
	// inflated box of the leg it just turned off of, but that leg is part
	// of the neck the head is backing out of and must not count.
	s := &world.Snake{
		Direction: world.Left,
		Body: []world.Vector2D{
			{X: 0, Y: 0},
			{X: 30, Y: 0},
			{X: 30, Y: -6},
			{X: 24, Y: -6},
		},
	}
	if HitsSelf(s.Head(), world.SnakeWidth, s) {
		t.Fatal("HitsSelf should not flag the neck the head is backing out of after a U-turn")
	}
}

func TestHitsSelfDetectsRealCoil(t *testing.T) {
	// Full loop: Right, Up, Left, and now Down straight back toward the
	// first leg. The Up run between the head and that leg opens the gate,
	// so the head closing the loop at {0,-4} is a genuine coil hit.
	s := &world.Snake{
		Direction: world.Down,
		Body: []world.Vector2D{
			{X: 0, Y: 0},
			{X: 40, Y: 0},
			{X: 40, Y: -40},
			{X: 0, Y: -40},
			{X: 0, Y: -4},
		},
	}
	if !HitsSelf(s.Head(), 0, s) {
		t.Fatal("HitsSelf should detect a coil once an opposite-direction run has been observed")
	}
	// Before the loop closes the head is still far from the first leg.
	if HitsSelf(world.Vector2D{X: 0, Y: -20}, 0, s) {
		t.Fatal("HitsSelf should not flag a head that has not reached the coiled segment")
	}
}

func TestResolveHeadToHead(t *testing.T) {
	if got := ResolveHeadToHead(1, 2, 30, 20, true); got != 2 {
		t.Fatalf("ResolveHeadToHead() = %d, want 2 (lower score loses)", got)
	}
	if got := ResolveHeadToHead(1, 2, 20, 20, true); got != 2 {
		t.Fatalf("ResolveHeadToHead() tie, a first = %d, want 2 (non-first loses)", got)
	}
	if got := ResolveHeadToHead(1, 2, 20, 20, false); got != 1 {
		t.Fatalf("ResolveHeadToHead() tie, b first = %d, want 1 (non-first loses)", got)
	}
}
