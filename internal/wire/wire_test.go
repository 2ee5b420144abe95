package wire

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"snakearena/internal/world"
)

func TestEncodeFrameWritesOneLinePerRecord(t *testing.T) {
	var buf bytes.Buffer
	snakes := []world.SnakeWire{
		{ID: 1, Name: "alice", Body: []world.Vector2D{{X: 0, Y: 0}, {X: 0, Y: 10}}, Alive: true, Join: true},
	}
	powerups := []world.PowerupWire{
		{ID: 7, Loc: world.Vector2D{X: 5, Y: 5}},
	}
	if err := EncodeFrame(&buf, snakes, powerups); err != nil {
		t.Fatal(err)
	}

	scanner := bufio.NewScanner(&buf)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	var snakeRec SnakeRecord
	if err := json.Unmarshal([]byte(lines[0]), &snakeRec); err != nil {
		t.Fatal(err)
	}
	if snakeRec.Snake != 1 || snakeRec.Name != "alice" || !snakeRec.Alive || !snakeRec.Join {
		t.Fatalf("snake record round-tripped wrong: %+v", snakeRec)
	}

	var powerRec PowerupRecord
	if err := json.Unmarshal([]byte(lines[1]), &powerRec); err != nil {
		t.Fatal(err)
	}
	if powerRec.Power != 7 || powerRec.Loc != (Point{X: 5, Y: 5}) {
		t.Fatalf("powerup record round-tripped wrong: %+v", powerRec)
	}
}

func TestEncodeWalls(t *testing.T) {
	var buf bytes.Buffer
	walls := []world.WallWire{{ID: 3, P1: world.Vector2D{X: 0, Y: 0}, P2: world.Vector2D{X: 50, Y: 0}}}
	if err := EncodeWalls(&buf, walls); err != nil {
		t.Fatal(err)
	}
	var rec WallRecord
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatal(err)
	}
	if rec.Wall != 3 || rec.P1 != (Point{X: 0, Y: 0}) || rec.P2 != (Point{X: 50, Y: 0}) {
		t.Fatalf("wall record round-tripped wrong: %+v", rec)
	}
}

func TestParseMoving(t *testing.T) {
	tests := []struct {
		in      string
		wantDir world.Vector2D
		wantOK  bool
	}{
		{"up", world.Up, true},
		{"down", world.Down, true},
		{"left", world.Left, true},
		{"right", world.Right, true},
		{"none", world.Vector2D{}, false},
		{"sideways", world.Vector2D{}, false},
		{"", world.Vector2D{}, false},
	}
	for _, tc := range tests {
		dir, ok := ParseMoving(tc.in)
		if ok != tc.wantOK || (ok && dir != tc.wantDir) {
			t.Errorf("ParseMoving(%q) = %v,%v want %v,%v", tc.in, dir, ok, tc.wantDir, tc.wantOK)
		}
	}
}
