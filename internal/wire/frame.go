package wire

import (
	"bufio"
	"encoding/json"
	"io"

	"snakearena/internal/world"
)

// EncodeFrame writes one per-tick broadcast: every snake record followed by
// every powerup record, each terminated by "\n". Walls are not part of the
// per-tick frame; they are sent once, at handshake.
func EncodeFrame(w io.Writer, snakes []world.SnakeWire, powerups []world.PowerupWire) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, s := range snakes {
		if err := enc.Encode(NewSnakeRecord(s)); err != nil {
			return err
		}
	}
	for _, p := range powerups {
		if err := enc.Encode(NewPowerupRecord(p)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// EncodeWalls writes the handshake's wall list, one JSON record per line.
func EncodeWalls(w io.Writer, walls []world.WallWire) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, wl := range walls {
		if err := enc.Encode(NewWallRecord(wl)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
