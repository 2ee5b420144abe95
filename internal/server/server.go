// Package server ties the arena together: the TCP accept loop, per-client
// handshake and read/write loops, and the fixed-interval tick loop that
// steps the simulation, encodes the frame, and broadcasts it.
package server

import (
	"encoding/json"
	"math/rand"
	"net"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"snakearena/internal/config"
	"snakearena/internal/simulation"
	"snakearena/internal/wire"
	"snakearena/internal/world"
)

// clientOutboxSize bounds how many unflushed broadcast frames accumulate
// for a client before it is treated as disconnected.
const clientOutboxSize = 8

// Server holds everything the tick driver and connection manager share:
// the authoritative world, the simulation step, and the live client set.
// There is no hidden global state; ID counters and settings all live here.
type Server struct {
	settings config.Settings
	world    *world.World
	step     *simulation.Step
	clients  *registry
	logger   *log.Logger

	wallOrder        []world.WallID
	clientOutboxSize int
}

// New builds a Server from loaded settings. logger receives connect,
// disconnect, and handshake-failure events.
func New(settings config.Settings, logger *log.Logger) *Server {
	walls := settings.BuildWalls()
	w := world.New(float64(settings.UniverseSize), walls)

	order := make([]world.WallID, len(walls))
	for i, wl := range walls {
		order[i] = wl.ID
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	step := simulation.New(settings, rng, logger)

	return &Server{
		settings:         settings,
		world:            w,
		step:             step,
		clients:          newRegistry(),
		logger:           logger,
		wallOrder:        order,
		clientOutboxSize: clientOutboxSize,
	}
}

// Run serves the arena on the given bound listener: it starts the accept
// loop and then drives ticks for the lifetime of the process.
func (srv *Server) Run(ln net.Listener) error {
	go srv.acceptLoop(ln)
	srv.tickLoop()
	return nil
}

// acceptLoop hands each accepted socket to its own handshake goroutine.
func (srv *Server) acceptLoop(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			srv.logger.Error("accept failed, connection manager stopping", "error", err)
			return
		}
		go srv.handleConnection(conn)
	}
}

// tickLoop runs the fixed-interval tick: step the simulation, encode the
// frame, broadcast it. It never awaits network I/O. If a tick overruns,
// the next tick fires immediately rather than stacking up delayed ticks.
func (srv *Server) tickLoop() {
	interval := time.Duration(srv.settings.MSPerFrame) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		srv.runTick()
	}
}

// runTick runs exactly one tick, recovering from any panic raised while
// stepping the simulation so a single bad tick logs and is skipped rather
// than taking the whole process down.
func (srv *Server) runTick() {
	defer func() {
		if r := recover(); r != nil {
			srv.logger.Error("tick panicked, skipping", "recovered", r)
		}
	}()

	snakes, powerups := srv.step.Tick(srv.world)

	var buf strings.Builder
	if err := wire.EncodeFrame(&buf, snakes, powerups); err != nil {
		srv.logger.Error("frame encode failed, skipping broadcast", "error", err)
		return
	}
	srv.clients.broadcast([]byte(buf.String()))
}

// decodeClientCommand parses one client->server line. Trailing whitespace
// from the line delimiter is tolerated; anything that isn't a well-formed
// JSON object is reported as an error so the caller can drop it.
func decodeClientCommand(line string, cmd *wire.ClientCommand) error {
	return json.Unmarshal([]byte(strings.TrimSpace(line)), cmd)
}
