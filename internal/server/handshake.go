package server

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"time"

	"snakearena/internal/wire"
	"snakearena/internal/world"
)

// handshakeDeadline bounds the connect phase, matching the 3-second
// deadline clients apply on their side of the handshake.
const handshakeDeadline = 3 * time.Second

// handleConnection runs the full connect sequence for one accepted socket
// (read the name line, send the client ID, universe size, and wall list),
// then hands the resulting client off to the server's steady-state
// read/write loops. Any failure during the handshake is logged and the
// socket is closed; it never reaches the world.
func (srv *Server) handleConnection(conn net.Conn) {
	if err := conn.SetDeadline(time.Now().Add(handshakeDeadline)); err != nil {
		conn.Close()
		return
	}

	reader := bufio.NewReader(conn)
	line, err := reader.ReadString('\n')
	if err != nil {
		srv.logger.Warn("handshake failed: no name before deadline", "remote", conn.RemoteAddr(), "error", err)
		conn.Close()
		return
	}
	name := strings.TrimRight(line, "\r\n")
	if name == "" {
		srv.logger.Warn("handshake failed: empty name", "remote", conn.RemoteAddr())
		conn.Close()
		return
	}

	srv.world.Lock()
	snake := srv.world.AddSnake(name)
	walls := srv.wallWireSnapshot()
	srv.world.Unlock()

	if _, err := fmt.Fprintf(conn, "%d\n", snake.ID); err != nil {
		srv.abortHandshake(conn, snake.ID)
		return
	}
	if _, err := fmt.Fprintf(conn, "%d\n", int(srv.world.UniverseSize)); err != nil {
		srv.abortHandshake(conn, snake.ID)
		return
	}
	if err := wire.EncodeWalls(conn, walls); err != nil {
		srv.abortHandshake(conn, snake.ID)
		return
	}

	if err := conn.SetDeadline(time.Time{}); err != nil {
		srv.abortHandshake(conn, snake.ID)
		return
	}

	client := newClient(conn, snake.ID, name, srv.clientOutboxSize, srv.logger)
	srv.clients.add(client)
	srv.logger.Info("client connected", "snake", snake.ID, "name", name, "remote", conn.RemoteAddr())

	go client.writeLoop()
	srv.readLoop(client, reader)
}

func (srv *Server) abortHandshake(conn net.Conn, id world.SnakeID) {
	srv.world.Lock()
	srv.world.RemoveSnake(id)
	srv.world.Unlock()
	conn.Close()
}

func (srv *Server) wallWireSnapshot() []world.WallWire {
	walls := srv.world.Walls()
	out := make([]world.WallWire, 0, len(walls))
	for _, id := range srv.wallOrder {
		out = append(out, walls[id].ToWire())
	}
	return out
}

// readLoop parses one direction command per line, ignoring unknown or
// malformed input, until the socket fails. A broken socket is the only
// disconnect signal.
func (srv *Server) readLoop(client *Client, reader *bufio.Reader) {
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			srv.disconnectClient(client)
			return
		}
		var cmd wire.ClientCommand
		if err := decodeClientCommand(line, &cmd); err != nil {
			continue
		}
		dir, ok := wire.ParseMoving(cmd.Moving)
		if !ok {
			continue
		}
		srv.world.ApplySteer(client.snakeID, dir)
	}
}

// disconnectClient flags the snake dc/alive=false/died=true; the next tick
// emits it exactly once more before the garbage pass removes it.
func (srv *Server) disconnectClient(client *Client) {
	srv.world.Lock()
	if s, ok := srv.world.Snakes()[client.snakeID]; ok {
		s.DC = true
		s.Alive = false
		s.Died = true
	}
	srv.world.Unlock()

	srv.clients.remove(client.snakeID)
	client.Close()
	srv.logger.Info("client disconnected", "snake", client.snakeID, "name", client.name)
}
