package server

import (
	"net"
	"sync"

	"github.com/charmbracelet/log"

	"snakearena/internal/world"
)

// Client is the connection-manager's handle on one connected player,
// transport-neutral in the same spirit as the session handles this package
// is adapted from: the tick driver only ever calls Send, never touches the
// socket directly.
type Client struct {
	conn    net.Conn
	snakeID world.SnakeID
	name    string

	outbox   chan []byte
	done     chan struct{}
	doneOnce sync.Once

	logger *log.Logger
}

// newClient wraps an accepted connection once its snake has been created.
// outboxSize bounds how many un-flushed broadcast frames a slow client can
// accumulate before it is treated as disconnected.
func newClient(conn net.Conn, snakeID world.SnakeID, name string, outboxSize int, logger *log.Logger) *Client {
	return &Client{
		conn:    conn,
		snakeID: snakeID,
		name:    name,
		outbox:  make(chan []byte, outboxSize),
		done:    make(chan struct{}),
		logger:  logger,
	}
}

// Send queues a broadcast frame for this client. Non-blocking; a client
// that cannot keep up is disconnected rather than allowed to stall the
// broadcast of every other client.
func (c *Client) Send(frame []byte) {
	select {
	case <-c.done:
		return
	default:
	}
	select {
	case c.outbox <- frame:
	default:
		c.logger.Warn("client send buffer full, disconnecting", "snake", c.snakeID)
		c.Close()
	}
}

// Done reports when this client has disconnected.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Close marks the client disconnected and closes its socket. Safe to call
// more than once, and from both the reader and writer goroutines.
func (c *Client) Close() {
	c.doneOnce.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

// writeLoop drains the outbox to the socket until the client disconnects.
func (c *Client) writeLoop() {
	for {
		select {
		case frame := <-c.outbox:
			if _, err := c.conn.Write(frame); err != nil {
				c.Close()
				return
			}
		case <-c.done:
			return
		}
	}
}
