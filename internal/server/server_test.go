package server

import (
	"bufio"
	"net"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"snakearena/internal/config"
)

func testServer() *Server {
	cfg := config.Default()
	cfg.UniverseSize = 2000
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	return New(cfg, logger)
}

// waitForClients blocks until the registry reaches n clients; registration
// happens on the handshake goroutine slightly after the last handshake
// byte is readable on the client side.
func waitForClients(t *testing.T, srv *Server, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for srv.clients.count() != n {
		if time.Now().After(deadline) {
			t.Fatalf("registered clients = %d, want %d", srv.clients.count(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHandshakeSendsIDAndUniverseSize(t *testing.T) {
	srv := testServer()
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()

	done := make(chan struct{})
	go func() {
		srv.handleConnection(serverConn)
		close(done)
	}()

	if _, err := clientConn.Write([]byte("alice\n")); err != nil {
		t.Fatal(err)
	}

	reader := bufio.NewReader(clientConn)
	idLine, err := reader.ReadString('\n')
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(idLine) != "1" {
		t.Fatalf("first client got id line %q, want \"1\"", idLine)
	}

	sizeLine, err := reader.ReadString('\n')
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(sizeLine) != "2000" {
		t.Fatalf("universe size line = %q, want \"2000\"", sizeLine)
	}

	waitForClients(t, srv, 1)
	snake, ok := srv.world.Snakes()[1]
	if !ok || snake.RealName != "alice" {
		t.Fatalf("snake 1 = %+v, ok=%v, want RealName alice", snake, ok)
	}

	clientConn.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handleConnection did not exit after client closed")
	}
}

func TestHandshakeRejectsMissingName(t *testing.T) {
	srv := testServer()
	clientConn, serverConn := net.Pipe()

	done := make(chan struct{})
	go func() {
		srv.handleConnection(serverConn)
		close(done)
	}()

	clientConn.Close() // EOF before any "\n"

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handleConnection did not exit on empty handshake")
	}
	if srv.clients.count() != 0 {
		t.Fatalf("registered clients = %d, want 0", srv.clients.count())
	}
}

func TestBroadcastReachesConnectedClient(t *testing.T) {
	srv := testServer()
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()

	go srv.handleConnection(serverConn)

	if _, err := clientConn.Write([]byte("bob\n")); err != nil {
		t.Fatal(err)
	}
	reader := bufio.NewReader(clientConn)
	if _, err := reader.ReadString('\n'); err != nil { // id
		t.Fatal(err)
	}
	if _, err := reader.ReadString('\n'); err != nil { // universe size
		t.Fatal(err)
	}
	waitForClients(t, srv, 1)

	srv.clients.broadcast([]byte(`{"snake":1}` + "\n"))

	line, err := reader.ReadString('\n')
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(line) != `{"snake":1}` {
		t.Fatalf("broadcast line = %q, want {\"snake\":1}", line)
	}
}
