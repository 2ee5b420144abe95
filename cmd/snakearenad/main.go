// Command snakearenad runs the snake arena's authoritative game server.
package main

import (
	"flag"
	"net"
	"os"

	"github.com/charmbracelet/log"

	"snakearena/internal/config"
	"snakearena/internal/server"
)

func main() {
	addr := flag.String("addr", ":11000", "TCP address to listen on")
	settingsPath := flag.String("settings", "", "path to the settings document (embedded default if empty)")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snakearenad",
	})

	cfg, err := config.Load(*settingsPath)
	if err != nil {
		logger.Error("cannot load settings", "path", *settingsPath, "error", err)
		os.Exit(1)
	}

	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		logger.Error("cannot bind listener", "addr", *addr, "error", err)
		os.Exit(1)
	}
	logger.Info("listening", "addr", *addr, "game_mode", cfg.GameMode, "ms_per_frame", cfg.MSPerFrame)

	srv := server.New(cfg, logger)
	if err := srv.Run(ln); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
