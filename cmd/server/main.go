package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JaimeStill/backup-service/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	srv, err := NewServer(cfg)
	if err != nil {
		slog.Error("service init failed", "error", err)
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		slog.Error("service start failed", "error", err)
		os.Exit(1)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	for sig := range signals {
		if sig == syscall.SIGHUP {
			srv.Reload()
			continue
		}
		break
	}

	if err := srv.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
		slog.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}
