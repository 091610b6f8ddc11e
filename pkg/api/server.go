package api

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/nictagadm/pkg/server"
)

const name = "nictagadm"

// Serve starts the read-only nic tag API and blocks until ctx is canceled.
func Serve(ctx context.Context, version string, cfg *server.Config, h *Handler) error {
	if h == nil {
		h = NewHandler()
	}

	slog.Info("starting",
		"name", name,
		"version", version,
		"config", h.ConfigPath,
	)

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithConfig(cfg),
		server.WithHandler(h.Routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
