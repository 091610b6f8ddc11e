/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/nictagadm/pkg/api"
	"github.com/NVIDIA/nictagadm/pkg/logging"
	"github.com/NVIDIA/nictagadm/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve NIC tags over a read-only HTTP API",
		Description: `Starts an HTTP server exposing the config:

  GET /v1/nictags            all tags (?mac= filters by address)
  GET /v1/nictags/{name}     one tag
  GET /v1/etherstubs         etherstub names
  GET /v1/diagnostics        skipped lines and invalid MAC addresses
  GET /health, /ready, /metrics

The config is re-read on every request. Settings come from the optional
--settings YAML file and NICTAG_-prefixed environment variables.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "settings",
				Usage:   "server settings YAML file",
				Sources: cli.EnvVars("NICTAG_SETTINGS"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := server.LoadConfig(cmd.String("settings"))
			if err != nil {
				return fmt.Errorf("failed to load server settings: %w", err)
			}

			if !cmd.Bool("debug") && !cmd.Bool("verbose") {
				logging.SetDefaultLoggerWithLevel(name, version, cfg.LogLevel, cmd.Bool("log-json"))
			}

			h := &api.Handler{
				ConfigPath:    cmd.String("config"),
				MaxLineLength: cmd.Int("max-line-length"),
			}

			return api.Serve(ctx, version, cfg, h)
		},
	}
}
