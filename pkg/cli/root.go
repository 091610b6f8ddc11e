/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/nictagadm/pkg/defaults"
	"github.com/NVIDIA/nictagadm/pkg/logging"
)

const name = "nictagadm"

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/nictagadm/pkg/cli.version=1.0.0"
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func init() {
	// -v is taken by --verbose
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

// Execute runs the nictagadm command line and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Inspect NIC tags and etherstubs in the provisioning config",
		Version:               fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   defaults.ConfigPath,
				Usage:   "provisioning config file",
				Sources: cli.EnvVars("NICTAG_CONFIG"),
			},
			&cli.IntFlag{
				Name:    "max-line-length",
				Value:   defaults.MaxLineLength,
				Usage:   "longest accepted config line in bytes (0 disables the check)",
				Sources: cli.EnvVars("NICTAG_MAX_LINE_LENGTH"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable info logging",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "output logs in JSON format",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultLoggerWithLevel(name, version, logLevel(cmd), cmd.Bool("log-json"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			listCmd(),
			existsCmd(),
			validateCmd(),
			sysinfoCmd(),
			serveCmd(),
		},
	}
}

// logLevel picks the level from the flags, then LOG_LEVEL, then warn.
func logLevel(cmd *cli.Command) string {
	switch {
	case cmd.Bool("debug"):
		return "debug"
	case cmd.Bool("verbose"):
		return "info"
	}
	if lvl := os.Getenv(logging.EnvLogLevel); lvl != "" {
		return lvl
	}
	return "warn"
}
