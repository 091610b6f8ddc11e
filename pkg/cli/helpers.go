/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/nictagadm/pkg/config"
	"github.com/NVIDIA/nictagadm/pkg/diag"
	"github.com/NVIDIA/nictagadm/pkg/serializer"
)

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   "output format (yaml, json, table)",
	}
}

// parseOutputFormat extracts and validates the output format from CLI flags.
// Returns the validated format or an error if the format is unknown.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: yaml, json, table", outFormat)
	}
	return outFormat, nil
}

// loadConfig reads the config named by the global flags. Skipped lines go to
// reporter.
func loadConfig(ctx context.Context, cmd *cli.Command, reporter diag.Reporter) (*config.Store, error) {
	path := cmd.String("config")
	slog.Debug("loading config", slog.String("path", path))

	store, err := config.Load(ctx, path,
		config.WithMaxLineLength(cmd.Int("max-line-length")),
		config.WithReporter(reporter),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return store, nil
}

// writeOutput serializes data to the destination named by the output flags.
func writeOutput(ctx context.Context, cmd *cli.Command, data any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	if err != nil {
		return err
	}
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	return ser.Serialize(ctx, data)
}
