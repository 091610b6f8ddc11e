/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/nictagadm/pkg/collector"
	"github.com/NVIDIA/nictagadm/pkg/serializer"
	"github.com/NVIDIA/nictagadm/pkg/snapshotter"
)

func sysinfoCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sysinfo",
		EnableShellCompletion: true,
		Usage:                 "Capture a snapshot of the host network configuration",
		Description: `Captures a snapshot of the current host including:
  - NIC tags and etherstubs from the provisioning config
  - Provisioning config keys (secrets removed)
  - Kernel boot parameters
  - Kernel identity (uname)

The snapshot can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
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

			// the collector treats zero as "use the default"
			maxLine := cmd.Int("max-line-length")
			if maxLine == 0 {
				maxLine = -1
			}

			ns := snapshotter.NodeSnapshotter{
				Version: version,
				Factory: &collector.DefaultFactory{
					ConfigPath:    cmd.String("config"),
					MaxLineLength: maxLine,
				},
				Serializer: ser,
			}

			return ns.Measure(ctx)
		},
	}
}
