/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/nictagadm/pkg/diag"
	"github.com/NVIDIA/nictagadm/pkg/header"
	"github.com/NVIDIA/nictagadm/pkg/nictag"
)

// ListKind is the kind of the document printed by list.
const ListKind = "NicTagList"

// Listing is the document printed by list.
type Listing struct {
	header.Header `json:",inline" yaml:",inline"`

	Tags       nictag.TagMap        `json:"tags" yaml:"tags"`
	Etherstubs nictag.EtherstubList `json:"etherstubs" yaml:"etherstubs"`
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:                  "list",
		EnableShellCompletion: true,
		Usage:                 "List NIC tags and etherstubs",
		Description: `Lists every <tag>_nic entry of the config with its canonical MAC address,
and the etherstubs named by the etherstub key.

Invalid lines and invalid MAC addresses are skipped with a warning on stderr.`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			store, err := loadConfig(ctx, cmd, diag.Log(nil))
			if err != nil {
				return err
			}

			res := nictag.Resolve(store, nictag.WithReporter(diag.Log(nil)))

			return writeOutput(ctx, cmd, &Listing{
				Header:     *header.New(header.WithKind(ListKind), header.WithMetadata("source", cmd.String("config"))),
				Tags:       res.Tags,
				Etherstubs: res.Etherstubs,
			})
		},
	}
}
