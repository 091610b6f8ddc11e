/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/nictagadm/pkg/diag"
	"github.com/NVIDIA/nictagadm/pkg/nictag"
)

func existsCmd() *cli.Command {
	return &cli.Command{
		Name:      "exists",
		Usage:     "Check that NIC tags are defined",
		ArgsUsage: "TAG [TAG...]",
		Description: `Exits zero when every named tag is defined in the config. Otherwise fails
naming each missing tag, with a suggestion when a defined tag is close.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			names := cmd.Args().Slice()
			if len(names) == 0 {
				return errors.New("at least one tag name is required")
			}

			store, err := loadConfig(ctx, cmd, diag.Log(nil))
			if err != nil {
				return err
			}

			tags := nictag.ResolveTags(store, nictag.WithReporter(diag.Log(nil)))

			return checkTags(tags, names)
		},
	}
}

// checkTags returns an error listing every name not in tags.
func checkTags(tags nictag.TagMap, names []string) error {
	var missing []string
	for _, n := range names {
		if tags.Has(n) {
			continue
		}
		msg := fmt.Sprintf("%q", n)
		if s, ok := tags.Suggest(n); ok {
			msg += fmt.Sprintf(" (did you mean %q?)", s)
		}
		missing = append(missing, msg)
	}

	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("nic tag does not exist: %s", strings.Join(missing, ", "))
}
