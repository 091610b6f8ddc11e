/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/nictagadm/pkg/diag"
	"github.com/NVIDIA/nictagadm/pkg/header"
	"github.com/NVIDIA/nictagadm/pkg/nictag"
)

// ValidationKind is the kind of the document printed by validate.
const ValidationKind = "ConfigValidation"

// Validation is the document printed by validate.
type Validation struct {
	header.Header `json:",inline" yaml:",inline"`

	Valid       bool              `json:"valid" yaml:"valid"`
	Keys        int               `json:"keys" yaml:"keys"`
	Tags        int               `json:"tags" yaml:"tags"`
	Summary     map[diag.Kind]int `json:"summary,omitempty" yaml:"summary,omitempty"`
	Diagnostics []diag.Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Report every problem found in the config",
		Description: `Parses the config and resolves its NIC tags, then reports every skipped
line and every invalid MAC address.

Use --fail-on-error for CI/CD pipelines (non-zero exit when any problem is found).`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "exit non-zero when any problem is found",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			parsed := &diag.Collector{}
			store, err := loadConfig(ctx, cmd, parsed)
			if err != nil {
				return err
			}

			res := nictag.Resolve(store, nictag.WithReporter(diag.Discard))
			v := buildValidation(cmd.String("config"), store.Len(), res, parsed.Diagnostics())

			if err := writeOutput(ctx, cmd, v); err != nil {
				return err
			}

			if cmd.Bool("fail-on-error") && !v.Valid {
				return fmt.Errorf("config validation failed: %d problem(s) found", len(v.Diagnostics))
			}
			return nil
		},
	}
}

func buildValidation(source string, keys int, res *nictag.Resolution, parsed []diag.Diagnostic) *Validation {
	all := append(parsed, res.Diagnostics...)
	if all == nil {
		all = []diag.Diagnostic{}
	}

	v := &Validation{
		Header:      *header.New(header.WithKind(ValidationKind), header.WithMetadata("source", source)),
		Valid:       len(all) == 0,
		Keys:        keys,
		Tags:        len(res.Tags),
		Diagnostics: all,
	}

	if len(all) > 0 {
		v.Summary = make(map[diag.Kind]int)
		for _, d := range all {
			v.Summary[d.Kind]++
		}
	}

	return v
}
