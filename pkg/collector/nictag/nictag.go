// Package nictag collects nic tags and etherstubs from the provisioning config.
package nictag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NVIDIA/nictagadm/pkg/config"
	"github.com/NVIDIA/nictagadm/pkg/defaults"
	"github.com/NVIDIA/nictagadm/pkg/diag"
	cerrors "github.com/NVIDIA/nictagadm/pkg/errors"
	"github.com/NVIDIA/nictagadm/pkg/measurement"
	"github.com/NVIDIA/nictagadm/pkg/nictag"
)

var (
	// Keys to filter out from the config subtype for privacy/security
	filterOutConfigKeys = []string{
		"*_pw",
		"*shadow*",
		"*_key",
		"*password*",
		"*secret*",
	}
)

// Collector reads the provisioning config and reports the nic tags,
// etherstubs and (filtered) raw settings it defines.
type Collector struct {
	// ConfigPath is the config file to read. Defaults to defaults.ConfigPath.
	ConfigPath string

	// MaxLineLength is passed to the parser. Zero means defaults.MaxLineLength
	// and a negative value disables the check.
	MaxLineLength int

	// Reporter receives parse and MAC diagnostics in addition to the logger.
	Reporter diag.Reporter
}

// Collect loads and resolves the config. A missing config file is not an
// error: the node is simply not provisioned from a USB key, and an empty
// measurement is returned.
func (c *Collector) Collect(ctx context.Context) (*measurement.Measurement, error) {
	// Check if context is canceled
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := c.ConfigPath
	if path == "" {
		path = defaults.ConfigPath
	}
	maxLine := c.MaxLineLength
	if maxLine == 0 {
		maxLine = defaults.MaxLineLength
	}

	counted := diag.ReporterFunc(func(d diag.Diagnostic) {
		configDiagnosticsTotal.WithLabelValues(string(d.Kind)).Inc()
	})
	reporter := diag.Multi(diag.Log(nil), counted, c.Reporter)

	store, err := config.Load(ctx, path,
		config.WithMaxLineLength(maxLine),
		config.WithReporter(reporter),
	)
	if err != nil {
		if cerrors.IsCode(err, cerrors.ErrCodeNotFound) {
			slog.Warn("nic tag config not found, skipping", slog.String("path", path))
			return &measurement.Measurement{Type: measurement.TypeNicTag, Subtypes: []measurement.Subtype{}}, nil
		}
		return nil, fmt.Errorf("failed to load nic tag config: %w", err)
	}

	res := nictag.Resolve(store, nictag.WithReporter(reporter))

	slog.Debug("resolved nic tags",
		slog.String("path", path),
		slog.Int("tags", len(res.Tags)),
		slog.Int("etherstubs", len(res.Etherstubs)),
	)

	tags := make(map[string]measurement.Reading, len(res.Tags))
	for name, mac := range res.Tags {
		tags[name] = measurement.Str(mac)
	}

	settings := make(map[string]measurement.Reading, store.Len())
	for _, e := range store.Entries() {
		settings[e.Key] = measurement.Str(e.Value)
	}

	return &measurement.Measurement{
		Type: measurement.TypeNicTag,
		Subtypes: []measurement.Subtype{
			{
				Name: "tags",
				Data: tags,
			},
			{
				Name: "etherstubs",
				Data: map[string]measurement.Reading{
					"names": measurement.Strs(res.Etherstubs),
				},
			},
			{
				Name: "config",
				Data: measurement.FilterOut(settings, filterOutConfigKeys),
			},
		},
	}, nil
}
