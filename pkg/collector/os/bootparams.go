package os

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/NVIDIA/nictagadm/pkg/measurement"
)

var (
	// Keys to filter out from boot parameters for privacy/security
	filterOutBootKeys = []string{
		"root_shadow",
		"*_pw",
	}
)

// collectBootParams reads the kernel command line and returns each boot
// parameter as a key-value pair.
func (c *Collector) collectBootParams(ctx context.Context) (*measurement.Subtype, error) {
	// Check if context is canceled
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cmdline, err := os.ReadFile(c.CmdlinePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read boot parameters: %w", err)
	}

	if !utf8.Valid(cmdline) {
		return nil, fmt.Errorf("boot parameters contain invalid UTF-8")
	}

	// Limit size (1MB max)
	const maxSize = 1 << 20
	if len(cmdline) > maxSize {
		return nil, fmt.Errorf("boot parameters exceed maximum size of %d bytes", maxSize)
	}

	return &measurement.Subtype{
		Name: "bootparams",
		Data: measurement.FilterOut(parseBootParams(string(cmdline)), filterOutBootKeys),
	}, nil
}

// parseBootParams splits a kernel command line into parameters. Values like
// "root=PARTUUID=xyz" keep everything after the first '='.
func parseBootParams(cmdline string) map[string]measurement.Reading {
	props := make(map[string]measurement.Reading)
	for _, p := range strings.Fields(cmdline) {
		key, val, _ := strings.Cut(p, "=")
		props[key] = measurement.Str(val)
	}
	return props
}
