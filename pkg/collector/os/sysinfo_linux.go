//go:build linux

package os

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sys/unix"

	"github.com/NVIDIA/nictagadm/pkg/measurement"
)

// collectSysinfo returns the uptime and memory subtypes from sysinfo(2).
func collectSysinfo(ctx context.Context) (uptime, memory *measurement.Subtype, err error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return nil, nil, fmt.Errorf("sysinfo failed: %w", err)
	}

	up := time.Duration(int64(si.Uptime)) * time.Second
	uptime = &measurement.Subtype{
		Name: "uptime",
		Data: map[string]measurement.Reading{
			"boot_time":      measurement.Str(time.Now().Add(-up).UTC().Format(time.RFC3339)),
			"uptime_seconds": measurement.Int(int(si.Uptime)),
		},
	}

	// mem_unit is 0 on kernels older than 2.3.23
	unit := uint64(si.Unit)
	if unit == 0 {
		unit = 1
	}
	memory = &measurement.Subtype{
		Name: "memory",
		Data: map[string]measurement.Reading{
			"total_mib": measurement.Int(int(uint64(si.Totalram) * unit >> 20)),
			"free_mib":  measurement.Int(int(uint64(si.Freeram) * unit >> 20)),
		},
	}

	return uptime, memory, nil
}
