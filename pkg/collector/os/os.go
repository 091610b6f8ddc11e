package os

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/nictagadm/pkg/measurement"
)

// Collector gathers OS facts.
type Collector struct {
	// CmdlinePath is the kernel command line source.
	CmdlinePath string

	// CpuinfoPath is read for the physical core count. Empty skips it.
	CpuinfoPath string
}

// NewCollector creates a Collector reading the live system.
func NewCollector() *Collector {
	return &Collector{
		CmdlinePath: "/proc/cmdline",
		CpuinfoPath: "/proc/cpuinfo",
	}
}

// Collect gathers boot parameters, uname, uptime, memory and CPU facts.
// Sources that cannot be read are skipped with a warning.
func (c *Collector) Collect(ctx context.Context) (*measurement.Measurement, error) {
	res := &measurement.Measurement{
		Type:     measurement.TypeOS,
		Subtypes: make([]measurement.Subtype, 0, 5),
	}

	add := func(what string, st *measurement.Subtype, err error) error {
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			slog.Warn("skipping "+what, slog.String("error", err.Error()))
			return nil
		}
		if st != nil {
			res.Subtypes = append(res.Subtypes, *st)
		}
		return nil
	}

	boot, err := c.collectBootParams(ctx)
	if err := add("boot parameters", boot, err); err != nil {
		return nil, err
	}

	un, err := collectUname(ctx)
	if err := add("uname", un, err); err != nil {
		return nil, err
	}

	uptime, memory, err := collectSysinfo(ctx)
	if err := add("uptime and memory", uptime, err); err != nil {
		return nil, err
	}
	_ = add("memory", memory, nil)

	cpu, err := c.collectCPU(ctx)
	if err := add("cpu", cpu, err); err != nil {
		return nil, err
	}

	return res, nil
}
