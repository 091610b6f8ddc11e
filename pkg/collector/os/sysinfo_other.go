//go:build !linux

package os

import (
	"context"
	"errors"
	"runtime"

	"github.com/NVIDIA/nictagadm/pkg/measurement"
)

func collectSysinfo(ctx context.Context) (uptime, memory *measurement.Subtype, err error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return nil, nil, errors.New("sysinfo is not supported on " + runtime.GOOS)
}
