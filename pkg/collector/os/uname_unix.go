//go:build linux || darwin

package os

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/NVIDIA/nictagadm/pkg/measurement"
)

func collectUname(ctx context.Context) (*measurement.Subtype, error) {
	// Check if context is canceled
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return nil, fmt.Errorf("uname failed: %w", err)
	}

	return &measurement.Subtype{
		Name: "uname",
		Data: map[string]measurement.Reading{
			"sysname":  measurement.Str(unix.ByteSliceToString(u.Sysname[:])),
			"nodename": measurement.Str(unix.ByteSliceToString(u.Nodename[:])),
			"release":  measurement.Str(unix.ByteSliceToString(u.Release[:])),
			"version":  measurement.Str(unix.ByteSliceToString(u.Version[:])),
			"machine":  measurement.Str(unix.ByteSliceToString(u.Machine[:])),
		},
	}, nil
}
