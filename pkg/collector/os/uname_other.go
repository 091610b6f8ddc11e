//go:build !linux && !darwin

package os

import (
	"context"
	"errors"
	"runtime"

	"github.com/NVIDIA/nictagadm/pkg/measurement"
)

func collectUname(ctx context.Context) (*measurement.Subtype, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, errors.New("uname is not supported on " + runtime.GOOS)
}
