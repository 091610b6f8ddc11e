package collector

import (
	"context"

	"github.com/NVIDIA/nictagadm/pkg/measurement"
)

// Collector defines the interface for collecting host measurement data.
// Implementations gather data from sources such as the provisioning config,
// kernel boot parameters and the running kernel identity.
// All collectors must support context-based cancellation.
type Collector interface {
	Collect(ctx context.Context) (*measurement.Measurement, error)
}
