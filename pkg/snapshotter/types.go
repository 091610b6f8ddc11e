package snapshotter

import (
	"context"

	"github.com/NVIDIA/nictagadm/pkg/header"
	"github.com/NVIDIA/nictagadm/pkg/measurement"
)

// Snapshotter is the interface that wraps the Measure method.
// Measure collects a snapshot and writes it to the configured output.
type Snapshotter interface {
	Measure(ctx context.Context) error
}

// Snapshot is the document produced by a NodeSnapshotter.
type Snapshot struct {
	header.Header `json:",inline" yaml:",inline"`

	// Measurements holds one entry per collector, ordered by type.
	Measurements []*measurement.Measurement `json:"measurements" yaml:"measurements"`
}

// NewSnapshot creates an empty SystemInfo snapshot.
func NewSnapshot(opts ...header.Option) *Snapshot {
	opts = append([]header.Option{header.WithKind(Kind)}, opts...)
	return &Snapshot{
		Header:       *header.New(opts...),
		Measurements: make([]*measurement.Measurement, 0),
	}
}
