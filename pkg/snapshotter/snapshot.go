package snapshotter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/nictagadm/pkg/collector"
	"github.com/NVIDIA/nictagadm/pkg/defaults"
	"github.com/NVIDIA/nictagadm/pkg/header"
	"github.com/NVIDIA/nictagadm/pkg/measurement"
	"github.com/NVIDIA/nictagadm/pkg/serializer"
)

// NodeSnapshotter collects nic tag and OS measurements from the current host.
// Collectors run in parallel and the results are serialized as one document.
type NodeSnapshotter struct {
	// Version is the nictagadm version recorded in the snapshot metadata.
	Version string

	// Factory is the collector factory to use. If nil, the default factory is used.
	Factory collector.Factory

	// Serializer is the serializer to use for output. If nil, a default stdout JSON serializer is used.
	Serializer serializer.Serializer

	// Timeout bounds the whole collection. Zero means defaults.SnapshotTimeout.
	Timeout time.Duration
}

// Measure collects a snapshot and serializes it with the configured Serializer.
func (n *NodeSnapshotter) Measure(ctx context.Context) error {
	snap, err := n.Collect(ctx)
	if err != nil {
		return err
	}

	if n.Serializer == nil {
		n.Serializer = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	if err := n.Serializer.Serialize(ctx, snap); err != nil {
		slog.Error("failed to serialize", slog.String("error", err.Error()))
		return fmt.Errorf("failed to serialize: %w", err)
	}

	return nil
}

// Collect runs every collector and returns the assembled snapshot.
// If any collector fails, the entire operation returns an error.
func (n *NodeSnapshotter) Collect(ctx context.Context) (*Snapshot, error) {
	if n.Factory == nil {
		n.Factory = collector.NewDefaultFactory()
	}

	timeout := n.Timeout
	if timeout <= 0 {
		timeout = defaults.SnapshotTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	slog.Debug("starting host snapshot")

	start := time.Now()
	defer func() {
		snapshotCollectionDuration.Observe(time.Since(start).Seconds())
	}()

	hostname, err := os.Hostname()
	if err != nil {
		slog.Warn("failed to determine hostname", slog.String("error", err.Error()))
		hostname = "unknown"
	}

	snap := NewSnapshot(
		header.WithMetadata("version", n.Version),
		header.WithMetadata("source-host", hostname),
	)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	run := func(name string, c collector.Collector) {
		g.Go(func() error {
			collectorStart := time.Now()
			defer func() {
				snapshotCollectorDuration.WithLabelValues(name).Observe(time.Since(collectorStart).Seconds())
			}()

			cctx, ccancel := context.WithTimeout(gctx, defaults.CollectorTimeout)
			defer ccancel()

			slog.Debug("collecting", slog.String("collector", name))
			m, err := c.Collect(cctx)
			if err != nil {
				slog.Error("collector failed", slog.String("collector", name), slog.String("error", err.Error()))
				return fmt.Errorf("failed to collect %s info: %w", name, err)
			}
			if m == nil {
				return nil
			}

			mu.Lock()
			snap.Measurements = append(snap.Measurements, m)
			mu.Unlock()
			return nil
		})
	}

	run("nictag", n.Factory.CreateNicTagCollector())
	run("os", n.Factory.CreateOSCollector())

	if err := g.Wait(); err != nil {
		snapshotCollectionTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	sortMeasurements(snap.Measurements)

	snapshotCollectionTotal.WithLabelValues("success").Inc()
	snapshotMeasurementCount.Set(float64(len(snap.Measurements)))

	slog.Debug("snapshot collection complete", slog.Int("measurements", len(snap.Measurements)))

	return snap, nil
}

// sortMeasurements orders measurements by type so output does not depend on
// which collector finished first.
func sortMeasurements(ms []*measurement.Measurement) {
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].Type < ms[j].Type
	})
}
