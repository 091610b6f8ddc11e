package os

import (
	"bufio"
	"context"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/NVIDIA/nictagadm/pkg/measurement"
)

// collectCPU reports the logical core count and, when CpuinfoPath is
// readable, the number of distinct physical cores.
func (c *Collector) collectCPU(ctx context.Context) (*measurement.Subtype, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	st := &measurement.Subtype{
		Name: "cpu",
		Data: map[string]measurement.Reading{
			"total_cores": measurement.Int(runtime.NumCPU()),
		},
	}

	if c.CpuinfoPath == "" {
		return st, nil
	}
	f, err := os.Open(c.CpuinfoPath)
	if err != nil {
		return st, nil
	}
	defer f.Close()

	if n := countPhysicalCores(f); n > 0 {
		st.Data["physical_cores"] = measurement.Int(n)
	}
	return st, nil
}

// countPhysicalCores counts distinct (physical id, core id) pairs in
// /proc/cpuinfo content. It returns 0 when the input carries no topology.
func countPhysicalCores(r io.Reader) int {
	cores := make(map[[2]string]struct{})
	var pkg, core string

	flush := func() {
		if pkg != "" && core != "" {
			cores[[2]string{pkg, core}] = struct{}{}
		}
		pkg, core = "", ""
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		switch strings.TrimSpace(k) {
		case "physical id":
			pkg = strings.TrimSpace(v)
		case "core id":
			core = strings.TrimSpace(v)
		}
	}
	flush()

	return len(cores)
}
