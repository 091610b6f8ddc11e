// Package os collects operating system facts for sysinfo.
//
// The collector returns a measurement with up to 5 subtypes:
//
// 1. bootparams - Kernel boot parameters:
//   - every key=value token of the kernel command line
//   - bare flags (no '=') are recorded with an empty value
//   - secrets such as root passwords are filtered out
//
// 2. uname - Running kernel identity:
//   - sysname, nodename, release, version, machine
//
// 3. uptime - Boot time (RFC3339, UTC) and uptime in seconds. Linux only.
//
// 4. memory - Total and free memory in MiB. Linux only.
//
// 5. cpu - Logical core count, plus distinct physical cores when
// /proc/cpuinfo exposes the topology.
//
// # Usage
//
//	collector := os.NewCollector()
//	m, err := collector.Collect(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Data Sources
//
//   - /proc/cmdline: kernel boot parameters
//   - uname(2): kernel identity
//   - sysinfo(2): uptime and memory
//   - /proc/cpuinfo: physical core topology
//
// # Error Handling
//
// The collector continues on non-critical errors (missing /proc/cmdline,
// uname or sysinfo unsupported on the platform) and returns partial results. Only context
// cancellation returns an error.
package os
