// Package defaults provides centralized configuration constants for nictagadm.
//
// This package defines file locations, input limits, timeout values, and other
// defaults used across the codebase. Centralizing these values ensures
// consistency and makes tuning easier.
//
// # Categories
//
//   - Config source: where the provisioning config lives and how large it may be
//   - Parser limits: maximum line length before a line is rejected
//   - Collector timeouts: for host data collection operations
//   - Server settings: HTTP listener, rate limiting and shutdown timeouts
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/NVIDIA/nictagadm/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CollectorTimeout)
//	defer cancel()
//
// # Guidelines
//
//   - Collectors: 10s default, respects parent context deadline
//   - HTTP handlers: 10s per request, the config file is small
//   - Server shutdown: 30s for graceful shutdown
package defaults
