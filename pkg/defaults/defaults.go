package defaults

import "time"

// Config source.
const (
	// ConfigPath is the provisioning config on the USB key.
	ConfigPath = "/usbkey/config"

	// MaxConfigSize caps the number of bytes read and parsed from a config
	// source. Larger inputs are rejected as a resource failure.
	MaxConfigSize = 16 << 20

	// MaxLineLength is the longest config line, in bytes and excluding the
	// line terminator, the parser accepts.
	MaxLineLength = 1024
)

// Collector timeouts.
const (
	// CollectorTimeout bounds a single collector run.
	CollectorTimeout = 10 * time.Second

	// SnapshotTimeout bounds a full sysinfo snapshot.
	SnapshotTimeout = 30 * time.Second
)

// Server settings.
const (
	ServerPort            = 8080
	ServerRateLimit       = 100
	ServerRateLimitBurst  = 200
	ServerReadTimeout     = 10 * time.Second
	ServerWriteTimeout    = 30 * time.Second
	ServerIdleTimeout     = 120 * time.Second
	ServerShutdownTimeout = 30 * time.Second
	HandlerTimeout        = 10 * time.Second
)
