package collector

import (
	"github.com/NVIDIA/nictagadm/pkg/collector/nictag"
	"github.com/NVIDIA/nictagadm/pkg/collector/os"
	"github.com/NVIDIA/nictagadm/pkg/defaults"
)

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateNicTagCollector() Collector
	CreateOSCollector() Collector
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	// ConfigPath is the provisioning config read by the nic tag collector.
	ConfigPath string

	// MaxLineLength is passed to the config parser.
	MaxLineLength int
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory() *DefaultFactory {
	return &DefaultFactory{
		ConfigPath:    defaults.ConfigPath,
		MaxLineLength: defaults.MaxLineLength,
	}
}

// CreateNicTagCollector creates a nic tag collector.
func (f *DefaultFactory) CreateNicTagCollector() Collector {
	return &nictag.Collector{
		ConfigPath:    f.ConfigPath,
		MaxLineLength: f.MaxLineLength,
	}
}

// CreateOSCollector creates an OS collector.
func (f *DefaultFactory) CreateOSCollector() Collector {
	return os.NewCollector()
}
