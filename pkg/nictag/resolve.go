package nictag

import (
	"github.com/NVIDIA/nictagadm/pkg/config"
	"github.com/NVIDIA/nictagadm/pkg/diag"
)

// Resolution is the combined view of a config: tags, etherstubs and the MAC
// diagnostics raised while resolving tags.
type Resolution struct {
	Tags        TagMap            `json:"tags" yaml:"tags"`
	Etherstubs  EtherstubList     `json:"etherstubs" yaml:"etherstubs"`
	Diagnostics []diag.Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Resolve runs ResolveTags and ResolveEtherstubs against store. Diagnostics
// are recorded in the result and also passed to the configured reporter.
func Resolve(store *config.Store, opts ...Option) *Resolution {
	o := newResolveOptions(opts)

	c := &diag.Collector{}
	tags := ResolveTags(store, WithReporter(diag.Multi(c, o.reporter)))

	return &Resolution{
		Tags:        tags,
		Etherstubs:  ResolveEtherstubs(store),
		Diagnostics: c.Diagnostics(),
	}
}
