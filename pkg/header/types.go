// Package header provides the Kind/APIVersion/Metadata envelope shared by
// every document nictagadm emits.
package header

import (
	"time"
)

const (
	// APIDomain is the API group of nictagadm documents.
	APIDomain = "nictag.nvidia.com"

	// APIVersionV1Alpha1 is the current schema version.
	APIVersionV1Alpha1 = "v1alpha1"

	// FullAPIVersion is the value written to the apiVersion field.
	FullAPIVersion = APIDomain + "/" + APIVersionV1Alpha1

	// TimestampKey is the metadata key holding the document creation time.
	TimestampKey = "timestamp"
)

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair to the Header.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind returns an Option that sets the Kind field of the Header.
func WithKind(kind string) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion returns an Option that overrides the APIVersion field.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// New creates a Header stamped with the current API version and a UTC
// creation timestamp, then applies opts.
func New(opts ...Option) *Header {
	h := &Header{
		APIVersion: FullAPIVersion,
		Metadata: map[string]string{
			TimestampKey: time.Now().UTC().Format(time.RFC3339),
		},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Header contains metadata and versioning information for nictagadm documents.
type Header struct {
	// Kind is the type of the document.
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs describing the document.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
