// Package serializer writes command and snapshot output as JSON, YAML or a
// two-column table, to stdout or to a file.
package serializer

import "context"

// Serializer encodes a value to its destination.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}

// Closer releases the destination held by a Serializer.
type Closer interface {
	Close() error
}
