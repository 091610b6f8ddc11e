package config

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/nictagadm/pkg/defaults"
	"github.com/NVIDIA/nictagadm/pkg/diag"
	cerrors "github.com/NVIDIA/nictagadm/pkg/errors"
)

type parseOptions struct {
	maxLineLength int
	maxBufferSize int
	reporter      diag.Reporter
}

// Option configures Parse and Load.
type Option func(*parseOptions)

// WithMaxLineLength sets the longest accepted line in bytes, excluding the
// '\n' terminator. A value <= 0 disables the check.
func WithMaxLineLength(n int) Option {
	return func(o *parseOptions) {
		o.maxLineLength = n
	}
}

// WithMaxBufferSize sets the largest buffer Parse accepts, in bytes.
// A value <= 0 disables the check.
func WithMaxBufferSize(n int) Option {
	return func(o *parseOptions) {
		o.maxBufferSize = n
	}
}

// WithReporter sets the destination for skipped-line diagnostics. The default
// logs them through slog.
func WithReporter(r diag.Reporter) Option {
	return func(o *parseOptions) {
		if r != nil {
			o.reporter = r
		}
	}
}

func newParseOptions(opts []Option) *parseOptions {
	o := &parseOptions{
		maxLineLength: defaults.MaxLineLength,
		maxBufferSize: defaults.MaxConfigSize,
		reporter:      diag.Log(nil),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Parse builds a Store from buf.
//
// Malformed and over-long lines are skipped and reported; they never make
// Parse fail. The only error is ErrCodeResourceExhausted for a buffer larger
// than the configured maximum.
func Parse(buf []byte, opts ...Option) (*Store, error) {
	o := newParseOptions(opts)

	if o.maxBufferSize > 0 && len(buf) > o.maxBufferSize {
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeResourceExhausted,
			"config buffer exceeds maximum size",
			fmt.Errorf("%d bytes > %d bytes", len(buf), o.maxBufferSize),
			map[string]any{"size": len(buf), "limit": o.maxBufferSize})
	}

	text := string(buf)
	values := make(map[string]string)

	lineNo := 0
	for len(text) > 0 {
		lineNo++

		var line string
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i], text[i+1:]
		} else {
			line, text = text, ""
		}

		if o.maxLineLength > 0 && len(line) > o.maxLineLength {
			o.reporter.Report(diag.Diagnostic{
				Kind:   diag.LineTooLong,
				Line:   lineNo,
				Raw:    diag.Truncate(line),
				Length: len(line),
			})
			continue
		}

		if line == "" || line[0] == '#' {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			o.reporter.Report(diag.Diagnostic{
				Kind:   diag.MalformedLine,
				Line:   lineNo,
				Raw:    diag.Truncate(line),
				Length: len(line),
			})
			continue
		}

		values[key] = value
	}

	return &Store{values: values}, nil
}
