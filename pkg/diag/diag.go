// Package diag is the diagnostic channel for recoverable configuration
// problems.
//
// The parser and the resolvers never fail on a single bad line or a single bad
// MAC address. They skip the offending input and hand a Diagnostic to a
// Reporter so operators can still see what was ignored.
package diag

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Kind identifies the class of a Diagnostic.
type Kind string

const (
	// MalformedLine is a config line without a '=' delimiter.
	MalformedLine Kind = "malformed-line"

	// LineTooLong is a config line longer than the configured maximum.
	LineTooLong Kind = "line-too-long"

	// MalformedMAC is a <tag>_nic value that is not a valid MAC address.
	MalformedMAC Kind = "malformed-mac"
)

// SnippetLimit is the maximum number of bytes of raw input kept in a Diagnostic.
const SnippetLimit = 200

// Diagnostic describes one skipped piece of input.
type Diagnostic struct {
	Kind Kind `json:"kind" yaml:"kind"`

	// Line is the 1-based line number, or 0 when the diagnostic is not tied to
	// a line (MAC diagnostics are raised per key).
	Line int `json:"line,omitempty" yaml:"line,omitempty"`

	Key string `json:"key,omitempty" yaml:"key,omitempty"`

	// Raw is the offending input, truncated to SnippetLimit bytes.
	Raw string `json:"raw" yaml:"raw"`

	// Length is the untruncated length of the offending input in bytes.
	Length int `json:"length" yaml:"length"`
}

// String renders the diagnostic in the same terms the CLI prints.
func (d Diagnostic) String() string {
	switch d.Kind {
	case LineTooLong:
		return fmt.Sprintf("line %d is too long: %d characters - skipping", d.Line, d.Length)
	case MalformedLine:
		return fmt.Sprintf("bad line %d in config: %q", d.Line, d.Raw)
	case MalformedMAC:
		return fmt.Sprintf("failed to parse mac for %s: %q", d.Key, d.Raw)
	default:
		return fmt.Sprintf("%s: %q", d.Kind, d.Raw)
	}
}

// Truncate returns s cut to at most SnippetLimit bytes.
func Truncate(s string) string {
	if len(s) <= SnippetLimit {
		return s
	}
	return s[:SnippetLimit]
}

// Reporter receives diagnostics. Implementations shared between goroutines
// must be safe for concurrent use.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(d Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d Diagnostic) {
	f(d)
}

// Discard drops every diagnostic.
var Discard Reporter = ReporterFunc(func(Diagnostic) {})

// Log returns a Reporter that writes each diagnostic to logger at warn level.
// A nil logger means slog.Default() at report time.
func Log(logger *slog.Logger) Reporter {
	return LogLevel(logger, slog.LevelWarn)
}

// LogLevel is Log with an explicit level.
func LogLevel(logger *slog.Logger, level slog.Level) Reporter {
	return ReporterFunc(func(d Diagnostic) {
		l := logger
		if l == nil {
			l = slog.Default()
		}
		attrs := []any{
			slog.String("kind", string(d.Kind)),
			slog.Int("length", d.Length),
		}
		if d.Line > 0 {
			attrs = append(attrs, slog.Int("line", d.Line))
		}
		if d.Key != "" {
			attrs = append(attrs, slog.String("key", d.Key))
		}
		attrs = append(attrs, slog.String("raw", d.Raw))
		l.Log(context.Background(), level, "skipping invalid configuration input", attrs...)
	})
}

// Multi fans a diagnostic out to every non-nil reporter.
func Multi(reporters ...Reporter) Reporter {
	return ReporterFunc(func(d Diagnostic) {
		for _, r := range reporters {
			if r != nil {
				r.Report(d)
			}
		}
	})
}

// Collector accumulates diagnostics in report order.
type Collector struct {
	mu    sync.Mutex
	items []Diagnostic
}

// Report implements Reporter.
func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	c.items = append(c.items, d)
	c.mu.Unlock()
}

// Diagnostics returns a copy of everything reported so far.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Diagnostic, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of diagnostics reported so far.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Count returns the number of diagnostics of the given kind.
func (c *Collector) Count(kind Kind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, d := range c.items {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
