package nictag

import (
	"maps"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/NVIDIA/nictagadm/pkg/config"
	"github.com/NVIDIA/nictagadm/pkg/diag"
)

// TagSuffix marks a config key as a nic tag definition.
const TagSuffix = "_nic"

// maxSuggestDistance is the largest edit distance Suggest still offers.
const maxSuggestDistance = 3

// TagMap maps tag names to canonical MAC addresses.
type TagMap map[string]string

// Names returns the tag names in ascending order.
func (t TagMap) Names() []string {
	return slices.Sorted(maps.Keys(t))
}

// Has reports whether tag is defined.
func (t TagMap) Has(tag string) bool {
	_, ok := t[tag]
	return ok
}

// NamesFor returns, in ascending order, the tags bound to mac. mac may be in
// any form ParseMAC accepts; an unparsable mac matches nothing.
func (t TagMap) NamesFor(mac string) []string {
	canonical, err := NormalizeMAC(mac)
	if err != nil {
		return []string{}
	}

	out := []string{}
	for _, name := range t.Names() {
		if t[name] == canonical {
			out = append(out, name)
		}
	}
	return out
}

// Suggest returns the defined tag closest to name by edit distance, for
// "did you mean" hints. It returns false when nothing is close enough.
func (t TagMap) Suggest(name string) (string, bool) {
	best, bestDist := "", maxSuggestDistance+1
	for _, candidate := range t.Names() {
		d := levenshtein.ComputeDistance(name, candidate)
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best, best != ""
}

type resolveOptions struct {
	reporter diag.Reporter
}

// Option configures ResolveTags and Resolve.
type Option func(*resolveOptions)

// WithReporter sets the destination for malformed MAC diagnostics. The default
// logs them through slog.
func WithReporter(r diag.Reporter) Option {
	return func(o *resolveOptions) {
		if r != nil {
			o.reporter = r
		}
	}
}

func newResolveOptions(opts []Option) *resolveOptions {
	o := &resolveOptions{reporter: diag.Log(nil)}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// TagName returns the tag declared by key, or false when key is not a tag
// definition. A definition ends in TagSuffix and has a non-empty name.
func TagName(key string) (string, bool) {
	if len(key) <= len(TagSuffix) || !strings.HasSuffix(key, TagSuffix) {
		return "", false
	}
	return strings.TrimSuffix(key, TagSuffix), true
}

// ResolveTags collects every "<tag>_nic" key of store into a TagMap. Values
// that are not MAC addresses are skipped and reported; ResolveTags never
// fails.
func ResolveTags(store *config.Store, opts ...Option) TagMap {
	o := newResolveOptions(opts)
	tags := make(TagMap)

	for _, key := range store.Keys() {
		name, ok := TagName(key)
		if !ok {
			continue
		}

		raw, _ := store.Get(key)
		mac, err := ParseMAC(raw)
		if err != nil {
			o.reporter.Report(diag.Diagnostic{
				Kind:   diag.MalformedMAC,
				Key:    key,
				Raw:    diag.Truncate(raw),
				Length: len(raw),
			})
			continue
		}

		tags[name] = mac.String()
	}

	return tags
}
