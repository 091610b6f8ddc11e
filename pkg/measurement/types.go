package measurement

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Type identifies the source of a Measurement.
type Type string

const (
	// TypeNicTag holds nic tags and etherstubs resolved from the provisioning config.
	TypeNicTag Type = "NicTag"

	// TypeOS holds operating system facts such as boot parameters and uname.
	TypeOS Type = "OS"
)

// Reading is a single typed value of a Subtype.
type Reading struct {
	value any
}

// Str creates a string Reading.
func Str(v string) Reading { return Reading{value: v} }

// Int creates an integer Reading.
func Int(v int) Reading { return Reading{value: v} }

// Bool creates a boolean Reading.
func Bool(v bool) Reading { return Reading{value: v} }

// Strs creates an ordered string list Reading. The slice is copied.
func Strs(v []string) Reading {
	out := make([]string, len(v))
	copy(out, v)
	return Reading{value: out}
}

// Any returns the underlying value.
func (r Reading) Any() any {
	return r.value
}

// String renders the value for table output.
func (r Reading) String() string {
	return fmt.Sprint(r.value)
}

// MarshalJSON implements json.Marshaler.
func (r Reading) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Reading) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &r.value)
}

// MarshalYAML implements yaml.Marshaler.
func (r Reading) MarshalYAML() (any, error) {
	return r.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Reading) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&r.value)
}

// Subtype is a named group of readings within a Measurement.
type Subtype struct {
	Name string             `json:"subtype" yaml:"subtype"`
	Data map[string]Reading `json:"data" yaml:"data"`
}

// Measurement is the output of one collector.
type Measurement struct {
	Type     Type      `json:"type" yaml:"type"`
	Subtypes []Subtype `json:"subtypes" yaml:"subtypes"`
}

// GetSubtype returns the subtype with the given name.
func (m *Measurement) GetSubtype(name string) (*Subtype, bool) {
	if m == nil {
		return nil, false
	}
	for i := range m.Subtypes {
		if m.Subtypes[i].Name == name {
			return &m.Subtypes[i], true
		}
	}
	return nil, false
}
