// Package rules models lint rule configuration: a severity plus an ordered
// list of options, keyed by rule name. Values are compared after
// normalization, so two configurations that mean the same thing compare
// equal regardless of how their authors spelled them.
package rules

import (
	"encoding/json"
	"reflect"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

// ID identifies a lint rule within one linter's namespace.
type ID string

// String returns the string representation of a rule ID
func (id ID) String() string {
	return string(id)
}

// Severity is the canonical severity of a rule.
type Severity string

// Canonical severities.
const (
	Off   Severity = "off"
	Warn  Severity = "warn"
	Error Severity = "error"
)

// Value is the configuration of a single rule.
type Value struct {
	Severity Severity
	Options  []any
}

// Enabled reports whether the rule is switched on.
func (v Value) Enabled() bool {
	return Normalize(v).Severity != Off
}

// Equal reports whether two values are the same after normalization.
// Only the options go through cmp: Value has an Equal method, which cmp
// would call back into.
func Equal(a, b Value) bool {
	na, nb := Normalize(a), Normalize(b)
	return na.Severity == nb.Severity && cmp.Equal(na.Options, nb.Options, exportAll)
}

// Option values may hold arbitrary structs handed in by library callers.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Equal reports whether v and other are the same after normalization.
func (v Value) Equal(other Value) bool {
	return Equal(v, other)
}

// raw returns the ESLint wire form: a bare severity, or [severity, options...].
func (v Value) raw() any {
	n := Normalize(v)
	if len(n.Options) == 0 {
		return string(n.Severity)
	}
	out := make([]any, 0, len(n.Options)+1)
	out = append(out, string(n.Severity))
	return append(out, n.Options...)
}

// String renders the value in its ESLint JSON form.
func (v Value) String() string {
	data, err := json.Marshal(v.raw())
	if err != nil {
		return string(v.Severity)
	}
	return string(data)
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.raw())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = Parse(raw)
	return nil
}

// MarshalYAML implements yaml.InterfaceMarshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.raw(), nil
}

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (v *Value) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	*v = Parse(raw)
	return nil
}

// Map is a set of rule values keyed by rule ID.
type Map map[ID]Value

// IDs returns the rule IDs in sorted order.
func (m Map) IDs() []ID {
	ids := make([]ID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Clone returns a shallow copy of the map. A nil map clones to an empty one.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for id, v := range m {
		out[id] = v
	}
	return out
}

// Merge overlays maps in order into a new map; later maps win on collision.
func Merge(maps ...Map) Map {
	size := 0
	for _, m := range maps {
		size += len(m)
	}
	out := make(Map, size)
	for _, m := range maps {
		for id, v := range m {
			out[id] = v
		}
	}
	return out
}

// MarshalYAML emits rules sorted by ID so output files are reproducible.
func (m Map) MarshalYAML() (any, error) {
	out := make(yaml.MapSlice, 0, len(m))
	for _, id := range m.IDs() {
		out = append(out, yaml.MapItem{Key: string(id), Value: m[id]})
	}
	return out, nil
}
