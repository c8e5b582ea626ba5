package rules

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// ParseSeverity interprets the severity spellings used across ESLint and
// TSLint configs. It reports false when raw is not a recognizable severity.
func ParseSeverity(raw any) (Severity, bool) {
	switch v := raw.(type) {
	case nil:
		return Off, true
	case Severity:
		return ParseSeverity(string(v))
	case bool:
		if v {
			return Error, true
		}
		return Off, true
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		switch s {
		case "off", "false", "none":
			return Off, true
		case "warn", "warning":
			return Warn, true
		case "error", "on", "true":
			return Error, true
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return severityFromNumber(n), true
		}
		return "", false
	}
	if n, ok := toFloat(raw); ok {
		return severityFromNumber(n), true
	}
	return "", false
}

func severityFromNumber(n float64) Severity {
	switch {
	case n < 1:
		return Off
	case n < 2:
		return Warn
	default:
		return Error
	}
}

// Parse turns any raw rule configuration into a normalized Value. It never
// fails: input that carries no recognizable severity is treated as an
// enabled rule whose options are the input itself.
func Parse(raw any) Value {
	switch v := raw.(type) {
	case Value:
		return Normalize(v)
	case *Value:
		if v == nil {
			return Value{Severity: Off}
		}
		return Normalize(*v)
	}

	if sev, ok := ParseSeverity(raw); ok {
		return Value{Severity: sev}
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := normalizeOption(raw).([]any)
		if len(items) == 0 {
			return Value{Severity: Off}
		}
		if sev, ok := ParseSeverity(items[0]); ok {
			return Normalize(Value{Severity: sev, Options: items[1:]})
		}
		return Normalize(Value{Severity: Error, Options: items})
	case reflect.Map:
		if obj, ok := normalizeOption(raw).(map[string]any); ok {
			if v, ok := fromObject(obj); ok {
				return v
			}
		}
	}
	return Normalize(Value{Severity: Error, Options: []any{raw}})
}

// fromObject reads the {severity, options} object form produced by rule
// converters, accepting either naming convention.
func fromObject(obj map[string]any) (Value, bool) {
	sevRaw, hasSev := firstKey(obj, "ruleSeverity", "severity")
	optRaw, hasOpts := firstKey(obj, "ruleArguments", "options")
	if !hasSev && !hasOpts {
		return Value{}, false
	}
	for key := range obj {
		switch key {
		case "ruleSeverity", "severity", "ruleArguments", "options", "ruleName":
		default:
			return Value{}, false
		}
	}

	sev := Error
	if hasSev {
		parsed, ok := ParseSeverity(sevRaw)
		if !ok {
			return Value{}, false
		}
		sev = parsed
	}

	var opts []any
	if hasOpts && optRaw != nil {
		if list, ok := optRaw.([]any); ok {
			opts = list
		} else {
			opts = []any{optRaw}
		}
	}
	return Normalize(Value{Severity: sev, Options: opts}), true
}

func firstKey(obj map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := obj[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// Normalize returns the canonical form of v. Severities are mapped to
// off/warn/error (unknown spellings count as error), numbers become float64,
// maps get string keys, and an empty option list becomes nil. Normalize is
// idempotent.
func Normalize(v Value) Value {
	sev, ok := ParseSeverity(string(v.Severity))
	if !ok || v.Severity == "" {
		sev = Error
		if v.Severity == "" {
			sev = Off
		}
	}

	if len(v.Options) == 0 {
		return Value{Severity: sev}
	}
	opts := make([]any, len(v.Options))
	for i, o := range v.Options {
		opts[i] = normalizeOption(o)
	}
	return Value{Severity: sev, Options: opts}
}

// NormalizeMap normalizes a raw rules block as read from a config file.
func NormalizeMap(raw map[string]any) Map {
	out := make(Map, len(raw))
	for name, value := range raw {
		out[ID(name)] = Parse(value)
	}
	return out
}

// NormalizeValues normalizes every value of an existing map into a new map.
func NormalizeValues(m Map) Map {
	out := make(Map, len(m))
	for id, v := range m {
		out[id] = Normalize(v)
	}
	return out
}

func normalizeOption(o any) any {
	switch v := o.(type) {
	case nil, string, bool:
		return v
	case Value:
		return Normalize(v).raw()
	}

	if n, ok := toFloat(o); ok {
		return n
	}

	rv := reflect.ValueOf(o)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return normalizeOption(rv.Elem().Interface())
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = normalizeOption(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = normalizeOption(iter.Value().Interface())
		}
		return out
	}
	return o
}

func toFloat(o any) (float64, bool) {
	rv := reflect.ValueOf(o)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) {
			return 0, true
		}
		return f, true
	}
	return 0, false
}
