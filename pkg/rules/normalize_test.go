package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/lintbridge/pkg/rules"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want rules.Severity
		ok   bool
	}{
		{"zero", 0, rules.Off, true},
		{"one", 1, rules.Warn, true},
		{"two", 2, rules.Error, true},
		{"float two", 2.0, rules.Error, true},
		{"uint64 one", uint64(1), rules.Warn, true},
		{"negative", -1, rules.Off, true},
		{"off", "off", rules.Off, true},
		{"warn", "warn", rules.Warn, true},
		{"warning", "Warning", rules.Warn, true},
		{"error", " ERROR ", rules.Error, true},
		{"numeric string", "2", rules.Error, true},
		{"true", true, rules.Error, true},
		{"false", false, rules.Off, true},
		{"nil", nil, rules.Off, true},
		{"unknown string", "always", "", false},
		{"slice", []any{"error"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rules.ParseSeverity(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want rules.Value
	}{
		{
			name: "numeric severity",
			raw:  2,
			want: rules.Value{Severity: rules.Error},
		},
		{
			name: "array with options",
			raw:  []any{"error", "always"},
			want: rules.Value{Severity: rules.Error, Options: []any{"always"}},
		},
		{
			name: "array with numeric severity and int option",
			raw:  []any{1, 4},
			want: rules.Value{Severity: rules.Warn, Options: []any{float64(4)}},
		},
		{
			name: "array of severity only",
			raw:  []any{"warn"},
			want: rules.Value{Severity: rules.Warn},
		},
		{
			name: "empty array",
			raw:  []any{},
			want: rules.Value{Severity: rules.Off},
		},
		{
			name: "tslint style array",
			raw:  []any{true, "check-space"},
			want: rules.Value{Severity: rules.Error, Options: []any{"check-space"}},
		},
		{
			name: "array without severity",
			raw:  []string{"always", "never"},
			want: rules.Value{Severity: rules.Error, Options: []any{"always", "never"}},
		},
		{
			name: "converter object",
			raw: map[string]any{
				"ruleName":      "semi",
				"ruleSeverity":  "warning",
				"ruleArguments": []any{"always"},
			},
			want: rules.Value{Severity: rules.Warn, Options: []any{"always"}},
		},
		{
			name: "severity object with yaml keys",
			raw:  map[any]any{"severity": "error", "options": map[any]any{"max": 3}},
			want: rules.Value{Severity: rules.Error, Options: []any{map[string]any{"max": float64(3)}}},
		},
		{
			name: "plain object is an option",
			raw:  map[string]any{"max": 3},
			want: rules.Value{Severity: rules.Error, Options: []any{map[string]any{"max": float64(3)}}},
		},
		{
			name: "bare option string",
			raw:  "always",
			want: rules.Value{Severity: rules.Error, Options: []any{"always"}},
		},
		{
			name: "value passthrough",
			raw:  rules.Value{Severity: "WARNING", Options: []any{}},
			want: rules.Value{Severity: rules.Warn},
		},
		{
			name: "nil value pointer",
			raw:  (*rules.Value)(nil),
			want: rules.Value{Severity: rules.Off},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Parse(tt.raw))
		})
	}
}

func TestNormalizeRepresentationIndependent(t *testing.T) {
	spellings := []any{
		"error",
		2,
		uint64(2),
		"2",
		true,
		[]any{"error"},
		[]any{2},
		map[string]any{"ruleSeverity": "error"},
	}
	want := rules.Parse("error")
	for _, raw := range spellings {
		assert.True(t, rules.Equal(want, rules.Parse(raw)), "%#v should equal error", raw)
	}

	assert.True(t, rules.Equal(
		rules.Parse([]any{"error", map[string]any{"max": 1, "ignore": []string{"a"}}}),
		rules.Parse([]any{2, map[any]any{"ignore": []any{"a"}, "max": 1.0}}),
	))
	assert.False(t, rules.Equal(rules.Parse("warn"), rules.Parse("error")))
	assert.False(t, rules.Equal(rules.Parse([]any{"error", "always"}), rules.Parse([]any{"error", "never"})))
}

func TestNormalizeIdempotent(t *testing.T) {
	values := []rules.Value{
		{Severity: "WARNING", Options: []any{int32(3), []string{"x"}, map[any]any{1: "one"}}},
		{Severity: "", Options: nil},
		{Severity: "loud", Options: []any{nil, true}},
		rules.Parse(map[string]any{"severity": 1, "options": "single"}),
	}
	for _, v := range values {
		once := rules.Normalize(v)
		assert.Equal(t, once, rules.Normalize(once))
	}

	m := rules.NormalizeMap(map[string]any{"semi": []any{2, "always"}, "eqeqeq": "warn"})
	assert.Equal(t, m, rules.NormalizeValues(m))
}

func TestNormalizeUnknownSeverity(t *testing.T) {
	assert.Equal(t, rules.Error, rules.Normalize(rules.Value{Severity: "loud"}).Severity)
	assert.Equal(t, rules.Off, rules.Normalize(rules.Value{}).Severity)
	assert.False(t, rules.Value{Severity: "0"}.Enabled())
	assert.True(t, rules.Value{Severity: "on"}.Enabled())
}
