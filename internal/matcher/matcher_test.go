package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPatternType(t *testing.T) {
	tests := []struct {
		pattern string
		want    PatternType
	}{
		{"prettier", Glob},
		{"eslint/*", Glob},
		{"@typescript-eslint/[er]*", Glob},
		{"^prettier", Regex},
		{"recommended$", Regex},
		{"(airbnb|standard)", Regex},
		{"eslint/.*", Regex},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, detectPatternType(tt.pattern))
		})
	}
}

func TestGlobDoesNotCrossScope(t *testing.T) {
	m, err := New(Glob, "prettier*")
	require.NoError(t, err)
	assert.True(t, m.Match("prettier"))
	assert.False(t, m.Match("prettier/@typescript-eslint"))

	m, err = New(Glob, "prettier/*")
	require.NoError(t, err)
	assert.True(t, m.Match("prettier/@typescript-eslint"))
}

func TestFilter(t *testing.T) {
	names := []string{
		"@typescript-eslint/eslint-recommended",
		"@typescript-eslint/recommended",
		"eslint/recommended",
		"prettier",
	}

	m, err := New(Auto, "recommended$")
	require.NoError(t, err)
	assert.Equal(t, Regex, m.Type())
	assert.Equal(t, names[:3], m.Filter(names))

	m, err = New(Auto, "")
	require.NoError(t, err)
	assert.Equal(t, names, m.Filter(names))

	m, err = New(Auto, "nothing")
	require.NoError(t, err)
	assert.Empty(t, m.Filter(names))
	assert.NotNil(t, m.Filter(names))
}

func TestInvalidPatterns(t *testing.T) {
	_, err := New(Glob, "[")
	assert.Error(t, err)

	_, err = New(Regex, "(")
	assert.Error(t, err)

	_, err = New(PatternType(9), "x")
	assert.Error(t, err)
}

func TestPatternTypeString(t *testing.T) {
	assert.Equal(t, "glob", Glob.String())
	assert.Equal(t, "regex", Regex.String())
	assert.Equal(t, "auto", Auto.String())
	assert.Equal(t, "unknown", PatternType(9).String())
}
