package compat_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lintbridge/pkg/compat"
	"github.com/agentstation/lintbridge/pkg/errors"
	"github.com/agentstation/lintbridge/pkg/logging"
	"github.com/agentstation/lintbridge/pkg/presets"
	"github.com/agentstation/lintbridge/pkg/reconcile"
	"github.com/agentstation/lintbridge/pkg/rules"
)

func formatterPresets() presets.Memory {
	return presets.Memory{
		"prettier": {
			"semi":   rules.Parse("off"),
			"quotes": rules.Parse(0),
		},
		"prettier/@typescript-eslint": {
			"@typescript-eslint/indent": rules.Parse("off"),
		},
	}
}

func results(pairs map[string]any) reconcile.ConversionResults {
	return reconcile.ConversionResults{Converted: rules.NormalizeMap(pairs)}
}

func TestShouldAddExplicit(t *testing.T) {
	c, err := compat.New(presets.Memory{})
	require.NoError(t, err)

	yes, no := true, false
	conflicting := results(map[string]any{"semi": "error"})

	add, err := c.ShouldAdd(context.Background(), conflicting, &yes)
	require.NoError(t, err)
	assert.True(t, add, "an explicit request wins over conflicts")

	add, err = c.ShouldAdd(context.Background(), results(nil), &no)
	require.NoError(t, err)
	assert.False(t, add)
}

func TestShouldAddInferred(t *testing.T) {
	tests := []struct {
		name      string
		converted map[string]any
		want      bool
	}{
		{"no rules", nil, true},
		{"unrelated rules", map[string]any{"eqeqeq": "error"}, true},
		{"conflict already off", map[string]any{"semi": "off"}, true},
		{"conflict enabled", map[string]any{"semi": []any{"error", "always"}}, false},
		{"typescript conflict", map[string]any{"@typescript-eslint/indent": "warn"}, false},
	}

	c, err := compat.New(formatterPresets())
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			add, err := c.ShouldAdd(context.Background(), results(tt.converted), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, add)
		})
	}
}

func TestShouldAddLogsConflicts(t *testing.T) {
	tl := logging.NewTestLogger(t)
	c, err := compat.New(formatterPresets(), compat.WithLogger(tl.Logger))
	require.NoError(t, err)

	add, err := c.ShouldAdd(context.Background(), results(map[string]any{"quotes": "error"}), nil)
	require.NoError(t, err)
	assert.False(t, add)
	assert.True(t, tl.Contains("quotes"))
}

func TestShouldAddResolutionFailure(t *testing.T) {
	c, err := compat.New(presets.Memory{"prettier": {}})
	require.NoError(t, err)

	_, err = c.ShouldAdd(context.Background(), results(nil), nil)
	require.Error(t, err)
	assert.True(t, errors.IsResolutionError(err))
}

func TestShouldAddNilResolution(t *testing.T) {
	logging.DisableLoggingForTest(t)

	nothing := reconcile.PresetResolverFunc(func(context.Context, []reconcile.PresetName) (*reconcile.Resolution, error) {
		return nil, nil
	})
	c, err := compat.New(nothing)
	require.NoError(t, err)

	m, err := c.FormatterRules(context.Background())
	require.NoError(t, err)
	assert.Empty(t, m)

	add, err := c.ShouldAdd(context.Background(), results(map[string]any{"semi": "error"}), nil)
	require.NoError(t, err)
	assert.True(t, add)
}

func TestWithPresets(t *testing.T) {
	c, err := compat.New(presets.Memory{"dprint": {"indent": rules.Parse("off")}}, compat.WithPresets("dprint"))
	require.NoError(t, err)

	m, err := c.FormatterRules(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []rules.ID{"indent"}, m.IDs())
}

func TestConflicts(t *testing.T) {
	formatter := rules.Map{
		"semi":     rules.Parse("off"),
		"quotes":   rules.Parse("off"),
		"eol-last": rules.Parse("error"),
	}
	converted := results(map[string]any{
		"semi":     "error",
		"quotes":   "warn",
		"eol-last": "error",
		"curly":    "error",
	})

	assert.Equal(t, []rules.ID{"quotes", "semi"}, compat.Conflicts(converted, formatter))
	assert.Empty(t, compat.Conflicts(results(nil), formatter))
}

func TestCheckerWithEmbeddedPresets(t *testing.T) {
	c, err := compat.New(presets.Embedded())
	require.NoError(t, err)

	add, err := c.ShouldAdd(context.Background(), results(map[string]any{"no-debugger": "error"}), nil)
	require.NoError(t, err)
	assert.True(t, add)

	add, err = c.ShouldAdd(context.Background(), results(map[string]any{"max-len": []any{"error", 120}}), nil)
	require.NoError(t, err)
	assert.False(t, add)
}
