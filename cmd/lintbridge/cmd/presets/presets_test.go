package presets_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lintbridge/cmd/application"
	"github.com/agentstation/lintbridge/cmd/lintbridge/cmd/presets"
	"github.com/agentstation/lintbridge/pkg/errors"
	pkgpresets "github.com/agentstation/lintbridge/pkg/presets"
	"github.com/agentstation/lintbridge/pkg/reconcile"
)

func testApp(format string) *application.Mock {
	embedded := pkgpresets.Embedded()
	return &application.Mock{
		ResolverFunc: func(...string) (reconcile.PresetResolver, error) {
			return embedded, nil
		},
		PresetNamesFunc: embedded.List,
		OutputFormatFunc: func() string {
			return format
		},
	}
}

func execute(t *testing.T, app application.Application, args ...string) (string, error) {
	t.Helper()
	cmd := presets.NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListJSON(t *testing.T) {
	out, err := execute(t, testApp("json"), "list")
	require.NoError(t, err)

	var names []string
	require.NoError(t, json.Unmarshal([]byte(out), &names))
	assert.Contains(t, names, "prettier")
	assert.Contains(t, names, "eslint/recommended")
}

func TestListTable(t *testing.T) {
	out, err := execute(t, testApp("table"), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "prettier/@typescript-eslint")
}

func TestShow(t *testing.T) {
	out, err := execute(t, testApp("yaml"), "show", "eslint:recommended")
	require.NoError(t, err)
	assert.Contains(t, out, "no-debugger: error")

	out, err = execute(t, testApp("table"), "show", "prettier")
	require.NoError(t, err)
	assert.Contains(t, out, "semi")
}

func TestShowUnknown(t *testing.T) {
	_, err := execute(t, testApp("yaml"), "show", "nope")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestListFilter(t *testing.T) {
	out, err := execute(t, testApp("json"), "list", "--filter", "prettier*")
	require.NoError(t, err)

	var names []string
	require.NoError(t, json.Unmarshal([]byte(out), &names))
	assert.Equal(t, []string{"prettier"}, names)

	_, err = execute(t, testApp("json"), "list", "--filter", "(")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
