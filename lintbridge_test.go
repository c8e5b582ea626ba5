package lintbridge_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lintbridge"
	"github.com/agentstation/lintbridge/pkg/errors"
	"github.com/agentstation/lintbridge/pkg/presets"
	"github.com/agentstation/lintbridge/pkg/reconcile"
	"github.com/agentstation/lintbridge/pkg/rules"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestClientSummarize(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "presets/company.yaml", `extends: eslint:recommended
rules:
  no-var: error
`)
	converted := writeFile(t, dir, "converted.yaml", `rules:
  no-var: error
  no-debugger: 2
  eqeqeq: [error, smart]
failed:
  - "no converter for ban-types"
`)
	files := lintbridge.Files{
		Legacy:    writeFile(t, dir, "tslint.json", `{"extends": ["tslint-config-company", "tslint-config-missing"]}`),
		Target:    writeFile(t, dir, ".eslintrc.yaml", "extends: [prettier]\n"),
		Converted: converted,
	}

	client, err := lintbridge.New(
		lintbridge.WithPresetDirs(filepath.Join(dir, "presets")),
		lintbridge.WithRulesetMappings(map[string]reconcile.PresetName{"tslint-config-company": "company"}),
		lintbridge.WithoutPrettierInference(),
	)
	require.NoError(t, err)

	removed := map[rules.ID]reconcile.PresetName{}
	client.OnRuleRemoved(func(id rules.ID, preset reconcile.PresetName) {
		removed[id] = preset
	})
	var unresolved []error
	client.OnPresetUnresolved(func(err error) {
		unresolved = append(unresolved, err)
	})

	result, err := client.Summarize(context.Background(), files)
	require.NoError(t, err)

	assert.Equal(t, []string{"company", "tslint-config-missing", "prettier"}, result.Extends)
	assert.Equal(t, rules.Map{"eqeqeq": rules.Parse([]any{"error", "smart"})}, result.Converted)
	assert.Equal(t, map[rules.ID]reconcile.PresetName{"no-debugger": "company", "no-var": "company"}, removed)

	require.Len(t, result.Failed, 2)
	require.Len(t, unresolved, 1)
	assert.True(t, errors.IsNotFound(unresolved[0]))
}

func TestClientWithResolver(t *testing.T) {
	dir := t.TempDir()
	converted := writeFile(t, dir, "converted.yaml", "rules:\n  semi: error\n")

	client, err := lintbridge.New(
		lintbridge.WithResolver(presets.Memory{
			"prettier":                    {"semi": rules.Parse("error")},
			"prettier/@typescript-eslint": {},
		}),
		lintbridge.WithPrettier(true),
	)
	require.NoError(t, err)

	result, err := client.Summarize(context.Background(), lintbridge.Files{Converted: converted})
	require.NoError(t, err)
	assert.Equal(t, []string{"prettier", "prettier/@typescript-eslint"}, result.Extends)
	assert.Empty(t, result.Converted)
}

func TestClientInfersPrettier(t *testing.T) {
	dir := t.TempDir()
	converted := writeFile(t, dir, "converted.yaml", "rules:\n  eqeqeq: error\n")

	client, err := lintbridge.New()
	require.NoError(t, err)

	result, err := client.Summarize(context.Background(), lintbridge.Files{Converted: converted})
	require.NoError(t, err)
	assert.Equal(t, []string{"prettier", "prettier/@typescript-eslint"}, result.Extends)
}

func TestNewOptionErrors(t *testing.T) {
	_, err := lintbridge.New(lintbridge.WithCacheSize(0))
	assert.True(t, errors.IsValidationError(err))

	_, err = lintbridge.New(lintbridge.WithResolver(nil))
	assert.True(t, errors.IsValidationError(err))
}

func TestClientMissingConverted(t *testing.T) {
	client, err := lintbridge.New()
	require.NoError(t, err)

	_, err = client.Summarize(context.Background(), lintbridge.Files{Converted: filepath.Join(t.TempDir(), "nope.yaml")})
	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
}
