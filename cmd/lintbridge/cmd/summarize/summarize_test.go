package summarize_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/lintbridge/cmd/application"
	"github.com/agentstation/lintbridge/cmd/lintbridge/cmd/summarize"
	"github.com/agentstation/lintbridge/pkg/presets"
	"github.com/agentstation/lintbridge/pkg/reconcile"
	"github.com/agentstation/lintbridge/pkg/rules"
)

func testApp(t *testing.T) *application.Mock {
	t.Helper()
	resolver := presets.Chain{
		presets.Memory{
			"eslint:recommended": {
				"no-unused-vars": rules.Parse("warn"),
				"no-debugger":    rules.Parse("error"),
			},
		},
		presets.Embedded(),
	}
	return &application.Mock{
		ResolverFunc: func(...string) (reconcile.PresetResolver, error) {
			return resolver, nil
		},
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, app application.Application, args ...string) (string, string, error) {
	t.Helper()
	cmd := summarize.NewCommand(app)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSummarizeCommand(t *testing.T) {
	dir := t.TempDir()
	converted := writeFile(t, dir, "converted.yaml", `rules:
  no-unused-vars: 1
  semi: [error, always]
failed:
  - "tslint rule no-foo has no converter"
`)
	legacy := writeFile(t, dir, "tslint.json", `{"extends": ["tslint:recommended"]}`)

	stdout, stderr, err := execute(t, testApp(t),
		"--converted", converted,
		"--legacy", legacy,
		"--no-prettier",
		"--report",
	)
	require.NoError(t, err)

	assert.Contains(t, stdout, "eslint:recommended")
	assert.Contains(t, stdout, "semi")
	assert.NotContains(t, stdout, "no-unused-vars")
	assert.NotContains(t, stdout, "prettier")

	assert.Contains(t, stderr, "no-unused-vars")
	assert.Contains(t, stderr, "no-foo")
}

func TestSummarizeCommandInfersPrettier(t *testing.T) {
	dir := t.TempDir()
	converted := writeFile(t, dir, "converted.yaml", "rules:\n  eqeqeq: error\n")
	out := filepath.Join(dir, ".eslintrc.json")

	_, _, err := execute(t, testApp(t), "--converted", converted, "--out", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"prettier/@typescript-eslint"`)
	assert.Contains(t, string(data), `"eqeqeq": "error"`)
}

func TestSummarizeCommandPrettierConflict(t *testing.T) {
	dir := t.TempDir()
	converted := writeFile(t, dir, "converted.yaml", "rules:\n  semi: error\n")

	stdout, _, err := execute(t, testApp(t), "--converted", converted)
	require.NoError(t, err)
	assert.NotContains(t, stdout, "prettier")

	stdout, _, err = execute(t, testApp(t), "--converted", converted, "--prettier")
	require.NoError(t, err)
	assert.Contains(t, stdout, "prettier")
	assert.Contains(t, stdout, "semi", "an enabled rule the presets turn off must stay")
}

func TestSummarizeCommandErrors(t *testing.T) {
	dir := t.TempDir()
	converted := writeFile(t, dir, "converted.yaml", "rules: {}\n")

	t.Run("missing converted flag", func(t *testing.T) {
		_, _, err := execute(t, testApp(t))
		assert.Error(t, err)
	})

	t.Run("conflicting prettier flags", func(t *testing.T) {
		_, _, err := execute(t, testApp(t), "--converted", converted, "--prettier", "--no-prettier")
		assert.Error(t, err)
	})

	t.Run("missing target file", func(t *testing.T) {
		_, _, err := execute(t, testApp(t), "--converted", converted, "--target", filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})
}
