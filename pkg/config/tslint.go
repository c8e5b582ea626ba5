package config

import (
	"fmt"
	"maps"
	"path/filepath"
	"strings"

	"github.com/agentstation/lintbridge/pkg/constants"
	"github.com/agentstation/lintbridge/pkg/errors"
	"github.com/agentstation/lintbridge/pkg/reconcile"
)

// DefaultRulesetMappings maps TSLint rulesets to the ESLint presets that
// replace them. An empty target drops the entry.
var DefaultRulesetMappings = map[string]reconcile.PresetName{
	"tslint:recommended":       "eslint:recommended",
	"tslint:latest":            "eslint:recommended",
	"tslint:all":               "eslint:recommended",
	"tslint-config-prettier":   "prettier",
	"tslint-config-airbnb":     "airbnb",
	"tslint-config-standard":   "standard",
	"tslint-react":             "plugin:react/recommended",
	"tslint-eslint-rules":      "",
	"tslint-plugin-prettier":   "",
	"tslint-microsoft-contrib": "",
}

// MapRuleset returns the ESLint preset for a TSLint ruleset name and whether
// it should be kept. Names missing from mappings pass through verbatim.
func MapRuleset(name string, mappings map[string]reconcile.PresetName) (reconcile.PresetName, bool) {
	mapped, ok := mappings[name]
	if !ok {
		return name, true
	}
	return mapped, mapped != ""
}

type legacyFile struct {
	Extends StringList `yaml:"extends"`
}

// LegacyOption configures LoadLegacy
type LegacyOption func(*legacyLoader)

// WithRulesetMappings adds to or overrides the default ruleset mappings.
func WithRulesetMappings(mappings map[string]reconcile.PresetName) LegacyOption {
	return func(l *legacyLoader) {
		maps.Copy(l.mappings, mappings)
	}
}

type legacyLoader struct {
	mappings map[string]reconcile.PresetName
	visiting map[string]bool
	layers   []reconcile.LegacyConfig
}

// LoadLegacy reads a TSLint configuration. A relative extends entry such as
// ./base.json is loaded as its own layer before the file that extends it;
// every other entry is mapped through MapRuleset. The file's own extends
// form the last layer.
func LoadLegacy(path string, opts ...LegacyOption) ([]reconcile.LegacyConfig, error) {
	l := &legacyLoader{
		mappings: maps.Clone(DefaultRulesetMappings),
		visiting: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.load(path, 0); err != nil {
		return nil, err
	}
	return l.layers, nil
}

func (l *legacyLoader) load(path string, depth int) error {
	if depth > constants.MaxExtendsDepth {
		return errors.NewValidationError("extends", path, fmt.Sprintf("extends chain deeper than %d", constants.MaxExtendsDepth))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.WrapIO("resolve", path, err)
	}
	if l.visiting[abs] {
		return fmt.Errorf("%w: %s", errors.ErrCycle, path)
	}
	l.visiting[abs] = true
	defer delete(l.visiting, abs)

	data, err := readFile(path)
	if err != nil {
		return err
	}

	var f legacyFile
	if err := decode(data, path, &f); err != nil {
		return err
	}

	own := reconcile.LegacyConfig{Extends: []reconcile.PresetName{}}
	for _, entry := range f.Extends {
		if isRelative(entry) {
			if err := l.load(filepath.Join(filepath.Dir(path), entry), depth+1); err != nil {
				return err
			}
			continue
		}
		if name, keep := MapRuleset(entry, l.mappings); keep {
			own.Extends = append(own.Extends, name)
		}
	}

	l.layers = append(l.layers, own)
	return nil
}

func isRelative(entry string) bool {
	return strings.HasPrefix(entry, "./") || strings.HasPrefix(entry, "../")
}
