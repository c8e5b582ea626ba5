package config

import (
	"github.com/agentstation/lintbridge/pkg/reconcile"
	"github.com/agentstation/lintbridge/pkg/rules"
)

// LoadTarget reads an existing ESLint configuration.
func LoadTarget(path string) (*reconcile.TargetConfig, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTarget(data, path)
}

// ParseTarget decodes an ESLint configuration. Rule values are normalized.
func ParseTarget(data []byte, name string) (*reconcile.TargetConfig, error) {
	f, err := ParseFile(data, name)
	if err != nil {
		return nil, err
	}
	return &reconcile.TargetConfig{
		Extends: []reconcile.PresetName(f.Extends),
		Rules:   rules.NormalizeMap(f.Rules),
	}, nil
}
