package config

import (
	"github.com/agentstation/lintbridge/pkg/errors"
	"github.com/agentstation/lintbridge/pkg/reconcile"
	"github.com/agentstation/lintbridge/pkg/rules"
)

type conversionFile struct {
	Rules   map[string]any `yaml:"rules"`
	Failed  []string       `yaml:"failed"`
	Notices []string       `yaml:"notices"`
}

// LoadConversion reads the output of the per-rule converter.
func LoadConversion(path string) (reconcile.ConversionResults, error) {
	data, err := readFile(path)
	if err != nil {
		return reconcile.ConversionResults{}, err
	}
	return ParseConversion(data, path)
}

// ParseConversion decodes a converter output file of the form
// {rules: {...}, failed: [...], notices: [...]}. Each failed entry becomes
// an error in Failed.
func ParseConversion(data []byte, name string) (reconcile.ConversionResults, error) {
	var f conversionFile
	if err := decode(data, name, &f); err != nil {
		return reconcile.ConversionResults{}, err
	}

	results := reconcile.ConversionResults{
		Converted: rules.NormalizeMap(f.Rules),
		Notices:   f.Notices,
	}
	for _, msg := range f.Failed {
		results.Failed = append(results.Failed, errors.New(msg))
	}
	return results, nil
}
