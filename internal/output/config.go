package output

import (
	"fmt"
	"io"

	"github.com/agentstation/lintbridge/pkg/errors"
	"github.com/agentstation/lintbridge/pkg/reconcile"
	"github.com/agentstation/lintbridge/pkg/rules"
)

// ESLintConfig is the configuration file written after reconciliation.
type ESLintConfig struct {
	Extends []reconcile.PresetName `json:"extends,omitempty" yaml:"extends,omitempty"`
	Rules   rules.Map              `json:"rules" yaml:"rules"`
}

// NewESLintConfig builds the configuration to write from a result.
func NewESLintConfig(result *reconcile.SummarizedResult) ESLintConfig {
	cfg := ESLintConfig{Rules: rules.Map{}}
	if result == nil {
		return cfg
	}
	cfg.Extends = result.Extends
	if result.Converted != nil {
		cfg.Rules = result.Converted
	}
	return cfg
}

// WriteConfig writes the reconciled ESLint configuration as YAML or JSON.
// Rules are written in name order.
func WriteConfig(w io.Writer, format Format, result *reconcile.SummarizedResult) error {
	cfg := NewESLintConfig(result)

	switch format {
	case FormatYAML, "":
		return (&YAMLFormatter{}).Format(w, cfg)
	case FormatJSON:
		return (&JSONFormatter{Indent: "  "}).Format(w, cfg)
	default:
		return errors.NewValidationError("format", format,
			fmt.Sprintf("configuration can only be written as yaml or json, not %s", format))
	}
}
