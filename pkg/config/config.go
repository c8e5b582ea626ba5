// Package config reads the configuration files that feed reconciliation:
// an existing ESLint configuration, a TSLint configuration with its
// relative extends layers, and the rule converter's output.
//
// Every file may be YAML or JSON; both are decoded with goccy/go-yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/lintbridge/pkg/errors"
)

// StringList decodes either a single string or a list of strings.
type StringList []string

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (l *StringList) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*l = nil
	case string:
		*l = StringList{v}
	case []any:
		out := make(StringList, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("entry %d: expected a string, got %T", i, item)
			}
			out = append(out, s)
		}
		*l = out
	default:
		return fmt.Errorf("expected a string or a list of strings, got %T", raw)
	}
	return nil
}

// File is the shape shared by ESLint configurations and preset files.
type File struct {
	Extends StringList     `yaml:"extends" json:"extends"`
	Rules   map[string]any `yaml:"rules" json:"rules"`
}

// ParseFile decodes a File. name is used only for error messages.
func ParseFile(data []byte, name string) (*File, error) {
	var f File
	if err := decode(data, name, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// formatOf names the format of a file for error messages.
func formatOf(name string) string {
	switch filepath.Ext(name) {
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}

func decode(data []byte, name string, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.WrapParse(formatOf(name), name, err)
	}
	return nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return data, nil
}
