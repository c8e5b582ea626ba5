package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/lintbridge/pkg/reconcile"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	ResolverFunc        func(extraDirs ...string) (reconcile.PresetResolver, error)
	PresetNamesFunc     func() ([]reconcile.PresetName, error)
	RulesetMappingsFunc func() map[string]reconcile.PresetName
	LoggerFunc          func() *zerolog.Logger
	OutputFormatFunc    func() string
	VersionFunc         func() string
	CommitFunc          func() string
	DateFunc            func() string
	BuiltByFunc         func() string
}

var _ Application = (*Mock)(nil)

// Resolver returns a resolver using the mock function or nil.
func (m *Mock) Resolver(extraDirs ...string) (reconcile.PresetResolver, error) {
	if m.ResolverFunc != nil {
		return m.ResolverFunc(extraDirs...)
	}
	return nil, nil
}

// PresetNames returns preset names using the mock function or nil.
func (m *Mock) PresetNames() ([]reconcile.PresetName, error) {
	if m.PresetNamesFunc != nil {
		return m.PresetNamesFunc()
	}
	return nil, nil
}

// RulesetMappings returns mappings using the mock function or nil.
func (m *Mock) RulesetMappings() map[string]reconcile.PresetName {
	if m.RulesetMappingsFunc != nil {
		return m.RulesetMappingsFunc()
	}
	return nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "unknown".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}
