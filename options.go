package lintbridge

import (
	"maps"

	"github.com/rs/zerolog"

	"github.com/agentstation/lintbridge/pkg/constants"
	"github.com/agentstation/lintbridge/pkg/errors"
	"github.com/agentstation/lintbridge/pkg/reconcile"
)

// options holds Client configuration
type options struct {
	presetDirs      []string
	rulesetMappings map[string]reconcile.PresetName
	cacheSize       int
	prettier        *bool
	inferPrettier   bool
	resolver        reconcile.PresetResolver
	logger          *zerolog.Logger
}

func defaultOptions() *options {
	return &options{
		rulesetMappings: map[string]reconcile.PresetName{},
		cacheSize:       constants.DefaultPresetCacheSize,
		inferPrettier:   true,
	}
}

// Option is a function that configures a Client
type Option func(*options) error

// WithPresetDirs adds directories searched for presets before the built-in ones
func WithPresetDirs(dirs ...string) Option {
	return func(o *options) error {
		o.presetDirs = append(o.presetDirs, dirs...)
		return nil
	}
}

// WithRulesetMappings adds TSLint ruleset mappings on top of the defaults
func WithRulesetMappings(mappings map[string]reconcile.PresetName) Option {
	return func(o *options) error {
		maps.Copy(o.rulesetMappings, mappings)
		return nil
	}
}

// WithCacheSize sets how many resolved presets are kept in memory
func WithCacheSize(size int) Option {
	return func(o *options) error {
		if size <= 0 {
			return errors.NewValidationError("cache_size", size, "must be positive")
		}
		o.cacheSize = size
		return nil
	}
}

// WithPrettier forces the prettier compatibility presets on or off.
// Without it they are added whenever no converted rule conflicts with them.
func WithPrettier(enabled bool) Option {
	return func(o *options) error {
		o.prettier = &enabled
		return nil
	}
}

// WithoutPrettierInference adds the prettier presets only when WithPrettier(true) is set
func WithoutPrettierInference() Option {
	return func(o *options) error {
		o.inferPrettier = false
		return nil
	}
}

// WithResolver replaces the directory and built-in preset resolver
func WithResolver(r reconcile.PresetResolver) Option {
	return func(o *options) error {
		if r == nil {
			return errors.NewValidationError("resolver", nil, "cannot be nil")
		}
		o.resolver = r
		return nil
	}
}

// WithLogger sets the logger; otherwise the context logger is used
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}
