package reconcile

import (
	"context"

	"github.com/agentstation/lintbridge/pkg/rules"
)

// PresetName names a shareable configuration that can appear in extends.
type PresetName = string

// ConversionResults is the output of the upstream per-rule converter.
type ConversionResults struct {
	// Converted holds the rules that were translated successfully.
	Converted rules.Map

	// Failed holds configuration errors gathered so far.
	Failed []error

	// Notices holds informational messages for the user.
	Notices []string
}

// TargetConfig is the part of an existing ESLint configuration that
// reconciliation reads.
type TargetConfig struct {
	Extends []PresetName
	Rules   rules.Map
}

// LegacyConfig is one layer of a TSLint configuration, with its extends
// already mapped to ESLint preset names.
type LegacyConfig struct {
	Extends []PresetName
}

// ResolvedPreset is the effective rule map of one preset.
type ResolvedPreset struct {
	Name  PresetName
	Rules rules.Map
}

// Resolution is the outcome of resolving a list of presets. Presets keeps
// request order; Errors has one entry per preset that could not be loaded.
type Resolution struct {
	Presets []ResolvedPreset
	Errors  []error
}

// PresetResolver fetches the effective rules of named presets.
// Per-preset failures belong in Resolution.Errors; a returned error
// aborts reconciliation.
type PresetResolver interface {
	Resolve(ctx context.Context, names []PresetName) (*Resolution, error)
}

// PresetResolverFunc allows functions to implement PresetResolver.
type PresetResolverFunc func(ctx context.Context, names []PresetName) (*Resolution, error)

// Resolve implements PresetResolver.
func (f PresetResolverFunc) Resolve(ctx context.Context, names []PresetName) (*Resolution, error) {
	return f(ctx, names)
}

// FormatterChecker decides whether the formatter compatibility presets can
// be appended. requested is nil when the user expressed no preference.
type FormatterChecker interface {
	ShouldAdd(ctx context.Context, results ConversionResults, requested *bool) (bool, error)
}

// FormatterCheckerFunc allows functions to implement FormatterChecker.
type FormatterCheckerFunc func(ctx context.Context, results ConversionResults, requested *bool) (bool, error)

// ShouldAdd implements FormatterChecker.
func (f FormatterCheckerFunc) ShouldAdd(ctx context.Context, results ConversionResults, requested *bool) (bool, error) {
	return f(ctx, results, requested)
}

// ExplicitOnly adds the formatter presets only when the user asked for them.
var ExplicitOnly FormatterChecker = FormatterCheckerFunc(
	func(_ context.Context, _ ConversionResults, requested *bool) (bool, error) {
		return requested != nil && *requested, nil
	},
)
