package reconcile

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/agentstation/lintbridge/pkg/constants"
	"github.com/agentstation/lintbridge/pkg/errors"
	"github.com/agentstation/lintbridge/pkg/logging"
	"github.com/agentstation/lintbridge/pkg/rules"
)

// Summarizer reconciles converted rules against the presets a project extends.
// It holds only its collaborators, so one Summarizer may serve concurrent calls.
type Summarizer struct {
	checker          FormatterChecker
	resolver         PresetResolver
	formatterPresets []PresetName
	logger           *zerolog.Logger
}

// Option configures a Summarizer
type Option func(*Summarizer) error

// New creates a Summarizer. A preset resolver is required; the formatter
// checker defaults to ExplicitOnly.
func New(opts ...Option) (*Summarizer, error) {
	s := &Summarizer{
		checker:          ExplicitOnly,
		formatterPresets: constants.FormatterPresets(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.resolver == nil {
		return nil, errors.NewConfigError("summarizer", "preset resolver is required", nil)
	}
	return s, nil
}

// WithPresetResolver sets the resolver used to fetch preset rules
func WithPresetResolver(resolver PresetResolver) Option {
	return func(s *Summarizer) error {
		if resolver == nil {
			return errors.NewConfigError("summarizer", "preset resolver cannot be nil", nil)
		}
		s.resolver = resolver
		return nil
	}
}

// WithFormatterChecker sets the formatter compatibility checker
func WithFormatterChecker(checker FormatterChecker) Option {
	return func(s *Summarizer) error {
		if checker == nil {
			return errors.NewConfigError("summarizer", "formatter checker cannot be nil", nil)
		}
		s.checker = checker
		return nil
	}
}

// WithFormatterPresets replaces the presets appended when the checker agrees
func WithFormatterPresets(names ...PresetName) Option {
	return func(s *Summarizer) error {
		if len(names) == 0 {
			return errors.NewValidationError("formatter_presets", names, "at least one preset is required")
		}
		s.formatterPresets = slices.Clone(names)
		return nil
	}
}

// WithLogger sets the logger; otherwise the context logger is used
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Summarizer) error {
		s.logger = logger
		return nil
	}
}

// Summarize decides the extends list and the minimal set of own rules.
//
// The extends of every legacy layer come first, then the target's own
// extends, then the formatter presets if the checker agrees. With nothing
// to extend, the conversion results are returned as they are. Otherwise the
// presets are resolved, flattened in order, and every own rule (the
// target's existing rules overlaid by the converted ones) that a preset
// already supplies is dropped. Preset resolution errors are appended to
// Failed; only collaborator failures are returned as errors.
func (s *Summarizer) Summarize(
	ctx context.Context,
	target *TargetConfig,
	legacy []LegacyConfig,
	results ConversionResults,
	formatterRequested *bool,
) (*SummarizedResult, error) {
	logger := s.loggerFor(ctx)

	var targetExtends []PresetName
	var targetRules rules.Map
	if target != nil {
		targetExtends = target.Extends
		targetRules = target.Rules
	}

	allExtensions := Unique(CollectLegacy(legacy...), targetExtends)

	add, err := s.checker.ShouldAdd(ctx, results, formatterRequested)
	if err != nil {
		return nil, fmt.Errorf("checking formatter compatibility: %w", err)
	}
	if add {
		logger.Debug().Strs("presets", s.formatterPresets).Msg("Adding formatter compatibility presets")
		allExtensions = append(allExtensions, s.formatterPresets...)
	}

	if len(allExtensions) == 0 {
		logger.Debug().Msg("No presets to extend, keeping converted rules as-is")
		return &SummarizedResult{
			Converted:      results.Converted.Clone(),
			Extends:        []PresetName{},
			ExtensionRules: rules.Map{},
			Failed:         slices.Clone(results.Failed),
			Notices:        slices.Clone(results.Notices),
			Removed:        []rules.ID{},
			Provenance:     Provenance{},
		}, nil
	}

	extends := Unique(allExtensions)
	logger.Debug().Strs("presets", extends).Msg("Resolving presets")

	resolution, err := s.resolver.Resolve(ctx, extends)
	if err != nil {
		return nil, fmt.Errorf("resolving presets: %w", err)
	}
	if resolution == nil {
		resolution = &Resolution{}
	}
	for _, rerr := range resolution.Errors {
		logger.Warn().Err(rerr).Msg("Preset could not be resolved")
	}

	extensionRules, provenance := NormalizeExtensions(orderPresets(extends, resolution.Presets))
	own := rules.Merge(rules.NormalizeValues(targetRules), results.Converted)
	deduplicated := RemoveDuplicates(own, extensionRules)

	for _, id := range deduplicated.Removed {
		preset, _ := provenance.Source(id)
		logger.Debug().Str("rule", id.String()).Str("preset", preset).Msg("Removed rule already supplied by preset")
	}

	failed := make([]error, 0, len(results.Failed)+len(resolution.Errors))
	failed = append(failed, results.Failed...)
	failed = append(failed, resolution.Errors...)

	return &SummarizedResult{
		Converted:      deduplicated.DifferentRules,
		Extends:        extends,
		ExtensionRules: deduplicated.ExtensionRules,
		Failed:         failed,
		Notices:        slices.Clone(results.Notices),
		Removed:        deduplicated.Removed,
		Provenance:     provenance,
	}, nil
}

func (s *Summarizer) loggerFor(ctx context.Context) *zerolog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return logging.FromContext(ctx)
}

// Summarize is a convenience wrapper that builds a Summarizer for one call.
func Summarize(
	ctx context.Context,
	checker FormatterChecker,
	resolver PresetResolver,
	target *TargetConfig,
	legacy []LegacyConfig,
	results ConversionResults,
	formatterRequested *bool,
) (*SummarizedResult, error) {
	opts := []Option{WithPresetResolver(resolver)}
	if checker != nil {
		opts = append(opts, WithFormatterChecker(checker))
	}
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return s.Summarize(ctx, target, legacy, results, formatterRequested)
}
