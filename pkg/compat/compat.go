// Package compat decides whether the prettier compatibility presets can be
// added to a converted configuration.
//
// Those presets exist to turn rules off. Adding them is safe when the user
// asked for it, and when the user did not say either way it is safe as
// long as none of the converted rules would be silently switched off.
package compat

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/agentstation/lintbridge/pkg/constants"
	"github.com/agentstation/lintbridge/pkg/errors"
	"github.com/agentstation/lintbridge/pkg/logging"
	"github.com/agentstation/lintbridge/pkg/reconcile"
	"github.com/agentstation/lintbridge/pkg/rules"
)

// Checker implements reconcile.FormatterChecker.
type Checker struct {
	resolver reconcile.PresetResolver
	presets  []reconcile.PresetName
	logger   *zerolog.Logger
}

// Option configures a Checker
type Option func(*Checker)

// WithPresets replaces the formatter presets inspected by the checker.
func WithPresets(names ...reconcile.PresetName) Option {
	return func(c *Checker) {
		if len(names) > 0 {
			c.presets = slices.Clone(names)
		}
	}
}

// WithLogger sets the logger; otherwise the context logger is used
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// New creates a Checker that looks up the formatter presets through resolver.
func New(resolver reconcile.PresetResolver, opts ...Option) (*Checker, error) {
	if resolver == nil {
		return nil, errors.NewConfigError("compat", "preset resolver is required", nil)
	}
	c := &Checker{
		resolver: resolver,
		presets:  constants.FormatterPresets(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ShouldAdd implements reconcile.FormatterChecker. An explicit request is
// honored as given. Without one the formatter presets are added only when
// no enabled converted rule is one they turn off.
func (c *Checker) ShouldAdd(ctx context.Context, results reconcile.ConversionResults, requested *bool) (bool, error) {
	if requested != nil {
		return *requested, nil
	}

	formatterRules, err := c.FormatterRules(ctx)
	if err != nil {
		return false, err
	}

	conflicts := Conflicts(results, formatterRules)
	if len(conflicts) > 0 {
		ids := make([]string, len(conflicts))
		for i, id := range conflicts {
			ids[i] = id.String()
		}
		c.loggerFor(ctx).Info().
			Strs("rules", ids).
			Msg("Not extending prettier presets: converted rules would be turned off")
		return false, nil
	}
	return true, nil
}

// FormatterRules returns the combined rules of the formatter presets.
// Any preset that cannot be resolved is an error.
func (c *Checker) FormatterRules(ctx context.Context) (rules.Map, error) {
	res, err := c.resolver.Resolve(ctx, c.presets)
	if err != nil {
		return nil, fmt.Errorf("resolving formatter presets: %w", err)
	}
	if res == nil {
		res = &reconcile.Resolution{}
	}
	if len(res.Errors) > 0 {
		return nil, errors.Join(res.Errors...)
	}

	layers := make([]rules.Map, 0, len(res.Presets))
	for _, p := range res.Presets {
		layers = append(layers, p.Rules)
	}
	return rules.Merge(layers...), nil
}

func (c *Checker) loggerFor(ctx context.Context) *zerolog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return logging.FromContext(ctx)
}

// Conflicts lists, sorted, the enabled converted rules that formatterRules
// turns off.
func Conflicts(results reconcile.ConversionResults, formatterRules rules.Map) []rules.ID {
	conflicts := []rules.ID{}
	for _, id := range results.Converted.IDs() {
		if !rules.Normalize(results.Converted[id]).Enabled() {
			continue
		}
		if v, ok := formatterRules[id]; ok && !v.Enabled() {
			conflicts = append(conflicts, id)
		}
	}
	return conflicts
}
