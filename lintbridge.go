package lintbridge

import (
	"context"
	"fmt"

	"github.com/agentstation/lintbridge/pkg/compat"
	"github.com/agentstation/lintbridge/pkg/config"
	"github.com/agentstation/lintbridge/pkg/logging"
	"github.com/agentstation/lintbridge/pkg/presets"
	"github.com/agentstation/lintbridge/pkg/reconcile"
)

// Client reconciles converted rules read from files.
type Client interface {
	// Summarize loads the given files and reconciles them
	Summarize(ctx context.Context, files Files) (*reconcile.SummarizedResult, error)

	// Resolver returns the preset resolver the client uses
	Resolver() reconcile.PresetResolver

	// OnRuleRemoved registers a callback for each converted rule dropped as a duplicate
	OnRuleRemoved(RuleRemovedHook)

	// OnPresetUnresolved registers a callback for each preset that could not be resolved
	OnPresetUnresolved(PresetUnresolvedHook)
}

// Files names the inputs of one reconciliation. Only Converted is required.
type Files struct {
	Target    string // existing ESLint configuration
	Legacy    string // TSLint configuration
	Converted string // converter output
}

// client is the internal implementation of the Client interface
type client struct {
	config     *options
	resolver   reconcile.PresetResolver
	summarizer *reconcile.Summarizer
	hooks      *hooks
}

// New creates a Client with the given options
func New(opts ...Option) (Client, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	resolver := cfg.resolver
	if resolver == nil {
		chain := presets.Chain{}
		for _, dir := range cfg.presetDirs {
			chain = append(chain, presets.Dir(dir))
		}
		chain = append(chain, presets.Embedded())

		cached, err := presets.NewCached(chain, cfg.cacheSize)
		if err != nil {
			return nil, err
		}
		resolver = cached
	}

	var checker reconcile.FormatterChecker = reconcile.ExplicitOnly
	if cfg.inferPrettier {
		c, err := compat.New(resolver)
		if err != nil {
			return nil, err
		}
		checker = c
	}

	summarizerOpts := []reconcile.Option{
		reconcile.WithPresetResolver(resolver),
		reconcile.WithFormatterChecker(checker),
	}
	if cfg.logger != nil {
		summarizerOpts = append(summarizerOpts, reconcile.WithLogger(cfg.logger))
	}
	summarizer, err := reconcile.New(summarizerOpts...)
	if err != nil {
		return nil, err
	}

	return &client{
		config:     cfg,
		resolver:   resolver,
		summarizer: summarizer,
		hooks:      newHooks(),
	}, nil
}

// Resolver returns the preset resolver the client uses
func (c *client) Resolver() reconcile.PresetResolver {
	return c.resolver
}

// OnRuleRemoved registers a callback for removed rules
func (c *client) OnRuleRemoved(fn RuleRemovedHook) {
	c.hooks.OnRuleRemoved(fn)
}

// OnPresetUnresolved registers a callback for unresolved presets
func (c *client) OnPresetUnresolved(fn PresetUnresolvedHook) {
	c.hooks.OnPresetUnresolved(fn)
}

// Summarize loads the given files and reconciles them
func (c *client) Summarize(ctx context.Context, files Files) (*reconcile.SummarizedResult, error) {
	if c.config.logger != nil {
		ctx = logging.WithLogger(ctx, c.config.logger)
	}
	ctx = logging.WithOperation(ctx, "summarize")

	results, err := config.LoadConversion(files.Converted)
	if err != nil {
		return nil, err
	}

	var target *reconcile.TargetConfig
	if files.Target != "" {
		if target, err = config.LoadTarget(files.Target); err != nil {
			return nil, err
		}
	}

	var legacy []reconcile.LegacyConfig
	if files.Legacy != "" {
		legacy, err = config.LoadLegacy(files.Legacy, config.WithRulesetMappings(c.config.rulesetMappings))
		if err != nil {
			return nil, err
		}
	}

	result, err := c.summarizer.Summarize(ctx, target, legacy, results, c.config.prettier)
	if err != nil {
		return nil, err
	}

	c.hooks.trigger(result, len(results.Failed))
	return result, nil
}
