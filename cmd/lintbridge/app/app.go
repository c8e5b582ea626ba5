// Package app provides the application context and dependency management
// for the lintbridge CLI. It centralizes configuration, logging and the
// preset resolver shared by every command.
package app

import (
	"context"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/lintbridge/cmd/application"
	"github.com/agentstation/lintbridge/pkg/errors"
	"github.com/agentstation/lintbridge/pkg/presets"
	"github.com/agentstation/lintbridge/pkg/reconcile"
)

// App represents the lintbridge application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Default resolver (lazy-initialized, singleton)
	mu       sync.RWMutex
	resolver reconcile.PresetResolver
}

var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// RulesetMappings returns the configured TSLint ruleset mappings.
func (a *App) RulesetMappings() map[string]reconcile.PresetName {
	return a.config.RulesetMappings
}

// Resolver returns the preset resolver. The default one is created on first
// use and shared; passing extra directories builds a fresh resolver that
// searches them before the configured ones.
func (a *App) Resolver(extraDirs ...string) (reconcile.PresetResolver, error) {
	if len(extraDirs) > 0 {
		return a.buildResolver(extraDirs)
	}

	a.mu.RLock()
	if a.resolver != nil {
		r := a.resolver
		a.mu.RUnlock()
		return r, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.resolver != nil {
		return a.resolver, nil
	}

	r, err := a.buildResolver(nil)
	if err != nil {
		return nil, err
	}
	a.resolver = r
	return r, nil
}

// PresetNames lists the presets of every configured source, sorted.
func (a *App) PresetNames() ([]reconcile.PresetName, error) {
	var names []reconcile.PresetName
	for _, src := range a.sources(nil) {
		list, err := src.List()
		if err != nil {
			return nil, err
		}
		names = append(names, list...)
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

// sources returns the preset filesystems in search order: extra
// directories, configured directories, then the built-in presets.
func (a *App) sources(extraDirs []string) []*presets.FS {
	dirs := append(slices.Clone(extraDirs), a.config.PresetsDirs...)
	sources := make([]*presets.FS, 0, len(dirs)+1)
	for _, dir := range dirs {
		sources = append(sources, presets.Dir(dir))
	}
	return append(sources, presets.Embedded())
}

func (a *App) buildResolver(extraDirs []string) (reconcile.PresetResolver, error) {
	chain := presets.Chain{}
	for _, src := range a.sources(extraDirs) {
		chain = append(chain, src)
	}

	cached, err := presets.NewCached(chain, a.config.CacheSize)
	if err != nil {
		return nil, errors.NewConfigError("presets", "creating resolver", err)
	}
	return cached, nil
}

// Shutdown performs graceful shutdown of the application.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if c, ok := a.resolver.(*presets.Cached); ok {
		c.Purge()
	}
	a.resolver = nil
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithResolver sets a custom default resolver (useful for testing).
func WithResolver(r reconcile.PresetResolver) Option {
	return func(a *App) error {
		a.resolver = r
		return nil
	}
}
