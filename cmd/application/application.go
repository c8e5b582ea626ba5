// Package application provides the application interface for lintbridge commands.
//
// Commands accept an Application rather than the concrete App type so that
// they can be tested with a Mock:
//
//	mock := &application.Mock{
//	    ResolverFunc: func(...string) (reconcile.PresetResolver, error) {
//	        return presets.Memory{"eslint:recommended": testRules}, nil
//	    },
//	}
//	cmd := summarize.NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/lintbridge/pkg/reconcile"
)

// Application provides what commands need from the application.
// The App struct from cmd/lintbridge/app implements it.
//
// All methods must be safe for concurrent access.
type Application interface {
	// Resolver returns the preset resolver. Without arguments it returns the
	// shared, cached resolver over the configured preset directories and the
	// built-in presets. Extra directories are searched first and yield a new
	// resolver.
	Resolver(extraDirs ...string) (reconcile.PresetResolver, error)

	// PresetNames lists every preset available to the default resolver.
	PresetNames() ([]reconcile.PresetName, error)

	// RulesetMappings returns the TSLint ruleset mappings configured on top
	// of the defaults.
	RulesetMappings() map[string]reconcile.PresetName

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, markdown).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
