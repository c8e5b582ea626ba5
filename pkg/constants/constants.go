// Package constants provides shared constants used throughout lintbridge.
// This includes file permissions, limits, and the well-known preset names
// the reconciler appends when formatter compatibility is requested.
package constants

import "time"

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants
const (
	// MaxConcurrentPresetLoads bounds how many preset files are read at once
	MaxConcurrentPresetLoads = 8

	// MaxExtendsDepth is the deepest nested extends chain a preset may declare
	MaxExtendsDepth = 32

	// DefaultPresetCacheSize is the number of resolved presets kept in memory
	DefaultPresetCacheSize = 256
)

// Timeout constants
const (
	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 2 * time.Minute

	// ShutdownTimeout bounds graceful shutdown after a command fails
	ShutdownTimeout = 5 * time.Second
)

// Formatter compatibility presets, appended in this order.
const (
	// FormatterPreset disables core rules that conflict with prettier
	FormatterPreset = "prettier"

	// FormatterCompanionPreset disables the @typescript-eslint rules that conflict with prettier
	FormatterCompanionPreset = "prettier/@typescript-eslint"
)

// FormatterPresets returns the formatter compatibility presets in append order.
func FormatterPresets() []string {
	return []string{FormatterPreset, FormatterCompanionPreset}
}

// Path constants
const (
	// ConfigFileName is the base name of the user configuration file (without extension)
	ConfigFileName = ".lintbridge"
)
