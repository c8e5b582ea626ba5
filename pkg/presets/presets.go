// Package presets resolves shareable ESLint configurations into the rules
// they turn on. Resolvers read preset files from any fs.FS, including the
// presets compiled into the binary, and can be chained and cached.
package presets

import (
	"path"
	"strings"

	"github.com/agentstation/lintbridge/pkg/reconcile"
)

// Extensions lists the file extensions tried for a preset, in order.
var Extensions = []string{".yaml", ".yml", ".json"}

// FilePath returns the extension-less path a preset is stored under.
// "plugin:" is stripped and ":" separates path segments, so
// "eslint:recommended" lives at eslint/recommended and
// "plugin:@typescript-eslint/recommended" at @typescript-eslint/recommended.
func FilePath(name reconcile.PresetName) string {
	name = strings.TrimPrefix(name, "plugin:")
	return strings.ReplaceAll(name, ":", "/")
}

// presetName strips the extension from a preset file path.
func presetName(file string) reconcile.PresetName {
	return strings.TrimSuffix(file, path.Ext(file))
}
