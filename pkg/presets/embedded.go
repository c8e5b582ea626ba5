package presets

import (
	"embed"
	"io/fs"
	"os"
)

// builtin holds the presets shipped with lintbridge.
//
//go:embed builtin
var builtin embed.FS

// Embedded returns a resolver over the built-in presets.
func Embedded(opts ...FSOption) *FS {
	sub, err := fs.Sub(builtin, "builtin")
	if err != nil {
		// the directory is compiled in, so this cannot fail
		panic(err)
	}
	return NewFS(sub, opts...)
}

// Dir returns a resolver over presets stored under a local directory.
// Extends entries it cannot satisfy locally fall back to the built-in presets.
func Dir(path string, opts ...FSOption) *FS {
	opts = append([]FSOption{WithFallback(Embedded())}, opts...)
	return NewFS(os.DirFS(path), opts...)
}
