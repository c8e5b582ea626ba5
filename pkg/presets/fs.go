package presets

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/agentstation/lintbridge/pkg/config"
	"github.com/agentstation/lintbridge/pkg/constants"
	"github.com/agentstation/lintbridge/pkg/errors"
	"github.com/agentstation/lintbridge/pkg/logging"
	"github.com/agentstation/lintbridge/pkg/reconcile"
	"github.com/agentstation/lintbridge/pkg/rules"
)

// FS resolves presets from files in an fs.FS. A preset file may extend
// other presets in the same filesystem; its effective rules are those of
// its extends, applied in order, overlaid by its own rules.
type FS struct {
	fsys        fs.FS
	concurrency int
	maxDepth    int
	fallback    reconcile.PresetResolver
}

// FSOption configures an FS resolver
type FSOption func(*FS)

// WithConcurrency bounds how many presets one Resolve call loads at once.
func WithConcurrency(n int) FSOption {
	return func(f *FS) {
		if n > 0 {
			f.concurrency = n
		}
	}
}

// WithMaxDepth bounds the length of an extends chain.
func WithMaxDepth(n int) FSOption {
	return func(f *FS) {
		if n > 0 {
			f.maxDepth = n
		}
	}
}

// WithFallback sets the resolver used for extends entries naming presets
// that are not in this filesystem, such as a local preset extending a
// built-in one.
func WithFallback(r reconcile.PresetResolver) FSOption {
	return func(f *FS) {
		f.fallback = r
	}
}

// NewFS creates a resolver over fsys.
func NewFS(fsys fs.FS, opts ...FSOption) *FS {
	f := &FS{
		fsys:        fsys,
		concurrency: constants.MaxConcurrentPresetLoads,
		maxDepth:    constants.MaxExtendsDepth,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Resolve implements reconcile.PresetResolver. Presets load concurrently;
// the result keeps request order. Only cancellation is returned as an error.
func (f *FS) Resolve(ctx context.Context, names []reconcile.PresetName) (*reconcile.Resolution, error) {
	loaded := make([]rules.Map, len(names))
	failures := make([]error, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)

	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m, err := f.Load(logging.WithPreset(gctx, name), name)
			if err != nil {
				failures[i] = err
				return nil
			}
			loaded[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrCanceled, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrCanceled, err)
	}

	res := &reconcile.Resolution{}
	for i, name := range names {
		if failures[i] != nil {
			res.Errors = append(res.Errors, errors.WrapResolution(name, failures[i]))
			continue
		}
		res.Presets = append(res.Presets, reconcile.ResolvedPreset{Name: name, Rules: loaded[i]})
	}
	return res, nil
}

// Load returns the effective rules of a single preset.
func (f *FS) Load(ctx context.Context, name reconcile.PresetName) (rules.Map, error) {
	return f.load(ctx, name, nil)
}

func (f *FS) load(ctx context.Context, name reconcile.PresetName, chain []string) (rules.Map, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file := FilePath(name)
	if !fs.ValidPath(file) {
		return nil, errors.NewValidationError("preset", name, "not a valid preset path")
	}
	if slices.Contains(chain, file) {
		return nil, fmt.Errorf("%w: %s", errors.ErrCycle, strings.Join(append(chain, file), " -> "))
	}
	if len(chain) >= f.maxDepth {
		return nil, errors.NewValidationError("extends", name, fmt.Sprintf("extends chain deeper than %d", f.maxDepth))
	}

	data, filename, err := f.read(file)
	if err != nil {
		return nil, err
	}

	preset, err := config.ParseFile(data, filename)
	if err != nil {
		return nil, err
	}

	logging.FromContext(logging.WithFile(ctx, filename)).Debug().
		Int("depth", len(chain)).
		Msg("Loaded preset file")

	chain = append(chain, file)
	layers := make([]rules.Map, 0, len(preset.Extends)+1)
	for _, parent := range preset.Extends {
		parentName := parent
		relative := strings.HasPrefix(parent, "./") || strings.HasPrefix(parent, "../")
		if relative {
			parentName = path.Join(path.Dir(file), parent)
		}
		m, err := f.load(ctx, parentName, chain[:len(chain):len(chain)])
		if !relative && f.fallback != nil && f.missing(parentName, err) {
			m, err = f.loadFallback(ctx, parentName)
		}
		if err != nil {
			return nil, fmt.Errorf("extends %s: %w", parent, err)
		}
		layers = append(layers, m)
	}
	layers = append(layers, rules.NormalizeMap(preset.Rules))

	return rules.Merge(layers...), nil
}

// missing reports whether err says the preset file itself does not exist,
// as opposed to something it extends.
func (f *FS) missing(name reconcile.PresetName, err error) bool {
	var nf *errors.NotFoundError
	return errors.As(err, &nf) && nf.ID == FilePath(name)
}

func (f *FS) loadFallback(ctx context.Context, name reconcile.PresetName) (rules.Map, error) {
	res, err := f.fallback.Resolve(ctx, []reconcile.PresetName{name})
	if err != nil {
		return nil, err
	}
	if len(res.Errors) > 0 {
		return nil, res.Errors[0]
	}
	if len(res.Presets) == 0 {
		return nil, errors.NewNotFoundError("preset", name)
	}
	return res.Presets[0].Rules, nil
}

// read finds the first existing file for a preset path.
func (f *FS) read(file string) ([]byte, string, error) {
	for _, ext := range Extensions {
		data, err := fs.ReadFile(f.fsys, file+ext)
		if err == nil {
			return data, file + ext, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", errors.NewIOError("read", file+ext, err)
		}
	}
	return nil, "", errors.NewNotFoundError("preset", file)
}

// List returns the names of every preset file in the filesystem, sorted.
func (f *FS) List() ([]reconcile.PresetName, error) {
	var names []reconcile.PresetName
	err := fs.WalkDir(f.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !slices.Contains(Extensions, path.Ext(p)) {
			return nil
		}
		names = append(names, presetName(p))
		return nil
	})
	if err != nil {
		return nil, errors.WrapIO("walk", ".", err)
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}
