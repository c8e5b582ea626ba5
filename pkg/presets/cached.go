package presets

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/agentstation/lintbridge/pkg/constants"
	"github.com/agentstation/lintbridge/pkg/errors"
	"github.com/agentstation/lintbridge/pkg/reconcile"
	"github.com/agentstation/lintbridge/pkg/rules"
)

// Cached remembers presets resolved by another resolver. Failures are not
// cached, so a preset that appears later is picked up on the next call.
type Cached struct {
	next  reconcile.PresetResolver
	cache *lru.Cache[reconcile.PresetName, rules.Map]
}

// NewCached wraps next with an LRU cache holding up to size presets.
// A size of zero or less uses constants.DefaultPresetCacheSize.
func NewCached(next reconcile.PresetResolver, size int) (*Cached, error) {
	if next == nil {
		return nil, errors.NewConfigError("presets", "cached resolver needs a resolver to wrap", nil)
	}
	if size <= 0 {
		size = constants.DefaultPresetCacheSize
	}
	cache, err := lru.New[reconcile.PresetName, rules.Map](size)
	if err != nil {
		return nil, errors.NewConfigError("presets", "creating preset cache", err)
	}
	return &Cached{next: next, cache: cache}, nil
}

// Resolve implements reconcile.PresetResolver.
func (c *Cached) Resolve(ctx context.Context, names []reconcile.PresetName) (*reconcile.Resolution, error) {
	hits := make(map[reconcile.PresetName]rules.Map, len(names))
	var misses []reconcile.PresetName
	for _, name := range names {
		if m, ok := c.cache.Get(name); ok {
			hits[name] = m
			continue
		}
		misses = append(misses, name)
	}

	failed := make(map[reconcile.PresetName]error)
	if len(misses) > 0 {
		res, err := c.next.Resolve(ctx, misses)
		if err != nil {
			return nil, err
		}
		for _, p := range res.Presets {
			c.cache.Add(p.Name, p.Rules.Clone())
			hits[p.Name] = p.Rules
		}
		for _, rerr := range res.Errors {
			var re *errors.ResolutionError
			if errors.As(rerr, &re) {
				failed[re.Preset] = rerr
			}
		}
	}

	res := &reconcile.Resolution{}
	for _, name := range names {
		if m, ok := hits[name]; ok {
			res.Presets = append(res.Presets, reconcile.ResolvedPreset{Name: name, Rules: m.Clone()})
			continue
		}
		err, ok := failed[name]
		if !ok {
			err = errors.NewResolutionError(name, errors.NewNotFoundError("preset", name))
		}
		res.Errors = append(res.Errors, err)
	}
	return res, nil
}

// Len returns the number of cached presets.
func (c *Cached) Len() int {
	return c.cache.Len()
}

// Purge empties the cache.
func (c *Cached) Purge() {
	c.cache.Purge()
}
