package presets

import (
	"context"

	"github.com/agentstation/lintbridge/pkg/errors"
	"github.com/agentstation/lintbridge/pkg/reconcile"
)

// Chain tries each resolver in order. A name goes to the next resolver only
// if every earlier one failed to resolve it, and the last failure is the one
// reported.
type Chain []reconcile.PresetResolver

// Resolve implements reconcile.PresetResolver.
func (c Chain) Resolve(ctx context.Context, names []reconcile.PresetName) (*reconcile.Resolution, error) {
	found := make(map[reconcile.PresetName]reconcile.ResolvedPreset, len(names))
	failed := make(map[reconcile.PresetName]error)

	pending := names
	for _, r := range c {
		if len(pending) == 0 {
			break
		}

		res, err := r.Resolve(ctx, pending)
		if err != nil {
			return nil, err
		}

		for _, p := range res.Presets {
			found[p.Name] = p
			delete(failed, p.Name)
		}
		for _, rerr := range res.Errors {
			var re *errors.ResolutionError
			if errors.As(rerr, &re) {
				failed[re.Preset] = rerr
			}
		}

		next := pending[:0:0]
		for _, name := range pending {
			if _, ok := found[name]; !ok {
				next = append(next, name)
			}
		}
		pending = next
	}

	res := &reconcile.Resolution{}
	for _, name := range names {
		if p, ok := found[name]; ok {
			res.Presets = append(res.Presets, p)
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
