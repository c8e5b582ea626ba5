package presets

import (
	"context"

	"github.com/agentstation/lintbridge/pkg/errors"
	"github.com/agentstation/lintbridge/pkg/reconcile"
	"github.com/agentstation/lintbridge/pkg/rules"
)

// Memory resolves presets from a map held in memory. Names are looked up
// as given; values are normalized and copied on every call.
type Memory map[reconcile.PresetName]rules.Map

// Resolve implements reconcile.PresetResolver.
func (m Memory) Resolve(ctx context.Context, names []reconcile.PresetName) (*reconcile.Resolution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &reconcile.Resolution{}
	for _, name := range names {
		preset, ok := m[name]
		if !ok {
			res.Errors = append(res.Errors, errors.NewResolutionError(name, errors.NewNotFoundError("preset", name)))
			continue
		}
		res.Presets = append(res.Presets, reconcile.ResolvedPreset{
			Name:  name,
			Rules: rules.NormalizeValues(preset),
		})
	}
	return res, nil
}
