package reconcile

import (
	"github.com/agentstation/lintbridge/pkg/rules"
)

// NormalizeExtensions flattens resolved presets into the rule values they
// produce when applied in order: a later preset overrides an earlier one
// for the same rule. Every value is normalized.
func NormalizeExtensions(presets []ResolvedPreset) (rules.Map, Provenance) {
	out := make(rules.Map)
	provenance := make(Provenance)
	for _, preset := range presets {
		for _, id := range preset.Rules.IDs() {
			value := rules.Normalize(preset.Rules[id])
			out[id] = value
			provenance.track(id, preset.Name, value)
		}
	}
	return out, provenance
}

// orderPresets returns the resolved presets that were actually requested,
// in request order. Anything else the resolver handed back is ignored.
func orderPresets(requested []PresetName, resolved []ResolvedPreset) []ResolvedPreset {
	byName := make(map[PresetName]ResolvedPreset, len(resolved))
	for _, p := range resolved {
		byName[p.Name] = p
	}
	out := make([]ResolvedPreset, 0, len(resolved))
	for _, name := range requested {
		if p, ok := byName[name]; ok {
			out = append(out, p)
		}
	}
	return out
}
