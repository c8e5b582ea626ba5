package reconcile

import (
	"fmt"
	"strings"

	"github.com/agentstation/lintbridge/pkg/rules"
)

// ProvenanceInfo records where an extension rule's effective value came from.
type ProvenanceInfo struct {
	Preset     PresetName   // preset whose value applies
	Value      rules.Value  // the applied value
	Overridden []PresetName // earlier presets whose value for the rule was replaced
}

// Provenance maps each extension rule to its origin.
type Provenance map[rules.ID]ProvenanceInfo

// track records that preset set id to value, replacing any earlier setting.
func (p Provenance) track(id rules.ID, preset PresetName, value rules.Value) {
	info := ProvenanceInfo{Preset: preset, Value: value}
	if prev, ok := p[id]; ok {
		info.Overridden = append(append([]PresetName{}, prev.Overridden...), prev.Preset)
	}
	p[id] = info
}

// Source returns the preset that supplies id.
func (p Provenance) Source(id rules.ID) (PresetName, bool) {
	info, ok := p[id]
	return info.Preset, ok
}

// Conflicts returns the rules that more than one preset configured, sorted.
func (p Provenance) Conflicts() []rules.ID {
	ids := make(rules.Map)
	for id, info := range p {
		if len(info.Overridden) > 0 {
			ids[id] = info.Value
		}
	}
	return ids.IDs()
}

// String generates a human-readable provenance report
func (p Provenance) String() string {
	var sb strings.Builder
	ids := make(rules.Map, len(p))
	for id, info := range p {
		ids[id] = info.Value
	}
	for _, id := range ids.IDs() {
		info := p[id]
		fmt.Fprintf(&sb, "%s: %s (from %s)", id, info.Value, info.Preset)
		if len(info.Overridden) > 0 {
			fmt.Fprintf(&sb, ", overrides %s", strings.Join(info.Overridden, ", "))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
