package reconcile

import (
	"github.com/agentstation/lintbridge/pkg/rules"
)

// Deduplicated is the outcome of RemoveDuplicates.
type Deduplicated struct {
	// DifferentRules are the own rules that no preset already supplies.
	DifferentRules rules.Map

	// ExtensionRules is the extension map, passed through unchanged.
	ExtensionRules rules.Map

	// Removed lists the own rules dropped as redundant, sorted.
	Removed []rules.ID
}

// RemoveDuplicates drops every own rule whose normalized value equals the
// value the extension rules already give it. Kept rules are copied
// verbatim. Rules present only in extension never appear in the result.
func RemoveDuplicates(own, extension rules.Map) Deduplicated {
	different := make(rules.Map, len(own))
	removed := make([]rules.ID, 0)

	for _, id := range own.IDs() {
		value := own[id]
		if inherited, ok := extension[id]; ok && rules.Equal(value, inherited) {
			removed = append(removed, id)
			continue
		}
		different[id] = value
	}

	return Deduplicated{
		DifferentRules: different,
		ExtensionRules: extension,
		Removed:        removed,
	}
}
