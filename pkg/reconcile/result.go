package reconcile

import (
	"fmt"

	"github.com/agentstation/lintbridge/pkg/rules"
)

// SummarizedResult is the reconciled configuration.
type SummarizedResult struct {
	// Converted holds the own rules that must still be written out.
	Converted rules.Map

	// Extends lists the presets to extend: deduplicated, legacy first,
	// then target, then formatter presets.
	Extends []PresetName

	// ExtensionRules holds the rule values the listed presets produce.
	ExtensionRules rules.Map

	// Failed holds the conversion errors followed by resolution errors.
	Failed []error

	// Notices passes through the converter's informational messages.
	Notices []string

	// Removed lists the own rules dropped because a preset supplies them.
	Removed []rules.ID

	// Provenance names the preset behind each extension rule.
	Provenance Provenance
}

// HasErrors returns true if any configuration error was recorded
func (r *SummarizedResult) HasErrors() bool {
	return len(r.Failed) > 0
}

// Summary returns a one-line human-readable summary of the result
func (r *SummarizedResult) Summary() string {
	s := fmt.Sprintf("%d rules kept, %d removed as duplicates of %d extended presets",
		len(r.Converted), len(r.Removed), len(r.Extends))
	if r.HasErrors() {
		s += fmt.Sprintf(", %d errors", len(r.Failed))
	}
	return s
}
