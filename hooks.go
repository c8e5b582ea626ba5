package lintbridge

import (
	"sync"

	"github.com/agentstation/lintbridge/pkg/reconcile"
	"github.com/agentstation/lintbridge/pkg/rules"
)

// Hook function types for reconciliation events
type (
	// RuleRemovedHook is called when a converted rule is dropped because
	// a preset already sets it to the same value
	RuleRemovedHook func(rule rules.ID, preset reconcile.PresetName)

	// PresetUnresolvedHook is called for every preset that could not be resolved
	PresetUnresolvedHook func(err error)
)

// hooks manages event callbacks
type hooks struct {
	mu                 sync.RWMutex
	onRuleRemoved      []RuleRemovedHook
	onPresetUnresolved []PresetUnresolvedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnRuleRemoved registers a callback for removed rules
func (h *hooks) OnRuleRemoved(fn RuleRemovedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onRuleRemoved = append(h.onRuleRemoved, fn)
}

// OnPresetUnresolved registers a callback for unresolved presets
func (h *hooks) OnPresetUnresolved(fn PresetUnresolvedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onPresetUnresolved = append(h.onPresetUnresolved, fn)
}

// trigger fires the hooks for a result. The first inputFailures entries of
// result.Failed came from the converter and are not resolution failures.
func (h *hooks) trigger(result *reconcile.SummarizedResult, inputFailures int) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, id := range result.Removed {
		preset, _ := result.Provenance.Source(id)
		for _, hook := range h.onRuleRemoved {
			hook(id, preset)
		}
	}

	if inputFailures > len(result.Failed) {
		return
	}
	for _, err := range result.Failed[inputFailures:] {
		for _, hook := range h.onPresetUnresolved {
			hook(err)
		}
	}
}
