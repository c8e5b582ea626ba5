//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/agentstation/lintbridge --repository.default-branch master --repository.path /pkg/reconcile

// Package reconcile decides which self-authored lint rules survive into a
// converted ESLint configuration. It collects the presets both linters
// extend, optionally appends the prettier compatibility presets, resolves
// what those presets already configure, and drops every own rule whose
// normalized value a preset already supplies.
package reconcile
