//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/agentstation/lintbridge --repository.default-branch master --repository.path /

// Package lintbridge finishes a TSLint to ESLint migration: it decides which
// presets the new configuration extends and keeps only the converted rules
// those presets do not already configure the same way.
//
// The Client ties the building blocks together for callers that work with
// files. The packages under pkg/ can be used directly for anything finer
// grained.
package lintbridge
