// Package matcher filters preset and rule names with glob or regex patterns.
package matcher

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// PatternType represents the type of pattern matching to use.
type PatternType int

const (
	// Glob uses shell-style glob patterns (*, ?, []).
	// A "*" does not cross a "/" so "@typescript-eslint/*" stays in one scope.
	Glob PatternType = iota
	// Regex uses regular expressions.
	Regex
	// Auto picks Glob or Regex from the pattern text.
	Auto
)

// String returns a string representation of the PatternType.
func (pt PatternType) String() string {
	switch pt {
	case Glob:
		return "glob"
	case Regex:
		return "regex"
	case Auto:
		return "auto"
	default:
		return "unknown"
	}
}

// Matcher reports whether names match a compiled pattern.
type Matcher struct {
	pattern     string
	patternType PatternType
	compiled    *regexp.Regexp
}

// New compiles pattern. An empty pattern matches every name.
func New(patternType PatternType, pattern string) (*Matcher, error) {
	m := &Matcher{pattern: pattern, patternType: patternType}
	if patternType == Auto {
		m.patternType = detectPatternType(pattern)
	}

	switch m.patternType {
	case Glob:
		if _, err := path.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
	case Regex:
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
		}
		m.compiled = compiled
	default:
		return nil, fmt.Errorf("unsupported pattern type: %v", patternType)
	}
	return m, nil
}

// Match checks if the input matches the pattern.
func (m *Matcher) Match(input string) bool {
	if m.pattern == "" {
		return true
	}
	if m.patternType == Regex {
		return m.compiled.MatchString(input)
	}
	matched, _ := path.Match(m.pattern, input)
	return matched
}

// Filter returns the inputs that match, in input order.
func (m *Matcher) Filter(inputs []string) []string {
	results := make([]string, 0, len(inputs))
	for _, input := range inputs {
		if m.Match(input) {
			results = append(results, input)
		}
	}
	return results
}

// Pattern returns the original pattern string.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Type returns the resolved pattern type.
func (m *Matcher) Type() PatternType {
	return m.patternType
}

// detectPatternType treats anything with regex-only syntax as a regex.
func detectPatternType(pattern string) PatternType {
	for _, indicator := range []string{"^", "$", "\\d", "\\w", "\\s", "(?", "{", "}", "+", "|", "(", ")", ".*"} {
		if strings.Contains(pattern, indicator) {
			return Regex
		}
	}
	return Glob
}
