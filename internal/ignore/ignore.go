// Package ignore implements a simplified gitignore pattern engine used to
// decide which repository files are worth aggregating.
//
// The supported subset covers literal paths, directory patterns (trailing
// slash), shell-style globs (*, ?, [...]), root-anchored patterns (leading
// slash), and negation (leading bang) with last-match-wins precedence. It is
// deliberately not a full gitignore implementation: there is no ** syntax and
// no per-directory ignore file scoping.
package ignore

import (
	"strings"
)

// wildcardChars are the characters that switch a pattern from literal
// prefix matching to glob matching.
const wildcardChars = "*?["

// Pattern is one parsed ignore rule. Patterns are immutable once parsed;
// RuleSet owns the only references to them.
type Pattern struct {
	// Raw is the trimmed source line the pattern was parsed from.
	Raw string

	// Text is the normalized match text with the negation, anchor, and
	// directory markers stripped.
	Text string

	// Negated marks a "!" pattern that re-includes matching paths.
	Negated bool

	// Anchored marks a "/"-prefixed pattern that matches from the
	// repository root only.
	Anchored bool

	// DirOnly marks a "/"-suffixed pattern that names a directory and all
	// of its contents.
	DirOnly bool

	// HasWildcard is true when Text contains any of *, ?, or [ and glob
	// matching applies instead of literal matching.
	HasWildcard bool
}

// RuleSet evaluates an ordered list of ignore patterns against
// repository-relative paths.
type RuleSet struct {
	patterns []Pattern
}

// Parse builds a RuleSet from the raw lines of an ignore file. Blank lines
// and "#" comments are discarded; everything else becomes one Pattern in
// file order. A nil or empty slice yields a rule set that ignores nothing.
func Parse(lines []string) *RuleSet {
	rs := &RuleSet{}
	for _, line := range lines {
		if p, ok := parseLine(line); ok {
			rs.patterns = append(rs.patterns, p)
		}
	}
	return rs
}

// parseLine parses a single ignore file line. The second return value is
// false for lines that do not produce a pattern (blank lines and comments).
func parseLine(line string) (Pattern, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Pattern{}, false
	}

	p := Pattern{Raw: trimmed}
	text := trimmed

	if strings.HasPrefix(text, "!") {
		p.Negated = true
		text = text[1:]
	}
	if strings.HasPrefix(text, "/") {
		p.Anchored = true
		text = text[1:]
	}
	if strings.HasSuffix(text, "/") {
		p.DirOnly = true
		text = strings.TrimRight(text, "/")
	}

	p.Text = text
	p.HasWildcard = strings.ContainsAny(text, wildcardChars)
	return p, true
}

// Patterns returns the parsed patterns in file order.
func (rs *RuleSet) Patterns() []Pattern {
	return rs.patterns
}

// Ignored reports whether rel, a slash-separated path relative to the
// repository root, is excluded by the rule set.
//
// Every pattern is evaluated in file order and each match overwrites the
// running verdict with the pattern's polarity, so the last matching rule
// wins. The scan never short-circuits: an early "!keep" can be overridden
// by a later positive match and vice versa.
func (rs *RuleSet) Ignored(rel string) bool {
	ignored := false
	for _, p := range rs.patterns {
		if p.Matches(rel) {
			ignored = !p.Negated
		}
	}
	return ignored
}

// Matches reports whether rel matches this single pattern, without regard
// to negation or to any other pattern in the set.
//
// Directory patterns and wildcard-free literals match the path itself or
// anything beneath it. Glob patterns match against the full path or,
// failing that, the path's final segment; the basename fallback lets an
// unanchored "*.log" match at any depth, but it also means a root-relative
// glob can match a same-named file deeper in the tree. That quirk is
// preserved on purpose — see the package documentation.
func (p Pattern) Matches(rel string) bool {
	if p.DirOnly || !p.HasWildcard {
		return rel == p.Text || strings.HasPrefix(rel, p.Text+"/")
	}
	return globMatch(p.Text, rel) || globMatch(p.Text, baseName(rel))
}

// baseName returns the final segment of a slash-separated path.
func baseName(rel string) string {
	if i := strings.LastIndexByte(rel, '/'); i >= 0 {
		return rel[i+1:]
	}
	return rel
}
