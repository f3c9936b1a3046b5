package ignore

import (
	"testing"
)

func TestParse_SkipsBlanksAndComments(t *testing.T) {
	rs := Parse([]string{
		"",
		"   ",
		"# a comment",
		"  # indented comment",
		"*.log",
		"dist/",
	})

	if got := len(rs.Patterns()); got != 2 {
		t.Fatalf("pattern count = %d, want 2", got)
	}
	if rs.Patterns()[0].Text != "*.log" {
		t.Errorf("first pattern text = %q, want %q", rs.Patterns()[0].Text, "*.log")
	}
}

func TestParse_Markers(t *testing.T) {
	tests := []struct {
		line     string
		text     string
		negated  bool
		anchored bool
		dirOnly  bool
		wildcard bool
	}{
		{line: "vendor", text: "vendor"},
		{line: "*.log", text: "*.log", wildcard: true},
		{line: "!keep.log", text: "keep.log", negated: true},
		{line: "/build", text: "build", anchored: true},
		{line: "dist/", text: "dist", dirOnly: true},
		{line: "!/out/", text: "out", negated: true, anchored: true, dirOnly: true},
		{line: "file?.txt", text: "file?.txt", wildcard: true},
		{line: "[ab].go", text: "[ab].go", wildcard: true},
		{line: "  spaced  ", text: "spaced"},
	}

	for _, tt := range tests {
		rs := Parse([]string{tt.line})
		if len(rs.Patterns()) != 1 {
			t.Fatalf("Parse(%q) produced %d patterns, want 1", tt.line, len(rs.Patterns()))
		}
		p := rs.Patterns()[0]
		if p.Text != tt.text {
			t.Errorf("Parse(%q).Text = %q, want %q", tt.line, p.Text, tt.text)
		}
		if p.Negated != tt.negated {
			t.Errorf("Parse(%q).Negated = %v, want %v", tt.line, p.Negated, tt.negated)
		}
		if p.Anchored != tt.anchored {
			t.Errorf("Parse(%q).Anchored = %v, want %v", tt.line, p.Anchored, tt.anchored)
		}
		if p.DirOnly != tt.dirOnly {
			t.Errorf("Parse(%q).DirOnly = %v, want %v", tt.line, p.DirOnly, tt.dirOnly)
		}
		if p.HasWildcard != tt.wildcard {
			t.Errorf("Parse(%q).HasWildcard = %v, want %v", tt.line, p.HasWildcard, tt.wildcard)
		}
	}
}

func TestIgnored_LastMatchWins(t *testing.T) {
	rs := Parse([]string{"*.log", "!keep.log"})

	if rs.Ignored("keep.log") {
		t.Error("keep.log should be re-included by the negation")
	}
	if !rs.Ignored("build.log") {
		t.Error("build.log should be ignored")
	}
}

func TestIgnored_NegationOverriddenByLaterRule(t *testing.T) {
	rs := Parse([]string{"*.log", "!keep.log", "keep.*"})

	if !rs.Ignored("keep.log") {
		t.Error("the later keep.* rule should override the negation")
	}
}

func TestIgnored_DirectoryPattern(t *testing.T) {
	rs := Parse([]string{"dist/"})

	tests := []struct {
		path string
		want bool
	}{
		{"dist", true},
		{"dist/app.js", true},
		{"dist/sub/deep.js", true},
		{"mydist/app.js", false},
		{"distx", false},
	}
	for _, tt := range tests {
		if got := rs.Ignored(tt.path); got != tt.want {
			t.Errorf("Ignored(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIgnored_LiteralPattern(t *testing.T) {
	rs := Parse([]string{"vendor"})

	tests := []struct {
		path string
		want bool
	}{
		{"vendor", true},
		{"vendor/lib.go", true},
		{"vendored.go", false},
	}
	for _, tt := range tests {
		if got := rs.Ignored(tt.path); got != tt.want {
			t.Errorf("Ignored(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIgnored_RootAnchoredPattern(t *testing.T) {
	rs := Parse([]string{"/build"})

	if !rs.Ignored("build") {
		t.Error("build should be ignored")
	}
	if !rs.Ignored("build/out.txt") {
		t.Error("build/out.txt should be ignored")
	}
}

func TestIgnored_GlobMatchesFullPathAndBasename(t *testing.T) {
	rs := Parse([]string{"*.log"})

	tests := []struct {
		path string
		want bool
	}{
		{"trace.log", true},
		{"logs/deep/trace.log", true},
		{"trace.log.bak", false},
	}
	for _, tt := range tests {
		if got := rs.Ignored(tt.path); got != tt.want {
			t.Errorf("Ignored(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

// The basename fallback means a glob written as root-relative still matches
// a same-named file deeper in the tree. This is a documented limitation that
// must not be "fixed" silently.
func TestIgnored_BasenameFallbackQuirk(t *testing.T) {
	rs := Parse([]string{"secret.*"})

	if !rs.Ignored("secret.txt") {
		t.Error("secret.txt should be ignored")
	}
	if !rs.Ignored("nested/dir/secret.txt") {
		t.Error("nested/dir/secret.txt matches via the basename fallback")
	}
}

func TestIgnored_EmptyRuleSet(t *testing.T) {
	for _, rs := range []*RuleSet{Parse(nil), Parse([]string{}), Parse([]string{"", "# only comments"})} {
		if rs.Ignored("anything.txt") {
			t.Error("empty rule set must ignore nothing")
		}
	}
}

func TestIgnored_MixedRealisticFile(t *testing.T) {
	rs := Parse([]string{
		"# build artifacts",
		"/build",
		"dist/",
		"*.log",
		"!important.log",
		"node_modules",
		"*.tmp",
	})

	tests := []struct {
		path string
		want bool
	}{
		{"build", true},
		{"build/main.o", true},
		{"dist/bundle.js", true},
		{"server.log", true},
		{"logs/server.log", true},
		{"important.log", false},
		{"node_modules/pkg/index.js", true},
		{"src/main.go", false},
		{"cache/session.tmp", true},
		{"README.md", false},
	}
	for _, tt := range tests {
		if got := rs.Ignored(tt.path); got != tt.want {
			t.Errorf("Ignored(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
