// Package document renders the aggregated repository document.
//
// The layout is fixed: a "Last Commits" section, a README section, then one
// fenced section per discovered file, each file section closed by a
// horizontal rule. Consumers depend on the exact byte layout, so rendering
// must not be reordered or reformatted.
package document

import (
	"fmt"
	"strings"
)

const (
	// ReadmeName is the repository file rendered as the dedicated README
	// section.
	ReadmeName = "README.md"

	commitsHeader   = "### Last Commits"
	noCommitsBullet = "- Not committed yet"
	noReadmeBullet  = "- Does not exist"
	horizontalRule  = "---"
)

// FileReader returns the textual content of the file at a
// repository-relative path. Implementations report read failures as a
// message in the returned string; reading never faults the assembly.
type FileReader func(rel string) string

// Assembler renders the output document. It owns the in-memory buffer for
// the duration of one Assemble call and shares nothing across runs.
type Assembler struct {
	readFile FileReader
}

// NewAssembler creates an Assembler that reads file content through read.
func NewAssembler(read FileReader) *Assembler {
	return &Assembler{readFile: read}
}

// Assemble renders the full document.
//
// commits are the revision subjects to list, most recent first, exactly as
// supplied. hasReadme reports whether README.md exists and is not ignored.
// files are the discovered relative paths, already sorted; every entry gets
// exactly one section, rendered once, in the given order.
func (a *Assembler) Assemble(commits []string, hasReadme bool, files []string) string {
	var sb strings.Builder

	a.writeCommits(&sb, commits)
	a.writeReadme(&sb, hasReadme)
	for _, f := range files {
		a.writeFileSection(&sb, f)
	}

	return sb.String()
}

func (a *Assembler) writeCommits(sb *strings.Builder, commits []string) {
	sb.WriteString(commitsHeader + "\n")
	if len(commits) == 0 {
		sb.WriteString(noCommitsBullet + "\n")
	} else {
		for _, c := range commits {
			fmt.Fprintf(sb, "- %s\n", c)
		}
	}
	sb.WriteString("\n")
}

func (a *Assembler) writeReadme(sb *strings.Builder, hasReadme bool) {
	sb.WriteString("### " + ReadmeName + "\n")
	if hasReadme {
		writeFenced(sb, a.readFile(ReadmeName))
	} else {
		sb.WriteString("\n" + noReadmeBullet + "\n")
	}
	sb.WriteString(horizontalRule + "\n\n")
}

func (a *Assembler) writeFileSection(sb *strings.Builder, rel string) {
	fmt.Fprintf(sb, "### %s\n", rel)
	writeFenced(sb, a.readFile(rel))
	sb.WriteString(horizontalRule + "\n\n")
}

// writeFenced writes content inside a triple-backtick fence, preceded by a
// blank line. A trailing newline is always added before the closing fence
// so the fence sits on its own line even for content without one.
func writeFenced(sb *strings.Builder, content string) {
	sb.WriteString("\n```\n")
	sb.WriteString(content)
	sb.WriteString("\n```\n")
}
