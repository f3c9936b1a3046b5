// Package gitinfo answers the two questions the aggregator asks about the
// surrounding repository: is this directory a git repository, and what are
// its most recent commits.
package gitinfo

import (
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// IsRepository reports whether dir contains a .git metadata directory.
func IsRepository(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}

// RecentCommits returns the subject lines of the most recent commits of the
// repository at dir, newest first, at most n entries.
//
// Any failure — not a repository, unborn HEAD, empty history — yields an
// empty slice. Callers treat a failed lookup identically to "no history",
// so no error is surfaced.
func RecentCommits(dir string, n int) []string {
	if n <= 0 {
		return nil
	}

	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil
	}
	head, err := repo.Head()
	if err != nil {
		return nil
	}
	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil
	}
	defer iter.Close()

	var subjects []string
	for len(subjects) < n {
		commit, err := iter.Next()
		if err != nil {
			break
		}
		subject, _, _ := strings.Cut(commit.Message, "\n")
		subjects = append(subjects, strings.TrimSpace(subject))
	}
	return subjects
}
