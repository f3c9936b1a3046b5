// Package discover enumerates the candidate source files of a repository.
package discover

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/harrison/repoed/internal/ignore"
)

// metadataDir is the repository's internal metadata directory. It is never
// descended into and never reported.
const metadataDir = ".git"

// Discover walks the tree rooted at root and returns the relative paths of
// every regular file that survives the exclusion set and the ignore rules,
// sorted lexicographically so output is deterministic across runs and
// platforms.
//
// Paths are relative to root and slash-separated regardless of platform.
// Members of exclude are dropped by exact string match before the rule set
// is consulted, so an exclusion always wins over the ignore rules.
//
// Enumeration is best effort: an entry that cannot be read (permission
// denial, broken symlink) is skipped and the walk continues. There is no
// partial-success signal.
func Discover(root string, rules *ignore.RuleSet, exclude map[string]struct{}) []string {
	var files []string

	// WalkDir only returns an error when the callback does, and ours never
	// does.
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if d.Name() == metadataDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if _, excluded := exclude[rel]; excluded {
			return nil
		}
		if rules != nil && rules.Ignored(rel) {
			return nil
		}

		files = append(files, rel)
		return nil
	})

	sort.Strings(files)
	return files
}
