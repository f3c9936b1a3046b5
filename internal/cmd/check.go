package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrison/repoed/internal/fileutil"
	"github.com/harrison/repoed/internal/ignore"
)

// NewCheckCommand creates and returns the check subcommand
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Show whether paths are excluded by the repository's ignore rules",
		Long: `Evaluate repository-relative paths against the .gitignore rules exactly
as the generate command would, printing one verdict per path:

  ignored   build/out.txt
  included  src/main.go

Useful for debugging why a file did or did not end up in the aggregated
document. Paths are matched as given; they do not need to exist.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			return runCheck(dir, args, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringP("dir", "C", ".", "Repository root containing the .gitignore")

	return cmd
}

// runCheck prints the ignore verdict for each path.
func runCheck(dir string, paths []string, out io.Writer) error {
	ignorePath := filepath.Join(dir, ".gitignore")
	if _, err := os.Stat(ignorePath); err != nil {
		return fmt.Errorf(".gitignore file not found in %s", dir)
	}

	rules := ignore.Parse(fileutil.ReadLines(ignorePath))
	for _, p := range paths {
		rel := filepath.ToSlash(p)
		verdict := "included"
		if rules.Ignored(rel) {
			verdict = "ignored"
		}
		fmt.Fprintf(out, "%-9s %s\n", verdict, rel)
	}
	return nil
}
