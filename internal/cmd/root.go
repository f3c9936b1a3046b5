package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for repoed
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repoed",
		Short: "Aggregate a git repository into one shareable markdown document",
		Long: `Repoed concatenates a repository's source files into a single markdown
document annotated with its recent commit history.

The document lists the last few commit subjects, renders the README, and
then adds one fenced section per file that survives the repository's
.gitignore rules. The result is a single artifact that can be shared or
pasted into a large-language-model prompt.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.AddCommand(NewGenerateCommand())
	cmd.AddCommand(NewCheckCommand())

	return cmd
}
