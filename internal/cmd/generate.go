package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/repoed/internal/config"
	"github.com/harrison/repoed/internal/discover"
	"github.com/harrison/repoed/internal/document"
	"github.com/harrison/repoed/internal/fileutil"
	"github.com/harrison/repoed/internal/gitinfo"
	"github.com/harrison/repoed/internal/ignore"
	"github.com/harrison/repoed/internal/logger"
)

// generateOptions carries the resolved generate flags. Zero values mean
// "defer to the configuration file".
type generateOptions struct {
	dir     string
	output  string
	commits int
	html    bool
	htmlSet bool
	quiet   bool
}

// NewGenerateCommand creates and returns the generate subcommand
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the aggregated markdown document for the repository",
		Long: `Aggregate the repository into a single markdown document (repoed.md by
default) containing:
  - The last few commit subjects (or a note when there are none)
  - The README contents (or a note when it is absent or ignored)
  - One fenced section per file not excluded by .gitignore

The command must be run against a git repository with a .gitignore file;
it refuses to run otherwise. Optional settings are read from .repoed.yaml
in the repository root and can be overridden with flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := generateOptions{}
			opts.dir, _ = cmd.Flags().GetString("dir")
			opts.output, _ = cmd.Flags().GetString("output")
			opts.commits, _ = cmd.Flags().GetInt("commits")
			opts.html, _ = cmd.Flags().GetBool("html")
			opts.htmlSet = cmd.Flags().Changed("html")
			opts.quiet, _ = cmd.Flags().GetBool("quiet")
			return runGenerate(opts, cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringP("dir", "C", ".", "Repository root to aggregate")
	cmd.Flags().StringP("output", "o", "", "Output file name (overrides config)")
	cmd.Flags().IntP("commits", "n", 0, "Number of recent commit subjects to list (overrides config)")
	cmd.Flags().Bool("html", false, "Also write an HTML rendering next to the markdown file")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress progress output")

	return cmd
}

// runGenerate performs one full aggregation run against opts.dir.
//
// Preconditions (a .git directory and a .gitignore file) are enforced here;
// past this gate the pipeline never fails globally — every degradation is
// rendered into the document instead.
func runGenerate(opts generateOptions, out io.Writer) error {
	if !gitinfo.IsRepository(opts.dir) {
		return fmt.Errorf(".git directory not found in %s", opts.dir)
	}
	ignorePath := filepath.Join(opts.dir, ".gitignore")
	if _, err := os.Stat(ignorePath); err != nil {
		return fmt.Errorf(".gitignore file not found in %s", opts.dir)
	}

	cfg, err := config.LoadConfig(filepath.Join(opts.dir, config.FileName))
	if err != nil {
		return err
	}
	if opts.output != "" {
		cfg.Output = opts.output
	}
	if opts.commits > 0 {
		cfg.CommitCount = opts.commits
	}
	if opts.htmlSet {
		cfg.HTML = opts.html
	}

	logWriter := out
	if opts.quiet {
		logWriter = nil
	}
	log := logger.NewConsoleLogger(logWriter, cfg.LogLevel)

	rules := ignore.Parse(fileutil.ReadLines(ignorePath))
	log.Debugf("parsed %d ignore patterns from %s", len(rules.Patterns()), ignorePath)

	commits := gitinfo.RecentCommits(opts.dir, cfg.CommitCount)
	if len(commits) == 0 {
		log.Debugf("no commit history found in %s", opts.dir)
	}

	readmePath := filepath.Join(opts.dir, document.ReadmeName)
	_, statErr := os.Stat(readmePath)
	hasReadme := statErr == nil && !rules.Ignored(document.ReadmeName)

	exclude := excludeSet(cfg)
	files := discover.Discover(opts.dir, rules, exclude)
	log.Debugf("discovered %d files", len(files))

	assembler := document.NewAssembler(func(rel string) string {
		return fileutil.ReadFileText(filepath.Join(opts.dir, filepath.FromSlash(rel)))
	})
	doc := assembler.Assemble(commits, hasReadme, files)

	outputPath := filepath.Join(opts.dir, cfg.Output)
	if err := fileutil.WriteDocument(outputPath, []byte(doc)); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	log.Infof("Aggregated markdown file created: %s", cfg.Output)

	if cfg.HTML {
		html, err := document.RenderHTML(doc)
		if err != nil {
			return err
		}
		htmlName := htmlFileName(cfg.Output)
		if err := fileutil.WriteDocument(filepath.Join(opts.dir, htmlName), html); err != nil {
			return fmt.Errorf("write %s: %w", htmlName, err)
		}
		log.Infof("HTML rendering created: %s", htmlName)
	}

	return nil
}

// excludeSet builds the exact-match exclusion set for discovery: the files
// the document renders specially (README, the ignore source) plus the
// tool's own output and configuration, plus any configured extras.
func excludeSet(cfg *config.Config) map[string]struct{} {
	exclude := map[string]struct{}{
		document.ReadmeName: {},
		".gitignore":        {},
		config.FileName:     {},
		cfg.Output:          {},
	}
	if cfg.HTML {
		exclude[htmlFileName(cfg.Output)] = struct{}{}
	}
	for _, extra := range cfg.Exclude {
		exclude[filepath.ToSlash(extra)] = struct{}{}
	}
	return exclude
}

// htmlFileName swaps the output file's extension for .html.
func htmlFileName(output string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + ".html"
}
