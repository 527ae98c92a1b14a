package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Lewsiafat/AICodeReviewCLI/internal/config"
	"github.com/Lewsiafat/AICodeReviewCLI/internal/gitctx"
	"github.com/Lewsiafat/AICodeReviewCLI/internal/history"
	"github.com/Lewsiafat/AICodeReviewCLI/internal/report"
	"github.com/Lewsiafat/AICodeReviewCLI/internal/review"
	"github.com/Lewsiafat/AICodeReviewCLI/internal/source"
)

// Shared flags.
var (
	flagProvider  string
	flagModel     string
	flagDebug     bool
	flagPerCommit bool
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Generate an AI review and save the report",
}

var reviewRangeCmd = &cobra.Command{
	Use:   "range <base> <head>",
	Short: "Review the changes head introduced relative to base",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, head := args[0], args[1]
		repo := gitctx.New("")
		if !repo.IsRepository() {
			fail(ExitRuntimeError, "not a git repository")
			return nil
		}

		var items []review.Item
		if flagPerCommit {
			commits, err := repo.ListCommits(base, head)
			if err != nil {
				fail(ExitRuntimeError, "%v", err)
				return nil
			}
			if len(commits) == 0 {
				fmt.Fprintf(os.Stdout, "No commits in %s..%s, nothing to review.\n", base, head)
				return nil
			}
			for _, c := range commits {
				patch, err := repo.ShowCommit(c.SHA)
				if err != nil {
					fail(ExitRuntimeError, "%v", err)
					return nil
				}
				items = append(items, review.Item{
					Label:   fmt.Sprintf("%s %s", shortSHA(c.SHA), c.Subject),
					Content: patch,
				})
			}
		} else {
			diff, err := repo.RangeDiff(base, head)
			if err != nil {
				fail(ExitRuntimeError, "%v", err)
				return nil
			}
			if strings.TrimSpace(diff) == "" {
				fmt.Fprintf(os.Stdout, "No changes between %s and %s, nothing to review.\n", base, head)
				return nil
			}
			items = []review.Item{{Label: base + ".." + head, Content: diff}}
		}

		return runReview(cmd, base+".."+head, items)
	},
}

var reviewCommitCmd = &cobra.Command{
	Use:   "commit <sha>",
	Short: "Review a single commit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sha := args[0]
		repo := gitctx.New("")
		if !repo.IsRepository() {
			fail(ExitRuntimeError, "not a git repository")
			return nil
		}
		patch, err := repo.ShowCommit(sha)
		if err != nil {
			fail(ExitRuntimeError, "%v", err)
			return nil
		}
		items := []review.Item{{Label: sha, Content: patch}}
		return runReview(cmd, sha, items)
	},
}

var reviewFilesCmd = &cobra.Command{
	Use:   "files <path>...",
	Short: "Review a set of files or directories",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			fail(ExitRuntimeError, "%v", err)
			return nil
		}
		set, err := source.Collect(wd, args)
		if err != nil {
			fail(ExitUsageError, "%v", err)
			return nil
		}
		for _, skipped := range set.Skipped {
			fmt.Fprintf(os.Stderr, "Skipping %s (binary or too large)\n", skipped)
		}
		target := "files-" + strings.Join(set.Files, "-")
		if len(set.Files) > 3 {
			target = fmt.Sprintf("files-%s-and-%d-more", set.Files[0], len(set.Files)-1)
		}
		items := []review.Item{{Label: strings.Join(set.Files, ", "), Content: set.Content}}
		return runReview(cmd, target, items)
	},
}

// runReview resolves the session, runs the batch, and persists the
// report plus a history record.
func runReview(cmd *cobra.Command, target string, items []review.Item) error {
	cfg, sess, ok := openSession()
	if !ok {
		return nil
	}
	p, ok := buildProvider(cmd, sess)
	if !ok {
		return nil
	}

	runner := &review.Runner{
		Provider: p,
		Model:    sess.Model,
		Prompt:   review.AssemblePrompt(cfg.PromptParts()),
		Debug:    flagDebug,
	}

	fmt.Fprintf(os.Stdout, "Reviewing %s with %s (%s)...\n", target, p.Name(), sess.Model)

	start := time.Now()
	results, err := runner.RunBatch(cmd.Context(), items)
	if err != nil {
		fail(ExitRuntimeError, "%v", err)
		return nil
	}

	path, err := report.Save(cfg.ReportsDir(), report.Report{
		Provider:  p.Name(),
		Model:     sess.Model,
		Target:    target,
		Body:      review.Combined(results),
		CreatedAt: time.Now(),
	})
	if err != nil {
		fail(ExitRuntimeError, "%v", err)
		return nil
	}

	recordRun(cmd, cfg, history.Run{
		Provider:   p.Name(),
		Model:      sess.Model,
		Target:     target,
		ReportPath: path,
		DurationMs: time.Since(start).Milliseconds(),
	})

	color.New(color.FgGreen).Fprintf(os.Stdout, "Report saved to %s\n", path)
	return nil
}

// recordRun appends to run history. History failures are reported but
// never fail the review, the report is already on disk.
func recordRun(cmd *cobra.Command, cfg *config.Config, run history.Run) {
	store, err := history.Open(cfg.HistoryPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history: %v\n", err)
		return
	}
	defer store.Close()
	if _, err := store.Record(cmd.Context(), run); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record history: %v\n", err)
	}
}

func shortSHA(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}
	return sha
}

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagProvider, "provider", "", "Provider override (Google, OpenAI, Anthropic, Grok)")
	cmd.Flags().StringVar(&flagModel, "model", "", "Model override")
}

func init() {
	for _, cmd := range []*cobra.Command{reviewRangeCmd, reviewCommitCmd, reviewFilesCmd} {
		addSessionFlags(cmd)
		cmd.Flags().BoolVar(&flagDebug, "debug", false, "Echo the composed prompt instead of calling the API")
		reviewCmd.AddCommand(cmd)
	}
	reviewRangeCmd.Flags().BoolVar(&flagPerCommit, "per-commit", false, "Review each commit in the range separately")
}
