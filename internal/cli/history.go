package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Lewsiafat/AICodeReviewCLI/internal/config"
	"github.com/Lewsiafat/AICodeReviewCLI/internal/history"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Review run history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent review runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			fail(ExitRuntimeError, "loading configuration: %v", err)
			return nil
		}
		store, err := history.Open(cfg.HistoryPath())
		if err != nil {
			fail(ExitRuntimeError, "%v", err)
			return nil
		}
		defer store.Close()

		runs, err := store.Recent(cmd.Context(), flagLimit)
		if err != nil {
			fail(ExitRuntimeError, "%v", err)
			return nil
		}
		if len(runs) == 0 {
			fmt.Fprintln(os.Stdout, "No review runs recorded yet.")
			return nil
		}
		for _, r := range runs {
			fmt.Fprintln(os.Stdout, formatRun(r))
		}
		return nil
	},
}

func formatRun(r history.Run) string {
	return fmt.Sprintf("%s  %s/%s  %s  %dms  %s",
		r.CreatedAt.Format("2006-01-02 15:04"),
		r.Provider, r.Model, r.Target, r.DurationMs, r.ReportPath)
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of runs to show")
}
