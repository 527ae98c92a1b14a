package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Lewsiafat/AICodeReviewCLI/internal/config"
	"github.com/Lewsiafat/AICodeReviewCLI/internal/provider"
)

const version = "0.1.0"

// Exit codes.
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitAuthError    = 3
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "aicr",
	Short: "AI code review from the command line",
	Long:  "aicr reviews git branches, commits, or files with a configurable LLM provider and saves the result as a Markdown report.",
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(branchesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print aicr version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "aicr version %s\n", version)
	},
}

// fail prints an error and records the exit code without triggering
// cobra's usage dump.
func fail(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	exitCode = code
}

// openSession resolves the active provider/model/key from config and
// flag overrides.
func openSession() (*config.Config, config.Session, bool) {
	cfg, err := config.New()
	if err != nil {
		fail(ExitRuntimeError, "loading configuration: %v", err)
		return nil, config.Session{}, false
	}
	sess, err := cfg.Session(flagProvider, flagModel)
	if err != nil {
		fail(ExitAuthError, "%v", err)
		return nil, config.Session{}, false
	}
	return cfg, sess, true
}

// buildProvider constructs the vendor adapter for a session.
func buildProvider(cmd *cobra.Command, sess config.Session) (provider.Provider, bool) {
	p, err := provider.New(cmd.Context(), sess.Identity, sess.APIKey, provider.Options{})
	if err != nil {
		if provider.IsConfigError(err) {
			fail(ExitAuthError, "%v", err)
		} else {
			fail(ExitRuntimeError, "%v", err)
		}
		return nil, false
	}
	return p, true
}
