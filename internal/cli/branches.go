package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Lewsiafat/AICodeReviewCLI/internal/gitctx"
)

var (
	flagRemote bool
	flagFetch  bool
	flagPull   bool
)

var branchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "List branches in the current repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := gitctx.New("")
		if !repo.IsRepository() {
			fail(ExitRuntimeError, "not a git repository")
			return nil
		}

		if flagFetch {
			if err := repo.Fetch(); err != nil {
				fail(ExitRuntimeError, "%v", err)
				return nil
			}
		}
		if flagPull {
			if err := repo.Pull(); err != nil {
				fail(ExitRuntimeError, "%v", err)
				return nil
			}
		}

		current, err := repo.CurrentBranch()
		if err != nil {
			fail(ExitRuntimeError, "%v", err)
			return nil
		}
		local, err := repo.LocalBranches()
		if err != nil {
			fail(ExitRuntimeError, "%v", err)
			return nil
		}

		green := color.New(color.FgGreen)
		for _, b := range local {
			if b == current {
				green.Fprintf(os.Stdout, "* %s\n", b)
			} else {
				fmt.Fprintf(os.Stdout, "  %s\n", b)
			}
		}

		if flagRemote {
			remote, err := repo.RemoteBranches()
			if err != nil {
				fail(ExitRuntimeError, "%v", err)
				return nil
			}
			for _, b := range remote {
				fmt.Fprintf(os.Stdout, "  %s\n", b)
			}
		}
		return nil
	},
}

func init() {
	branchesCmd.Flags().BoolVar(&flagRemote, "remote", false, "Include remote-tracking branches")
	branchesCmd.Flags().BoolVar(&flagFetch, "fetch", false, "Fetch from remotes first")
	branchesCmd.Flags().BoolVar(&flagPull, "pull", false, "Fast-forward the current branch first")
}
