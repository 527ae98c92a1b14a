package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Lewsiafat/AICodeReviewCLI/internal/cache"
)

var flagRefresh bool

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List available models for the active provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, sess, ok := openSession()
		if !ok {
			return nil
		}

		c, err := cache.New("", cfg.CacheTTL())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: model cache unavailable: %v\n", err)
		}

		name := string(sess.Identity)
		if c != nil && !flagRefresh {
			if models, ok := c.Models(name); ok {
				printModels(name, sess.Model, models)
				return nil
			}
		}

		p, ok := buildProvider(cmd, sess)
		if !ok {
			return nil
		}
		models := p.Models(cmd.Context())
		if len(models) == 0 {
			fmt.Fprintf(os.Stdout, "No models available for %s.\n", p.Name())
			return nil
		}
		if c != nil {
			if err := c.PutModels(name, models); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not cache model list: %v\n", err)
			}
		}
		printModels(p.Name(), sess.Model, models)
		return nil
	},
}

func printModels(providerName, active string, models []string) {
	fmt.Fprintf(os.Stdout, "%s:\n", providerName)
	for _, m := range models {
		marker := " "
		if m == active {
			marker = "*"
		}
		fmt.Fprintf(os.Stdout, " %s %s\n", marker, m)
	}
}

func init() {
	addSessionFlags(modelsCmd)
	modelsCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "Bypass the model cache and query the vendor")
}
