package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lewsiafat/AICodeReviewCLI/internal/config"
	"github.com/Lewsiafat/AICodeReviewCLI/internal/redact"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and update aicr settings",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist a setting to the config file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			fail(ExitRuntimeError, "loading configuration: %v", err)
			return nil
		}
		if err := cfg.Set(args[0], args[1]); err != nil {
			fail(ExitRuntimeError, "%v", err)
			return nil
		}
		value := args[1]
		if strings.HasPrefix(args[0], "api_keys.") {
			value = redact.Key(value)
		}
		fmt.Fprintf(os.Stdout, "Set %s = %s\n", args[0], value)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print effective settings with credentials masked",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			fail(ExitRuntimeError, "loading configuration: %v", err)
			return nil
		}
		for _, k := range cfg.Keys() {
			v := cfg.Get(k)
			if strings.HasPrefix(k, "api_keys.") && v != "" {
				v = redact.Key(v)
			}
			fmt.Fprintf(os.Stdout, "%s = %s\n", k, v)
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			fail(ExitRuntimeError, "loading configuration: %v", err)
			return nil
		}
		fmt.Fprintln(os.Stdout, cfg.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}
