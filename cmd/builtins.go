package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loom-sh/loom/core/lang"
)

// builtinsCmd shows the builtin classification table.
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtin commands the REPL recognizes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range lang.Patterns {
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", p.Use, p.Short)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
