package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/teranos/declower/config"
	"github.com/teranos/declower/passes"
)

func newPassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "passes",
		Short: "List available lowering passes",
		Long:  "List every registered pass. Passes in the default pipeline are marked with *.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, n := range passes.Names() {
				marker := " "
				if slices.Contains(config.DefaultPasses, n) {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s\n", marker, n)
			}
			return nil
		},
	}
}
