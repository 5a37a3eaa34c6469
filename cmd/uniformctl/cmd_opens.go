package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	spaceName string
	openLimit int
)

// opensCmd lists the open sets of a space
var opensCmd = &cobra.Command{
	Use:   "opens",
	Short: "List the open sets of a space",
	Args:  cobra.NoArgs,
	RunE:  runOpens,
}

func init() {
	opensCmd.Flags().StringVar(&spaceName, "space", "", "Space name (required)")
	opensCmd.Flags().IntVar(&openLimit, "limit", 12, "Largest carrier whose subsets are enumerated")
	_ = opensCmd.MarkFlagRequired("space")
}

func runOpens(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	u, err := reg.Space(spaceName)
	if err != nil {
		return err
	}
	opens, err := u.OpenSets(openLimit)
	if err != nil {
		return fmt.Errorf("space %q: %w", spaceName, err)
	}

	out := cmd.OutOrStdout()
	for _, s := range opens {
		fmt.Fprintln(out, s)
	}
	fmt.Fprintf(out, "%d open sets, separated: %t\n", len(opens), u.IsSeparated())

	return nil
}
