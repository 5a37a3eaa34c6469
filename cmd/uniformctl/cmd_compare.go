package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/uniformity/completion"
)

var (
	fromCompletion string
	withCompletion string
)

// compareCmd prints the canonical map between two completions
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Print the canonical map between two completions of one space",
	Args:  cobra.NoArgs,
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&fromCompletion, "completion", "", "Completion to map from (required)")
	compareCmd.Flags().StringVar(&withCompletion, "with", "", "Completion to map to (required)")
	_ = compareCmd.MarkFlagRequired("completion")
	_ = compareCmd.MarkFlagRequired("with")
}

func runCompare(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	p1, err := reg.Completion(fromCompletion)
	if err != nil {
		return err
	}
	p2, err := reg.Completion(withCompletion)
	if err != nil {
		return err
	}
	if s1, s2 := reg.Source(fromCompletion), reg.Source(withCompletion); s1 != s2 {
		return fmt.Errorf("completions %q and %q complete different spaces (%q, %q)", fromCompletion, withCompletion, s1, s2)
	}

	there, err := completion.Compare(p1, p2)
	if err != nil {
		return err
	}
	back, err := completion.Compare(p2, p1)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	roundTrip := true
	for y := range there.Domain().All() {
		z, _ := there.At(y)
		w, _ := back.At(z)
		roundTrip = roundTrip && w == y
		fmt.Fprintf(out, "%s -> %s\n", y, z)
	}
	fmt.Fprintf(out, "round trip: %t\n", roundTrip)

	return nil
}
