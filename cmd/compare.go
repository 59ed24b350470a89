package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pagesim/pagesim/sim"
)

// compareCmd runs FIFO and LRU over the same input and reports both
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare FIFO and LRU on the same reference string",
	Run: func(cmd *cobra.Command, args []string) {
		in, err := resolveInputs(cmd.Flags().Changed)
		if err != nil {
			logrus.Fatalf("Invalid compare configuration: %v", err)
		}
		warnDropped(in.Dropped)

		c := sim.Compare(in.Frames, in.Refs)
		if err := sim.WriteComparison(cmd.OutOrStdout(), c, outputFormat); err != nil {
			logrus.Fatalf("Failed to write comparison: %v", err)
		}
	},
}

func init() {
	addInputFlags(compareCmd)
	rootCmd.AddCommand(compareCmd)
}
