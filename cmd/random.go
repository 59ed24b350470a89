package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pagesim/pagesim/sim"
)

var (
	seed          int64 // Seed for random reference generation
	randomLength  int   // Number of references to generate
	randomMaxPage int   // Pages are drawn from [0, randomMaxPage)
)

// randomCmd prints a seeded random reference string usable as --refs
var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate a random reference string",
	Run: func(cmd *cobra.Command, args []string) {
		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed)).ForSubsystem(sim.SubsystemReferences)
		refs, err := sim.RandomReferenceStream(rng, randomLength, randomMaxPage)
		if err != nil {
			logrus.Fatalf("Cannot generate references: %v", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), sim.FormatReferenceString(refs))
	},
}

func init() {
	randomCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random reference generation")
	randomCmd.Flags().IntVar(&randomLength, "length", sim.DefaultRandomLength, "Number of references")
	randomCmd.Flags().IntVar(&randomMaxPage, "max-page", sim.DefaultRandomMaxPage, "Exclusive upper bound for page numbers")
	rootCmd.AddCommand(randomCmd)
}
