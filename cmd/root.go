package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pagesim/pagesim/sim"
)

// defaultReferences is the classic textbook stream used when no references are given.
const defaultReferences = "7, 0, 1, 2, 0, 3, 0, 4, 2, 3, 0, 3, 2"

var (
	// CLI flags shared by run and compare
	logLevel     string // Log verbosity level
	policyName   string // Replacement policy (run only)
	frameCount   int    // Number of physical frames
	refString    string // Delimited reference string
	delimiter    string // Separator between pages in refString
	scenarioPath string // Optional YAML scenario file
	outputFormat string // text, json or yaml
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "pagesim",
	Short: "FIFO and LRU page-replacement simulator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd simulates one policy and prints its step trace and statistics
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate one replacement policy over a reference string",
	Run: func(cmd *cobra.Command, args []string) {
		in, err := resolveInputs(cmd.Flags().Changed)
		if err != nil {
			logrus.Fatalf("Invalid run configuration: %v", err)
		}
		warnDropped(in.Dropped)

		logrus.Infof("Starting %s simulation with %d frames over %d references", in.Policy, in.Frames, len(in.Refs))
		res := sim.Run(in.Policy, in.Frames, in.Refs)
		if err := sim.WriteResult(cmd.OutOrStdout(), res, outputFormat); err != nil {
			logrus.Fatalf("Failed to write result: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addInputFlags registers the flags that describe a simulation input.
func addInputFlags(c *cobra.Command) {
	c.Flags().IntVar(&frameCount, "frames", 3, "Number of physical memory frames")
	c.Flags().StringVar(&refString, "refs", defaultReferences, "Delimited page reference string")
	c.Flags().StringVar(&delimiter, "delimiter", sim.DefaultDelimiter, "Separator between pages in --refs")
	c.Flags().StringVar(&scenarioPath, "config", "", "YAML scenario file; explicit flags override its values")
	c.Flags().StringVarP(&outputFormat, "output", "o", sim.FormatText, "Output format (text, json, yaml)")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&policyName, "policy", string(sim.FIFO), "Replacement policy (FIFO, LRU)")
	addInputFlags(runCmd)

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
