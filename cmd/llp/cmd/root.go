// Package cmd implements the llp dispatcher CLI: a thin cobra front-end
// over dispatch.Run, grounded on the teacher corpus's cobra+viper CLI
// shape.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Global flags. max-workers and source are bound to viper so they can
	// also come from a config file or LLP_-prefixed environment variables;
	// algo and input are read from the command line only.
	algorithm  string
	inputPath  string
	maxWorkers int
	source     int
	cfgFile    string
)

// rootCmd is the llp CLI's only command: run a named algorithm over an
// input file and print its result.
var rootCmd = &cobra.Command{
	Use:   "llp",
	Short: "Run a parallel LLP graph/array algorithm over an input file",
	Long: `llp dispatches one of the Lattice-Linear Predicate kernel's algorithm
instances (Reduce, PrefixSum, BellmanFord, Johnson, FastComp, Boruvka,
GaleShapley) against a text input file and prints the resulting 1-D
integer vector, or a diagnostic if the algorithm has no result (a
detected negative cycle).`,
	Example: `  llp --algo Reduce --input ./testdata/array.txt
  llp --algo BellmanFord --input ./testdata/digraph.txt --source 2`,
	RunE: runDispatch,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.llp.yaml)")
	rootCmd.Flags().StringVar(&algorithm, "algo", "", "algorithm name: Reduce, PrefixSum, BellmanFord, Johnson, FastComp, Boruvka, GaleShapley (required)")
	rootCmd.Flags().StringVar(&inputPath, "input", "", "input file path (required)")
	rootCmd.Flags().IntVar(&maxWorkers, "max-workers", 0, "worker pool cap (0 defaults to GOMAXPROCS)")
	rootCmd.Flags().IntVar(&source, "source", 0, "Bellman-Ford source vertex")

	_ = rootCmd.MarkFlagRequired("algo")
	_ = rootCmd.MarkFlagRequired("input")

	_ = viper.BindPFlag("max_workers", rootCmd.Flags().Lookup("max-workers"))
	_ = viper.BindPFlag("source", rootCmd.Flags().Lookup("source"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".llp")
	}

	viper.SetEnvPrefix("LLP")
	viper.AutomaticEnv()

	// A missing config file is not an error: every setting also has a
	// flag default.
	_ = viper.ReadInConfig()
}

// Execute runs the root command, printing the error and exiting non-zero
// on failure rather than returning no result silently.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "llp: %+v\n", err)
		os.Exit(1)
	}
}
