package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smartreview/internal/dataset"
	"smartreview/internal/logger"
)

// NewSampleCmd creates the sample command
func NewSampleCmd() *cobra.Command {
	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate a sample review dataset for trying out the analyzer",
		Long: `Generate a CSV of realistic customer reviews with ratings, products
and customer IDs. Useful for trying the analyze command without a
real dataset.

Examples:
  smartreview sample
  smartreview sample -n 500 -o demo_reviews.csv`,
		Run: sampleRunFunc,
	}

	sampleCmd.Flags().IntP("count", "n", 100, "Number of reviews to generate")
	sampleCmd.Flags().StringP("output", "o", "sample_reviews.csv", "Output CSV path")
	sampleCmd.Flags().Int64("seed", 42, "Random seed for reproducible output")

	return sampleCmd
}

func sampleRunFunc(cmd *cobra.Command, args []string) {
	count, _ := cmd.Flags().GetInt("count")
	output, _ := cmd.Flags().GetString("output")
	seed, _ := cmd.Flags().GetInt64("seed")

	if count <= 0 {
		fmt.Fprintln(os.Stderr, "Error: count must be positive")
		os.Exit(1)
	}

	ds := dataset.GenerateSample(count, seed)
	if err := ds.SaveCSV(output); err != nil {
		logger.Error("Failed to write sample dataset", err, "path", output)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %d sample reviews at %s\n", ds.Len(), output)
}
