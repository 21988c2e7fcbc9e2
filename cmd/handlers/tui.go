package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smartreview/internal/config"
	"smartreview/internal/dataset"
	"smartreview/internal/engine"
	"smartreview/internal/logger"
	"smartreview/internal/report"
	"smartreview/internal/sentiment"
	"smartreview/internal/tui"
)

// NewTUICmd creates the tui command
func NewTUICmd() *cobra.Command {
	tuiCmd := &cobra.Command{
		Use:   "tui [CSV file]",
		Short: "Browse the attention queue interactively",
		Long: `Analyze a review dataset and open the attention queue in an
interactive terminal browser. Navigate with arrow keys or j/k,
quit with q.`,
		Args: cobra.ExactArgs(1),
		Run:  tuiRunFunc,
	}

	tuiCmd.Flags().String("text-column", "", "Name of the review text column (auto-detected when empty)")
	tuiCmd.Flags().String("rating-column", "", "Name of the 1-5 rating column (auto-detected when empty)")
	tuiCmd.Flags().IntP("top", "n", 50, "Number of reviews to load into the queue")

	return tuiCmd
}

func tuiRunFunc(cmd *cobra.Command, args []string) {
	path := args[0]
	cfg := config.Get()

	textFlag, _ := cmd.Flags().GetString("text-column")
	ratingFlag, _ := cmd.Flags().GetString("rating-column")
	topN, _ := cmd.Flags().GetInt("top")

	ds, err := dataset.Load(path)
	if err != nil {
		logger.Error("Failed to load dataset", err, "path", path)
		fmt.Fprintf(os.Stderr, "Error: Failed to load dataset: %v\n", err)
		os.Exit(1)
	}

	textColumn, ratingColumn := resolveColumns(ds, cfg, textFlag, ratingFlag)
	if textColumn == "" {
		fmt.Fprintln(os.Stderr, "Error: No text column found in dataset")
		os.Exit(1)
	}

	eng := engine.New(sentiment.FromConfig(cfg))
	result := eng.Analyze(ds, textColumn, ratingColumn)
	if result == nil {
		fmt.Fprintf(os.Stderr, "Error: Column %q not found in dataset\n", textColumn)
		os.Exit(1)
	}

	queue := report.NewExporter().PriorityQueue(ds, result, textColumn, topN)
	if len(queue) == 0 {
		fmt.Println("Nothing to triage: no reviews in the dataset.")
		return
	}

	tui.StartTUI(queue)
}
