package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"smartreview/internal/config"
	"smartreview/internal/core"
	"smartreview/internal/dataset"
	"smartreview/internal/engine"
	"smartreview/internal/insights"
	"smartreview/internal/logger"
	"smartreview/internal/render"
	"smartreview/internal/report"
	"smartreview/internal/sentiment"
	"smartreview/internal/store"
)

// NewAnalyzeCmd creates the analyze command, the main entry point of the tool
func NewAnalyzeCmd() *cobra.Command {
	analyzeCmd := &cobra.Command{
		Use:   "analyze [CSV file]",
		Short: "Analyze a review dataset and produce the triage report",
		Long: `Analyze a CSV of customer reviews: classify sentiment per row, detect
issue categories, flag urgent reviews and compute 0-100 priority scores,
then derive the issue summary, actionable insights and the ranked
attention queue.

The text column (and optional rating column) are auto-detected from
column names unless set explicitly.

Examples:
  # Analyze with auto-detected columns, print the report
  smartreview analyze reviews.csv

  # Explicit columns, keyword backend
  smartreview analyze reviews.csv --text-column feedback --provider keyword

  # Write the markdown report and the augmented CSV export
  smartreview analyze reviews.csv --format markdown
  smartreview analyze reviews.csv --format csv --output ./reports`,
		Args: cobra.ExactArgs(1),
		Run:  analyzeRunFunc,
	}

	analyzeCmd.Flags().String("text-column", "", "Name of the review text column (auto-detected when empty)")
	analyzeCmd.Flags().String("rating-column", "", "Name of the 1-5 rating column (auto-detected when empty)")
	analyzeCmd.Flags().StringP("provider", "p", "", "Sentiment backend: keyword, lexicon or gemini (default from config)")
	analyzeCmd.Flags().StringP("format", "f", "", "Output format: terminal, markdown or csv (default from config)")
	analyzeCmd.Flags().StringP("output", "o", "", "Output directory for report files (default from config)")
	analyzeCmd.Flags().IntP("top", "n", 0, "Size of the attention queue (default from config)")
	analyzeCmd.Flags().Bool("no-save", false, "Skip recording the run in the analysis history")

	return analyzeCmd
}

func analyzeRunFunc(cmd *cobra.Command, args []string) {
	path := args[0]
	cfg := config.Get()

	textFlag, _ := cmd.Flags().GetString("text-column")
	ratingFlag, _ := cmd.Flags().GetString("rating-column")
	providerFlag, _ := cmd.Flags().GetString("provider")
	format, _ := cmd.Flags().GetString("format")
	outputDir, _ := cmd.Flags().GetString("output")
	topN, _ := cmd.Flags().GetInt("top")
	noSave, _ := cmd.Flags().GetBool("no-save")

	if providerFlag != "" {
		cfg.Sentiment.Provider = providerFlag
	}
	if format == "" {
		format = cfg.Output.Format
	}
	if outputDir == "" {
		outputDir = cfg.Output.Directory
	}
	if topN <= 0 {
		topN = cfg.Analysis.TopPriority
	}

	validFormats := []string{"terminal", "markdown", "csv"}
	if !contains(validFormats, format) {
		fmt.Fprintf(os.Stderr, "Error: Invalid format %q. Valid formats: %s\n",
			format, strings.Join(validFormats, ", "))
		os.Exit(1)
	}

	ds, err := dataset.Load(path)
	if err != nil {
		logger.Error("Failed to load dataset", err, "path", path)
		fmt.Fprintf(os.Stderr, "Error: Failed to load dataset: %v\n", err)
		os.Exit(1)
	}

	textColumn, ratingColumn := resolveColumns(ds, cfg, textFlag, ratingFlag)
	if textColumn == "" {
		fmt.Fprintf(os.Stderr, "Error: No text column found in %s (columns: %s)\n",
			path, strings.Join(ds.Columns, ", "))
		os.Exit(1)
	}

	provider := sentiment.FromConfig(cfg)
	eng := engine.New(provider)

	logger.Info("Starting review analysis", "path", path, "rows", ds.Len(),
		"text_column", textColumn, "rating_column", ratingColumn, "method", eng.Method())

	result := eng.Analyze(ds, textColumn, ratingColumn)
	if result == nil {
		fmt.Fprintf(os.Stderr, "Error: Column %q not found in dataset\n", textColumn)
		os.Exit(1)
	}

	ins := insights.NewGenerator().Generate(result)
	exporter := report.NewExporter()
	queue := exporter.PriorityQueue(ds, result, textColumn, topN)

	switch format {
	case "markdown":
		content := render.RenderMarkdownReport(result, ins, queue)
		filename := fmt.Sprintf("triage_%s.md", time.Now().Format("20060102_150405"))
		filePath, err := render.WriteReport(content, outputDir, filename)
		if err != nil {
			logger.Error("Failed to write report", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Report written to %s\n", filePath)

	case "csv":
		if err := writeCSVExports(exporter, ds, result, ins, outputDir); err != nil {
			logger.Error("Failed to write CSV exports", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	default:
		fmt.Print(exporter.ExecutiveSummary(result, ins))
		printQueue(queue)
		printWordFrequency(ds, textColumn, cfg.Analysis.TopWords)
	}

	if !noSave {
		saveRun(cfg, path, textColumn, ratingColumn, result, ins)
	}
}

// resolveColumns applies flag overrides on top of keyword auto-detection.
func resolveColumns(ds *dataset.Dataset, cfg *config.Config, textFlag, ratingFlag string) (string, string) {
	info := dataset.DetectColumns(ds, cfg.Input.TextColumnKeywords, cfg.Input.RatingColumnKeywords)

	textColumn := info.TextColumn
	if textFlag != "" {
		textColumn = textFlag
	}
	ratingColumn := info.RatingColumn
	if ratingFlag != "" {
		ratingColumn = ratingFlag
	}
	return textColumn, ratingColumn
}

// writeCSVExports writes the three downloadable artifacts: the augmented
// dataset, the priority rows only, and the executive summary.
func writeCSVExports(exporter *report.Exporter, ds *dataset.Dataset, result *core.AnalysisResult, ins *core.Insights, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}
	stamp := time.Now().Format("20060102_150405")

	augmented := exporter.Augment(ds, result)
	fullPath := filepath.Join(outputDir, fmt.Sprintf("review_analysis_%s.csv", stamp))
	if err := augmented.SaveCSV(fullPath); err != nil {
		return err
	}
	fmt.Printf("Full analysis written to %s\n", fullPath)

	summaryPath := filepath.Join(outputDir, fmt.Sprintf("executive_summary_%s.txt", stamp))
	if err := os.WriteFile(summaryPath, []byte(exporter.ExecutiveSummary(result, ins)), 0644); err != nil {
		return fmt.Errorf("failed to write summary %s: %w", summaryPath, err)
	}
	fmt.Printf("Executive summary written to %s\n", summaryPath)
	return nil
}

func printQueue(queue []report.PriorityReview) {
	if len(queue) == 0 {
		return
	}
	fmt.Println("\nATTENTION QUEUE:")
	for _, pr := range queue {
		marker := ""
		if pr.Urgent {
			marker = " [URGENT]"
		}
		fmt.Printf("  %3d/100%s  %s | %s\n", pr.Score, marker, pr.Sentiment, pr.Issues)
		fmt.Printf("           %s\n", pr.Text)
	}
}

func printWordFrequency(ds *dataset.Dataset, textColumn string, topN int) {
	freq := engine.WordFrequency(ds, textColumn, topN)
	if len(freq) == 0 {
		return
	}
	fmt.Println("\nCOMMON THEMES:")
	for _, wc := range freq {
		fmt.Printf("  %-20s %d\n", wc.Word, wc.Count)
	}
}

func saveRun(cfg *config.Config, source, textColumn, ratingColumn string, result *core.AnalysisResult, ins *core.Insights) {
	st, err := store.NewStore(cfg.Cache.Directory)
	if err != nil {
		// History is best effort; the report already went out.
		logger.Warn("Failed to open analysis history", "reason", err.Error())
		return
	}
	defer func() { _ = st.Close() }()

	run := core.AnalysisRun{
		ID:           uuid.NewString(),
		Source:       source,
		TextColumn:   textColumn,
		RatingColumn: ratingColumn,
		Method:       result.Method,
		TotalReviews: result.TotalReviews,
		UrgentCount:  len(result.UrgentIndices),
		Result:       result,
		Insights:     ins,
		DateAnalyzed: time.Now().UTC(),
	}
	if err := st.SaveRun(run); err != nil {
		logger.Warn("Failed to record analysis run", "reason", err.Error())
		return
	}
	logger.Info("Analysis run recorded", "id", run.ID)
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
