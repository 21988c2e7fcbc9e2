package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smartreview/internal/core"
	"smartreview/internal/logger"
	"smartreview/internal/report"
)

// NewInsightsCmd creates the insights command
func NewInsightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights [run ID]",
		Short: "Re-render the report for a stored analysis run",
		Long: `Render the executive summary for a previously recorded analysis run
without re-analyzing the dataset. With no run ID, the most recent run
is used.

Examples:
  smartreview insights
  smartreview insights 3f1c...`,
		Args: cobra.MaximumNArgs(1),
		Run:  insightsRunFunc,
	}
}

func insightsRunFunc(cmd *cobra.Command, args []string) {
	st := openStore()
	defer func() { _ = st.Close() }()

	var (
		run *core.AnalysisRun
		err error
	)
	if len(args) == 1 {
		run, err = st.GetRun(args[0])
	} else {
		run, err = st.LatestRun()
	}
	if err != nil {
		logger.Error("Failed to load analysis run", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Println("No analysis runs recorded yet. Run 'smartreview analyze' first.")
		return
	}

	fmt.Printf("Run %s (%s, analyzed %s)\n\n", run.ID, run.Source,
		run.DateAnalyzed.Local().Format("2006-01-02 15:04"))
	fmt.Print(report.NewExporter().ExecutiveSummary(run.Result, run.Insights))
}
