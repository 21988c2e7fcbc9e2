package handlers

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"smartreview/internal/config"
	"smartreview/internal/logger"
	"smartreview/internal/report"
	"smartreview/internal/store"
)

// NewHistoryCmd creates the history command with its subcommands
func NewHistoryCmd() *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List and inspect past analysis runs",
		Long: `List past analysis runs recorded by the analyze command, or show
the full executive summary of a single run.

Examples:
  smartreview history
  smartreview history show 3f1c...
  smartreview history delete 3f1c...`,
		Run: historyListRunFunc,
	}

	historyCmd.AddCommand(newHistoryShowCmd())
	historyCmd.AddCommand(newHistoryDeleteCmd())

	return historyCmd
}

func newHistoryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [run ID]",
		Short: "Show the executive summary of a recorded run",
		Args:  cobra.ExactArgs(1),
		Run:   historyShowRunFunc,
	}
}

func newHistoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [run ID]",
		Short: "Delete a recorded run",
		Args:  cobra.ExactArgs(1),
		Run:   historyDeleteRunFunc,
	}
}

func historyListRunFunc(cmd *cobra.Command, args []string) {
	st := openStore()
	defer func() { _ = st.Close() }()

	runs, err := st.ListRuns()
	if err != nil {
		logger.Error("Failed to list analysis runs", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(runs) == 0 {
		fmt.Println("No analysis runs recorded yet. Run 'smartreview analyze' first.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tSOURCE\tMETHOD\tREVIEWS\tURGENT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
			shortID(run.ID),
			run.DateAnalyzed.Local().Format("2006-01-02 15:04"),
			run.Source,
			run.Method,
			run.TotalReviews,
			run.UrgentCount)
	}
	_ = w.Flush()
}

func historyShowRunFunc(cmd *cobra.Command, args []string) {
	st := openStore()
	defer func() { _ = st.Close() }()

	run, err := st.GetRun(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run %s (%s, analyzed %s)\n\n", run.ID, run.Source,
		run.DateAnalyzed.Local().Format("2006-01-02 15:04"))
	fmt.Print(report.NewExporter().ExecutiveSummary(run.Result, run.Insights))
}

func historyDeleteRunFunc(cmd *cobra.Command, args []string) {
	st := openStore()
	defer func() { _ = st.Close() }()

	if err := st.DeleteRun(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted run %s\n", args[0])
}

func openStore() *store.Store {
	st, err := store.NewStore(config.Get().Cache.Directory)
	if err != nil {
		logger.Error("Failed to open analysis history", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return st
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
