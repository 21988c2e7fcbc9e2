package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"smartreview/internal/core"
	"smartreview/internal/report"
)

// RenderMarkdownReport builds the markdown triage report from an analysis
// result, its insights and the ranked queue. Derivation only; every number
// comes from the inputs.
func RenderMarkdownReport(result *core.AnalysisResult, ins *core.Insights, queue []report.PriorityReview) string {
	var md strings.Builder

	dateStr := time.Now().UTC().Format("2006-01-02")
	md.WriteString(fmt.Sprintf("# Review Triage Report - %s\n\n", dateStr))

	if result == nil {
		md.WriteString("No analysis available.\n")
		return md.String()
	}

	md.WriteString("## Overview\n\n")
	md.WriteString(fmt.Sprintf("- **Total reviews:** %d\n", result.TotalReviews))
	md.WriteString(fmt.Sprintf("- **Method:** %s\n", result.Method))
	md.WriteString(fmt.Sprintf("- **Positive:** %d, **Negative:** %d, **Neutral:** %d\n",
		result.PositiveCount, result.NegativeCount, result.NeutralCount))
	md.WriteString(fmt.Sprintf("- **Urgent reviews:** %d\n", len(result.UrgentIndices)))
	md.WriteString(fmt.Sprintf("- **Average confidence:** %.2f\n\n", result.AvgConfidence))

	if ins != nil && len(ins.UrgentActions) > 0 {
		md.WriteString("## Urgent Actions\n\n")
		for _, action := range ins.UrgentActions {
			md.WriteString(fmt.Sprintf("- **%s** — %s\n", action.Action, action.Description))
		}
		md.WriteString("\n")
	}

	if ins != nil && len(ins.ImprovementAreas) > 0 {
		md.WriteString("## Top Improvement Areas\n\n")
		for i, area := range ins.ImprovementAreas {
			md.WriteString(fmt.Sprintf("%d. **%s** — %d reviews (%.1f%%)\n", i+1, area.Issue, area.Count, area.Percentage))
			md.WriteString(fmt.Sprintf("   Recommended action: %s\n", area.Action))
		}
		md.WriteString("\n")
	}

	if ins != nil && len(ins.Recommendations) > 0 {
		md.WriteString("## Recommendations\n\n")
		for _, rec := range ins.Recommendations {
			md.WriteString(fmt.Sprintf("- %s\n", rec))
		}
		md.WriteString("\n")
	}

	if len(queue) > 0 {
		md.WriteString("## Attention Queue\n\n")
		for _, pr := range queue {
			marker := ""
			if pr.Urgent {
				marker = " (URGENT)"
			}
			md.WriteString(fmt.Sprintf("### Priority %d/100%s\n\n", pr.Score, marker))
			md.WriteString(fmt.Sprintf("- **Sentiment:** %s (%.2f)\n", pr.Sentiment, pr.Confidence))
			md.WriteString(fmt.Sprintf("- **Issues:** %s\n", pr.Issues))
			md.WriteString(fmt.Sprintf("- **Review:** %s\n\n", pr.Text))
		}
	}

	return md.String()
}

// WriteReport writes rendered content to a file in the output directory,
// creating the directory if needed, and returns the file path.
func WriteReport(content, outputDir, filename string) (string, error) {
	if outputDir == "" {
		outputDir = "reports"
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	filePath := filepath.Join(outputDir, filename)
	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write report file %s: %w", filePath, err)
	}

	return filePath, nil
}
