package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"smartreview/internal/core"
	"smartreview/internal/dataset"
)

// TimestampLayout is the analysis-date format carried on exported rows.
const TimestampLayout = "2006-01-02 15:04:05"

// PriorityReview is one entry in the ranked attention queue, carrying enough
// of the original row to act on without going back to the dataset.
type PriorityReview struct {
	Index     int               `json:"index"` // Row index in the source dataset
	Text      string            `json:"text"`
	Score     int               `json:"score"`
	Sentiment core.SentimentLabel `json:"sentiment"`
	Confidence float64          `json:"confidence"`
	Issues    string            `json:"issues"` // Comma-joined tags, "None" when empty
	Urgent    bool              `json:"urgent"`
	Fields    map[string]string `json:"fields"` // Passthrough columns of the row
}

// Exporter projects analysis output back onto the original dataset. The
// clock is injectable so exported timestamps are testable.
type Exporter struct {
	now func() time.Time
}

// NewExporter creates a report exporter.
func NewExporter() *Exporter {
	return &Exporter{now: time.Now}
}

// JoinIssues renders a tag set for display: comma-joined, "None" when empty.
func JoinIssues(tags []core.IssueTag) string {
	if len(tags) == 0 {
		return "None"
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

// Augment returns a copy of the dataset with the analysis columns appended:
// sentiment, confidence, priority score, detected issues, urgency flag,
// analysis timestamp and method. The input dataset is untouched.
func (e *Exporter) Augment(ds *dataset.Dataset, result *core.AnalysisResult) *dataset.Dataset {
	out := ds.Clone()
	if result == nil {
		return out
	}

	n := ds.Len()
	sentiments := make([]string, n)
	confidences := make([]string, n)
	scores := make([]string, n)
	issueLists := make([]string, n)
	urgent := make([]string, n)
	stamps := make([]string, n)
	methods := make([]string, n)

	stamp := e.now().Format(TimestampLayout)
	for i := 0; i < n; i++ {
		sentiments[i] = string(result.Sentiments[i])
		confidences[i] = strconv.FormatFloat(result.Confidences[i], 'f', 2, 64)
		scores[i] = strconv.Itoa(result.PriorityScores[i])
		issueLists[i] = JoinIssues(result.IssuesFound[i])
		urgent[i] = strconv.FormatBool(result.IsUrgent(i))
		stamps[i] = stamp
		methods[i] = result.Method
	}

	out.AddColumn("sentiment", sentiments)
	out.AddColumn("confidence_score", confidences)
	out.AddColumn("priority_score", scores)
	out.AddColumn("issues_detected", issueLists)
	out.AddColumn("requires_response", urgent)
	out.AddColumn("analysis_date", stamps)
	out.AddColumn("analysis_method", methods)
	return out
}

// PriorityQueue ranks rows by priority score descending (stable, so equal
// scores keep dataset order) and returns the top n as actionable entries.
func (e *Exporter) PriorityQueue(ds *dataset.Dataset, result *core.AnalysisResult, textColumn string, n int) []PriorityReview {
	if result == nil || n <= 0 {
		return nil
	}

	order := make([]int, len(result.PriorityScores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return result.PriorityScores[order[a]] > result.PriorityScores[order[b]]
	})

	if len(order) > n {
		order = order[:n]
	}

	queue := make([]PriorityReview, 0, len(order))
	for _, idx := range order {
		fields := make(map[string]string, len(ds.Columns))
		for _, col := range ds.Columns {
			fields[col] = ds.Cell(idx, col)
		}
		queue = append(queue, PriorityReview{
			Index:      idx,
			Text:       ds.Cell(idx, textColumn),
			Score:      result.PriorityScores[idx],
			Sentiment:  result.Sentiments[idx],
			Confidence: result.Confidences[idx],
			Issues:     JoinIssues(result.IssuesFound[idx]),
			Urgent:     result.IsUrgent(idx),
			Fields:     fields,
		})
	}
	return queue
}

// ExecutiveSummary renders the plain-text business report: totals,
// sentiment split, top issues, recommendations and action items. Everything
// here is a projection of the result and insights, no new computation.
func (e *Exporter) ExecutiveSummary(result *core.AnalysisResult, ins *core.Insights) string {
	var sb strings.Builder

	sb.WriteString("SMARTREVIEW BUSINESS REPORT\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", e.now().Format(TimestampLayout)))

	sb.WriteString("EXECUTIVE SUMMARY\n")
	if result == nil {
		sb.WriteString("No analysis available.\n")
		return sb.String()
	}

	total := result.TotalReviews
	sb.WriteString(fmt.Sprintf("Total Reviews Analyzed: %d\n", total))
	sb.WriteString(fmt.Sprintf("Analysis Method: %s\n", result.Method))
	if total > 0 {
		sb.WriteString(fmt.Sprintf("Positive Sentiment: %d (%.1f%%)\n",
			result.PositiveCount, float64(result.PositiveCount)/float64(total)*100))
		sb.WriteString(fmt.Sprintf("Negative Sentiment: %d (%.1f%%)\n",
			result.NegativeCount, float64(result.NegativeCount)/float64(total)*100))
	}
	sb.WriteString(fmt.Sprintf("Urgent Reviews: %d\n", len(result.UrgentIndices)))

	sb.WriteString("\nTOP ISSUES:\n")
	if len(result.IssueOrder) == 0 {
		sb.WriteString("- None detected\n")
	} else {
		for _, tag := range result.IssueOrder {
			sb.WriteString(fmt.Sprintf("- %s: %d occurrences\n", tag, result.IssueSummary[tag]))
		}
	}

	if ins != nil {
		sb.WriteString("\nRECOMMENDATIONS:\n")
		if len(ins.Recommendations) == 0 {
			sb.WriteString("- None\n")
		} else {
			for _, rec := range ins.Recommendations {
				sb.WriteString(fmt.Sprintf("- %s\n", rec))
			}
		}

		sb.WriteString("\nACTION ITEMS:\n")
		sb.WriteString(fmt.Sprintf("1. Respond to %d urgent reviews immediately\n", len(result.UrgentIndices)))
		topIssue := "None"
		if len(ins.ImprovementAreas) > 0 {
			topIssue = string(ins.ImprovementAreas[0].Issue)
		}
		sb.WriteString(fmt.Sprintf("2. Address top issue: %s\n", topIssue))
		sb.WriteString(fmt.Sprintf("3. Follow up with %d dissatisfied customers\n", result.NegativeCount))
	}

	return sb.String()
}
