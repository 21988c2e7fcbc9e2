package insights

import (
	"fmt"
	"sort"
	"time"

	"smartreview/internal/core"
)

// Fixed decision thresholds. These are constants of the report, not tunables.
const (
	criticalNegativeRatio = 0.40 // above this, negative sentiment is critical
	warningNegativeRatio  = 0.25 // above this, negative sentiment is a warning
	positiveHighlightRatio = 0.70
	lowConfidenceThreshold = 0.6
	topImprovementAreas    = 3
)

// issueActions maps each tag to its recommended business action.
var issueActions = map[core.IssueTag]string{
	core.IssueSafety:       "URGENT: Investigate safety reports, consider recall if necessary",
	core.IssueQuality:      "Review manufacturing QC process and supplier standards",
	core.IssueShipping:     "Contact logistics partner and review packaging",
	core.IssueService:      "Schedule team training and review response protocols",
	core.IssueWrongProduct: "Audit fulfillment process and product listings",
	core.IssueValue:        "Analyze competitor pricing and value proposition",
	core.IssueSizing:       "Update size charts and product descriptions",
}

const fallbackAction = "Investigate and create action plan"

// Generator derives the business-facing view from an analysis result. It
// holds no state; every Generate builds a fresh Insights value.
type Generator struct {
	now func() time.Time
}

// NewGenerator creates an insight generator.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// Generate produces urgent actions, ranked improvement areas and
// recommendations from the result. A nil result yields nil.
func (g *Generator) Generate(result *core.AnalysisResult) *core.Insights {
	if result == nil {
		return nil
	}

	ins := &core.Insights{GeneratedAt: g.now().UTC()}

	if n := len(result.UrgentIndices); n > 0 {
		ins.UrgentActions = append(ins.UrgentActions, core.UrgentAction{
			Action:      "IMMEDIATE RESPONSE REQUIRED",
			Count:       n,
			Description: fmt.Sprintf("%d reviews require urgent attention", n),
		})
	}

	if count, ok := result.IssueSummary[core.IssueSafety]; ok && count > 0 {
		ins.UrgentActions = append(ins.UrgentActions, core.UrgentAction{
			Action:      "SAFETY ISSUE DETECTED",
			Count:       count,
			Description: fmt.Sprintf("%d reviews mention safety concerns - investigate immediately", count),
		})
	}

	ins.ImprovementAreas = rankImprovementAreas(result)
	ins.Recommendations = recommendations(result)

	if result.TotalReviews > 0 {
		posRatio := float64(result.PositiveCount) / float64(result.TotalReviews)
		if posRatio > positiveHighlightRatio {
			ins.PositiveHighlights = append(ins.PositiveHighlights,
				"Strong positive sentiment - leverage for marketing")
		}
	}

	return ins
}

// ActionFor returns the recommended action for a tag, with a fallback for
// anything outside the lookup table.
func ActionFor(tag core.IssueTag) string {
	if action, ok := issueActions[tag]; ok {
		return action
	}
	return fallbackAction
}

// rankImprovementAreas sorts the issue summary by count descending and takes
// the top entries. The sort is stable over first-encountered tag order, so
// ties keep the order the issues appeared in the dataset.
func rankImprovementAreas(result *core.AnalysisResult) []core.ImprovementArea {
	ranked := append([]core.IssueTag(nil), result.IssueOrder...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return result.IssueSummary[ranked[i]] > result.IssueSummary[ranked[j]]
	})

	if len(ranked) > topImprovementAreas {
		ranked = ranked[:topImprovementAreas]
	}

	areas := make([]core.ImprovementArea, 0, len(ranked))
	for _, tag := range ranked {
		count := result.IssueSummary[tag]
		percentage := 0.0
		if result.TotalReviews > 0 {
			percentage = float64(count) / float64(result.TotalReviews) * 100
		}
		areas = append(areas, core.ImprovementArea{
			Issue:      tag,
			Count:      count,
			Percentage: percentage,
			Action:     ActionFor(tag),
		})
	}
	return areas
}

func recommendations(result *core.AnalysisResult) []string {
	var recs []string

	if result.TotalReviews > 0 {
		negRatio := float64(result.NegativeCount) / float64(result.TotalReviews)
		switch {
		case negRatio > criticalNegativeRatio:
			recs = append(recs, "Critical: Over 40% negative sentiment - immediate action required")
		case negRatio > warningNegativeRatio:
			recs = append(recs, "Warning: High negative sentiment detected - review product quality")
		}
	}

	if result.IssueSummary[core.IssueQuality] > 0 {
		recs = append(recs, "Multiple quality complaints - check manufacturing")
	}
	if result.IssueSummary[core.IssueShipping] > 0 {
		recs = append(recs, "Shipping issues detected - review logistics")
	}

	if result.TotalReviews > 0 && result.AvgConfidence < lowConfidenceThreshold {
		recs = append(recs, "Low confidence scores - consider manual review for accuracy")
	}

	return recs
}
