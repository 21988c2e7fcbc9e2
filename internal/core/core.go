package core

import "time"

// SentimentLabel is the discrete polarity assigned to a single review.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "Positive"
	SentimentNegative SentimentLabel = "Negative"
	SentimentNeutral  SentimentLabel = "Neutral"
)

// SentimentResult is the output of a sentiment provider for one review.
type SentimentResult struct {
	Label      SentimentLabel `json:"label"`      // Positive, Negative or Neutral
	Confidence float64        `json:"confidence"` // Confidence in the label (0.0 to 1.0)
}

// IssueTag is a fixed-vocabulary category flagging a specific complaint type.
type IssueTag string

const (
	IssueQuality      IssueTag = "Quality Issues"
	IssueShipping     IssueTag = "Shipping Problems"
	IssueService      IssueTag = "Customer Service"
	IssueWrongProduct IssueTag = "Wrong Product"
	IssueValue        IssueTag = "Value/Pricing"
	IssueSizing       IssueTag = "Sizing Issues"
	IssueSafety       IssueTag = "Safety Concerns" // highest severity tag
)

// AllIssueTags lists every tag in the taxonomy, in display order.
var AllIssueTags = []IssueTag{
	IssueQuality,
	IssueShipping,
	IssueService,
	IssueWrongProduct,
	IssueValue,
	IssueSizing,
	IssueSafety,
}

// Review is a single input row. The engine never mutates it; passthrough
// columns stay with the owning dataset.
type Review struct {
	Text      string `json:"text"`       // Free-text review body
	Rating    int    `json:"rating"`     // Star rating 1..5, meaningful only when HasRating
	HasRating bool   `json:"has_rating"` // Whether a rating was present on the row
}

// TextStats holds informational length statistics over the text column.
type TextStats struct {
	AvgLength    float64 `json:"avg_length"`    // Mean review length in characters
	Shortest     int     `json:"shortest"`      // Shortest review length
	Longest      int     `json:"longest"`       // Longest review length
	EmptyReviews int     `json:"empty_reviews"` // Count of empty or missing text cells
}

// AnalysisResult aggregates the per-row outputs of one analysis pass.
// The four per-row slices are index-aligned with the input dataset.
type AnalysisResult struct {
	TotalReviews   int              `json:"total_reviews"`
	Method         string           `json:"method"` // Which sentiment backend actually ran
	Sentiments     []SentimentLabel `json:"sentiments"`
	Confidences    []float64        `json:"confidences"`
	IssuesFound    [][]IssueTag     `json:"issues_found"`
	PriorityScores []int            `json:"priority_scores"`
	UrgentIndices  []int            `json:"urgent_indices"` // Sorted, deduplicated row indices
	IssueSummary   map[IssueTag]int `json:"issue_summary"`  // Tag -> count of rows carrying it
	IssueOrder     []IssueTag       `json:"issue_order"`    // Tags in first-encountered order
	PositiveCount  int              `json:"positive_count"`
	NegativeCount  int              `json:"negative_count"`
	NeutralCount   int              `json:"neutral_count"`
	AvgConfidence  float64          `json:"avg_confidence"`
	TextStats      TextStats        `json:"text_stats"`
	AnalyzedAt     time.Time        `json:"analyzed_at"`
}

// IsUrgent reports whether the given row index was flagged urgent.
func (r *AnalysisResult) IsUrgent(idx int) bool {
	for _, i := range r.UrgentIndices {
		if i == idx {
			return true
		}
	}
	return false
}

// UrgentAction is a single urgent-action entry in the insights output.
type UrgentAction struct {
	Action      string `json:"action"`
	Count       int    `json:"count"`
	Description string `json:"description"`
}

// ImprovementArea is one ranked entry in the top-issues list.
type ImprovementArea struct {
	Issue      IssueTag `json:"issue"`
	Count      int      `json:"count"`
	Percentage float64  `json:"percentage"` // Share of all reviews carrying this tag
	Action     string   `json:"action"`     // Recommended business action
}

// Insights is the derived, read-only business view of an AnalysisResult.
// It is recomputed wholesale on every call and never mutated in place.
type Insights struct {
	UrgentActions      []UrgentAction    `json:"urgent_actions"`
	ImprovementAreas   []ImprovementArea `json:"improvement_areas"`
	Recommendations    []string          `json:"recommendations"`
	PositiveHighlights []string          `json:"positive_highlights"`
	GeneratedAt        time.Time         `json:"generated_at"`
}

// AnalysisRun records one stored analysis pass for later inspection.
type AnalysisRun struct {
	ID           string          `json:"id"`
	Source       string          `json:"source"`      // Input file the dataset came from
	TextColumn   string          `json:"text_column"` // Column analyzed
	RatingColumn string          `json:"rating_column"`
	Method       string          `json:"method"`
	TotalReviews int             `json:"total_reviews"`
	UrgentCount  int             `json:"urgent_count"`
	Result       *AnalysisResult `json:"result"`
	Insights     *Insights       `json:"insights"`
	DateAnalyzed time.Time       `json:"date_analyzed"`
}
