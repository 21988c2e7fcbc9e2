package engine

import (
	"sort"
	"strings"
	"time"

	"smartreview/internal/core"
	"smartreview/internal/dataset"
	"smartreview/internal/issues"
	"smartreview/internal/logger"
	"smartreview/internal/priority"
	"smartreview/internal/sentiment"
)

// urgencyKeywords flag reviews that need a same-day response. Substring
// match on the lower-cased text.
var urgencyKeywords = []string{
	"refund", "return", "lawsuit", "legal action", "sue", "lawyer",
	"dangerous", "injured",
}

// Engine drives the per-row analysis pass and the dataset-level reductions.
// It is stateless across calls: every Analyze builds a fresh result and the
// input dataset is never mutated.
type Engine struct {
	provider sentiment.Provider
	detector *issues.Detector
	scorer   *priority.Scorer
	now      func() time.Time
}

// New creates an engine around the injected sentiment provider.
func New(provider sentiment.Provider) *Engine {
	return &Engine{
		provider: provider,
		detector: issues.NewDetector(),
		scorer:   priority.NewScorer(),
		now:      time.Now,
	}
}

// Method reports which sentiment backend this engine runs.
func (e *Engine) Method() string {
	return e.provider.Name()
}

// Analyze runs the full pass over the dataset's text column. It returns nil
// when the text column is absent; it never returns a partial result, and no
// row-level failure escapes (provider errors degrade to Neutral/0.5 inside
// the provider stack). ratingColumn may be empty.
func (e *Engine) Analyze(ds *dataset.Dataset, textColumn, ratingColumn string) *core.AnalysisResult {
	if ds == nil || ds.ColumnIndex(textColumn) < 0 {
		logger.Warn("text column not found in dataset", "column", textColumn)
		return nil
	}

	total := ds.Len()
	result := &core.AnalysisResult{
		TotalReviews:   total,
		Method:         e.provider.Name(),
		Sentiments:     make([]core.SentimentLabel, 0, total),
		Confidences:    make([]float64, 0, total),
		IssuesFound:    make([][]core.IssueTag, 0, total),
		PriorityScores: make([]int, 0, total),
		IssueSummary:   make(map[core.IssueTag]int),
		AnalyzedAt:     e.now().UTC(),
	}

	urgentSet := make(map[int]bool)
	var confidenceSum float64
	var lengthSum int

	for idx := 0; idx < total; idx++ {
		review := ds.Review(idx, textColumn, ratingColumn)

		sent, err := e.provider.Classify(review.Text)
		if err != nil {
			// Providers are expected to absorb their own failures; this is
			// the final backstop for ones that don't.
			sent = sentiment.Neutral
		}

		tags := e.detector.Detect(review.Text)
		urgent := matchesUrgency(review.Text)
		score := e.scorer.Score(sent, tags, urgent, review.Rating, review.HasRating)

		result.Sentiments = append(result.Sentiments, sent.Label)
		result.Confidences = append(result.Confidences, sent.Confidence)
		result.IssuesFound = append(result.IssuesFound, tags)
		result.PriorityScores = append(result.PriorityScores, score)

		// Safety complaints need a same-day response even without an
		// explicit refund/legal keyword; both signals land in one set.
		if urgent || containsTag(tags, core.IssueSafety) {
			urgentSet[idx] = true
		}

		for _, tag := range tags {
			if result.IssueSummary[tag] == 0 {
				result.IssueOrder = append(result.IssueOrder, tag)
			}
			result.IssueSummary[tag]++
		}

		switch sent.Label {
		case core.SentimentPositive:
			result.PositiveCount++
		case core.SentimentNegative:
			result.NegativeCount++
		default:
			result.NeutralCount++
		}

		confidenceSum += sent.Confidence
		length := len(review.Text)
		lengthSum += length
		if strings.TrimSpace(review.Text) == "" {
			result.TextStats.EmptyReviews++
		}
		if idx == 0 || length < result.TextStats.Shortest {
			result.TextStats.Shortest = length
		}
		if length > result.TextStats.Longest {
			result.TextStats.Longest = length
		}
	}

	for idx := range urgentSet {
		result.UrgentIndices = append(result.UrgentIndices, idx)
	}
	sort.Ints(result.UrgentIndices)

	if total > 0 {
		result.AvgConfidence = confidenceSum / float64(total)
		result.TextStats.AvgLength = float64(lengthSum) / float64(total)
	}

	logger.Info("analysis complete",
		"total", total,
		"positive", result.PositiveCount,
		"negative", result.NegativeCount,
		"neutral", result.NeutralCount,
		"urgent", len(result.UrgentIndices),
		"method", result.Method)

	return result
}

func matchesUrgency(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range urgencyKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func containsTag(tags []core.IssueTag, tag core.IssueTag) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
