package priority

import (
	"smartreview/internal/core"
)

// Score bounds and the additive components of the model. All terms are
// non-negative, so only the upper clamp is needed.
const (
	MaxScore = 100

	negativeBase = 50
	neutralBase  = 25

	urgencyBonus = 30

	lowRatingBonus = 20 // rating <= 2
	midRatingBonus = 10 // rating == 3
)

// issueIncrements is the canonical per-tag table. Safety carries the largest
// increment, customer service the smallest; the source variants disagreed on
// these values and this table is the fixed choice.
var issueIncrements = map[core.IssueTag]int{
	core.IssueQuality:      20,
	core.IssueShipping:     20,
	core.IssueService:      15,
	core.IssueWrongProduct: 20,
	core.IssueValue:        20,
	core.IssueSizing:       20,
	core.IssueSafety:       40,
}

// Scorer turns one review's analysis inputs into a 0-100 priority score.
type Scorer struct{}

// NewScorer creates a priority scorer over the canonical point table.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score is pure and deterministic: sentiment base, plus a fixed increment per
// detected issue, plus the urgency bonus, plus a rating adjustment when a
// rating is present, clamped to MaxScore.
func (s *Scorer) Score(sentiment core.SentimentResult, issues []core.IssueTag, isUrgent bool, rating int, hasRating bool) int {
	score := 0

	switch sentiment.Label {
	case core.SentimentNegative:
		score += negativeBase
	case core.SentimentNeutral:
		score += neutralBase
	}

	for _, tag := range issues {
		score += issueIncrements[tag]
	}

	if isUrgent {
		score += urgencyBonus
	}

	if hasRating {
		switch {
		case rating <= 2:
			score += lowRatingBonus
		case rating == 3:
			score += midRatingBonus
		}
	}

	if score > MaxScore {
		score = MaxScore
	}
	return score
}

// Increment reports the fixed per-tag point value, for report rendering.
func Increment(tag core.IssueTag) int {
	return issueIncrements[tag]
}
