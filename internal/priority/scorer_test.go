package priority

import (
	"testing"

	"smartreview/internal/core"
)

func TestScore(t *testing.T) {
	s := NewScorer()
	negative := core.SentimentResult{Label: core.SentimentNegative, Confidence: 0.9}
	neutral := core.SentimentResult{Label: core.SentimentNeutral, Confidence: 0.5}
	positive := core.SentimentResult{Label: core.SentimentPositive, Confidence: 0.9}

	tests := []struct {
		name      string
		sentiment core.SentimentResult
		issues    []core.IssueTag
		isUrgent  bool
		rating    int
		hasRating bool
		want      int
	}{
		{"positive clean review", positive, nil, false, 5, true, 0},
		{"neutral base only", neutral, nil, false, 0, false, 25},
		{"negative base only", negative, nil, false, 0, false, 50},
		{"negative with quality issue", negative, []core.IssueTag{core.IssueQuality}, false, 0, false, 70},
		{"service issue smaller increment", neutral, []core.IssueTag{core.IssueService}, false, 0, false, 40},
		{"safety largest increment", neutral, []core.IssueTag{core.IssueSafety}, false, 0, false, 65},
		{"urgency bonus", negative, nil, true, 0, false, 80},
		{"low rating bonus", negative, nil, false, 1, true, 70},
		{"rating two also low", negative, nil, false, 2, true, 70},
		{"mid rating bonus", negative, nil, false, 3, true, 60},
		{"high rating no bonus", negative, nil, false, 4, true, 50},
		{"clamped at max", negative, []core.IssueTag{core.IssueQuality, core.IssueSafety}, true, 1, true, 100},
		{"positive urgent with issues", positive, []core.IssueTag{core.IssueShipping}, true, 0, false, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Score(tt.sentiment, tt.issues, tt.isUrgent, tt.rating, tt.hasRating)
			if got != tt.want {
				t.Errorf("Score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreBounds(t *testing.T) {
	s := NewScorer()
	negative := core.SentimentResult{Label: core.SentimentNegative}

	// Everything stacked stays within [0, 100].
	got := s.Score(negative, core.AllIssueTags, true, 1, true)
	if got != MaxScore {
		t.Errorf("Expected clamp to %d, got %d", MaxScore, got)
	}

	positive := core.SentimentResult{Label: core.SentimentPositive}
	if got := s.Score(positive, nil, false, 5, true); got != 0 {
		t.Errorf("Expected floor of 0, got %d", got)
	}
}

func TestScoreIgnoresConfidence(t *testing.T) {
	s := NewScorer()
	low := core.SentimentResult{Label: core.SentimentNegative, Confidence: 0.1}
	high := core.SentimentResult{Label: core.SentimentNegative, Confidence: 0.99}
	if s.Score(low, nil, false, 0, false) != s.Score(high, nil, false, 0, false) {
		t.Error("Confidence must not affect the score")
	}
}

func TestIncrement(t *testing.T) {
	if Increment(core.IssueSafety) != 40 {
		t.Errorf("Safety increment = %d, want 40", Increment(core.IssueSafety))
	}
	if Increment(core.IssueService) != 15 {
		t.Errorf("Service increment = %d, want 15", Increment(core.IssueService))
	}
	if Increment(core.IssueQuality) != 20 {
		t.Errorf("Quality increment = %d, want 20", Increment(core.IssueQuality))
	}
}
