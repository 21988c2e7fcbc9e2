package engine

import (
	"reflect"
	"testing"

	"smartreview/internal/core"
	"smartreview/internal/dataset"
	"smartreview/internal/sentiment"
)

func newTestDataset(texts []string, ratings []string) *dataset.Dataset {
	ds := &dataset.Dataset{Columns: []string{"review_text", "rating"}}
	for i, text := range texts {
		rating := ""
		if ratings != nil {
			rating = ratings[i]
		}
		ds.Rows = append(ds.Rows, []string{text, rating})
	}
	return ds
}

func TestAnalyzeUrgentComplaint(t *testing.T) {
	eng := New(sentiment.NewKeywordProvider())
	ds := newTestDataset([]string{
		"Product broke after 2 days. Poor quality. Want a refund immediately.",
	}, nil)

	result := eng.Analyze(ds, "review_text", "")
	if result == nil {
		t.Fatal("Expected a result")
	}
	if result.Sentiments[0] != core.SentimentNegative {
		t.Errorf("Expected Negative, got %s", result.Sentiments[0])
	}
	if !reflect.DeepEqual(result.IssuesFound[0], []core.IssueTag{core.IssueQuality}) {
		t.Errorf("Expected Quality issue, got %v", result.IssuesFound[0])
	}
	if !result.IsUrgent(0) {
		t.Error("Refund request should be flagged urgent")
	}
	// Negative base 50 + quality 20 + urgency 30.
	if result.PriorityScores[0] != 100 {
		t.Errorf("Expected score 100, got %d", result.PriorityScores[0])
	}
}

func TestAnalyzePositiveReview(t *testing.T) {
	eng := New(sentiment.NewKeywordProvider())
	ds := newTestDataset([]string{
		"Excellent product! Highly recommend to everyone.",
	}, nil)

	result := eng.Analyze(ds, "review_text", "")
	if result.Sentiments[0] != core.SentimentPositive {
		t.Errorf("Expected Positive, got %s", result.Sentiments[0])
	}
	if len(result.IssuesFound[0]) != 0 {
		t.Errorf("Expected no issues, got %v", result.IssuesFound[0])
	}
	if result.PriorityScores[0] != 0 {
		t.Errorf("Expected score 0, got %d", result.PriorityScores[0])
	}
	if result.IsUrgent(0) {
		t.Error("Clean positive review must not be urgent")
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	eng := New(sentiment.NewKeywordProvider())
	ds := newTestDataset([]string{""}, nil)

	result := eng.Analyze(ds, "review_text", "")
	if result.Sentiments[0] != core.SentimentNeutral {
		t.Errorf("Expected Neutral for empty text, got %s", result.Sentiments[0])
	}
	if result.PriorityScores[0] != 25 {
		t.Errorf("Expected neutral base 25, got %d", result.PriorityScores[0])
	}
	if result.TextStats.EmptyReviews != 1 {
		t.Errorf("Expected 1 empty review, got %d", result.TextStats.EmptyReviews)
	}
}

func TestAnalyzeMissingColumn(t *testing.T) {
	eng := New(sentiment.NewKeywordProvider())
	ds := newTestDataset([]string{"anything"}, nil)

	if result := eng.Analyze(ds, "no_such_column", ""); result != nil {
		t.Errorf("Expected nil result for missing column, got %+v", result)
	}
	if result := eng.Analyze(nil, "review_text", ""); result != nil {
		t.Errorf("Expected nil result for nil dataset, got %+v", result)
	}
}

func TestAnalyzeRatingBonus(t *testing.T) {
	eng := New(sentiment.NewKeywordProvider())
	ds := newTestDataset(
		[]string{"The material feels cheap.", "The material feels cheap.", "The material feels cheap."},
		[]string{"1", "3", "5"},
	)

	result := eng.Analyze(ds, "review_text", "rating")
	// Negative base 50, plus 20 / 10 / 0 by rating.
	want := []int{70, 60, 50}
	if !reflect.DeepEqual(result.PriorityScores, want) {
		t.Errorf("Scores = %v, want %v", result.PriorityScores, want)
	}
}

func TestAnalyzeSafetyFlaggedUrgentWithoutKeyword(t *testing.T) {
	eng := New(sentiment.NewKeywordProvider())
	ds := newTestDataset([]string{"This product is unsafe around children."}, nil)

	result := eng.Analyze(ds, "review_text", "")
	if !result.IsUrgent(0) {
		t.Error("Safety-tagged review should land in the urgent set")
	}
	// Urgency bonus applies to keyword matches only; safety reaches the
	// urgent set through its tag.
	if result.PriorityScores[0] != 65 {
		t.Errorf("Expected 25 + 40 = 65, got %d", result.PriorityScores[0])
	}
}

func TestAnalyzeUrgentIndicesDeduplicated(t *testing.T) {
	eng := New(sentiment.NewKeywordProvider())
	ds := newTestDataset([]string{
		"Dangerous product! My child got hurt.", // keyword and safety tag
		"Totally fine.",
	}, nil)

	result := eng.Analyze(ds, "review_text", "")
	if !reflect.DeepEqual(result.UrgentIndices, []int{0}) {
		t.Errorf("UrgentIndices = %v, want [0]", result.UrgentIndices)
	}
}

func TestAnalyzeAggregates(t *testing.T) {
	eng := New(sentiment.NewKeywordProvider())
	ds := newTestDataset([]string{
		"Excellent product! Highly recommend.",
		"Product broke after 2 days. Poor quality.",
		"Item never arrived. Still waiting.",
		"The package contained the item.",
	}, nil)

	result := eng.Analyze(ds, "review_text", "")
	if result.TotalReviews != 4 {
		t.Errorf("TotalReviews = %d, want 4", result.TotalReviews)
	}
	if result.PositiveCount+result.NegativeCount+result.NeutralCount != 4 {
		t.Error("Sentiment counts must sum to total")
	}
	if result.PositiveCount != 1 {
		t.Errorf("PositiveCount = %d, want 1", result.PositiveCount)
	}
	if result.IssueSummary[core.IssueQuality] != 1 || result.IssueSummary[core.IssueShipping] != 1 {
		t.Errorf("Unexpected issue summary: %v", result.IssueSummary)
	}
	if !reflect.DeepEqual(result.IssueOrder, []core.IssueTag{core.IssueQuality, core.IssueShipping}) {
		t.Errorf("IssueOrder = %v, want first-encountered order", result.IssueOrder)
	}

	// All per-row slices are aligned with the input.
	if len(result.Sentiments) != 4 || len(result.Confidences) != 4 ||
		len(result.IssuesFound) != 4 || len(result.PriorityScores) != 4 {
		t.Error("Per-row slices must match the row count")
	}
	if result.AvgConfidence <= 0 || result.AvgConfidence > 1 {
		t.Errorf("AvgConfidence %f out of range", result.AvgConfidence)
	}
	if result.TextStats.Shortest > result.TextStats.Longest {
		t.Error("Shortest length exceeds longest")
	}
	if result.Method != "Keyword Matching" {
		t.Errorf("Method = %q", result.Method)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	eng := New(sentiment.NewKeywordProvider())
	ds := dataset.GenerateSample(40, 7)

	first := eng.Analyze(ds, "review_text", "rating")
	second := eng.Analyze(ds, "review_text", "rating")

	if !reflect.DeepEqual(first.PriorityScores, second.PriorityScores) {
		t.Error("Scores differ across identical runs")
	}
	if !reflect.DeepEqual(first.Sentiments, second.Sentiments) {
		t.Error("Sentiments differ across identical runs")
	}
	if !reflect.DeepEqual(first.UrgentIndices, second.UrgentIndices) {
		t.Error("Urgent indices differ across identical runs")
	}
}

func TestAnalyzeDoesNotMutateDataset(t *testing.T) {
	ds := newTestDataset([]string{"Product broke. Refund now."}, nil)
	before := ds.Clone()

	New(sentiment.NewKeywordProvider()).Analyze(ds, "review_text", "")

	if !reflect.DeepEqual(ds.Columns, before.Columns) || !reflect.DeepEqual(ds.Rows, before.Rows) {
		t.Error("Analyze mutated the input dataset")
	}
}

func TestAnalyzeScoreBounds(t *testing.T) {
	eng := New(sentiment.NewKeywordProvider())
	ds := dataset.GenerateSample(100, 99)

	result := eng.Analyze(ds, "review_text", "rating")
	for i, score := range result.PriorityScores {
		if score < 0 || score > 100 {
			t.Errorf("Row %d score %d out of [0, 100]", i, score)
		}
	}
	for i, conf := range result.Confidences {
		if conf < 0 || conf > 1 {
			t.Errorf("Row %d confidence %f out of [0, 1]", i, conf)
		}
	}
}

func TestWordFrequency(t *testing.T) {
	ds := newTestDataset([]string{
		"quality quality quality shipping",
		"shipping arrived quickly",
		"the and for with",     // stop words only
		"abc de",               // too short
		"mixed123 words4",      // non-alphabetic
	}, nil)

	freq := WordFrequency(ds, "review_text", 10)
	if len(freq) == 0 {
		t.Fatal("Expected some words")
	}
	if freq[0].Word != "quality" || freq[0].Count != 3 {
		t.Errorf("Top word = %+v, want quality x3", freq[0])
	}
	for _, wc := range freq {
		if len(wc.Word) <= 3 {
			t.Errorf("Short word leaked in: %q", wc.Word)
		}
		if stopWords[wc.Word] {
			t.Errorf("Stop word leaked in: %q", wc.Word)
		}
	}

	// Counts are non-increasing; equal counts sort alphabetically.
	for i := 1; i < len(freq); i++ {
		if freq[i].Count > freq[i-1].Count {
			t.Errorf("Frequency order violated at %d", i)
		}
		if freq[i].Count == freq[i-1].Count && freq[i].Word < freq[i-1].Word {
			t.Errorf("Alphabetical tie-break violated at %d", i)
		}
	}
}

func TestWordFrequencyLimits(t *testing.T) {
	ds := newTestDataset([]string{"alpha bravo charlie delta echelon"}, nil)

	if got := WordFrequency(ds, "review_text", 2); len(got) != 2 {
		t.Errorf("Expected top-2, got %d entries", len(got))
	}
	if got := WordFrequency(ds, "missing", 5); got != nil {
		t.Errorf("Expected nil for missing column, got %v", got)
	}
	if got := WordFrequency(ds, "review_text", 0); got != nil {
		t.Errorf("Expected nil for topN=0, got %v", got)
	}
}
