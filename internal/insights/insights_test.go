package insights

import (
	"strings"
	"testing"

	"smartreview/internal/core"
)

func baseResult() *core.AnalysisResult {
	return &core.AnalysisResult{
		TotalReviews:  10,
		PositiveCount: 5,
		NegativeCount: 2,
		NeutralCount:  3,
		AvgConfidence: 0.8,
		IssueSummary:  map[core.IssueTag]int{},
	}
}

func TestGenerateNil(t *testing.T) {
	if got := NewGenerator().Generate(nil); got != nil {
		t.Errorf("Expected nil insights for nil result, got %+v", got)
	}
}

func TestGenerateUrgentActions(t *testing.T) {
	result := baseResult()
	result.UrgentIndices = []int{1, 4, 7}
	result.IssueSummary[core.IssueSafety] = 2
	result.IssueOrder = []core.IssueTag{core.IssueSafety}

	ins := NewGenerator().Generate(result)
	if len(ins.UrgentActions) != 2 {
		t.Fatalf("Expected 2 urgent actions, got %d", len(ins.UrgentActions))
	}
	if ins.UrgentActions[0].Action != "IMMEDIATE RESPONSE REQUIRED" || ins.UrgentActions[0].Count != 3 {
		t.Errorf("Unexpected first action: %+v", ins.UrgentActions[0])
	}
	if ins.UrgentActions[1].Action != "SAFETY ISSUE DETECTED" || ins.UrgentActions[1].Count != 2 {
		t.Errorf("Unexpected safety action: %+v", ins.UrgentActions[1])
	}
}

func TestGenerateNoUrgentActions(t *testing.T) {
	ins := NewGenerator().Generate(baseResult())
	if len(ins.UrgentActions) != 0 {
		t.Errorf("Expected no urgent actions, got %v", ins.UrgentActions)
	}
}

func TestNegativeSentimentTiers(t *testing.T) {
	tests := []struct {
		name     string
		negative int
		want     string
	}{
		{"critical above 40 percent", 5, "Critical"},
		{"warning above 25 percent", 3, "Warning"},
		{"calm below thresholds", 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := baseResult()
			result.NegativeCount = tt.negative

			ins := NewGenerator().Generate(result)
			joined := strings.Join(ins.Recommendations, "\n")
			if tt.want == "" {
				if strings.Contains(joined, "Critical") || strings.Contains(joined, "Warning") {
					t.Errorf("Expected no sentiment recommendation, got %v", ins.Recommendations)
				}
				return
			}
			if !strings.Contains(joined, tt.want) {
				t.Errorf("Expected a %s recommendation, got %v", tt.want, ins.Recommendations)
			}
		})
	}
}

func TestExactThresholdsNotTriggered(t *testing.T) {
	// Thresholds are strict: exactly 40% is a warning, not critical, and
	// exactly 25% is calm.
	result := baseResult()
	result.NegativeCount = 4
	ins := NewGenerator().Generate(result)
	joined := strings.Join(ins.Recommendations, "\n")
	if strings.Contains(joined, "Critical") {
		t.Errorf("40%% exactly should not be critical: %v", ins.Recommendations)
	}
	if !strings.Contains(joined, "Warning") {
		t.Errorf("40%% exactly should still warn: %v", ins.Recommendations)
	}
}

func TestLowConfidenceRecommendation(t *testing.T) {
	result := baseResult()
	result.AvgConfidence = 0.5

	ins := NewGenerator().Generate(result)
	found := false
	for _, rec := range ins.Recommendations {
		if strings.Contains(rec, "manual review") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected manual-review recommendation, got %v", ins.Recommendations)
	}
}

func TestIssueRecommendations(t *testing.T) {
	result := baseResult()
	result.IssueSummary[core.IssueQuality] = 2
	result.IssueSummary[core.IssueShipping] = 1
	result.IssueOrder = []core.IssueTag{core.IssueQuality, core.IssueShipping}

	ins := NewGenerator().Generate(result)
	joined := strings.Join(ins.Recommendations, "\n")
	if !strings.Contains(joined, "manufacturing") {
		t.Errorf("Expected quality recommendation, got %v", ins.Recommendations)
	}
	if !strings.Contains(joined, "logistics") {
		t.Errorf("Expected shipping recommendation, got %v", ins.Recommendations)
	}
}

func TestPositiveHighlight(t *testing.T) {
	result := baseResult()
	result.PositiveCount = 8
	result.NegativeCount = 1
	result.NeutralCount = 1

	ins := NewGenerator().Generate(result)
	if len(ins.PositiveHighlights) != 1 {
		t.Errorf("Expected a positive highlight, got %v", ins.PositiveHighlights)
	}

	// Exactly 70% does not trigger.
	result.PositiveCount = 7
	result.NeutralCount = 2
	ins = NewGenerator().Generate(result)
	if len(ins.PositiveHighlights) != 0 {
		t.Errorf("70%% exactly should not trigger a highlight, got %v", ins.PositiveHighlights)
	}
}

func TestImprovementAreasRanking(t *testing.T) {
	result := baseResult()
	result.IssueSummary = map[core.IssueTag]int{
		core.IssueShipping: 3,
		core.IssueQuality:  5,
		core.IssueService:  1,
		core.IssueValue:    2,
	}
	result.IssueOrder = []core.IssueTag{
		core.IssueShipping, core.IssueQuality, core.IssueService, core.IssueValue,
	}

	areas := NewGenerator().Generate(result).ImprovementAreas
	if len(areas) != 3 {
		t.Fatalf("Expected top 3 areas, got %d", len(areas))
	}
	if areas[0].Issue != core.IssueQuality || areas[0].Count != 5 {
		t.Errorf("Top area = %+v, want Quality x5", areas[0])
	}
	if areas[1].Issue != core.IssueShipping {
		t.Errorf("Second area = %s, want Shipping", areas[1].Issue)
	}
	if areas[2].Issue != core.IssueValue {
		t.Errorf("Third area = %s, want Value", areas[2].Issue)
	}
	if areas[0].Percentage != 50.0 {
		t.Errorf("Top percentage = %f, want 50.0", areas[0].Percentage)
	}
	if areas[0].Action != ActionFor(core.IssueQuality) {
		t.Errorf("Top action = %q", areas[0].Action)
	}
}

func TestImprovementAreasTieBreakStable(t *testing.T) {
	result := baseResult()
	result.IssueSummary = map[core.IssueTag]int{
		core.IssueSizing:   2,
		core.IssueShipping: 2,
		core.IssueQuality:  2,
	}
	// Ties keep the first-encountered order from the dataset pass.
	result.IssueOrder = []core.IssueTag{core.IssueSizing, core.IssueShipping, core.IssueQuality}

	for i := 0; i < 5; i++ {
		areas := NewGenerator().Generate(result).ImprovementAreas
		if areas[0].Issue != core.IssueSizing || areas[1].Issue != core.IssueShipping || areas[2].Issue != core.IssueQuality {
			t.Fatalf("Tie-break order changed on run %d: %v", i, areas)
		}
	}
}

func TestActionFor(t *testing.T) {
	for _, tag := range core.AllIssueTags {
		if ActionFor(tag) == fallbackAction {
			t.Errorf("Tag %s fell through to the fallback action", tag)
		}
	}
	if ActionFor(core.IssueTag("Unknown")) != fallbackAction {
		t.Error("Unknown tag should get the fallback action")
	}
}
