package issues

import (
	"reflect"
	"testing"

	"smartreview/internal/core"
)

func TestDetect(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name string
		text string
		want []core.IssueTag
	}{
		{
			"quality complaint",
			"Product broke after 2 days. Poor quality.",
			[]core.IssueTag{core.IssueQuality},
		},
		{
			"shipping complaint",
			"Item never arrived. Still waiting after 3 weeks.",
			[]core.IssueTag{core.IssueShipping},
		},
		{
			"service complaint",
			"Customer service was rude and unhelpful.",
			[]core.IssueTag{core.IssueService},
		},
		{
			"wrong product",
			"Wrong item delivered. This is not what I ordered.",
			[]core.IssueTag{core.IssueWrongProduct},
		},
		{
			"value complaint",
			"Overpriced for what you get. Not worth the money.",
			[]core.IssueTag{core.IssueValue},
		},
		{
			"sizing complaint",
			"Too small, doesn't fit. Size chart is wrong.",
			[]core.IssueTag{core.IssueSizing},
		},
		{
			"safety complaint",
			"Dangerous product! My child got hurt. This should be recalled.",
			[]core.IssueTag{core.IssueSafety},
		},
		{
			"multiple tags in taxonomy order",
			"Cheaply made and dangerous, waste of money.",
			[]core.IssueTag{core.IssueQuality, core.IssueValue, core.IssueSafety},
		},
		{"case insensitive", "BROKE immediately", []core.IssueTag{core.IssueQuality}},
		{"no issues", "Excellent product! Highly recommend.", nil},
		{"empty text", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Detect(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Detect(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectNoDuplicates(t *testing.T) {
	d := NewDetector()
	// Multiple phrases of the same tag fire once.
	got := d.Detect("It broke, it's broken, totally defective and stopped working.")
	if len(got) != 1 || got[0] != core.IssueQuality {
		t.Errorf("Expected single Quality tag, got %v", got)
	}
}

func TestPhrasesCoversTaxonomy(t *testing.T) {
	for _, tag := range core.AllIssueTags {
		if len(Phrases(tag)) == 0 {
			t.Errorf("Tag %s has no phrases", tag)
		}
	}
}

func TestPhrasesCopyIsolated(t *testing.T) {
	phrases := Phrases(core.IssueQuality)
	phrases[0] = "mutated"
	if Phrases(core.IssueQuality)[0] == "mutated" {
		t.Error("Phrases returned the internal slice, not a copy")
	}
}
