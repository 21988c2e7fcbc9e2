package issues

import (
	"strings"

	"smartreview/internal/core"
)

// issuePhrases maps every tag in the taxonomy to the literal phrases that
// fire it. Matching is case-insensitive substring, no tokenization.
var issuePhrases = map[core.IssueTag][]string{
	core.IssueQuality: {
		"broke", "broken", "defective", "stopped working", "fell apart",
		"poor quality", "cheap quality", "cheaply made", "doesn't work",
		"malfunction",
	},
	core.IssueShipping: {
		"never arrived", "never received", "lost package", "damaged in shipping",
		"damaged during shipping", "wrong address", "delayed shipping",
		"shipping was delayed", "still waiting", "hasn't arrived",
	},
	core.IssueService: {
		"rude", "unhelpful", "no response", "ignored my emails",
		"terrible service", "poor service", "poor communication",
	},
	core.IssueWrongProduct: {
		"wrong item", "wrong product", "not what i ordered",
		"different than described", "not as described", "not as advertised",
		"sent the wrong", "incorrect item", "false advertising",
	},
	core.IssueValue: {
		"overpriced", "not worth", "waste of money", "too expensive",
	},
	core.IssueSizing: {
		"doesn't fit", "does not fit", "too small", "too big", "too large",
		"size chart", "runs small", "runs large",
	},
	core.IssueSafety: {
		"dangerous", "unsafe", "hazard", "injury", "injured", "got hurt",
		"caught fire", "electric shock", "toxic", "recalled", "recall",
	},
}

// Detector tags reviews with complaint categories by phrase matching.
// Detection is deterministic and total: empty text yields an empty set.
type Detector struct{}

// NewDetector creates an issue detector over the fixed taxonomy.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the set of tags whose phrase list matches the text, in the
// taxonomy's display order and without duplicates.
func (d *Detector) Detect(text string) []core.IssueTag {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var tags []core.IssueTag
	for _, tag := range core.AllIssueTags {
		for _, phrase := range issuePhrases[tag] {
			if strings.Contains(lower, phrase) {
				tags = append(tags, tag)
				break
			}
		}
	}
	return tags
}

// Phrases exposes the phrase list for a tag, used by reports that explain
// why a tag fired.
func Phrases(tag core.IssueTag) []string {
	return append([]string(nil), issuePhrases[tag]...)
}
