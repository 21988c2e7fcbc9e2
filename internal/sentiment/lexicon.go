package sentiment

import (
	"strings"

	"smartreview/internal/core"
)

// positiveLexicon and negativeLexicon are word-level weights tuned for
// product-review language. Matching is per word after punctuation trimming;
// weights accumulate with multiplicity.
var positiveLexicon = map[string]float64{
	"excellent": 1.0, "amazing": 0.9, "outstanding": 0.9, "fantastic": 0.8,
	"perfect": 0.8, "love": 0.7, "great": 0.7, "best": 0.7, "wonderful": 0.7,
	"good": 0.6, "happy": 0.6, "pleased": 0.6, "recommend": 0.6,
	"sturdy": 0.5, "reliable": 0.5, "helpful": 0.5, "useful": 0.4,
	"nice": 0.4, "easy": 0.4, "fast": 0.3, "works": 0.3,
}

var negativeLexicon = map[string]float64{
	"terrible": 1.0, "horrible": 0.9, "awful": 0.9, "worst": 0.9,
	"garbage": 0.8, "useless": 0.8, "broke": 0.8, "broken": 0.8,
	"defective": 0.8, "dangerous": 0.8, "hate": 0.7, "waste": 0.7,
	"disappointed": 0.7, "refund": 0.5, "poor": 0.6, "bad": 0.6,
	"cheap": 0.5, "cheaply": 0.5, "overpriced": 0.5, "rude": 0.5,
	"unhelpful": 0.5, "slow": 0.4, "problem": 0.4, "issue": 0.4,
	"delayed": 0.4, "damaged": 0.5, "wrong": 0.4, "returned": 0.4,
}

// Polarity thresholds: small magnitudes are read as neutral so purely
// descriptive reviews don't get pushed to a pole.
const (
	polarityThreshold = 0.1
	baseConfidence    = 0.6
	maxConfidence     = 0.95
)

// LexiconProvider scores text against weighted word lists and converts the
// net polarity to a label. The default backend.
type LexiconProvider struct{}

// NewLexiconProvider creates a lexicon-based sentiment provider.
func NewLexiconProvider() *LexiconProvider {
	return &LexiconProvider{}
}

// Name identifies this backend in report output.
func (p *LexiconProvider) Name() string {
	return "Weighted Lexicon"
}

// Classify computes polarity in [-1, 1] from the weighted tallies and maps it
// to a label with a margin-scaled confidence. It never fails.
func (p *LexiconProvider) Classify(text string) (core.SentimentResult, error) {
	var posScore, negScore float64

	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:\"'()[]{}")
		if w, ok := positiveLexicon[word]; ok {
			posScore += w
		}
		if w, ok := negativeLexicon[word]; ok {
			negScore += w
		}
	}

	if posScore == 0 && negScore == 0 {
		return Neutral, nil
	}

	polarity := (posScore - negScore) / (posScore + negScore)

	confidence := baseConfidence + abs(polarity)*0.3
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	switch {
	case polarity > polarityThreshold:
		return core.SentimentResult{Label: core.SentimentPositive, Confidence: confidence}, nil
	case polarity < -polarityThreshold:
		return core.SentimentResult{Label: core.SentimentNegative, Confidence: confidence}, nil
	default:
		return Neutral, nil
	}
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
