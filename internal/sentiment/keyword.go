package sentiment

import (
	"strings"

	"smartreview/internal/core"
)

// Indicator phrases are matched as substrings of the lower-cased text, so
// multi-word phrases like "waste of money" work without tokenization.
var (
	strongPositive = []string{
		"excellent", "amazing", "fantastic", "love", "perfect", "best",
		"outstanding", "wonderful", "great", "awesome", "recommend",
	}
	weakPositive = []string{
		"good", "nice", "helpful", "useful", "reliable", "sturdy", "easy",
		"satisfied", "happy", "pleased", "works well",
	}
	strongNegative = []string{
		"terrible", "horrible", "awful", "hate", "worst", "useless",
		"waste", "garbage", "broke", "defective", "disappointed",
	}
	weakNegative = []string{
		"bad", "poor", "cheap", "slow", "difficult", "problem", "issue",
		"not worth", "wouldn't recommend", "returned",
	}
	// Negations that flip an otherwise negative reading.
	negationPhrases = []string{"not bad", "not terrible", "no problems", "no issues"}
)

// KeywordProvider is the zero-dependency sentiment backend: a weighted tally
// of indicator phrases. It is also the fallback bound behind the model-based
// provider.
type KeywordProvider struct{}

// NewKeywordProvider creates a keyword-based sentiment provider.
func NewKeywordProvider() *KeywordProvider {
	return &KeywordProvider{}
}

// Name identifies this backend in report output.
func (p *KeywordProvider) Name() string {
	return "Keyword Matching"
}

// Classify tallies strong (2 points) and weak (1 point) indicators on each
// side and derives a confidence from the margin. It never fails.
func (p *KeywordProvider) Classify(text string) (core.SentimentResult, error) {
	lower := strings.ToLower(text)

	posScore := 0
	negScore := 0

	for _, phrase := range strongPositive {
		if strings.Contains(lower, phrase) {
			posScore += 2
		}
	}
	for _, phrase := range weakPositive {
		if strings.Contains(lower, phrase) {
			posScore++
		}
	}
	for _, phrase := range strongNegative {
		if strings.Contains(lower, phrase) {
			negScore += 2
		}
	}
	for _, phrase := range weakNegative {
		if strings.Contains(lower, phrase) {
			negScore++
		}
	}
	for _, phrase := range negationPhrases {
		if strings.Contains(lower, phrase) {
			posScore++
		}
	}

	switch {
	case posScore > negScore:
		confidence := float64(posScore) / float64(posScore+negScore+1)
		if confidence > 0.99 {
			confidence = 0.99
		}
		return core.SentimentResult{Label: core.SentimentPositive, Confidence: confidence}, nil
	case negScore > posScore:
		confidence := float64(negScore) / float64(posScore+negScore+1)
		if confidence > 0.99 {
			confidence = 0.99
		}
		return core.SentimentResult{Label: core.SentimentNegative, Confidence: confidence}, nil
	default:
		return Neutral, nil
	}
}
