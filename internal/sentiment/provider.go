package sentiment

import (
	"smartreview/internal/config"
	"smartreview/internal/core"
	"smartreview/internal/logger"
)

// Provider classifies the polarity of a single review text. Implementations
// must tolerate empty or malformed text; callers wrap providers that can fail
// per-call with Safe so a bad row never aborts a batch.
type Provider interface {
	// Name identifies the backend for the report's method label.
	Name() string
	// Classify maps text to a sentiment label and a confidence in [0, 1].
	Classify(text string) (core.SentimentResult, error)
}

// Neutral is the degraded-mode result used when every backend fails.
var Neutral = core.SentimentResult{Label: core.SentimentNeutral, Confidence: 0.5}

// FromConfig selects and constructs the configured provider. Availability is
// probed once here: if the model-based backend cannot be built, the keyword
// backend is bound instead, so per-row analysis never deals with strategy
// selection.
func FromConfig(cfg *config.Config) Provider {
	switch cfg.Sentiment.Provider {
	case "gemini":
		p, err := NewGeminiProvider(cfg.Sentiment.Gemini)
		if err != nil {
			logger.Warn("model-based sentiment unavailable, using keyword analysis", "reason", err.Error())
			return NewKeywordProvider()
		}
		return Safe(p, NewKeywordProvider())
	case "keyword":
		return NewKeywordProvider()
	default:
		return NewLexiconProvider()
	}
}

// safeProvider recovers per-row provider failures locally: primary error
// falls through to the fallback, and a fallback error degrades to Neutral/0.5.
type safeProvider struct {
	primary  Provider
	fallback Provider
}

// Safe wraps a provider so Classify never returns an error to the engine.
func Safe(primary, fallback Provider) Provider {
	return &safeProvider{primary: primary, fallback: fallback}
}

func (s *safeProvider) Name() string {
	return s.primary.Name()
}

func (s *safeProvider) Classify(text string) (core.SentimentResult, error) {
	result, err := s.primary.Classify(text)
	if err == nil {
		return result, nil
	}
	logger.Debug("primary sentiment backend failed for row, using fallback",
		"backend", s.primary.Name(), "reason", err.Error())

	result, err = s.fallback.Classify(text)
	if err != nil {
		return Neutral, nil
	}
	return result, nil
}
