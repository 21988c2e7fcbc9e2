package sentiment

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"smartreview/internal/config"
	"smartreview/internal/core"
)

const classifyPromptTemplate = `Classify the sentiment of this customer product review.
Respond with exactly one line in the form "<label> <confidence>" where label is
Positive, Negative or Neutral and confidence is a number between 0 and 1.

Review:
%s`

// GeminiProvider is the model-based sentiment backend. Construction fails
// fast when no API key is configured, which is the availability probe the
// strategy selection in FromConfig relies on.
type GeminiProvider struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	timeout  time.Duration
	maxChars int
}

// NewGeminiProvider creates a Gemini-backed provider from configuration.
func NewGeminiProvider(cfg config.GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required; set GEMINI_API_KEY or sentiment.gemini.api_key")
	}

	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil || timeout <= 0 {
		timeout = 30 * time.Second
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(cfg.Temperature)

	maxChars := cfg.MaxChars
	if maxChars <= 0 {
		maxChars = 1500
	}

	return &GeminiProvider{
		client:   client,
		model:    model,
		timeout:  timeout,
		maxChars: maxChars,
	}, nil
}

// Name identifies this backend in report output.
func (p *GeminiProvider) Name() string {
	return "Gemini Model"
}

// Classify sends the review to the model and parses its one-line verdict.
// Errors are returned to the Safe wrapper, which falls back per row.
func (p *GeminiProvider) Classify(text string) (core.SentimentResult, error) {
	if strings.TrimSpace(text) == "" {
		return Neutral, nil
	}
	if len(text) > p.maxChars {
		text = text[:p.maxChars]
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	resp, err := p.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(classifyPromptTemplate, text)))
	if err != nil {
		return core.SentimentResult{}, fmt.Errorf("gemini classification failed: %w", err)
	}

	return parseVerdict(responseText(resp))
}

// Close releases the underlying client. Call once at process end.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}

// parseVerdict reads a "<label> <confidence>" line, tolerating extra prose
// around it.
func parseVerdict(raw string) (core.SentimentResult, error) {
	for _, line := range strings.Split(raw, "\n") {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 0 {
			continue
		}

		var label core.SentimentLabel
		switch strings.ToLower(strings.Trim(fields[0], ".,:")) {
		case "positive":
			label = core.SentimentPositive
		case "negative":
			label = core.SentimentNegative
		case "neutral":
			label = core.SentimentNeutral
		default:
			continue
		}

		confidence := 0.5
		if len(fields) > 1 {
			if c, err := strconv.ParseFloat(strings.Trim(fields[1], ".,"), 64); err == nil && c >= 0 && c <= 1 {
				confidence = c
			}
		}
		return core.SentimentResult{Label: label, Confidence: confidence}, nil
	}
	return core.SentimentResult{}, fmt.Errorf("unparseable model verdict: %q", raw)
}
