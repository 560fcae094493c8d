package llm

import (
	"context"
	"fmt"

	"github.com/skhumalo/tradecheck/internal/model"
)

// Summarizer wraps a provider and produces AnalystSummary values for
// verification results
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer from configuration. Returns a disabled
// summarizer when no provider is configured.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, fmt.Errorf("create provider: %w", err)
	}

	return &Summarizer{
		provider: provider,
		config:   config,
	}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// Summarize generates an analyst summary for the result. Callers invoke this
// only after the result is fully scored; the summary cannot alter it.
func (s *Summarizer) Summarize(ctx context.Context, result *model.VerificationResult) (*model.AnalystSummary, error) {
	if !s.IsEnabled() {
		return nil, nil
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Result:    result,
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	summary := &model.AnalystSummary{
		Enabled:   true,
		Provider:  s.provider.Name(),
		Model:     resp.Model,
		SummaryMD: resp.Summary,
	}

	if resp.Summary == "" {
		summary.Warnings = append(summary.Warnings, "provider returned an empty summary")
	}

	return summary, nil
}
