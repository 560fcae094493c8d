// Package llm generates an optional analyst narrative for a verification
// result. The summary is produced strictly after scoring and is presentation
// garnish only: it never feeds back into verdicts, indicators, or the risk
// score.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/skhumalo/tradecheck/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a narrative for the verification result
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)
}

// SummarizeRequest contains the input for summarization
type SummarizeRequest struct {
	Result *model.VerificationResult

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the provider's output
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	Provider  string // "openai" or "" (disabled)
	Model     string
	APIKey    string
	BaseURL   string
	Timeout   int // seconds
	MaxTokens int
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(cfg model.LLMConfig) Config {
	return Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.MaxTokens,
	}
}

// BuildPrompt constructs the default summarization prompt. The model is
// constrained to the facts already in the result; it must not introduce new
// risk judgments.
func BuildPrompt(result *model.VerificationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are writing a short analyst note about a fraud-risk verification result.

RULES:
1. Only restate facts from the data below. Do not invent registry data.
2. Never change or second-guess the risk score or verdicts.
3. Plain language, at most three short paragraphs.

Verification data:
- Document type: %s
- Risk score: %d/100 (valid: %t)
- Extraction quality: %.2f
- Company registration: %s
- Domain validation: %s
- Bank validation: %s
`,
		result.Claims.DocumentType,
		result.RiskScore,
		result.IsValid,
		result.Checks.OCRQuality,
		result.Checks.CompanyRegistration.Status,
		result.Checks.DomainValidation.Status,
		result.Checks.BankValidation.Status,
	)

	if len(result.Checks.FraudIndicators) > 0 {
		b.WriteString("- Fraud indicators:\n")
		for _, indicator := range result.Checks.FraudIndicators {
			fmt.Fprintf(&b, "  - %s\n", indicator)
		}
	}

	if len(result.Recommendations) > 0 {
		b.WriteString("- Recommendations:\n")
		for _, rec := range result.Recommendations {
			fmt.Fprintf(&b, "  - %s\n", rec)
		}
	}

	return b.String()
}
