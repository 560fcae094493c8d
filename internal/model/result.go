package model

import "time"

// ValidationChecks groups everything the document-flow scorer consumes: the
// OCR/extraction quality, the three registry verdicts, and the synthesized
// fraud indicators (always ordered company, domain, bank).
type ValidationChecks struct {
	OCRQuality          float64          `json:"ocr_quality"`
	CompanyRegistration ValidatorVerdict `json:"company_registration"`
	DomainValidation    ValidatorVerdict `json:"domain_validation"`
	BankValidation      ValidatorVerdict `json:"bank_validation"`
	FraudIndicators     []string         `json:"fraud_indicators"`
}

// VerificationResult is the complete document-flow outcome returned to the
// presentation layer. It is assembled once per request and never mutated
// after the engine returns it.
type VerificationResult struct {
	ID              string             `json:"id"`
	IsValid         bool               `json:"is_valid"`
	Confidence      float64            `json:"confidence"` // 0-1, extraction quality
	Claims          ClaimSet           `json:"claims"`
	Checks          ValidationChecks   `json:"checks"`
	RiskScore       int                `json:"risk_score"` // 0-100
	Recommendations []string           `json:"recommendations"`
	VerifiedAt      time.Time          `json:"verified_at"`
	Analyst         *AnalystSummary    `json:"analyst,omitempty"`
}

// AnalystSummary is an optional LLM-generated narrative of the verification
// outcome. It is produced strictly after scoring and never affects the risk
// score or the verdicts.
type AnalystSummary struct {
	Enabled   bool     `json:"enabled"`
	Provider  string   `json:"provider,omitempty"`
	Model     string   `json:"model,omitempty"`
	SummaryMD string   `json:"summary_md,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}
