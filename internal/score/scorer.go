// Package score maps validator verdicts and extraction quality to a 0-100
// risk score. The table is additive and deliberately transparent: every rule
// contributes a fixed amount and the sum is clamped, so any score can be
// explained from the checks alone.
package score

import "github.com/skhumalo/tradecheck/internal/model"

// Risk contributions per condition
const (
	riskOCRPoor     = 20 // quality below 0.8
	riskOCRMarginal = 10 // quality in [0.8, 0.9)

	riskCompanyNotFound  = 40
	riskCompanySuspended = 60
	riskCompanyError     = 30

	riskDomainSuspicious = 25
	riskDomainNotFound   = 35

	riskBankInvalid    = 45
	riskBankSuspicious = 30

	riskPerIndicator = 15
)

// Scorer computes document-flow risk scores
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score sums the rule table over the checks and clamps to [0, 100]
func (s *Scorer) Score(checks model.ValidationChecks) int {
	risk := 0

	if checks.OCRQuality < 0.8 {
		risk += riskOCRPoor
	} else if checks.OCRQuality < 0.9 {
		risk += riskOCRMarginal
	}

	switch checks.CompanyRegistration.Status {
	case model.StatusNotFound:
		risk += riskCompanyNotFound
	case model.StatusSuspended:
		risk += riskCompanySuspended
	case model.StatusError:
		risk += riskCompanyError
	}

	switch checks.DomainValidation.Status {
	case model.StatusSuspicious:
		risk += riskDomainSuspicious
	case model.StatusNotFound:
		risk += riskDomainNotFound
	}

	switch checks.BankValidation.Status {
	case model.StatusInvalid:
		risk += riskBankInvalid
	case model.StatusSuspicious:
		risk += riskBankSuspicious
	}

	risk += len(checks.FraudIndicators) * riskPerIndicator

	if risk > 100 {
		risk = 100
	}
	if risk < 0 {
		risk = 0
	}
	return risk
}
