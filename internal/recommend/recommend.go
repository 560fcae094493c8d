// Package recommend turns a risk score and its supporting checks into the
// ordered list of actionable messages shown to the user.
package recommend

import "github.com/skhumalo/tradecheck/internal/model"

// Risk band boundaries. Bands are checked high to low and exactly one banner
// is emitted; a score of 70 falls in the medium band, 71 in the critical one.
const (
	criticalThreshold = 70
	mediumThreshold   = 40
	lowThreshold      = 20
)

// Generator produces recommendations from verification checks
type Generator struct{}

// NewGenerator creates a new recommendation generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Recommend returns the banner recommendation for the risk band followed by
// the conditional follow-ups, in fixed order: company, domain, bank.
func (g *Generator) Recommend(checks model.ValidationChecks, riskScore int) []string {
	var recs []string

	switch {
	case riskScore > criticalThreshold:
		recs = append(recs,
			"HIGH RISK: Do not proceed with transaction",
			"Contact customer directly using verified contact details")
	case riskScore > mediumThreshold:
		recs = append(recs,
			"MEDIUM RISK: Additional verification required",
			"Request additional documentation")
	case riskScore > lowThreshold:
		recs = append(recs,
			"LOW RISK: Proceed with caution",
			"Monitor transaction closely")
	default:
		recs = append(recs, "VERIFIED: Safe to proceed")
	}

	if checks.CompanyRegistration.Status != model.StatusVerified {
		recs = append(recs, "Verify company registration independently")
	}
	if checks.DomainValidation.Status == model.StatusSuspicious {
		recs = append(recs, "Domain appears recently registered - verify legitimacy")
	}
	if checks.BankValidation.Status == model.StatusInvalid {
		recs = append(recs, "Bank details invalid - request correct banking information")
	}

	return recs
}
