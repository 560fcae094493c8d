// Package company verifies a company name and domain as a single quick
// check, the lighter sibling of the document flow's full registry fan-out.
// The Directory interface isolates the mock profile source so a real
// registrar client can replace it without touching the engine.
package company

import (
	"context"
	"regexp"

	"github.com/google/uuid"
	"github.com/skhumalo/tradecheck/internal/model"
)

// Profile is what the directory reports about a company
type Profile struct {
	IsVerified         bool
	Status             model.CompanyStatus
	DomainMatch        bool
	RiskScore          int
	RegistrationNumber string
	Details            model.CompanyDetails
}

// Directory resolves a company name (and optional domain) to a profile
type Directory interface {
	Profile(ctx context.Context, name, domain string) (*Profile, error)
}

var (
	emailDomainPattern = regexp.MustCompile(`@([a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)
	bareDomainPattern  = regexp.MustCompile(`(?:https?://)?(?:www\.)?([a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)
)

// ExtractDomain pulls a domain out of free text, preferring an email
// address over a bare domain or URL. Returns "" when nothing matches.
func ExtractDomain(text string) string {
	if m := emailDomainPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := bareDomainPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// Verifier produces company verdicts from directory profiles
type Verifier struct {
	directory Directory
}

// NewVerifier creates a verifier backed by the given directory
func NewVerifier(directory Directory) *Verifier {
	return &Verifier{directory: directory}
}

// Verify checks a company name against the directory. When domain is empty
// it is recovered from the input text if possible. A directory failure
// degrades to an unverified inactive verdict with maximal risk.
func (v *Verifier) Verify(ctx context.Context, nameOrText, domain string) model.CompanyVerdict {
	if domain == "" {
		domain = ExtractDomain(nameOrText)
	}
	if domain == "" {
		domain = "unknown.com"
	}

	profile, err := v.directory.Profile(ctx, nameOrText, domain)
	if err != nil {
		return model.CompanyVerdict{
			ID:          uuid.NewString(),
			IsVerified:  false,
			CompanyName: nameOrText,
			Status:      model.CompanyInactive,
			Domain:      domain,
			DomainMatch: false,
			RiskScore:   100,
			Details: model.CompanyDetails{
				FraudAlerts: []string{"Company directory unavailable"},
			},
		}
	}

	return model.CompanyVerdict{
		ID:                 uuid.NewString(),
		IsVerified:         profile.IsVerified,
		CompanyName:        nameOrText,
		RegistrationNumber: profile.RegistrationNumber,
		Status:             profile.Status,
		Domain:             domain,
		DomainMatch:        profile.DomainMatch,
		RiskScore:          profile.RiskScore,
		Details:            profile.Details,
	}
}
