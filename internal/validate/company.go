// Package validate implements the three registry validators. Each validator
// takes the immutable claim set, queries its registry, and returns a verdict
// from the closed status taxonomy. Missing required claims and registry
// infrastructure failures both degrade to an error verdict; they never abort
// the request.
package validate

import (
	"context"
	"errors"

	"github.com/skhumalo/tradecheck/internal/model"
	"github.com/skhumalo/tradecheck/internal/registry"
)

// CompanyValidator cross-checks company claims against the company registrar
type CompanyValidator struct {
	registry registry.CompanyRegistry
}

// NewCompanyValidator creates a new company validator
func NewCompanyValidator(r registry.CompanyRegistry) *CompanyValidator {
	return &CompanyValidator{registry: r}
}

// Validate requires a company name or registration number. A registered,
// active company verifies; a suspended record surfaces as suspended; no match
// is not_found.
func (v *CompanyValidator) Validate(ctx context.Context, claims model.ClaimSet) model.ValidatorVerdict {
	if !claims.HasCompanyIdentity() {
		return model.ErrorVerdict()
	}

	rec, err := v.registry.LookupCompany(ctx, claims.CompanyName, claims.RegistrationNumber)
	if errors.Is(err, registry.ErrNotFound) {
		return model.ValidatorVerdict{Status: model.StatusNotFound, Match: false}
	}
	if err != nil {
		return model.ErrorVerdict()
	}

	status := model.StatusVerified
	if rec.Status == registry.RecordSuspended {
		status = model.StatusSuspended
	}

	return model.ValidatorVerdict{
		Status: status,
		Match:  true,
		Detail: model.RegistryDetail{
			RegistrationDate: rec.RegistrationDate,
			Directors:        rec.Directors,
		},
	}
}
