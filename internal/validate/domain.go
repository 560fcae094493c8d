package validate

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/skhumalo/tradecheck/internal/model"
	"github.com/skhumalo/tradecheck/internal/registry"
)

// minDomainAgeDays is the age a domain must exceed to count as established.
// Freshly registered domains are a strong invoice-fraud signal.
const minDomainAgeDays = 90

// timeNow is the clock used for domain age (injectable for tests)
var timeNow = time.Now

// DomainValidator checks the contact email's domain against the domain
// ownership registry
type DomainValidator struct {
	registry registry.DomainRegistry
}

// NewDomainValidator creates a new domain validator
func NewDomainValidator(r registry.DomainRegistry) *DomainValidator {
	return &DomainValidator{registry: r}
}

// Validate requires a contact email. The domain after '@' is looked up; a
// domain older than minDomainAgeDays verifies, a younger one is suspicious.
func (v *DomainValidator) Validate(ctx context.Context, claims model.ClaimSet) model.ValidatorVerdict {
	domain := domainOf(claims.ContactEmail)
	if domain == "" {
		return model.ErrorVerdict()
	}

	rec, err := v.registry.LookupDomain(ctx, domain)
	if errors.Is(err, registry.ErrNotFound) {
		return model.ValidatorVerdict{Status: model.StatusNotFound, Match: false}
	}
	if err != nil {
		return model.ErrorVerdict()
	}

	ageDays := domainAgeDays(rec.CreationDate)

	status := model.StatusSuspicious
	if ageDays > minDomainAgeDays {
		status = model.StatusVerified
	}

	return model.ValidatorVerdict{
		Status: status,
		Match:  true,
		Detail: model.RegistryDetail{
			DomainAgeDays: &ageDays,
			Registrar:     rec.Registrar,
		},
	}
}

// domainOf extracts the domain part of an email address
func domainOf(email string) string {
	idx := strings.LastIndex(email, "@")
	if idx < 0 || idx == len(email)-1 {
		return ""
	}
	return email[idx+1:]
}

// domainAgeDays computes whole days since the registry creation date. An
// unparseable date yields 0, which lands on the suspicious side.
func domainAgeDays(creationDate string) int {
	created, err := time.Parse("2006-01-02", creationDate)
	if err != nil {
		return 0
	}
	return int(timeNow().Sub(created).Hours() / 24)
}
