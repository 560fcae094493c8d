package company

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/skhumalo/tradecheck/internal/model"
)

// MockDirectory synthesizes company profiles from weighted outcome classes
// (legitimate 0.65, domain mismatch 0.20, inactive 0.10, suspended 0.05).
// As with the mock ledger, the bands are preserved as the behavioral contract
// of the original backend, and the seed makes tests reproducible.
type MockDirectory struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewMockDirectory creates a mock directory with the given seed
func NewMockDirectory(seed int64) *MockDirectory {
	return &MockDirectory{rnd: rand.New(rand.NewSource(seed))}
}

// Profile draws one of the four outcome classes
func (d *MockDirectory) Profile(ctx context.Context, name, domain string) (*Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	switch draw := d.rnd.Float64(); {
	case draw <= 0.65:
		return &Profile{
			IsVerified:         true,
			Status:             model.CompanyActive,
			DomainMatch:        true,
			RiskScore:          int(d.rnd.Float64() * 25),
			RegistrationNumber: fmt.Sprintf("%d", d.rnd.Int63n(9_000_000_000)+1_000_000_000),
			Details: model.CompanyDetails{
				RegisteredAddress: "123 Business Park, Johannesburg, 2000",
				Directors:         []string{"John Smith", "Sarah Johnson"},
				BusinessType:      "Manufacturing",
				FraudAlerts:       []string{},
			},
		}, nil
	case draw <= 0.85:
		return &Profile{
			Status:      model.CompanyActive,
			DomainMatch: false,
			RiskScore:   70 + int(d.rnd.Float64()*20),
			Details: model.CompanyDetails{
				RegisteredAddress: "Address not verified",
				Directors:         []string{},
				BusinessType:      "Unknown",
				FraudAlerts:       []string{"Domain mismatch with registered company"},
			},
		}, nil
	case draw <= 0.95:
		return &Profile{
			Status:      model.CompanyInactive,
			DomainMatch: false,
			RiskScore:   85 + int(d.rnd.Float64()*15),
			Details: model.CompanyDetails{
				RegisteredAddress: "Company deregistered",
				Directors:         []string{},
				BusinessType:      "Deregistered",
				FraudAlerts:       []string{"Company no longer active"},
			},
		}, nil
	default:
		return &Profile{
			Status:      model.CompanySuspended,
			DomainMatch: false,
			RiskScore:   95 + int(d.rnd.Float64()*5),
			Details: model.CompanyDetails{
				RegisteredAddress: "Flagged address",
				Directors:         []string{"Flagged individuals"},
				BusinessType:      "High Risk",
				FraudAlerts:       []string{"Company flagged for fraudulent activity", "Multiple fraud reports"},
			},
		}, nil
	}
}
