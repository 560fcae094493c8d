package validate

import (
	"context"
	"errors"

	"github.com/skhumalo/tradecheck/internal/model"
	"github.com/skhumalo/tradecheck/internal/registry"
)

// BankValidator checks the extracted account details against the bank
// account registry
type BankValidator struct {
	registry registry.BankRegistry
}

// NewBankValidator creates a new bank validator
func NewBankValidator(r registry.BankRegistry) *BankValidator {
	return &BankValidator{registry: r}
}

// Validate requires both the account number and branch code. An exact pair
// match on an active account verifies; a match on a frozen or closed account
// is suspicious; no match at all is invalid.
func (v *BankValidator) Validate(ctx context.Context, claims model.ClaimSet) model.ValidatorVerdict {
	if !claims.HasBankDetails() {
		return model.ErrorVerdict()
	}

	rec, err := v.registry.LookupAccount(ctx, claims.BankDetails.AccountNumber, claims.BankDetails.BranchCode)
	if errors.Is(err, registry.ErrNotFound) {
		exists, valid := false, false
		return model.ValidatorVerdict{
			Status: model.StatusInvalid,
			Match:  false,
			Detail: model.RegistryDetail{
				AccountExists: &exists,
				BranchValid:   &valid,
			},
		}
	}
	if err != nil {
		return model.ErrorVerdict()
	}

	exists, valid := true, true
	status := model.StatusVerified
	if rec.Status != registry.RecordActive {
		status = model.StatusSuspicious
	}

	return model.ValidatorVerdict{
		Status: status,
		Match:  true,
		Detail: model.RegistryDetail{
			AccountExists: &exists,
			BranchValid:   &valid,
		},
	}
}
