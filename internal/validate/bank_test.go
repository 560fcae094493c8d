package validate

import (
	"context"
	"errors"
	"testing"

	"github.com/skhumalo/tradecheck/internal/model"
	"github.com/skhumalo/tradecheck/internal/registry"
)

func TestBankValidator_MissingDetails(t *testing.T) {
	v := NewBankValidator(&stubBankRegistry{err: errors.New("must not be called")})

	tests := []model.ClaimSet{
		{},
		{BankDetails: &model.BankDetails{AccountNumber: "1234567890"}},
		{BankDetails: &model.BankDetails{BranchCode: "632005"}},
	}
	for _, claims := range tests {
		verdict := v.Validate(context.Background(), claims)
		if verdict.Status != model.StatusError {
			t.Errorf("claims %+v: expected error status, got %s", claims, verdict.Status)
		}
	}
}

func TestBankValidator_Verified(t *testing.T) {
	v := NewBankValidator(&stubBankRegistry{rec: &registry.BankRecord{
		AccountNumber: "1234567890",
		BranchCode:    "632005",
		Status:        registry.RecordActive,
	}})

	verdict := v.Validate(context.Background(), model.ClaimSet{
		BankDetails: &model.BankDetails{AccountNumber: "1234567890", BranchCode: "632005"},
	})

	if verdict.Status != model.StatusVerified {
		t.Errorf("Expected verified, got %s", verdict.Status)
	}
	if verdict.Detail.AccountExists == nil || !*verdict.Detail.AccountExists {
		t.Error("Expected account_exists=true in detail")
	}
	if verdict.Detail.BranchValid == nil || !*verdict.Detail.BranchValid {
		t.Error("Expected branch_valid=true in detail")
	}
}

func TestBankValidator_NoMatchIsInvalid(t *testing.T) {
	v := NewBankValidator(&stubBankRegistry{err: registry.ErrNotFound})

	verdict := v.Validate(context.Background(), model.ClaimSet{
		BankDetails: &model.BankDetails{AccountNumber: "0000000000", BranchCode: "999999"},
	})

	if verdict.Status != model.StatusInvalid {
		t.Errorf("Expected invalid, got %s", verdict.Status)
	}
	if verdict.Detail.AccountExists == nil || *verdict.Detail.AccountExists {
		t.Error("Expected account_exists=false in detail")
	}
	if verdict.Detail.BranchValid == nil || *verdict.Detail.BranchValid {
		t.Error("Expected branch_valid=false in detail")
	}
}

func TestBankValidator_FrozenAccountIsSuspicious(t *testing.T) {
	v := NewBankValidator(&stubBankRegistry{rec: &registry.BankRecord{
		AccountNumber: "5550001111",
		BranchCode:    "198765",
		Status:        registry.RecordFrozen,
	}})

	verdict := v.Validate(context.Background(), model.ClaimSet{
		BankDetails: &model.BankDetails{AccountNumber: "5550001111", BranchCode: "198765"},
	})

	if verdict.Status != model.StatusSuspicious {
		t.Errorf("Expected suspicious for frozen account, got %s", verdict.Status)
	}
	if !verdict.Match {
		t.Error("Expected match=true for a found record")
	}
}

func TestBankValidator_RegistryFailure(t *testing.T) {
	v := NewBankValidator(&stubBankRegistry{err: errors.New("bank gateway down")})

	verdict := v.Validate(context.Background(), model.ClaimSet{
		BankDetails: &model.BankDetails{AccountNumber: "1234567890", BranchCode: "632005"},
	})

	if verdict.Status != model.StatusError {
		t.Errorf("Expected error status, got %s", verdict.Status)
	}
}
