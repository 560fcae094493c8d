package model

import "testing"

func TestHasCompanyIdentity(t *testing.T) {
	tests := []struct {
		claims ClaimSet
		want   bool
	}{
		{ClaimSet{}, false},
		{ClaimSet{CompanyName: "ABC Manufacturing (Pty) Ltd"}, true},
		{ClaimSet{RegistrationNumber: "2019/123456/07"}, true},
		{ClaimSet{VATNumber: "4123456789"}, false},
	}

	for _, tt := range tests {
		if got := tt.claims.HasCompanyIdentity(); got != tt.want {
			t.Errorf("HasCompanyIdentity(%+v) = %t, want %t", tt.claims, got, tt.want)
		}
	}
}

func TestHasBankDetails(t *testing.T) {
	tests := []struct {
		claims ClaimSet
		want   bool
	}{
		{ClaimSet{}, false},
		{ClaimSet{BankDetails: &BankDetails{AccountNumber: "1234567890"}}, false},
		{ClaimSet{BankDetails: &BankDetails{BranchCode: "632005"}}, false},
		{ClaimSet{BankDetails: &BankDetails{BankName: "First National Bank"}}, false},
		{ClaimSet{BankDetails: &BankDetails{AccountNumber: "1234567890", BranchCode: "632005"}}, true},
	}

	for _, tt := range tests {
		if got := tt.claims.HasBankDetails(); got != tt.want {
			t.Errorf("HasBankDetails(%+v) = %t, want %t", tt.claims, got, tt.want)
		}
	}
}

func TestErrorVerdict(t *testing.T) {
	v := ErrorVerdict()
	if v.Status != StatusError || v.Match {
		t.Errorf("Expected unmatched error verdict, got %+v", v)
	}
	if v.Detail.DomainAgeDays != nil || v.Detail.AccountExists != nil {
		t.Errorf("Expected empty detail, got %+v", v.Detail)
	}
}
