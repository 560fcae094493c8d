package extract

import (
	"strings"
	"testing"

	"github.com/skhumalo/tradecheck/internal/model"
)

const poText = `PURCHASE ORDER
ABC Manufacturing (Pty) Ltd
Registration: 2019/123456/07
VAT: 4123456789

Email: orders@abcmanufacturing.co.za

PO Number: PO-2024-001234
Date: 2024-01-15

Banking Details:
Account: 1234567890
Branch: 632005
Bank: First National Bank

Total Amount: R 25,750.00`

func TestExtract_PurchaseOrder(t *testing.T) {
	e := NewFieldExtractor()

	claims := e.Extract(poText, "")

	if claims.DocumentType != model.DocPurchaseOrder {
		t.Errorf("Expected document type PO, got %s", claims.DocumentType)
	}
	if !strings.Contains(claims.CompanyName, "ABC Manufacturing (Pty) Ltd") {
		t.Errorf("Expected company name containing ABC Manufacturing (Pty) Ltd, got %q", claims.CompanyName)
	}
	if claims.RegistrationNumber != "2019/123456/07" {
		t.Errorf("Expected registration number 2019/123456/07, got %q", claims.RegistrationNumber)
	}
	if claims.VATNumber != "4123456789" {
		t.Errorf("Expected VAT number 4123456789, got %q", claims.VATNumber)
	}
	if claims.ContactEmail != "orders@abcmanufacturing.co.za" {
		t.Errorf("Expected contact email, got %q", claims.ContactEmail)
	}
	if claims.BankDetails == nil {
		t.Fatal("Expected bank details to be extracted")
	}
	if claims.BankDetails.AccountNumber != "1234567890" {
		t.Errorf("Expected account 1234567890, got %q", claims.BankDetails.AccountNumber)
	}
	if claims.BankDetails.BranchCode != "632005" {
		t.Errorf("Expected branch 632005, got %q", claims.BankDetails.BranchCode)
	}
	if !strings.Contains(claims.BankDetails.BankName, "First National Bank") {
		t.Errorf("Expected bank name First National Bank, got %q", claims.BankDetails.BankName)
	}
	if claims.Amount == nil {
		t.Fatal("Expected amount to be extracted")
	}
	if claims.Amount.Value != 25750.00 {
		t.Errorf("Expected amount 25750.00, got %v", claims.Amount.Value)
	}
	if claims.Amount.Currency != "ZAR" {
		t.Errorf("Expected currency ZAR, got %q", claims.Amount.Currency)
	}
	if claims.Date != "2024-01-15" {
		t.Errorf("Expected date 2024-01-15, got %q", claims.Date)
	}
}

func TestExtract_MissingFieldsAreOmitted(t *testing.T) {
	e := NewFieldExtractor()

	claims := e.Extract("nothing useful in here", "")

	if claims.CompanyName != "" || claims.RegistrationNumber != "" || claims.VATNumber != "" {
		t.Errorf("Expected empty identity fields, got %+v", claims)
	}
	if claims.BankDetails != nil {
		t.Errorf("Expected nil bank details, got %+v", claims.BankDetails)
	}
	if claims.Amount != nil {
		t.Errorf("Expected nil amount, got %+v", claims.Amount)
	}
	if claims.DocumentType != model.DocUnknown {
		t.Errorf("Expected Unknown document type, got %s", claims.DocumentType)
	}
}

func TestExtract_HintOverridesClassifier(t *testing.T) {
	e := NewFieldExtractor()

	claims := e.Extract("invoice for services", model.DocPurchaseOrder)
	if claims.DocumentType != model.DocPurchaseOrder {
		t.Errorf("Expected hinted type PO, got %s", claims.DocumentType)
	}
}

func TestClassifyDocument_PriorityCascade(t *testing.T) {
	tests := []struct {
		text string
		want model.DocumentType
	}{
		{"PURCHASE ORDER for goods", model.DocPurchaseOrder},
		{"PO Number: 123", model.DocPurchaseOrder},
		// PO markers win even when invoice markers are present
		{"purchase order referencing invoice INV-1", model.DocPurchaseOrder},
		{"REQUEST FOR QUOTATION", model.DocRequestQuote},
		{"rfq for IT equipment", model.DocRequestQuote},
		{"PROOF OF PAYMENT", model.DocProofOfPayment},
		{"Transaction Successful", model.DocProofOfPayment},
		{"EFT confirmation", model.DocEFT},
		{"electronic transfer receipt", model.DocEFT},
		{"TAX INVOICE", model.DocInvoice},
		{"weather report", model.DocUnknown},
	}

	for _, tt := range tests {
		if got := ClassifyDocument(tt.text); got != tt.want {
			t.Errorf("ClassifyDocument(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestQuality_GrowsWithFields(t *testing.T) {
	e := NewFieldExtractor()

	empty := e.Extract("nothing", "")
	full := e.Extract(poText, "")

	qEmpty := Quality(empty)
	qFull := Quality(full)

	if qEmpty >= qFull {
		t.Errorf("Expected quality to grow with extracted fields: empty=%v full=%v", qEmpty, qFull)
	}
	if qEmpty < 0 || qEmpty > 1 || qFull < 0 || qFull > 1 {
		t.Errorf("Expected quality in [0,1], got empty=%v full=%v", qEmpty, qFull)
	}
}
