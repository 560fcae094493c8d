package model

// DocumentType categorizes the kind of trade document a text was extracted from
type DocumentType string

const (
	DocPurchaseOrder  DocumentType = "PO"
	DocRequestQuote   DocumentType = "RFQ"
	DocInvoice        DocumentType = "Invoice"
	DocProofOfPayment DocumentType = "PoP"
	DocEFT            DocumentType = "EFT"
	DocUnknown        DocumentType = "Unknown"
)

// BankDetails is the account/branch/bank triple lifted from a document
type BankDetails struct {
	AccountNumber string `json:"account_number,omitempty"`
	BranchCode    string `json:"branch_code,omitempty"`
	BankName      string `json:"bank_name,omitempty"`
}

// Money is a monetary amount with its currency code
type Money struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// ClaimSet holds the structured fields extracted from a raw document or text.
// Every field is optional; an empty value means the pattern did not match,
// which the validators treat as a meaningful absence. A ClaimSet is built once
// per request and never mutated afterwards.
type ClaimSet struct {
	CompanyName        string       `json:"company_name,omitempty"`
	RegistrationNumber string       `json:"registration_number,omitempty"`
	VATNumber          string       `json:"vat_number,omitempty"`
	BankDetails        *BankDetails `json:"bank_details,omitempty"`
	ContactEmail       string       `json:"contact_email,omitempty"`
	Amount             *Money       `json:"amount,omitempty"`
	Reference          string       `json:"reference,omitempty"`
	Date               string       `json:"date,omitempty"`
	DocumentType       DocumentType `json:"document_type"`
}

// HasCompanyIdentity reports whether the claims carry enough to query the
// company registrar.
func (c ClaimSet) HasCompanyIdentity() bool {
	return c.CompanyName != "" || c.RegistrationNumber != ""
}

// HasBankDetails reports whether both the account number and branch code were
// extracted. The bank name alone is not enough for a registry lookup.
func (c ClaimSet) HasBankDetails() bool {
	return c.BankDetails != nil && c.BankDetails.AccountNumber != "" && c.BankDetails.BranchCode != ""
}
