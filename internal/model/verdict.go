package model

import "time"

// ValidatorStatus is the closed status taxonomy shared by the registry
// validators. The risk scorer switches on these values, so validators must
// only ever return statuses listed here.
type ValidatorStatus string

const (
	StatusVerified   ValidatorStatus = "verified"
	StatusSuspicious ValidatorStatus = "suspicious"
	StatusNotFound   ValidatorStatus = "not_found"
	StatusInvalid    ValidatorStatus = "invalid"
	StatusSuspended  ValidatorStatus = "suspended"
	StatusError      ValidatorStatus = "error"
)

// RegistryDetail carries the registry-specific supporting data for a verdict.
// Only the fields relevant to the registry that produced the verdict are set;
// an error verdict carries none at all.
type RegistryDetail struct {
	RegistrationDate string   `json:"registration_date,omitempty"`
	Directors        []string `json:"directors,omitempty"`
	DomainAgeDays    *int     `json:"domain_age_days,omitempty"`
	Registrar        string   `json:"registrar,omitempty"`
	AccountExists    *bool    `json:"account_exists,omitempty"`
	BranchValid      *bool    `json:"branch_valid,omitempty"`
}

// ValidatorVerdict is a single registry's judgment about a claim set
type ValidatorVerdict struct {
	Status ValidatorStatus `json:"status"`
	Match  bool            `json:"match"`
	Detail RegistryDetail  `json:"detail,omitempty"`
}

// ErrorVerdict builds the degraded verdict used when a validator cannot run:
// required claims missing, lookup timeout, or registry unreachable.
func ErrorVerdict() ValidatorVerdict {
	return ValidatorVerdict{Status: StatusError, Match: false}
}

// PaymentStatus is the settlement state of a payment reference
type PaymentStatus string

const (
	PaymentCleared  PaymentStatus = "cleared"
	PaymentPending  PaymentStatus = "pending"
	PaymentFailed   PaymentStatus = "failed"
	PaymentNotFound PaymentStatus = "not_found"
)

// PaymentDetails are the per-check flags behind a payment verdict
type PaymentDetails struct {
	AccountMatch  bool `json:"account_match"`
	AmountMatch   bool `json:"amount_match"`
	TimelineValid bool `json:"timeline_valid"`
}

// PaymentVerdict is the outcome of verifying a payment reference against the
// ledger. FraudIndicators is assembled once and treated as append-only.
type PaymentVerdict struct {
	ID              string         `json:"id"`
	IsVerified      bool           `json:"is_verified"`
	Amount          string         `json:"amount"`
	Status          PaymentStatus  `json:"status"`
	TransactionDate time.Time      `json:"transaction_date"`
	Reference       string         `json:"reference"`
	Bank            string         `json:"bank"`
	Confidence      float64        `json:"confidence"` // 0-100
	RiskScore       int            `json:"risk_score"` // 0-100
	Details         PaymentDetails `json:"details"`
	FraudIndicators []string       `json:"fraud_indicators"`
}

// CompanyStatus is the registrar's standing for a company
type CompanyStatus string

const (
	CompanyActive    CompanyStatus = "active"
	CompanyInactive  CompanyStatus = "inactive"
	CompanySuspended CompanyStatus = "suspended"
)

// CompanyDetails carries the registrar profile behind a company verdict
type CompanyDetails struct {
	RegisteredAddress string   `json:"registered_address,omitempty"`
	Directors         []string `json:"directors,omitempty"`
	BusinessType      string   `json:"business_type,omitempty"`
	FraudAlerts       []string `json:"fraud_alerts"`
}

// CompanyVerdict is the outcome of verifying a company name and domain
type CompanyVerdict struct {
	ID                 string         `json:"id"`
	IsVerified         bool           `json:"is_verified"`
	CompanyName        string         `json:"company_name"`
	RegistrationNumber string         `json:"registration_number,omitempty"`
	Status             CompanyStatus  `json:"status"`
	Domain             string         `json:"domain"`
	DomainMatch        bool           `json:"domain_match"`
	RiskScore          int            `json:"risk_score"`
	Details            CompanyDetails `json:"details"`
}
