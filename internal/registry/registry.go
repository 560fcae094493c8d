// Package registry defines the uniform lookup contract the validators use to
// cross-check extracted claims against the three authoritative directories:
// the company registrar, the domain ownership registry, and the bank account
// registry. Implementations return ErrNotFound for a reachable-but-empty
// lookup; any other error means the registry infrastructure failed.
package registry

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// ErrNotFound signals a normal no-matching-record outcome. Validators map it
// to a business status (not_found or invalid), never to an error verdict.
var ErrNotFound = errors.New("registry: record not found")

// Record statuses as kept by the registries
const (
	RecordActive       = "active"
	RecordSuspended    = "suspended"
	RecordDeregistered = "deregistered"
	RecordClosed       = "closed"
	RecordFrozen       = "frozen"
)

// CompanyRecord is a company registrar entry
type CompanyRecord struct {
	CompanyName        string   `yaml:"company_name"`
	RegistrationNumber string   `yaml:"registration_number"`
	Status             string   `yaml:"status"`
	RegistrationDate   string   `yaml:"registration_date"`
	Directors          []string `yaml:"directors"`
	Address            string   `yaml:"address"`
	BusinessType       string   `yaml:"business_type"`
}

// DomainRecord is a domain ownership registry entry
type DomainRecord struct {
	Domain         string   `yaml:"domain"`
	Registrar      string   `yaml:"registrar"`
	CreationDate   string   `yaml:"creation_date"`
	ExpirationDate string   `yaml:"expiration_date"`
	NameServers    []string `yaml:"name_servers"`
	RegistrantOrg  string   `yaml:"registrant_org"`
}

// BankRecord is a bank account registry entry
type BankRecord struct {
	AccountNumber string `yaml:"account_number"`
	BranchCode    string `yaml:"branch_code"`
	BankName      string `yaml:"bank_name"`
	AccountType   string `yaml:"account_type"`
	Status        string `yaml:"status"`
}

// CompanyRegistry looks up companies by name or registration number.
// A name matches case-insensitively as a substring of the registered name;
// a registration number matches exactly.
type CompanyRegistry interface {
	LookupCompany(ctx context.Context, name, registrationNumber string) (*CompanyRecord, error)
}

// DomainRegistry looks up domain ownership records by domain name
type DomainRegistry interface {
	LookupDomain(ctx context.Context, domain string) (*DomainRecord, error)
}

// BankRegistry looks up bank accounts by the (account, branch) pair
type BankRegistry interface {
	LookupAccount(ctx context.Context, accountNumber, branchCode string) (*BankRecord, error)
}

// Registries bundles the three directories handed to the engine
type Registries struct {
	Company CompanyRegistry
	Domain  DomainRegistry
	Bank    BankRegistry
}

// lookupKey builds a stable cache key from lookup parts
func lookupKey(kind string, parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return "tradecheck:v1:" + kind + ":" + hex.EncodeToString(hash[:])
}
