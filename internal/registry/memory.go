package registry

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// MemoryRegistries is the in-memory registry backend. It stands in for the
// real registrar/WHOIS/account directory clients and is seeded either from
// the built-in fixtures or from a YAML seed file.
type MemoryRegistries struct {
	companies []CompanyRecord
	domains   []DomainRecord
	accounts  []BankRecord
}

// SeedFile is the YAML shape for registry fixtures
type SeedFile struct {
	Companies []CompanyRecord `yaml:"companies"`
	Domains   []DomainRecord  `yaml:"domains"`
	Accounts  []BankRecord    `yaml:"accounts"`
}

// NewMemoryRegistries creates registries seeded with the built-in fixtures
func NewMemoryRegistries() *MemoryRegistries {
	return &MemoryRegistries{
		companies: defaultCompanies(),
		domains:   defaultDomains(),
		accounts:  defaultAccounts(),
	}
}

// NewMemoryRegistriesFromSeed creates registries from explicit records
func NewMemoryRegistriesFromSeed(seed SeedFile) *MemoryRegistries {
	return &MemoryRegistries{
		companies: seed.Companies,
		domains:   seed.Domains,
		accounts:  seed.Accounts,
	}
}

// LoadSeedFile reads registry fixtures from a YAML file
func LoadSeedFile(path string) (SeedFile, error) {
	var seed SeedFile

	data, err := os.ReadFile(path)
	if err != nil {
		return seed, fmt.Errorf("read seed file: %w", err)
	}

	if err := yaml.Unmarshal(data, &seed); err != nil {
		return seed, fmt.Errorf("parse seed file: %w", err)
	}

	return seed, nil
}

// LookupCompany matches a company by case-insensitive substring of the name
// or by exact registration number
func (m *MemoryRegistries) LookupCompany(ctx context.Context, name, registrationNumber string) (*CompanyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lowerName := strings.ToLower(name)
	for i := range m.companies {
		rec := &m.companies[i]
		if lowerName != "" && strings.Contains(strings.ToLower(rec.CompanyName), lowerName) {
			copied := *rec
			return &copied, nil
		}
		if registrationNumber != "" && rec.RegistrationNumber == registrationNumber {
			copied := *rec
			return &copied, nil
		}
	}

	return nil, ErrNotFound
}

// LookupDomain matches a domain ownership record exactly
func (m *MemoryRegistries) LookupDomain(ctx context.Context, domain string) (*DomainRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lower := strings.ToLower(domain)
	for i := range m.domains {
		if strings.ToLower(m.domains[i].Domain) == lower {
			copied := m.domains[i]
			return &copied, nil
		}
	}

	return nil, ErrNotFound
}

// LookupAccount matches the (account, branch) pair exactly
func (m *MemoryRegistries) LookupAccount(ctx context.Context, accountNumber, branchCode string) (*BankRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i := range m.accounts {
		rec := &m.accounts[i]
		if rec.AccountNumber == accountNumber && rec.BranchCode == branchCode {
			copied := *rec
			return &copied, nil
		}
	}

	return nil, ErrNotFound
}

func defaultCompanies() []CompanyRecord {
	return []CompanyRecord{
		{
			CompanyName:        "ABC Manufacturing (Pty) Ltd",
			RegistrationNumber: "2019/123456/07",
			Status:             RecordActive,
			RegistrationDate:   "2019-03-15",
			Directors:          []string{"John Smith", "Mary Johnson"},
			Address:            "123 Industrial Ave, Johannesburg, 2001",
			BusinessType:       "Manufacturing",
		},
		{
			CompanyName:        "TechCorp Solutions",
			RegistrationNumber: "2020/987654/07",
			Status:             RecordActive,
			RegistrationDate:   "2020-08-22",
			Directors:          []string{"David Wilson", "Sarah Brown"},
			Address:            "45 Innovation Drive, Cape Town, 8001",
			BusinessType:       "Information Technology",
		},
		{
			CompanyName:        "Kwena Logistics CC",
			RegistrationNumber: "2015/456789/23",
			Status:             RecordSuspended,
			RegistrationDate:   "2015-11-02",
			Directors:          []string{"Peter Mokoena"},
			Address:            "9 Harbour Road, Durban, 4001",
			BusinessType:       "Logistics",
		},
	}
}

func defaultDomains() []DomainRecord {
	return []DomainRecord{
		{
			Domain:        "abcmanufacturing.co.za",
			Registrar:     "ZACR",
			CreationDate:  "2019-04-01",
			NameServers:   []string{"ns1.hostza.net", "ns2.hostza.net"},
			RegistrantOrg: "ABC Manufacturing (Pty) Ltd",
		},
		{
			Domain:        "techcorp.co.za",
			Registrar:     "ZACR",
			CreationDate:  "2020-09-01",
			NameServers:   []string{"ns1.cloudreg.co.za", "ns2.cloudreg.co.za"},
			RegistrantOrg: "TechCorp Solutions",
		},
	}
}

func defaultAccounts() []BankRecord {
	return []BankRecord{
		{
			AccountNumber: "1234567890",
			BranchCode:    "632005",
			BankName:      "First National Bank",
			AccountType:   "business-cheque",
			Status:        RecordActive,
		},
		{
			AccountNumber: "9876543210",
			BranchCode:    "051001",
			BankName:      "Standard Bank",
			AccountType:   "business-cheque",
			Status:        RecordActive,
		},
		{
			AccountNumber: "5550001111",
			BranchCode:    "198765",
			BankName:      "Nedbank",
			AccountType:   "savings",
			Status:        RecordFrozen,
		},
	}
}
