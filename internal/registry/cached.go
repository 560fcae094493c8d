package registry

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// WithCache wraps all three registries with a shared TTL cache so repeated
// lookups for the same claims (batch runs, retried documents) do not hit the
// backing directories again. Not-found outcomes are not cached; a record may
// appear between requests.
func WithCache(r Registries, ttl, cleanup time.Duration) Registries {
	store := gocache.New(ttl, cleanup)
	return Registries{
		Company: &cachedCompany{next: r.Company, store: store, ttl: ttl},
		Domain:  &cachedDomain{next: r.Domain, store: store, ttl: ttl},
		Bank:    &cachedBank{next: r.Bank, store: store, ttl: ttl},
	}
}

type cachedCompany struct {
	next  CompanyRegistry
	store *gocache.Cache
	ttl   time.Duration
}

func (c *cachedCompany) LookupCompany(ctx context.Context, name, registrationNumber string) (*CompanyRecord, error) {
	key := lookupKey("company", name, registrationNumber)
	if val, found := c.store.Get(key); found {
		rec := val.(CompanyRecord)
		return &rec, nil
	}

	rec, err := c.next.LookupCompany(ctx, name, registrationNumber)
	if err != nil {
		return nil, err
	}

	c.store.Set(key, *rec, c.ttl)
	return rec, nil
}

type cachedDomain struct {
	next  DomainRegistry
	store *gocache.Cache
	ttl   time.Duration
}

func (c *cachedDomain) LookupDomain(ctx context.Context, domain string) (*DomainRecord, error) {
	key := lookupKey("domain", domain)
	if val, found := c.store.Get(key); found {
		rec := val.(DomainRecord)
		return &rec, nil
	}

	rec, err := c.next.LookupDomain(ctx, domain)
	if err != nil {
		return nil, err
	}

	c.store.Set(key, *rec, c.ttl)
	return rec, nil
}

type cachedBank struct {
	next  BankRegistry
	store *gocache.Cache
	ttl   time.Duration
}

func (c *cachedBank) LookupAccount(ctx context.Context, accountNumber, branchCode string) (*BankRecord, error) {
	key := lookupKey("bank", accountNumber, branchCode)
	if val, found := c.store.Get(key); found {
		rec := val.(BankRecord)
		return &rec, nil
	}

	rec, err := c.next.LookupAccount(ctx, accountNumber, branchCode)
	if err != nil {
		return nil, err
	}

	c.store.Set(key, *rec, c.ttl)
	return rec, nil
}
