package registry

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// limiterSet hands out one rate limiter per registry so a burst against the
// company registrar does not starve domain or bank lookups
type limiterSet struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rps      rate.Limit
	burst    int
}

func newLimiterSet(requestsPerSecond float64, burst int) *limiterSet {
	if burst <= 0 {
		burst = 5
	}
	return &limiterSet{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

func (l *limiterSet) wait(ctx context.Context, name string) error {
	l.mu.RLock()
	limiter, exists := l.limiters[name]
	l.mu.RUnlock()

	if !exists {
		l.mu.Lock()
		// Double-check after acquiring write lock
		if limiter, exists = l.limiters[name]; !exists {
			limiter = rate.NewLimiter(l.rps, l.burst)
			l.limiters[name] = limiter
		}
		l.mu.Unlock()
	}

	return limiter.Wait(ctx)
}

// WithRateLimit wraps all three registries with per-registry rate limiting.
// A cancelled or expired context surfaces as an infrastructure error, which
// the validators degrade to an error verdict.
func WithRateLimit(r Registries, requestsPerSecond float64, burst int) Registries {
	set := newLimiterSet(requestsPerSecond, burst)
	return Registries{
		Company: &limitedCompany{next: r.Company, set: set},
		Domain:  &limitedDomain{next: r.Domain, set: set},
		Bank:    &limitedBank{next: r.Bank, set: set},
	}
}

type limitedCompany struct {
	next CompanyRegistry
	set  *limiterSet
}

func (l *limitedCompany) LookupCompany(ctx context.Context, name, registrationNumber string) (*CompanyRecord, error) {
	if err := l.set.wait(ctx, "company"); err != nil {
		return nil, err
	}
	return l.next.LookupCompany(ctx, name, registrationNumber)
}

type limitedDomain struct {
	next DomainRegistry
	set  *limiterSet
}

func (l *limitedDomain) LookupDomain(ctx context.Context, domain string) (*DomainRecord, error) {
	if err := l.set.wait(ctx, "domain"); err != nil {
		return nil, err
	}
	return l.next.LookupDomain(ctx, domain)
}

type limitedBank struct {
	next BankRegistry
	set  *limiterSet
}

func (l *limitedBank) LookupAccount(ctx context.Context, accountNumber, branchCode string) (*BankRecord, error) {
	if err := l.set.wait(ctx, "bank"); err != nil {
		return nil, err
	}
	return l.next.LookupAccount(ctx, accountNumber, branchCode)
}
