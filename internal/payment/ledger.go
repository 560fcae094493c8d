package payment

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/skhumalo/tradecheck/internal/model"
)

// LedgerEntry is what the ledger knows about a payment reference
type LedgerEntry struct {
	Status          model.PaymentStatus
	IsVerified      bool
	Amount          string
	TransactionDate time.Time
	Confidence      float64 // 0-100
	RiskScore       int     // 0-100
	Details         model.PaymentDetails
	FraudIndicators []string
}

// Ledger resolves a parsed payment reference. The mock implementation below
// is a placeholder for a real bank ledger client; swapping it out does not
// touch the matcher or the engine.
type Ledger interface {
	FindTransaction(ctx context.Context, ref ParsedReference) (*LedgerEntry, error)
}

// MockLedger synthesizes ledger entries from weighted outcome classes. The
// probability bands (cleared 0.60, pending 0.20, not_found 0.15, failed 0.05)
// are part of the behavioral contract the presentation layer's scenario
// coverage depends on. Randomness is injected via the seed so tests are
// reproducible; repeated calls with the same reference still draw fresh
// outcomes, as the original backend did.
type MockLedger struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewMockLedger creates a mock ledger with the given seed
func NewMockLedger(seed int64) *MockLedger {
	return &MockLedger{rnd: rand.New(rand.NewSource(seed))}
}

// FindTransaction draws one of the four outcome classes and synthesizes an
// entry within that class's amount, confidence, and risk ranges
func (l *MockLedger) FindTransaction(ctx context.Context, ref ParsedReference) (*LedgerEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry := LedgerEntry{
		TransactionDate: time.Now().Add(-time.Duration(l.rnd.Float64() * float64(7*24*time.Hour))),
	}

	switch draw := l.rnd.Float64(); {
	case draw <= 0.60:
		entry.Status = model.PaymentCleared
		entry.IsVerified = true
		entry.Amount = randAmount(l.rnd, 1000, 50000)
		entry.Confidence = 95 + l.rnd.Float64()*5
		entry.RiskScore = int(l.rnd.Float64() * 20)
		entry.Details = model.PaymentDetails{AccountMatch: true, AmountMatch: true, TimelineValid: true}
		entry.FraudIndicators = []string{}
	case draw <= 0.80:
		entry.Status = model.PaymentPending
		entry.Amount = randAmount(l.rnd, 500, 30000)
		entry.Confidence = 40 + l.rnd.Float64()*30
		entry.RiskScore = 60 + int(l.rnd.Float64()*30)
		entry.Details = model.PaymentDetails{AccountMatch: true, AmountMatch: false, TimelineValid: true}
		entry.FraudIndicators = []string{"Payment still processing"}
	case draw <= 0.95:
		entry.Status = model.PaymentNotFound
		entry.Amount = "R0.00"
		entry.Confidence = 10 + l.rnd.Float64()*20
		entry.RiskScore = 80 + int(l.rnd.Float64()*20)
		entry.Details = model.PaymentDetails{}
		entry.FraudIndicators = []string{"Reference not found in bank records"}
	default:
		entry.Status = model.PaymentFailed
		entry.Amount = randAmount(l.rnd, 100, 20000)
		entry.Confidence = 85 + l.rnd.Float64()*10
		entry.RiskScore = 90 + int(l.rnd.Float64()*10)
		entry.Details = model.PaymentDetails{}
		entry.FraudIndicators = []string{"Suspicious transaction pattern", "Account mismatch"}
	}

	if entry.RiskScore > 100 {
		entry.RiskScore = 100
	}

	return &entry, nil
}

// randAmount formats a random Rand amount in [min, min+span)
func randAmount(rnd *rand.Rand, min, span float64) string {
	return fmt.Sprintf("R%.2f", rnd.Float64()*span+min)
}
