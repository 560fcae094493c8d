package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/skhumalo/tradecheck/internal/model"
)

// Matcher verifies payment references against the ledger
type Matcher struct {
	ledger Ledger
}

// NewMatcher creates a matcher backed by the given ledger
func NewMatcher(ledger Ledger) *Matcher {
	return &Matcher{ledger: ledger}
}

// VerifyText parses free text and verifies the resulting reference. Text
// that yields no parseable reference short-circuits to a terminal verdict
// without touching the ledger.
func (m *Matcher) VerifyText(ctx context.Context, text string) model.PaymentVerdict {
	ref := ParseReference(text)
	if ref == nil {
		return model.PaymentVerdict{
			ID:              uuid.NewString(),
			IsVerified:      false,
			Amount:          "R0.00",
			Status:          model.PaymentNotFound,
			TransactionDate: time.Now().UTC(),
			Reference:       text,
			Bank:            "Unknown",
			Confidence:      0,
			RiskScore:       100,
			FraudIndicators: []string{"Invalid reference format"},
		}
	}

	return m.Verify(ctx, *ref)
}

// Verify resolves a parsed reference through the ledger. A ledger failure
// degrades to a not_found verdict with maximal risk rather than an error;
// the caller always gets a complete verdict.
func (m *Matcher) Verify(ctx context.Context, ref ParsedReference) model.PaymentVerdict {
	entry, err := m.ledger.FindTransaction(ctx, ref)
	if err != nil {
		return model.PaymentVerdict{
			ID:              uuid.NewString(),
			IsVerified:      false,
			Amount:          "R0.00",
			Status:          model.PaymentNotFound,
			TransactionDate: time.Now().UTC(),
			Reference:       ref.Reference,
			Bank:            ref.Bank,
			Confidence:      0,
			RiskScore:       100,
			FraudIndicators: []string{"Ledger lookup unavailable"},
		}
	}

	return model.PaymentVerdict{
		ID:              uuid.NewString(),
		IsVerified:      entry.IsVerified,
		Amount:          entry.Amount,
		Status:          entry.Status,
		TransactionDate: entry.TransactionDate,
		Reference:       ref.Reference,
		Bank:            ref.Bank,
		Confidence:      entry.Confidence,
		RiskScore:       entry.RiskScore,
		Details:         entry.Details,
		FraudIndicators: entry.FraudIndicators,
	}
}
