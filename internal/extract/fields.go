// Package extract turns raw document text into a typed ClaimSet. Extraction
// never fails: a pattern that does not match simply leaves its field empty,
// and the validators decide what that absence means.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/skhumalo/tradecheck/internal/model"
)

var (
	companyPattern = regexp.MustCompile(`([A-Z][a-zA-Z\s&()]+(?:Pty|Ltd|CC|Inc)[^a-zA-Z]*)`)
	regNoPattern   = regexp.MustCompile(`(?i)(?:Registration|Reg\s*No|Reg):\s*(\d{4}/\d{6}/\d{2})`)
	vatPattern     = regexp.MustCompile(`(?i)VAT:\s*(\d{10})`)
	emailPattern   = regexp.MustCompile(`([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)
	accountPattern = regexp.MustCompile(`(?i)Account:\s*(\d{8,12})`)
	branchPattern  = regexp.MustCompile(`(?i)Branch:\s*(\d{6})`)
	bankPattern    = regexp.MustCompile(`(?i)Bank:\s*([A-Za-z\s]+Bank[A-Za-z\s]*)`)
	amountPattern  = regexp.MustCompile(`(?i)(?:Amount|Total):\s*R\s*([\d,]+\.?\d*)`)
	refPattern     = regexp.MustCompile(`(?i)(?:Reference|Ref|PO|RFQ):\s*([A-Z0-9-]+)`)
	datePattern    = regexp.MustCompile(`(?i)Date:\s*(\d{4}-\d{2}-\d{2})`)
)

// FieldExtractor extracts structured claims from document text
type FieldExtractor struct{}

// NewFieldExtractor creates a new field extractor
func NewFieldExtractor() *FieldExtractor {
	return &FieldExtractor{}
}

// Extract builds a ClaimSet from raw text. A non-empty hinted type overrides
// the keyword classifier; otherwise the document type is classified from the
// text itself. Pure function of its input.
func (e *FieldExtractor) Extract(raw string, hinted model.DocumentType) model.ClaimSet {
	claims := model.ClaimSet{
		DocumentType: hinted,
	}
	if claims.DocumentType == "" || claims.DocumentType == model.DocUnknown {
		claims.DocumentType = ClassifyDocument(raw)
	}

	if m := companyPattern.FindStringSubmatch(raw); m != nil {
		claims.CompanyName = strings.TrimSpace(m[1])
	}
	if m := regNoPattern.FindStringSubmatch(raw); m != nil {
		claims.RegistrationNumber = m[1]
	}
	if m := vatPattern.FindStringSubmatch(raw); m != nil {
		claims.VATNumber = m[1]
	}
	if m := emailPattern.FindStringSubmatch(raw); m != nil {
		claims.ContactEmail = m[1]
	}

	accountMatch := accountPattern.FindStringSubmatch(raw)
	branchMatch := branchPattern.FindStringSubmatch(raw)
	bankMatch := bankPattern.FindStringSubmatch(raw)
	if accountMatch != nil || branchMatch != nil || bankMatch != nil {
		details := &model.BankDetails{}
		if accountMatch != nil {
			details.AccountNumber = accountMatch[1]
		}
		if branchMatch != nil {
			details.BranchCode = branchMatch[1]
		}
		if bankMatch != nil {
			details.BankName = strings.TrimSpace(bankMatch[1])
		}
		claims.BankDetails = details
	}

	if m := amountPattern.FindStringSubmatch(raw); m != nil {
		if value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64); err == nil {
			claims.Amount = &model.Money{Value: value, Currency: "ZAR"}
		}
	}
	if m := refPattern.FindStringSubmatch(raw); m != nil {
		claims.Reference = m[1]
	}
	if m := datePattern.FindStringSubmatch(raw); m != nil {
		claims.Date = m[1]
	}

	return claims
}

// ClassifyDocument classifies text into a document type with a keyword
// priority cascade. PO markers win over RFQ markers, which win over
// PoP/EFT markers, which win over invoice markers.
func ClassifyDocument(text string) model.DocumentType {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "purchase order") || strings.Contains(lower, "po number"):
		return model.DocPurchaseOrder
	case strings.Contains(lower, "request for quotation") || strings.Contains(lower, "rfq"):
		return model.DocRequestQuote
	case strings.Contains(lower, "proof of payment") || strings.Contains(lower, "transaction successful"):
		return model.DocProofOfPayment
	case strings.Contains(lower, "eft") || strings.Contains(lower, "electronic transfer"):
		return model.DocEFT
	case strings.Contains(lower, "invoice"):
		return model.DocInvoice
	default:
		return model.DocUnknown
	}
}

// Quality estimates extraction quality for plain-text input, where no OCR
// engine supplied a confidence of its own. A richer claim set means the text
// was structured enough for the patterns to bite.
func Quality(claims model.ClaimSet) float64 {
	fields := 0
	for _, present := range []bool{
		claims.CompanyName != "",
		claims.RegistrationNumber != "",
		claims.VATNumber != "",
		claims.BankDetails != nil,
		claims.ContactEmail != "",
		claims.Amount != nil,
		claims.Reference != "",
		claims.Date != "",
		claims.DocumentType != model.DocUnknown,
	} {
		if present {
			fields++
		}
	}

	quality := 0.70 + 0.03*float64(fields)
	if quality > 0.97 {
		quality = 0.97
	}
	return quality
}
