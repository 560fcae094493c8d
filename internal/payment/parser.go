// Package payment verifies payment references against a ledger. Free text is
// first parsed into a bank + reference pair; the matcher then resolves the
// reference through the Ledger interface, which hides the mock backend the
// same way the registry interfaces hide theirs.
package payment

import "regexp"

// ParsedReference is a payment reference lifted from free text
type ParsedReference struct {
	Bank      string `json:"bank"`
	Reference string `json:"reference"`
}

// Bank-specific reference patterns are tried before the bank-agnostic
// fallback so "FNB, Ref 483920" attributes the reference to FNB.
var referencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:FNB).*?(?:ref|reference)[\s:]*([0-9]+)`),
	regexp.MustCompile(`(?i)(?:standard\s*bank|stb).*?(?:ref|reference)[\s:]*([0-9]+)`),
	regexp.MustCompile(`(?i)(?:ABSA).*?(?:ref|reference)[\s:]*([0-9]+)`),
	regexp.MustCompile(`(?i)(?:nedbank|ned).*?(?:ref|reference)[\s:]*([0-9]+)`),
	regexp.MustCompile(`(?i)(?:capitec|cap).*?(?:ref|reference)[\s:]*([0-9]+)`),
	regexp.MustCompile(`(?i)(?:ref|reference)[\s:]*([0-9]+)`),
}

var bankNamePattern = regexp.MustCompile(`(?i)(FNB|Standard Bank|ABSA|Nedbank|Capitec)`)

// ParseReference extracts a payment reference from free text. The bank name
// is attached verbatim as it appeared in the text; when only the generic
// pattern matches, the bank is "Unknown Bank". Returns nil when no pattern
// matches.
func ParseReference(text string) *ParsedReference {
	for _, pattern := range referencePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		bank := "Unknown Bank"
		if bm := bankNamePattern.FindStringSubmatch(text); bm != nil {
			bank = bm[1]
		}

		return &ParsedReference{
			Bank:      bank,
			Reference: m[1],
		}
	}

	return nil
}
