package payment

import "testing"

func TestParseReference(t *testing.T) {
	tests := []struct {
		text     string
		wantBank string
		wantRef  string
	}{
		{"Payment from FNB, Ref 483920", "FNB", "483920"},
		{"fnb reference: 123456", "fnb", "123456"},
		{"Standard Bank payment ref 99887766", "Standard Bank", "99887766"},
		{"ABSA EFT Reference: 555123", "ABSA", "555123"},
		{"Nedbank ref 777001", "Nedbank", "777001"},
		{"Capitec transfer reference 31337", "Capitec", "31337"},
		{"Ref: 42", "Unknown Bank", "42"},
		{"reference 000123 attached", "Unknown Bank", "000123"},
	}

	for _, tt := range tests {
		got := ParseReference(tt.text)
		if got == nil {
			t.Errorf("ParseReference(%q) = nil, want %s/%s", tt.text, tt.wantBank, tt.wantRef)
			continue
		}
		if got.Bank != tt.wantBank {
			t.Errorf("ParseReference(%q).Bank = %q, want %q", tt.text, got.Bank, tt.wantBank)
		}
		if got.Reference != tt.wantRef {
			t.Errorf("ParseReference(%q).Reference = %q, want %q", tt.text, got.Reference, tt.wantRef)
		}
	}
}

func TestParseReference_NoMatch(t *testing.T) {
	for _, text := range []string{"", "hello world", "FNB payment with no number", "ref without digits"} {
		if got := ParseReference(text); got != nil {
			t.Errorf("ParseReference(%q) = %+v, want nil", text, got)
		}
	}
}
