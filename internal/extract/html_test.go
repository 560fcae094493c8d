package extract

import (
	"strings"
	"testing"
)

func TestLooksLikeHTML(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"<!DOCTYPE html><html><body>hi</body></html>", true},
		{"  <html lang=\"en\"><body>hi</body></html>", true},
		{"plain purchase order text", false},
		{"Amount: R 100.00 < R 200.00", false},
	}

	for _, tt := range tests {
		if got := LooksLikeHTML(tt.raw); got != tt.want {
			t.Errorf("LooksLikeHTML(%q) = %t, want %t", tt.raw, got, tt.want)
		}
	}
}

func TestVisibleText_SkipsScriptsAndStyles(t *testing.T) {
	doc := `<html><head>
<style>body { color: red }</style>
<script>var secret = "tracker";</script>
</head><body>
<h1>PURCHASE ORDER</h1>
<p>Registration: 2019/123456/07</p>
<noscript>enable javascript</noscript>
</body></html>`

	text, err := VisibleText(doc)
	if err != nil {
		t.Fatalf("VisibleText failed: %v", err)
	}

	if !strings.Contains(text, "PURCHASE ORDER") {
		t.Errorf("Expected heading in visible text, got %q", text)
	}
	if !strings.Contains(text, "Registration: 2019/123456/07") {
		t.Errorf("Expected body text, got %q", text)
	}
	for _, hidden := range []string{"color: red", "tracker", "enable javascript"} {
		if strings.Contains(text, hidden) {
			t.Errorf("Expected %q to be stripped, got %q", hidden, text)
		}
	}
}

func TestVisibleText_FeedsExtraction(t *testing.T) {
	doc := `<html><body>
<p>PURCHASE ORDER</p>
<p>Account: 1234567890</p>
<p>Branch: 632005</p>
</body></html>`

	text, err := VisibleText(doc)
	if err != nil {
		t.Fatalf("VisibleText failed: %v", err)
	}

	claims := NewFieldExtractor().Extract(text, "")
	if claims.BankDetails == nil || claims.BankDetails.AccountNumber != "1234567890" {
		t.Errorf("Expected account extracted from HTML text, got %+v", claims.BankDetails)
	}
}
