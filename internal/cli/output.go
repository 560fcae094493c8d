package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/skhumalo/tradecheck/internal/model"
)

// writeJSON marshals v with indentation and writes it to path
func writeJSON(v interface{}, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// printResultSummary prints the human-readable document report to stdout
func printResultSummary(result *model.VerificationResult) {
	fmt.Printf("Document type:   %s\n", result.Claims.DocumentType)
	if result.Claims.CompanyName != "" {
		fmt.Printf("Company:         %s\n", result.Claims.CompanyName)
	}
	if result.Claims.RegistrationNumber != "" {
		fmt.Printf("Registration:    %s\n", result.Claims.RegistrationNumber)
	}

	fmt.Printf("Extraction:      %.0f%%\n", result.Confidence*100)
	fmt.Printf("Company check:   %s\n", result.Checks.CompanyRegistration.Status)
	fmt.Printf("Domain check:    %s\n", result.Checks.DomainValidation.Status)
	fmt.Printf("Bank check:      %s\n", result.Checks.BankValidation.Status)
	fmt.Printf("Risk score:      %d/100\n", result.RiskScore)
	fmt.Printf("Valid:           %t\n", result.IsValid)

	if len(result.Checks.FraudIndicators) > 0 {
		fmt.Println("\nFraud indicators:")
		for _, indicator := range result.Checks.FraudIndicators {
			fmt.Printf("  ⚠ %s\n", indicator)
		}
	}

	fmt.Println("\nRecommendations:")
	for _, rec := range result.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}

	if result.Analyst != nil && result.Analyst.SummaryMD != "" {
		fmt.Printf("\nAnalyst summary (%s/%s):\n%s\n", result.Analyst.Provider, result.Analyst.Model, result.Analyst.SummaryMD)
	}
}
