package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/skhumalo/tradecheck/internal/engine"
	"github.com/spf13/cobra"
)

var (
	companyDomain string
	companyJSON   string
)

// companyCmd represents the company command
var companyCmd = &cobra.Command{
	Use:   "company <name>",
	Short: "Verify a company name and domain",
	Long: `Company runs the quick company check: registrar standing plus whether
the company's domain matches its registration.

Example:
  tradecheck company "ABC Manufacturing (Pty) Ltd"
  tradecheck company "TechCorp Solutions" --domain techcorp.co.za`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompany,
}

func init() {
	rootCmd.AddCommand(companyCmd)

	companyCmd.Flags().StringVar(&companyDomain, "domain", "", "company domain (extracted from the text when omitted)")
	companyCmd.Flags().StringVar(&companyJSON, "json", "", "write the verdict JSON to this path")
}

func runCompany(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	eng, err := engine.FromConfig(cfg)
	if err != nil {
		return err
	}

	verdict := eng.VerifyCompany(ctx, name, companyDomain)

	if companyJSON != "" {
		if err := writeJSON(verdict, companyJSON); err != nil {
			return err
		}
	}

	fmt.Printf("Company:      %s\n", verdict.CompanyName)
	fmt.Printf("Status:       %s\n", verdict.Status)
	fmt.Printf("Domain:       %s (match: %t)\n", verdict.Domain, verdict.DomainMatch)
	fmt.Printf("Verified:     %t\n", verdict.IsVerified)
	fmt.Printf("Risk score:   %d/100\n", verdict.RiskScore)
	for _, alert := range verdict.Details.FraudAlerts {
		fmt.Fprintf(os.Stderr, "⚠ %s\n", alert)
	}

	return nil
}
