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

var paymentJSON string

// paymentCmd represents the payment command
var paymentCmd = &cobra.Command{
	Use:   "payment <text>",
	Short: "Verify a payment reference against the ledger",
	Long: `Payment parses a payment reference out of free text and verifies it.

Example:
  tradecheck payment "FNB, Ref 483920"
  tradecheck payment "Standard Bank Ref: 123456" --json verdict.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPayment,
}

func init() {
	rootCmd.AddCommand(paymentCmd)

	paymentCmd.Flags().StringVar(&paymentJSON, "json", "", "write the verdict JSON to this path")
}

func runPayment(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
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

	verdict := eng.VerifyPayment(ctx, text)

	if paymentJSON != "" {
		if err := writeJSON(verdict, paymentJSON); err != nil {
			return err
		}
	}

	fmt.Printf("Status:     %s\n", verdict.Status)
	fmt.Printf("Bank:       %s\n", verdict.Bank)
	fmt.Printf("Reference:  %s\n", verdict.Reference)
	fmt.Printf("Amount:     %s\n", verdict.Amount)
	fmt.Printf("Confidence: %.0f/100\n", verdict.Confidence)
	fmt.Printf("Risk score: %d/100\n", verdict.RiskScore)
	for _, indicator := range verdict.FraudIndicators {
		fmt.Fprintf(os.Stderr, "⚠ %s\n", indicator)
	}

	return nil
}
