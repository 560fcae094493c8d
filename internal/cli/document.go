package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/skhumalo/tradecheck/internal/engine"
	"github.com/skhumalo/tradecheck/internal/model"
	"github.com/spf13/cobra"
)

var (
	docHint     string
	docJSON     string
	docTimeout  time.Duration
	seedFile    string
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// documentCmd represents the document command
var documentCmd = &cobra.Command{
	Use:   "document <file|uri>",
	Short: "Verify a trade document and generate a risk report",
	Long: `Document runs the full verification flow on a single document:
- Extract structured claims (company, registration, VAT, bank details, amount)
- Validate claims concurrently against the three registries
- Compute the risk score and recommendations

Example:
  tradecheck document purchase-order.txt
  tradecheck document po-scan.pdf --hint PO --json report.json
  tradecheck document https://example.co.za/po-2024-001234.html`,
	Args: cobra.ExactArgs(1),
	RunE: runDocument,
}

func init() {
	rootCmd.AddCommand(documentCmd)

	documentCmd.Flags().StringVar(&docHint, "hint", "", "document type hint (PO, RFQ, Invoice, PoP, EFT)")
	documentCmd.Flags().StringVar(&docJSON, "json", "", "write the full report JSON to this path")
	documentCmd.Flags().DurationVar(&docTimeout, "timeout", 2*time.Minute, "overall verification timeout")
	documentCmd.Flags().StringVar(&seedFile, "registry-seed", "", "YAML registry fixtures (default: built-in seeds)")

	documentCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable the analyst summary")
	documentCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider")
	documentCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func runDocument(cmd *cobra.Command, args []string) error {
	target := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), docTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	eng, err := engine.FromConfig(cfg)
	if err != nil {
		return err
	}

	input := engine.DocumentInput{Hint: model.DocumentType(docHint)}
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		input.URI = target
	} else if data, err := os.ReadFile(target); err == nil {
		input.Bytes = data
	} else {
		// Not a readable file; let the engine treat it as a scan URI
		input.URI = target
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Verifying: %s\n\n", target)
	}

	result, err := eng.ValidateDocument(ctx, input)
	if err != nil {
		return fmt.Errorf("verify document: %w", err)
	}

	if docJSON != "" {
		if err := writeJSON(result, docJSON); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", docJSON)
		}
	}

	printResultSummary(result)
	return nil
}

// buildConfig resolves the engine configuration from defaults, the config
// file, and flags
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose

	if seedFile != "" {
		cfg.Registry.SeedFile = seedFile
	}

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel
		if cfg.LLM.Provider == "openai" {
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		}
	}

	return cfg, nil
}
