package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/skhumalo/tradecheck/internal/engine"
	"github.com/skhumalo/tradecheck/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Verify multiple documents from a file in parallel",
	Long: `Batch verifies many documents concurrently:
- Read document paths or URIs from the input file (one per line)
- Verify them in parallel with a configurable worker count
- Write one JSON report per document

Example:
  tradecheck batch documents.txt
  tradecheck batch documents.txt --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./tradecheck-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&seedFile, "registry-seed", "", "YAML registry fixtures (default: built-in seeds)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	eng, err := engine.FromConfig(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Input file: %s\n", file)
	fmt.Fprintf(os.Stderr, "Workers:    %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "Output dir: %s\n\n", outputDir)

	processor := worker.NewBatchProcessor(eng, cfg.Concurrency.Workers)
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return err
	}

	verified, flagged, failed := 0, 0, 0
	for i, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Input, res.Err)
			continue
		}

		if res.Result.IsValid {
			verified++
		} else {
			flagged++
		}

		path := filepath.Join(outputDir, fmt.Sprintf("report-%03d.json", i+1))
		if err := writeJSON(res.Result, path); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ %s → %s (risk %d)\n", res.Input, path, res.Result.RiskScore)
		}
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d verified, %d flagged, %d failed\n", verified, flagged, failed)
	return nil
}
