package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/skhumalo/tradecheck/internal/engine"
	"github.com/skhumalo/tradecheck/internal/model"
)

// Verifier is the slice of the engine batch processing needs
type Verifier interface {
	ValidateDocument(ctx context.Context, input engine.DocumentInput) (*model.VerificationResult, error)
}

// VerifyJob verifies one document input
type VerifyJob struct {
	Input    string // file path or URI, one line of the batch file
	Verifier Verifier
}

// Execute runs the verification for this job
func (j *VerifyJob) Execute(ctx context.Context) Result {
	input := engine.DocumentInput{URI: j.Input}

	// Local files are read up front so the engine sees their text directly
	if data, err := os.ReadFile(j.Input); err == nil {
		input = engine.DocumentInput{Bytes: data}
	}

	result, err := j.Verifier.ValidateDocument(ctx, input)
	return &VerifyResult{
		Input:  j.Input,
		Result: result,
		Err:    err,
	}
}

// VerifyResult is the outcome of a batch verification job
type VerifyResult struct {
	Input  string
	Result *model.VerificationResult
	Err    error
}

// GetError returns the job error, if any
func (r *VerifyResult) GetError() error {
	return r.Err
}

// BatchProcessor verifies many documents concurrently
type BatchProcessor struct {
	verifier    Verifier
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(verifier Verifier, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		verifier:    verifier,
		concurrency: concurrency,
	}
}

// ProcessInputs verifies the given inputs concurrently
func (b *BatchProcessor) ProcessInputs(ctx context.Context, inputs []string) []*VerifyResult {
	if len(inputs) == 0 {
		return []*VerifyResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	// Submit from a separate goroutine and drain results here, so a batch
	// larger than the pool's channel buffers cannot wedge the submission loop
	go func() {
		for _, input := range inputs {
			pool.Submit(&VerifyJob{
				Input:    input,
				Verifier: b.verifier,
			})
		}
		pool.Close()
	}()

	verifyResults := make([]*VerifyResult, 0, len(inputs))
	for result := range pool.Results() {
		verifyResults = append(verifyResults, result.(*VerifyResult))
	}
	return verifyResults
}

// ProcessFile reads inputs from a file (one per line, # comments allowed)
// and verifies them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, path string) ([]*VerifyResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var inputs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}

	return b.ProcessInputs(ctx, inputs), nil
}
