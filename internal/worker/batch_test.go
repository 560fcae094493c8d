package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skhumalo/tradecheck/internal/engine"
	"github.com/skhumalo/tradecheck/internal/model"
)

// fakeVerifier records what it was asked to verify
type fakeVerifier struct {
	failOn string
}

func (f *fakeVerifier) ValidateDocument(ctx context.Context, input engine.DocumentInput) (*model.VerificationResult, error) {
	text := input.Text
	if text == "" {
		text = string(input.Bytes)
	}
	if text == "" {
		text = input.URI
	}

	if f.failOn != "" && strings.Contains(text, f.failOn) {
		return nil, errors.New("verification failed")
	}
	return &model.VerificationResult{ID: text, IsValid: true}, nil
}

func TestProcessInputs(t *testing.T) {
	b := NewBatchProcessor(&fakeVerifier{}, 4)

	results := b.ProcessInputs(context.Background(), []string{"doc-a", "doc-b", "doc-c"})
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	for _, r := range results {
		if r.Err != nil {
			t.Errorf("Input %s: unexpected error %v", r.Input, r.Err)
		}
		if r.Result == nil || !r.Result.IsValid {
			t.Errorf("Input %s: expected a valid result", r.Input)
		}
	}
}

func TestProcessInputs_Empty(t *testing.T) {
	b := NewBatchProcessor(&fakeVerifier{}, 4)

	if results := b.ProcessInputs(context.Background(), nil); len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestProcessInputs_FailuresAreIsolated(t *testing.T) {
	b := NewBatchProcessor(&fakeVerifier{failOn: "bad"}, 2)

	results := b.ProcessInputs(context.Background(), []string{"good-1", "bad-doc", "good-2"})
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			if r.Input != "bad-doc" {
				t.Errorf("Expected only bad-doc to fail, got %s", r.Input)
			}
		}
	}
	if failed != 1 {
		t.Errorf("Expected 1 failure, got %d", failed)
	}
}

func TestVerifyJob_ReadsLocalFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "po.txt")
	if err := os.WriteFile(path, []byte("PURCHASE ORDER contents"), 0644); err != nil {
		t.Fatal(err)
	}

	job := &VerifyJob{Input: path, Verifier: &fakeVerifier{}}
	result := job.Execute(context.Background()).(*VerifyResult)

	if result.Err != nil {
		t.Fatalf("Execute failed: %v", result.Err)
	}
	// The fake echoes the text it saw; a local file must be read, not fetched
	if result.Result.ID != "PURCHASE ORDER contents" {
		t.Errorf("Expected file contents to reach the verifier, got %q", result.Result.ID)
	}
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batch.txt")
	content := `# suppliers to check
doc-a

doc-b
# trailing comment
doc-c
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	b := NewBatchProcessor(&fakeVerifier{}, 2)
	results, err := b.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}

	if len(results) != 3 {
		t.Errorf("Expected comments and blank lines skipped, got %d results", len(results))
	}
}

func TestProcessFile_Missing(t *testing.T) {
	b := NewBatchProcessor(&fakeVerifier{}, 2)

	if _, err := b.ProcessFile(context.Background(), "no-such-file.txt"); err == nil {
		t.Error("Expected an error for a missing batch file")
	}
}
