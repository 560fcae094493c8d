// Package engine orchestrates a verification request: extraction, the
// concurrent registry fan-out, scoring, and recommendations. Each request is
// a single terminal pass; every entry point returns a complete result object
// with degradation reflected in status fields, never a partial failure.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/skhumalo/tradecheck/internal/company"
	"github.com/skhumalo/tradecheck/internal/extract"
	"github.com/skhumalo/tradecheck/internal/llm"
	"github.com/skhumalo/tradecheck/internal/model"
	"github.com/skhumalo/tradecheck/internal/payment"
	"github.com/skhumalo/tradecheck/internal/recommend"
	"github.com/skhumalo/tradecheck/internal/registry"
	"github.com/skhumalo/tradecheck/internal/score"
	"github.com/skhumalo/tradecheck/internal/validate"
)

// Fraud indicator messages, appended in fixed order: company, domain, bank
const (
	indicatorCompanyNotFound  = "Company not found in registry"
	indicatorDomainSuspicious = "Domain registration suspicious"
	indicatorBankInvalid      = "Invalid bank account details"
)

// ErrNoInput is returned when a document request carries no text, bytes, or
// URI. This is the only hard failure the document flow can produce.
var ErrNoInput = errors.New("engine: document request has no input")

// Options wires the engine's collaborators. Registries, Ledger, and
// Directory are interfaces so tests and future real backends drop in
// without touching the orchestration.
type Options struct {
	Registries    registry.Registries
	Ledger        payment.Ledger
	Directory     company.Directory
	Summarizer    *llm.Summarizer // optional analyst summary, may be nil
	Fetcher       *Fetcher        // optional remote document fetcher, may be nil
	LookupTimeout time.Duration   // per-registry-lookup deadline
	Verbose       bool
}

// Engine is the verification orchestrator
type Engine struct {
	extractor   *extract.FieldExtractor
	companyVal  *validate.CompanyValidator
	domainVal   *validate.DomainValidator
	bankVal     *validate.BankValidator
	matcher     *payment.Matcher
	companies   *company.Verifier
	scorer      *score.Scorer
	recommender *recommend.Generator
	summarizer  *llm.Summarizer
	fetcher     *Fetcher
	lookupTO    time.Duration
	verbose     bool
}

// New creates an engine from explicit collaborators
func New(opts Options) *Engine {
	lookupTO := opts.LookupTimeout
	if lookupTO <= 0 {
		lookupTO = 10 * time.Second
	}

	return &Engine{
		extractor:   extract.NewFieldExtractor(),
		companyVal:  validate.NewCompanyValidator(opts.Registries.Company),
		domainVal:   validate.NewDomainValidator(opts.Registries.Domain),
		bankVal:     validate.NewBankValidator(opts.Registries.Bank),
		matcher:     payment.NewMatcher(opts.Ledger),
		companies:   company.NewVerifier(opts.Directory),
		scorer:      score.NewScorer(),
		recommender: recommend.NewGenerator(),
		summarizer:  opts.Summarizer,
		fetcher:     opts.Fetcher,
		lookupTO:    lookupTO,
		verbose:     opts.Verbose,
	}
}

// FromConfig builds a fully wired engine: seeded in-memory registries behind
// the cache and rate-limit decorators, the mock ledger and directory, the
// remote document fetcher, and the analyst summarizer when configured.
func FromConfig(cfg *model.Config) (*Engine, error) {
	var regs registry.Registries
	if cfg.Registry.SeedFile != "" {
		seed, err := registry.LoadSeedFile(cfg.Registry.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("load registry seed: %w", err)
		}
		mem := registry.NewMemoryRegistriesFromSeed(seed)
		regs = registry.Registries{Company: mem, Domain: mem, Bank: mem}
	} else {
		mem := registry.NewMemoryRegistries()
		regs = registry.Registries{Company: mem, Domain: mem, Bank: mem}
	}

	if cfg.Registry.RatePerSecond > 0 {
		regs = registry.WithRateLimit(regs, cfg.Registry.RatePerSecond, cfg.Registry.RateBurst)
	}
	if cfg.Registry.CacheTTL > 0 {
		regs = registry.WithCache(regs, cfg.Registry.CacheTTL, cfg.Registry.CacheCleanup)
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return New(Options{
		Registries:    regs,
		Ledger:        payment.NewMockLedger(time.Now().UnixNano()),
		Directory:     company.NewMockDirectory(time.Now().UnixNano()),
		Summarizer:    summarizer,
		Fetcher:       NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes),
		LookupTimeout: cfg.Registry.LookupTimeout,
		Verbose:       cfg.Output.Verbose,
	}), nil
}

// DocumentInput is a document verification request. Exactly one of Text,
// Bytes, or URI should be set; they are consulted in that order.
type DocumentInput struct {
	Text  string
	Bytes []byte
	URI   string
	Hint  model.DocumentType
}

// ValidateDocument runs the full document flow: extraction, the concurrent
// registry fan-out, scoring, and recommendations. Individual validator
// failures degrade to error verdicts; the request itself only fails when no
// input was supplied or a remote document could not be retrieved.
func (e *Engine) ValidateDocument(ctx context.Context, input DocumentInput) (*model.VerificationResult, error) {
	text, quality, err := e.resolveText(ctx, input)
	if err != nil {
		return nil, err
	}

	e.progress("Extracting fields...")
	claims := e.extractor.Extract(text, input.Hint)
	if quality == 0 {
		quality = extract.Quality(claims)
	}

	e.progress("Validating against registries...")
	checks := e.runValidators(ctx, claims)
	checks.OCRQuality = quality
	checks.FraudIndicators = synthesizeIndicators(checks)

	e.progress("Scoring...")
	riskScore := e.scorer.Score(checks)

	e.progress("Generating recommendations...")
	result := &model.VerificationResult{
		ID:              uuid.NewString(),
		IsValid:         riskScore < 30 && checks.CompanyRegistration.Status == model.StatusVerified,
		Confidence:      quality,
		Claims:          claims,
		Checks:          checks,
		RiskScore:       riskScore,
		Recommendations: e.recommender.Recommend(checks, riskScore),
		VerifiedAt:      time.Now().UTC(),
	}

	// Analyst summary runs strictly after scoring and never changes the
	// verdicts or the score.
	if e.summarizer != nil && e.summarizer.IsEnabled() {
		summary, err := e.summarizer.Summarize(ctx, result)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: analyst summary failed: %v\n", err)
		} else {
			result.Analyst = summary
		}
	}

	return result, nil
}

// VerifyPayment verifies a free-text payment reference
func (e *Engine) VerifyPayment(ctx context.Context, text string) model.PaymentVerdict {
	return e.matcher.VerifyText(ctx, text)
}

// VerifyPaymentReference verifies an already-parsed payment reference
func (e *Engine) VerifyPaymentReference(ctx context.Context, ref payment.ParsedReference) model.PaymentVerdict {
	return e.matcher.Verify(ctx, ref)
}

// VerifyCompany verifies a company name (or text containing one) and an
// optional domain
func (e *Engine) VerifyCompany(ctx context.Context, nameOrText, domain string) model.CompanyVerdict {
	return e.companies.Verify(ctx, nameOrText, domain)
}

// resolveText turns the request input into plain text. A returned quality of
// 0 means no OCR confidence applies and extraction quality should be
// estimated from the claims instead.
func (e *Engine) resolveText(ctx context.Context, input DocumentInput) (string, float64, error) {
	switch {
	case input.Text != "":
		return normalize(input.Text), 0, nil

	case len(input.Bytes) > 0:
		return normalize(string(input.Bytes)), 0, nil

	case input.URI != "":
		if isRemote(input.URI) {
			if e.fetcher == nil {
				return "", 0, fmt.Errorf("engine: no fetcher configured for remote document %q", input.URI)
			}
			e.progress("Fetching document...")
			text, err := e.fetcher.Fetch(ctx, input.URI)
			if err != nil {
				return "", 0, fmt.Errorf("fetch document: %w", err)
			}
			return text, 0, nil
		}
		text, confidence := scanDocument(input.URI)
		return text, confidence, nil

	default:
		return "", 0, ErrNoInput
	}
}

// normalize strips HTML input down to its visible text
func normalize(text string) string {
	if !extract.LooksLikeHTML(text) {
		return text
	}
	visible, err := extract.VisibleText(text)
	if err != nil {
		return text
	}
	return visible
}

// runValidators fans out the three registry validators concurrently and
// joins on all of them. Each lookup gets its own deadline so one slow
// registry cannot hold the others hostage; a timed-out validator reports
// status=error and the request continues.
func (e *Engine) runValidators(ctx context.Context, claims model.ClaimSet) model.ValidationChecks {
	var checks model.ValidationChecks
	var wg sync.WaitGroup

	run := func(dst *model.ValidatorVerdict, validate func(context.Context, model.ClaimSet) model.ValidatorVerdict) {
		defer wg.Done()
		lookupCtx, cancel := context.WithTimeout(ctx, e.lookupTO)
		defer cancel()
		*dst = validate(lookupCtx, claims)
	}

	wg.Add(3)
	go run(&checks.CompanyRegistration, e.companyVal.Validate)
	go run(&checks.DomainValidation, e.domainVal.Validate)
	go run(&checks.BankValidation, e.bankVal.Validate)
	wg.Wait()

	return checks
}

// synthesizeIndicators derives the fraud indicator list from the collected
// verdicts. Order is fixed: company, domain, bank.
func synthesizeIndicators(checks model.ValidationChecks) []string {
	var indicators []string
	if checks.CompanyRegistration.Status != model.StatusVerified {
		indicators = append(indicators, indicatorCompanyNotFound)
	}
	if checks.DomainValidation.Status == model.StatusSuspicious {
		indicators = append(indicators, indicatorDomainSuspicious)
	}
	if checks.BankValidation.Status == model.StatusInvalid {
		indicators = append(indicators, indicatorBankInvalid)
	}
	return indicators
}

func isRemote(uri string) bool {
	return len(uri) > 8 && (uri[:7] == "http://" || uri[:8] == "https://")
}

func (e *Engine) progress(msg string) {
	if e.verbose {
		fmt.Fprintf(os.Stderr, "⚙️  %s\n", msg)
	}
}
