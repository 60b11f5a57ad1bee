package comparison

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"shingle/internal/config"
	"shingle/internal/document"
	"shingle/internal/fragment"
	"shingle/internal/logging"
	"shingle/internal/normalize"
	"shingle/internal/report"
	"shingle/internal/shingle"
	"shingle/internal/stemmer"
	"shingle/internal/textutil"
)

// Options configures an Engine. Zero values select defaults.
type Options struct {
	Matcher     shingle.Matcher
	Palette     fragment.Palette
	Highlighter report.Highlighter
	Normalizer  *normalize.Normalizer
	// MaxTokens bounds each normalized document; 0 disables the check.
	MaxTokens int
	// Workers above 1 splits matching across goroutines.
	Workers int
	Logger  *slog.Logger
}

// Engine compares pairs of documents. It is safe for concurrent use.
type Engine struct {
	matcher     shingle.Matcher
	palette     fragment.Palette
	highlighter report.Highlighter
	normalizer  *normalize.Normalizer
	maxTokens   int
	workers     int
	logger      *slog.Logger
}

// Comparison is the outcome of comparing two raw texts.
type Comparison struct {
	Result  report.Result
	First   document.Document
	Second  document.Document
	Elapsed time.Duration
}

// New builds an engine from opts.
func New(opts Options) *Engine {
	matcher := opts.Matcher
	if matcher.WindowSize() == 0 {
		matcher = shingle.Default()
	}
	palette := opts.Palette
	if palette.Len() == 0 {
		palette = fragment.DefaultPalette()
	}
	h := opts.Highlighter
	if h == nil {
		h = report.HTML{}
	}
	n := opts.Normalizer
	if n == nil {
		n = normalize.New()
	}
	maxTokens := opts.MaxTokens
	if maxTokens < 0 {
		maxTokens = 0
	}
	return &Engine{
		matcher:     matcher,
		palette:     palette,
		highlighter: h,
		normalizer:  n,
		maxTokens:   maxTokens,
		workers:     opts.Workers,
		logger:      logging.NewComponentLogger(opts.Logger, "comparison"),
	}
}

// NewFromConfig builds an engine from application configuration.
func NewFromConfig(cfg *config.Config, logger *slog.Logger) (*Engine, error) {
	if cfg == nil {
		return New(Options{Logger: logger}), nil
	}
	matcher, err := shingle.New(cfg.Matching.WindowSize, cfg.Matching.MinMatchSize)
	if err != nil {
		return nil, fmt.Errorf("matching: %w", err)
	}
	stem, err := stemmer.New(stemmer.Kind(cfg.Normalize.Stemmer))
	if err != nil {
		return nil, fmt.Errorf("normalize.stemmer: %w", err)
	}
	palette, err := fragment.NewPalette(cfg.Render.Palette)
	if err != nil {
		return nil, fmt.Errorf("render.palette: %w", err)
	}
	h, err := report.NewHighlighter(report.Kind(cfg.Render.Highlighter), palette)
	if err != nil {
		return nil, fmt.Errorf("render.highlighter: %w", err)
	}
	return New(Options{
		Matcher:     matcher,
		Palette:     palette,
		Highlighter: h,
		Normalizer: normalize.New(
			normalize.WithStemmer(stem),
			normalize.WithFunctionWords(cfg.Normalize.ExtraFunctionWords...),
		),
		MaxTokens: cfg.Matching.MaxTokens,
		Workers:   cfg.Matching.Workers,
		Logger:    logger,
	}), nil
}

// WithHighlighter returns a copy of the engine that renders with h.
func (e *Engine) WithHighlighter(h report.Highlighter) *Engine {
	clone := *e
	if h != nil {
		clone.highlighter = h
	}
	return &clone
}

// Matcher returns the matcher parameters in use.
func (e *Engine) Matcher() shingle.Matcher { return e.matcher }

// Palette returns the fragment palette in use.
func (e *Engine) Palette() fragment.Palette { return e.palette }

// Normalize runs the normalizer over text.
func (e *Engine) Normalize(text string) document.Document {
	return e.normalizer.Document(text)
}

// Clean returns the normalized sentences of text as display lines.
func (e *Engine) Clean(text string) []string {
	sentences := e.normalizer.Sentences(text)
	lines := make([]string, len(sentences))
	for i, s := range sentences {
		lines[i] = s.Text()
	}
	return lines
}

// Compare runs the matcher sequentially over both documents and aggregates
// the result. It never fails.
func (e *Engine) Compare(first, second document.Document) report.Result {
	src, tgt := e.matcher.FindOverlap(first.Words(), second.Words())
	return e.aggregate(first, second, src, tgt)
}

// CompareDocuments enforces the token bound and compares both documents,
// using the worker pool when more than one worker is configured.
func (e *Engine) CompareDocuments(ctx context.Context, first, second document.Document) (report.Result, error) {
	if e.maxTokens > 0 {
		if first.Len() > e.maxTokens {
			return report.Result{}, tooLarge("first", first.Len(), e.maxTokens)
		}
		if second.Len() > e.maxTokens {
			return report.Result{}, tooLarge("second", second.Len(), e.maxTokens)
		}
	}
	if e.workers <= 1 {
		if err := ctx.Err(); err != nil {
			return report.Result{}, err
		}
		return e.Compare(first, second), nil
	}
	src, tgt, err := e.matcher.FindOverlapParallel(ctx, first.Words(), second.Words(), e.workers)
	if err != nil {
		return report.Result{}, err
	}
	return e.aggregate(first, second, src, tgt), nil
}

// CompareText normalizes both texts and compares the resulting documents.
func (e *Engine) CompareText(ctx context.Context, text1, text2 string) (Comparison, error) {
	started := time.Now()
	logger := logging.WithContext(ctx, e.logger)

	first := e.normalizer.Document(text1)
	second := e.normalizer.Document(text2)

	result, err := e.CompareDocuments(ctx, first, second)
	if err != nil {
		logger.Debug("comparison rejected", logging.Error(err))
		return Comparison{}, err
	}

	elapsed := time.Since(started)
	logger.Debug("comparison finished",
		logging.Int("total_words_1", result.TotalWords1),
		logging.Int("total_words_2", result.TotalWords2),
		logging.Int("percent_non_unique_1", result.PercentNonUnique1),
		logging.Int("percent_non_unique_2", result.PercentNonUnique2),
		logging.Duration("elapsed", elapsed),
	)
	return Comparison{Result: result, First: first, Second: second, Elapsed: elapsed}, nil
}

func (e *Engine) aggregate(first, second document.Document, src, tgt *shingle.IndexSet) report.Result {
	return report.Combine(
		report.Aggregate(first, src, e.palette, e.highlighter),
		report.Aggregate(second, tgt, e.palette, e.highlighter),
		vocabularySimilarity(first, second),
	)
}

func vocabularySimilarity(first, second document.Document) float64 {
	sim := textutil.CosineSimilarity(
		textutil.NewFingerprintText(first.Text()),
		textutil.NewFingerprintText(second.Text()),
	)
	return math.Round(sim*1e4) / 1e4
}
