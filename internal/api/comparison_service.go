package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"shingle/internal/comparison"
	"shingle/internal/history"
	"shingle/internal/logging"
)

// HistoryStore abstracts the persistence the comparison service needs.
type HistoryStore interface {
	Save(ctx context.Context, rec *history.Record) error
	Get(ctx context.Context, id string) (*history.Record, error)
	List(ctx context.Context, limit int) ([]history.Summary, error)
	FindReusable(ctx context.Context, key history.Key) (*history.Record, error)
	Count(ctx context.Context) (int, error)
}

// ServiceOptions configures a ComparisonService.
type ServiceOptions struct {
	// Store may be nil, which disables history.
	Store HistoryStore
	// Settings is the digest of the settings that shape results; see
	// config.Config.ComparisonDigest.
	Settings string
	Reuse    bool
	Source   history.Source
	Logger   *slog.Logger
}

// ComparisonService runs comparisons and manages their history.
type ComparisonService struct {
	engine   *comparison.Engine
	store    HistoryStore
	settings string
	reuse    bool
	source   history.Source
	logger   *slog.Logger
}

// NewComparisonService wraps engine with history handling.
func NewComparisonService(engine *comparison.Engine, opts ServiceOptions) *ComparisonService {
	if engine == nil {
		engine = comparison.New(comparison.Options{Logger: opts.Logger})
	}
	source := opts.Source
	if source == "" {
		source = history.SourceCLI
	}
	return &ComparisonService{
		engine:   engine,
		store:    opts.Store,
		settings: opts.Settings,
		reuse:    opts.Reuse,
		source:   source,
		logger:   logging.NewComponentLogger(opts.Logger, "compare-service"),
	}
}

// Engine returns the wrapped comparison engine.
func (s *ComparisonService) Engine() *comparison.Engine { return s.engine }

// HistoryEnabled reports whether a history store is attached.
func (s *ComparisonService) HistoryEnabled() bool { return s.store != nil }

// Compare validates req, reuses a stored result when allowed, and otherwise
// runs the engine and records the outcome.
func (s *ComparisonService) Compare(ctx context.Context, req CompareRequest) (CompareResponse, error) {
	if err := comparison.RequireText(req.Text1, req.Text2); err != nil {
		return CompareResponse{}, err
	}

	id := uuid.NewString()
	ctx = logging.WithComparisonID(ctx, id)
	logger := logging.WithContext(ctx, s.logger)

	if s.store == nil {
		cmp, err := s.engine.CompareText(ctx, req.Text1, req.Text2)
		if err != nil {
			return CompareResponse{}, err
		}
		return CompareResponse{ElapsedMS: cmp.Elapsed.Milliseconds(), Result: cmp.Result}, nil
	}

	started := time.Now()
	first := s.engine.Normalize(req.Text1)
	second := s.engine.Normalize(req.Text2)
	key := history.Key{Digest1: first.Digest(), Digest2: second.Digest(), Settings: s.settings}

	if s.reuse {
		stored, err := s.store.FindReusable(ctx, key)
		if err != nil {
			logging.WarnWithContext(logger, "history lookup failed", "history_lookup_failed",
				logging.Error(err),
				logging.String(logging.FieldImpact, "comparison recomputed"),
			)
		} else if stored != nil {
			logger.Info("reused stored comparison", logging.String("stored_id", stored.ID))
			return CompareResponse{ID: stored.ID, Reused: true, ElapsedMS: stored.Elapsed.Milliseconds(), Result: stored.Result}, nil
		}
	}

	result, err := s.engine.CompareDocuments(ctx, first, second)
	if err != nil {
		return CompareResponse{}, err
	}
	elapsed := time.Since(started)
	resp := CompareResponse{ElapsedMS: elapsed.Milliseconds(), Result: result}

	logger.Info("comparison finished",
		logging.Int("total_words_1", result.TotalWords1),
		logging.Int("total_words_2", result.TotalWords2),
		logging.Int("percent_non_unique_1", result.PercentNonUnique1),
		logging.Int("percent_non_unique_2", result.PercentNonUnique2),
		logging.Duration("elapsed", elapsed),
	)

	if req.NoSave {
		return resp, nil
	}

	matcher := s.engine.Matcher()
	rec := history.NewRecord(s.source, key, matcher.WindowSize(), matcher.MinMatchSize(), result, elapsed)
	rec.ID = id
	rec.Label1 = req.Label1
	rec.Label2 = req.Label2
	if err := s.store.Save(ctx, &rec); err != nil {
		logging.WarnWithContext(logger, "failed to record comparison", "history_save_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "comparison missing from history"),
		)
		return resp, nil
	}
	resp.ID = rec.ID
	return resp, nil
}

// Clean returns the normalized sentence view of req.Text.
func (s *ComparisonService) Clean(req CleanRequest) CleanResponse {
	doc := s.engine.Normalize(req.Text)
	sentences := make([]string, doc.SentenceCount())
	for i := range sentences {
		sentences[i] = doc.Sentence(i).Text()
	}
	return CleanResponse{Sentences: sentences, Tokens: doc.Len()}
}

// List returns the newest history items.
func (s *ComparisonService) List(ctx context.Context, limit int) ([]HistoryItem, error) {
	if s.store == nil {
		return []HistoryItem{}, nil
	}
	summaries, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	return FromSummaries(summaries), nil
}

// Describe fetches one stored comparison with its full result.
func (s *ComparisonService) Describe(ctx context.Context, id string) (*HistoryItemResponse, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w: history disabled", history.ErrNotFound)
	}
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &HistoryItemResponse{Item: FromSummary(rec.Summary), Result: rec.Result}, nil
}

// Count returns the number of stored comparisons, or zero without history.
func (s *ComparisonService) Count(ctx context.Context) (int, error) {
	if s.store == nil {
		return 0, nil
	}
	return s.store.Count(ctx)
}
