package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a comparison id has no record.
var ErrNotFound = errors.New("comparison not found")

const summaryColumns = "id, created_at, source, label_1, label_2, digest_1, digest_2, settings_digest, window_size, min_match_size, total_words_1, total_words_2, non_unique_words_1, non_unique_words_2, percent_non_unique_1, percent_non_unique_2, vocabulary_similarity, elapsed_ms"

// Save inserts rec, assigning an id and creation time when they are unset.
func (s *Store) Save(ctx context.Context, rec *Record) error {
	if rec == nil {
		return errors.New("record is nil")
	}
	if strings.TrimSpace(rec.Digest1) == "" || strings.TrimSpace(rec.Digest2) == "" {
		return errors.New("record digests are required")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if rec.Source == "" {
		rec.Source = SourceCLI
	}

	resultJSON, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	_, err = s.execWithRetry(ctx,
		`INSERT INTO comparisons (
            id, created_at, source, label_1, label_2, digest_1, digest_2, settings_digest,
            window_size, min_match_size, total_words_1, total_words_2,
            non_unique_words_1, non_unique_words_2, percent_non_unique_1, percent_non_unique_2,
            vocabulary_similarity, elapsed_ms, result_json
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.CreatedAt.UTC().Format(timestampLayout),
		string(rec.Source),
		nullableString(rec.Label1),
		nullableString(rec.Label2),
		rec.Digest1,
		rec.Digest2,
		rec.SettingsDigest,
		rec.WindowSize,
		rec.MinMatchSize,
		rec.TotalWords1,
		rec.TotalWords2,
		rec.NonUniqueWords1,
		rec.NonUniqueWords2,
		rec.PercentNonUnique1,
		rec.PercentNonUnique2,
		rec.Similarity,
		rec.Elapsed.Milliseconds(),
		string(resultJSON),
	)
	if err != nil {
		return fmt.Errorf("insert comparison: %w", err)
	}
	return nil
}

// Get fetches a comparison by id.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ensureContext(ctx),
		`SELECT `+summaryColumns+`, result_json FROM comparisons WHERE id = ?`, strings.TrimSpace(id))
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get comparison: %w", err)
	}
	return rec, nil
}

// FindReusable returns the newest record stored under key, or nil when none exists.
func (s *Store) FindReusable(ctx context.Context, key Key) (*Record, error) {
	row := s.db.QueryRowContext(ensureContext(ctx),
		`SELECT `+summaryColumns+`, result_json FROM comparisons
         WHERE digest_1 = ? AND digest_2 = ? AND settings_digest = ?
         ORDER BY created_at DESC LIMIT 1`,
		key.Digest1, key.Digest2, key.Settings)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find reusable comparison: %w", err)
	}
	return rec, nil
}

// List returns the newest summaries first. A limit of zero or less returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Summary, error) {
	query := `SELECT ` + summaryColumns + ` FROM comparisons ORDER BY created_at DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ensureContext(ctx), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list comparisons: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// Count returns the number of stored comparisons.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ensureContext(ctx), `SELECT COUNT(1) FROM comparisons`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count comparisons: %w", err)
	}
	return count, nil
}

// Prune deletes comparisons created before cutoff and reports how many were removed.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.execWithRetry(ctx,
		`DELETE FROM comparisons WHERE created_at < ?`,
		cutoff.UTC().Format(timestampLayout))
	if err != nil {
		return 0, fmt.Errorf("prune comparisons: %w", err)
	}
	return res.RowsAffected()
}

// PruneRetention applies a retention window in days. Zero keeps everything.
func (s *Store) PruneRetention(ctx context.Context, days int, now time.Time) (int64, error) {
	if days <= 0 {
		return 0, nil
	}
	return s.Prune(ctx, now.Add(-time.Duration(days)*24*time.Hour))
}
