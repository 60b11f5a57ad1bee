package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// timestampLayout is fixed width so created_at sorts lexicographically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

type rowScanner interface{ Scan(dest ...any) error }

func summaryDest(s *Summary, createdRaw *string, source *string, label1, label2 *sql.NullString, elapsedMS *int64) []any {
	return []any{
		&s.ID,
		createdRaw,
		source,
		label1,
		label2,
		&s.Digest1,
		&s.Digest2,
		&s.SettingsDigest,
		&s.WindowSize,
		&s.MinMatchSize,
		&s.TotalWords1,
		&s.TotalWords2,
		&s.NonUniqueWords1,
		&s.NonUniqueWords2,
		&s.PercentNonUnique1,
		&s.PercentNonUnique2,
		&s.Similarity,
		elapsedMS,
	}
}

func scanSummary(scanner rowScanner) (Summary, error) {
	summary, _, err := scanRow(scanner, false)
	return summary, err
}

func scanRecord(scanner rowScanner) (*Record, error) {
	summary, resultJSON, err := scanRow(scanner, true)
	if err != nil {
		return nil, err
	}
	rec := &Record{Summary: summary}
	if err := json.Unmarshal([]byte(resultJSON), &rec.Result); err != nil {
		return nil, fmt.Errorf("decode result for %s: %w", summary.ID, err)
	}
	return rec, nil
}

func scanRow(scanner rowScanner, withResult bool) (Summary, string, error) {
	var (
		summary    Summary
		createdRaw string
		source     string
		label1     sql.NullString
		label2     sql.NullString
		elapsedMS  int64
		resultJSON string
	)
	dest := summaryDest(&summary, &createdRaw, &source, &label1, &label2, &elapsedMS)
	if withResult {
		dest = append(dest, &resultJSON)
	}
	if err := scanner.Scan(dest...); err != nil {
		return Summary{}, "", err
	}
	summary.Source = Source(source)
	summary.Label1 = label1.String
	summary.Label2 = label2.String
	summary.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	if created, err := time.Parse(timestampLayout, createdRaw); err == nil {
		summary.CreatedAt = created
	}
	return summary, resultJSON, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
