package history

import (
	"time"

	"shingle/internal/report"
)

// Source identifies the surface that produced a record.
type Source string

const (
	SourceCLI Source = "cli"
	SourceAPI Source = "api"
)

// Key identifies a reusable comparison.
type Key struct {
	Digest1  string
	Digest2  string
	Settings string
}

// Summary is the listing view of a stored comparison.
type Summary struct {
	ID                string        `json:"id"`
	CreatedAt         time.Time     `json:"createdAt"`
	Source            Source        `json:"source"`
	Label1            string        `json:"label1,omitempty"`
	Label2            string        `json:"label2,omitempty"`
	Digest1           string        `json:"digest1"`
	Digest2           string        `json:"digest2"`
	SettingsDigest    string        `json:"settingsDigest"`
	WindowSize        int           `json:"windowSize"`
	MinMatchSize      int           `json:"minMatchSize"`
	TotalWords1       int           `json:"totalWords1"`
	TotalWords2       int           `json:"totalWords2"`
	NonUniqueWords1   int           `json:"nonUniqueWords1"`
	NonUniqueWords2   int           `json:"nonUniqueWords2"`
	PercentNonUnique1 int           `json:"percentNonUnique1"`
	PercentNonUnique2 int           `json:"percentNonUnique2"`
	Similarity        float64       `json:"vocabularySimilarity"`
	Elapsed           time.Duration `json:"elapsedNs"`
}

// Record is a stored comparison including its full result.
type Record struct {
	Summary
	Result report.Result `json:"result"`
}

// Key returns the reuse key of the record.
func (r Record) Key() Key {
	return Key{Digest1: r.Digest1, Digest2: r.Digest2, Settings: r.SettingsDigest}
}

// NewRecord fills the summary statistics from result.
func NewRecord(source Source, key Key, windowSize, minMatchSize int, result report.Result, elapsed time.Duration) Record {
	return Record{
		Summary: Summary{
			Source:            source,
			Digest1:           key.Digest1,
			Digest2:           key.Digest2,
			SettingsDigest:    key.Settings,
			WindowSize:        windowSize,
			MinMatchSize:      minMatchSize,
			TotalWords1:       result.TotalWords1,
			TotalWords2:       result.TotalWords2,
			NonUniqueWords1:   result.NonUniqueWords1,
			NonUniqueWords2:   result.NonUniqueWords2,
			PercentNonUnique1: result.PercentNonUnique1,
			PercentNonUnique2: result.PercentNonUnique2,
			Similarity:        result.VocabularySimilarity,
			Elapsed:           elapsed,
		},
		Result: result,
	}
}
