package api

import "shingle/internal/history"

// FromSummary converts a stored summary into its transport form.
func FromSummary(s history.Summary) HistoryItem {
	item := HistoryItem{
		ID:                   s.ID,
		Source:               string(s.Source),
		Label1:               s.Label1,
		Label2:               s.Label2,
		WindowSize:           s.WindowSize,
		MinMatchSize:         s.MinMatchSize,
		TotalWords1:          s.TotalWords1,
		TotalWords2:          s.TotalWords2,
		PercentNonUnique1:    s.PercentNonUnique1,
		PercentNonUnique2:    s.PercentNonUnique2,
		VocabularySimilarity: s.Similarity,
		ElapsedMS:            s.Elapsed.Milliseconds(),
	}
	if !s.CreatedAt.IsZero() {
		item.CreatedAt = s.CreatedAt.UTC().Format(dateTimeFormat)
	}
	return item
}

// FromSummaries converts a slice of summaries, never returning nil.
func FromSummaries(summaries []history.Summary) []HistoryItem {
	items := make([]HistoryItem, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, FromSummary(s))
	}
	return items
}
