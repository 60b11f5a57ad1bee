package api

import "shingle/internal/report"

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// CompareRequest carries two raw texts to compare.
type CompareRequest struct {
	Text1  string `json:"text1"`
	Text2  string `json:"text2"`
	Label1 string `json:"label1,omitempty"`
	Label2 string `json:"label2,omitempty"`
	// NoSave skips recording the comparison in history.
	NoSave bool `json:"noSave,omitempty"`
}

// CompareResponse wraps a comparison result.
type CompareResponse struct {
	ID        string        `json:"id,omitempty"`
	Reused    bool          `json:"reused"`
	ElapsedMS int64         `json:"elapsedMs"`
	Result    report.Result `json:"result"`
}

// CleanRequest carries one raw text to normalize.
type CleanRequest struct {
	Text string `json:"text"`
}

// CleanResponse lists the normalized sentences of a text.
type CleanResponse struct {
	Sentences []string `json:"sentences"`
	Tokens    int      `json:"tokens"`
}

// HistoryItem describes a stored comparison in a transport-friendly format.
type HistoryItem struct {
	ID                   string  `json:"id"`
	CreatedAt            string  `json:"createdAt"`
	Source               string  `json:"source"`
	Label1               string  `json:"label1,omitempty"`
	Label2               string  `json:"label2,omitempty"`
	WindowSize           int     `json:"windowSize"`
	MinMatchSize         int     `json:"minMatchSize"`
	TotalWords1          int     `json:"totalWords1"`
	TotalWords2          int     `json:"totalWords2"`
	PercentNonUnique1    int     `json:"percentNonUnique1"`
	PercentNonUnique2    int     `json:"percentNonUnique2"`
	VocabularySimilarity float64 `json:"vocabularySimilarity"`
	ElapsedMS            int64   `json:"elapsedMs"`
}

// HistoryListResponse wraps a collection of history items.
type HistoryListResponse struct {
	Items []HistoryItem `json:"items"`
}

// HistoryItemResponse wraps a single stored comparison with its result.
type HistoryItemResponse struct {
	Item   HistoryItem   `json:"item"`
	Result report.Result `json:"result"`
}

// Status aggregates server runtime information.
type Status struct {
	Running        bool     `json:"running"`
	PID            int      `json:"pid"`
	WindowSize     int      `json:"windowSize"`
	MinMatchSize   int      `json:"minMatchSize"`
	MaxTokens      int      `json:"maxTokens"`
	Palette        []string `json:"palette"`
	HistoryEnabled bool     `json:"historyEnabled"`
	HistoryDBPath  string   `json:"historyDbPath,omitempty"`
	Comparisons    int      `json:"comparisons"`
	LockFilePath   string   `json:"lockFilePath,omitempty"`
}
