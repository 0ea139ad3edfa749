package core

import "unicode/utf8"

const (
	// HistoryWindow is the maximum number of turns retained per session.
	// Older turns are evicted oldest-first once the window is full.
	HistoryWindow = 10

	// MaxEntities caps the entity list stored on a turn record.
	MaxEntities = 8

	// MaxQueryLength caps the generated query string stored on a turn record.
	MaxQueryLength = 500

	// DefaultSessionID is used when a caller omits the session identifier.
	DefaultSessionID = "default"

	// FallbackQuestionType labels a turn whose classification failed.
	FallbackQuestionType = "unknown"

	// FallbackAnswer is returned when no answer could be synthesized.
	FallbackAnswer = "I could not generate an answer for this question."
)

// Row is a single result row returned by graph query execution. Keys are
// column/alias names as produced by the graph engine.
type Row map[string]any

// TurnRecord captures one completed question/answer interaction. Records are
// immutable once created: build them via NewTurnRecord, which enforces the
// entity and query caps, and never mutate the Entities slice afterwards.
type TurnRecord struct {
	Question     string   `json:"question"`
	QuestionType string   `json:"question_type"`
	Entities     []string `json:"entities"`
	Query        string   `json:"query,omitempty"`
	ResultsCount int      `json:"results_count"`
	Error        string   `json:"error,omitempty"`
}

// NewTurnRecord builds a TurnRecord applying the storage caps: entities are
// truncated to the first MaxEntities in original order, the query is truncated
// to MaxQueryLength characters and a negative results count is clamped to zero.
// The entities slice is copied so the record does not alias caller memory.
func NewTurnRecord(question, questionType string, entities []string, query string, resultsCount int, errMsg string) TurnRecord {
	if questionType == "" {
		questionType = FallbackQuestionType
	}
	if len(entities) > MaxEntities {
		entities = entities[:MaxEntities]
	}
	stored := make([]string, len(entities))
	copy(stored, entities)
	// The cap counts characters, not bytes, so multi-byte runes at the
	// boundary are never split into invalid UTF-8.
	if utf8.RuneCountInString(query) > MaxQueryLength {
		query = string([]rune(query)[:MaxQueryLength])
	}
	if resultsCount < 0 {
		resultsCount = 0
	}
	return TurnRecord{
		Question:     question,
		QuestionType: questionType,
		Entities:     stored,
		Query:        query,
		ResultsCount: resultsCount,
		Error:        errMsg,
	}
}
