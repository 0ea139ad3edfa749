package core

// MaxRawResults caps the raw result rows echoed back to the caller; the full
// row set never leaves the pipeline.
const MaxRawResults = 3

// AnswerResponse is the caller-facing result of one answer run. Failures
// surface as data in the Error field; Answer always carries a best-effort
// string (FallbackAnswer when nothing could be produced).
type AnswerResponse struct {
	Answer       string       `json:"answer"`
	QuestionType string       `json:"question_type"`
	Entities     []string     `json:"entities"`
	Query        string       `json:"query,omitempty"`
	ResultsCount int          `json:"results_count"`
	RawResults   []Row        `json:"raw_results"`
	Error        string       `json:"error,omitempty"`
	History      []TurnRecord `json:"history"`
}
