package core

// State is the workflow state bundle threaded through the pipeline stages of a
// single answer run. It carries the immutable inputs (question, session id,
// prior history seed) plus the outputs each stage fills in. The prior history
// seed never includes the turn currently in flight.
//
// Stage failures are downgraded to the Err field rather than aborting the run;
// a terminal State therefore always yields a TurnRecord via Record, including
// on error paths.
type State struct {
	// Inputs, set by the orchestrator before the pipeline runs.
	Question  string
	SessionID string
	RunID     string
	History   []TurnRecord

	// Outputs, filled in by pipeline stages.
	QuestionType string
	Entities     []string
	Query        string
	Rows         []Row
	Answer       string
	Err          string
}

// Fail records a stage failure on the state. The first failure wins; later
// errors in the same run are dropped so the recorded cause is the root one.
func (s *State) Fail(msg string) {
	if s.Err == "" {
		s.Err = msg
	}
}

// Failed reports whether any stage of this run has failed.
func (s *State) Failed() bool { return s.Err != "" }

// Record derives the TurnRecord for this run from the terminal state. The
// storage caps (entity count, query length) are applied by NewTurnRecord.
func (s *State) Record() TurnRecord {
	return NewTurnRecord(s.Question, s.QuestionType, s.Entities, s.Query, len(s.Rows), s.Err)
}
