package core

// SessionStore owns all mutation of per-session conversational history. A
// session is identified by an opaque caller-supplied string key; history for
// an unknown key is the empty sequence.
//
// Implementations must keep each session's history in chronological order
// (oldest first), bounded to HistoryWindow entries with oldest-first eviction,
// and must make Append atomic per key so concurrent callers on different
// sessions never interfere.
type SessionStore interface {
	// History returns a defensive copy of the session's turns, oldest first.
	History(sessionID string) ([]TurnRecord, error)

	// Append adds a completed turn to the session, evicting the oldest
	// entries beyond the HistoryWindow cap.
	Append(sessionID string, rec TurnRecord) error
}
