// Package memory converts stored turn history into natural-language context
// for the reasoning stages. It contains two pure, deterministic pieces:
//
//   - Summarize, which describes the single most recent turn of a history
//     window as a short grounding string
//   - Augment, which appends that context to a stage's base prompt together
//     with an instruction restricting its use to reference resolution
//
// Neither function performs I/O or external calls; an empty history produces
// an empty summary and an empty summary leaves prompts byte-identical to the
// no-memory baseline.
//
// The store retains up to core.HistoryWindow turns but only the last one is
// summarized: longer-range references ("the first answer") are left to the
// reasoning model's own instruction following. Keep that asymmetry unless
// product requirements change it.
package memory
