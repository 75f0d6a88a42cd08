// Package engine drives the scenario simulation: it classifies each body
// line, advances a virtual time cursor by role-specific rules, and emits
// timestamped output events modeling a human typist.
//
// The clock is purely virtual: one step per keystroke, fixed pauses before
// and after commands and screen clears. There is no wall-clock dependency,
// so a run is reproducible byte for byte from the same input and header.
//
// The engine is strictly single-threaded. Each line is classified and fully
// processed (cursor advance, zero or more emissions, optional preview-line
// append) before the next line is read. The time cursor is owned by the
// engine and monotonically non-decreasing across the run.
package engine
