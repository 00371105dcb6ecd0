// Package history provides the bounded undo/redo stack for editing sessions.
// Entries are pre-change document snapshots; the stack never mutates what it
// holds, so callers must hand it frozen values (the engine's outputs qualify).
package history

import "devlogapi/internal/model"

// DefaultLimit is the snapshot capacity of a session's history.
const DefaultLimit = 10

// Stack is a bounded undo/redo stack. The zero value is not ready; use New.
// Not safe for concurrent use — the owning session serializes access.
type Stack struct {
	entries []model.Document
	index   int
	limit   int
}

// New returns an empty stack holding at most limit snapshots; limit <= 0
// falls back to DefaultLimit.
func New(limit int) *Stack {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Stack{index: -1, limit: limit}
}

// Record pushes the pre-change snapshot. Recording while undone discards the
// redo tail; recording at capacity drops the oldest entry.
func (s *Stack) Record(prev model.Document) {
	s.entries = s.entries[:s.index+1]
	if len(s.entries) >= s.limit {
		drop := len(s.entries) - s.limit + 1
		s.entries = append([]model.Document{}, s.entries[drop:]...)
	}
	s.entries = append(s.entries, prev)
	s.index = len(s.entries) - 1
}

// Undo returns the most recent recorded snapshot, stepping the cursor back.
// live is the caller's current document; when undoing the newest change it is
// kept as the redo anchor so a following Redo can restore it. ok is false on
// empty history and the stack is unchanged.
func (s *Stack) Undo(live model.Document) (doc model.Document, ok bool) {
	if s.index < 0 {
		return model.Document{}, false
	}
	if s.index == len(s.entries)-1 {
		s.entries = append(s.entries, live)
	}
	doc = s.entries[s.index]
	s.index--
	return doc, true
}

// Redo steps the cursor forward and returns the state that followed it. ok is
// false when there is nothing to redo.
func (s *Stack) Redo() (doc model.Document, ok bool) {
	if s.index+2 >= len(s.entries) {
		return model.Document{}, false
	}
	s.index++
	return s.entries[s.index+1], true
}

// CanUndo reports whether Undo would succeed.
func (s *Stack) CanUndo() bool {
	return s.index >= 0
}

// CanRedo reports whether Redo would succeed.
func (s *Stack) CanRedo() bool {
	return s.index+2 < len(s.entries)
}

// Len returns the number of undoable snapshots currently held.
func (s *Stack) Len() int {
	return s.index + 1
}
