// Package session owns the mutable state of one editing session: the live
// document, its undo history, the element selection, and the save bookkeeping.
// All mutation funnels through the engine; presentation layers only ever see
// copies. One session edits one (project, version) pair; concurrent sessions
// on the same pair are last-write-wins by design.
package session

import (
	"context"
	"reflect"
	"sync"
	"time"

	"devlogapi/internal/engine"
	"devlogapi/internal/extract"
	"devlogapi/internal/history"
	"devlogapi/internal/model"
)

// Gateway is the persistence boundary the session saves through. The content
// store treats documents as opaque JSON and returns them unchanged; Load
// reports absence with a nil document and no error.
type Gateway interface {
	Load(ctx context.Context, projectID, versionID string) (*model.Document, error)
	Save(ctx context.Context, projectID, versionID string, doc model.Document) error
}

// Session is the single writer of one document's editing state. Safe for
// concurrent use, though the editing model is single-editor.
type Session struct {
	projectID string
	versionID string
	gateway   Gateway

	mu        sync.Mutex
	doc       model.Document
	hist      *history.Stack
	selected  string
	dirty     bool
	lastSaved time.Time
}

// Open starts an editing session, loading the stored document through the
// gateway. A load failure or an absent document both start the session from
// an empty document; the error, if any, is returned for logging but the
// session is usable either way.
func Open(ctx context.Context, gw Gateway, projectID, versionID string) (*Session, error) {
	s := &Session{
		projectID: projectID,
		versionID: versionID,
		gateway:   gw,
		doc:       model.Empty(),
		hist:      history.New(history.DefaultLimit),
	}
	doc, err := gw.Load(ctx, projectID, versionID)
	if err != nil {
		return s, err
	}
	if doc != nil {
		s.doc = doc.Clone()
	}
	return s, nil
}

// Document returns a deep copy of the live document.
func (s *Session) Document() model.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Selected returns the id of the selected element, "" when none.
func (s *Session) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Select marks an element as selected. Selecting an id that does not resolve
// clears the selection.
func (s *Session) Select(elementID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, _, _, ok := s.doc.FindElement(elementID); ok {
		s.selected = elementID
	} else {
		s.selected = ""
	}
}

// Dirty reports whether there are edits since the last successful save.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// LastSaved returns when the session last saved successfully; zero if never.
func (s *Session) LastSaved() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved
}

// apply runs one engine operation through the record-then-replace cycle.
// Engine operations return their input unchanged when they decline an edit;
// those must not consume an undo slot or dirty the session. Callers hold no
// locks.
func (s *Session) apply(op func(model.Document) model.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.doc
	next := op(prev)
	if reflect.DeepEqual(prev, next) {
		return
	}
	s.hist.Record(prev)
	s.doc = next
	s.dirty = true
}

// AddRow appends a row with columnCount equal-width columns.
func (s *Session) AddRow(columnCount int) {
	s.apply(func(d model.Document) model.Document {
		return engine.AddRow(d, columnCount)
	})
}

// DeleteRow removes the row at rowIndex.
func (s *Session) DeleteRow(rowIndex int) {
	s.apply(func(d model.Document) model.Document {
		return engine.DeleteRow(d, rowIndex)
	})
}

// DuplicateRow copies the row at rowIndex in place, fresh ids throughout.
func (s *Session) DuplicateRow(rowIndex int) {
	s.apply(func(d model.Document) model.Document {
		return engine.DuplicateRow(d, rowIndex)
	})
}

// MoveRow reorders rows. Drag moves are recorded in history like any other
// structural edit.
func (s *Session) MoveRow(from, to int) {
	s.apply(func(d model.Document) model.Document {
		return engine.MoveRow(d, from, to)
	})
}

// AddElement appends a default-constructed element to the target column and
// selects it. Returns the new element id, "" on a no-op.
func (s *Session) AddElement(t model.ElementType, rowIndex, colIndex int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.doc
	next, id := engine.AddElement(prev, t, rowIndex, colIndex)
	if id == "" {
		return ""
	}
	s.hist.Record(prev)
	s.doc = next
	s.dirty = true
	s.selected = id
	return id
}

// DeleteElement removes the element wherever it is found, clearing the
// selection if it pointed at it.
func (s *Session) DeleteElement(elementID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.doc
	if _, _, _, ok := prev.FindElement(elementID); !ok {
		return
	}
	s.hist.Record(prev)
	s.doc = engine.DeleteElement(prev, elementID)
	s.dirty = true
	if s.selected == elementID {
		s.selected = ""
	}
}

// MoveElement relocates an element between positions/columns.
func (s *Session) MoveElement(fromRow, fromCol, fromIdx, toRow, toCol, toIdx int) {
	s.apply(func(d model.Document) model.Document {
		return engine.MoveElement(d, fromRow, fromCol, fromIdx, toRow, toCol, toIdx)
	})
}

// DuplicateColumn copies the column in place, fresh ids, widths recomputed.
func (s *Session) DuplicateColumn(rowIndex, colIndex int) {
	s.apply(func(d model.Document) model.Document {
		return engine.DuplicateColumn(d, rowIndex, colIndex)
	})
}

// DeleteColumn removes a column; a row's last column takes the row with it.
func (s *Session) DeleteColumn(rowIndex, colIndex int) {
	s.apply(func(d model.Document) model.Document {
		return engine.DeleteColumn(d, rowIndex, colIndex)
	})
}

// MoveColumnToRow detaches a column and appends it to another row.
func (s *Session) MoveColumnToRow(fromRowIndex, fromColIndex, toRowIndex int) {
	s.apply(func(d model.Document) model.Document {
		return engine.MoveColumnToRow(d, fromRowIndex, fromColIndex, toRowIndex)
	})
}

// UpdateElementData shallow-merges a partial patch into the element's data.
func (s *Session) UpdateElementData(elementID string, partial map[string]any) {
	s.apply(func(d model.Document) model.Document {
		return engine.UpdateElementData(d, elementID, partial)
	})
}

// UpdateElementStyle shallow-merges box-model overrides into the element's
// style.
func (s *Session) UpdateElementStyle(elementID string, partial map[string]any) {
	s.apply(func(d model.Document) model.Document {
		return engine.UpdateElementStyle(d, elementID, partial)
	})
}

// UpdateRowSettings shallow-merges the patch into the row's settings.
func (s *Session) UpdateRowSettings(rowIndex int, patch engine.RowSettingsPatch) {
	s.apply(func(d model.Document) model.Document {
		return engine.UpdateRowSettings(d, rowIndex, patch)
	})
}

// UpdatePageSettings shallow-merges the patch into the page settings.
func (s *Session) UpdatePageSettings(patch engine.PageSettingsPatch) {
	s.apply(func(d model.Document) model.Document {
		return engine.UpdatePageSettings(d, patch)
	})
}

// Undo steps the document back one recorded change. A no-op on empty history.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.hist.Undo(s.doc)
	if !ok {
		return false
	}
	s.doc = doc
	s.dirty = true
	return true
}

// Redo reapplies the most recently undone change. A no-op when there is
// nothing to redo.
func (s *Session) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.hist.Redo()
	if !ok {
		return false
	}
	s.doc = doc
	s.dirty = true
	return true
}

// CanUndo reports whether Undo would change anything.
func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.CanUndo()
}

// CanRedo reports whether Redo would change anything.
func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.CanRedo()
}

// Save runs the card extraction pass over the live document, persists the
// augmented result through the gateway, and on success replaces the live
// document with it so synthesized cards show up without a reload. On failure
// the live document is left exactly as it was; the caller retries by saving
// again. A second Save racing the first is not guarded against.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	doc := s.doc.Clone()
	s.mu.Unlock()

	augmented := extract.Run(doc)
	if err := s.gateway.Save(ctx, s.projectID, s.versionID, augmented); err != nil {
		return err
	}

	s.mu.Lock()
	s.doc = augmented
	s.dirty = false
	s.lastSaved = time.Now().UTC()
	s.mu.Unlock()
	return nil
}
