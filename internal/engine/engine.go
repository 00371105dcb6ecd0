// Package engine implements the pure edit operations of the page builder.
// Every operation takes the current document plus arguments and returns a new
// document; inputs are never mutated, so snapshots held by the history stack
// stay frozen. Operations whose preconditions do not hold (indices out of
// range, ids that do not resolve) return the document unchanged instead of
// failing.
package engine

import (
	"fmt"

	"github.com/google/uuid"

	"devlogapi/internal/model"
	"devlogapi/internal/registry"
)

// ColumnWidth formats the derived width for a row with n columns.
func ColumnWidth(n int) string {
	return fmt.Sprintf("%g%%", 100/float64(n))
}

// recalcWidths rewrites every column width in the row to 100/len(columns).
func recalcWidths(row *model.Row) {
	w := ColumnWidth(len(row.Columns))
	for i := range row.Columns {
		row.Columns[i].Width = w
	}
}

func newID() string {
	return uuid.NewString()
}

// AddRow appends a row with columnCount empty columns of equal width. The UI
// offers 1–3 columns but any positive count is accepted; non-positive counts
// are a no-op.
func AddRow(doc model.Document, columnCount int) model.Document {
	if columnCount < 1 {
		return doc
	}
	out := doc.Clone()
	row := model.Row{
		ID:      newID(),
		Type:    model.RowType,
		Columns: make([]model.Column, columnCount),
	}
	for i := range row.Columns {
		row.Columns[i] = model.Column{
			ID:       newID(),
			Width:    ColumnWidth(columnCount),
			Elements: []model.Element{},
		}
	}
	out.Rows = append(out.Rows, row)
	return out
}

// DeleteRow removes the row at rowIndex. Sibling rows keep their widths; row
// widths are independent of each other.
func DeleteRow(doc model.Document, rowIndex int) model.Document {
	if rowIndex < 0 || rowIndex >= len(doc.Rows) {
		return doc
	}
	out := doc.Clone()
	out.Rows = append(out.Rows[:rowIndex], out.Rows[rowIndex+1:]...)
	return out
}

// DuplicateRow inserts a structural copy of the row immediately after the
// original. Every id in the copy (row, columns, elements) is freshly
// generated.
func DuplicateRow(doc model.Document, rowIndex int) model.Document {
	if rowIndex < 0 || rowIndex >= len(doc.Rows) {
		return doc
	}
	out := doc.Clone()
	dup := reidentifyRow(out.Rows[rowIndex].Clone())
	out.Rows = append(out.Rows, model.Row{})
	copy(out.Rows[rowIndex+2:], out.Rows[rowIndex+1:])
	out.Rows[rowIndex+1] = dup
	return out
}

// MoveRow moves the row at from to position to, shifting rows in between.
func MoveRow(doc model.Document, from, to int) model.Document {
	if from < 0 || from >= len(doc.Rows) || to < 0 || to >= len(doc.Rows) || from == to {
		return doc
	}
	out := doc.Clone()
	row := out.Rows[from]
	out.Rows = append(out.Rows[:from], out.Rows[from+1:]...)
	rest := append([]model.Row{}, out.Rows[to:]...)
	out.Rows = append(out.Rows[:to], row)
	out.Rows = append(out.Rows, rest...)
	return out
}

// AddElement appends a newly constructed element of the given type to the
// target column, using the registry's default data. The new element's id is
// returned so the caller can select it; it is "" when the operation was a
// no-op (bad position or unknown type).
func AddElement(doc model.Document, t model.ElementType, rowIndex, colIndex int) (model.Document, string) {
	if rowIndex < 0 || rowIndex >= len(doc.Rows) {
		return doc, ""
	}
	if colIndex < 0 || colIndex >= len(doc.Rows[rowIndex].Columns) {
		return doc, ""
	}
	data := registry.DefaultData(t)
	if data == nil {
		return doc, ""
	}
	out := doc.Clone()
	el := model.Element{ID: newID(), Type: t, Data: data}
	col := &out.Rows[rowIndex].Columns[colIndex]
	col.Elements = append(col.Elements, el)
	return out, el.ID
}

// DeleteElement removes the element with the given id wherever it is found.
func DeleteElement(doc model.Document, elementID string) model.Document {
	ri, ci, ei, ok := doc.FindElement(elementID)
	if !ok {
		return doc
	}
	out := doc.Clone()
	col := &out.Rows[ri].Columns[ci]
	col.Elements = append(col.Elements[:ei], col.Elements[ei+1:]...)
	return out
}

// MoveElement removes the element at the source position and inserts it at
// the target position. Ids are unchanged; this is a pure position change.
// The target index is interpreted against the target column after removal.
func MoveElement(doc model.Document, fromRow, fromCol, fromIdx, toRow, toCol, toIdx int) model.Document {
	if !columnInRange(doc, fromRow, fromCol) || !columnInRange(doc, toRow, toCol) {
		return doc
	}
	if fromIdx < 0 || fromIdx >= len(doc.Rows[fromRow].Columns[fromCol].Elements) {
		return doc
	}
	out := doc.Clone()
	src := &out.Rows[fromRow].Columns[fromCol]
	el := src.Elements[fromIdx]
	src.Elements = append(src.Elements[:fromIdx], src.Elements[fromIdx+1:]...)

	dst := &out.Rows[toRow].Columns[toCol]
	if toIdx < 0 {
		toIdx = 0
	}
	if toIdx > len(dst.Elements) {
		toIdx = len(dst.Elements)
	}
	dst.Elements = append(dst.Elements, model.Element{})
	copy(dst.Elements[toIdx+1:], dst.Elements[toIdx:])
	dst.Elements[toIdx] = el
	return out
}

// DuplicateColumn inserts a structural copy of the column immediately after
// it in the same row, with fresh ids throughout, then recomputes widths.
func DuplicateColumn(doc model.Document, rowIndex, colIndex int) model.Document {
	if !columnInRange(doc, rowIndex, colIndex) {
		return doc
	}
	out := doc.Clone()
	row := &out.Rows[rowIndex]
	dup := reidentifyColumn(row.Columns[colIndex].Clone())
	row.Columns = append(row.Columns, model.Column{})
	copy(row.Columns[colIndex+2:], row.Columns[colIndex+1:])
	row.Columns[colIndex+1] = dup
	recalcWidths(row)
	return out
}

// DeleteColumn removes the column and recomputes widths. A row must never
// exist with zero columns, so deleting a row's only column deletes the row.
func DeleteColumn(doc model.Document, rowIndex, colIndex int) model.Document {
	if !columnInRange(doc, rowIndex, colIndex) {
		return doc
	}
	if len(doc.Rows[rowIndex].Columns) == 1 {
		return DeleteRow(doc, rowIndex)
	}
	out := doc.Clone()
	row := &out.Rows[rowIndex]
	row.Columns = append(row.Columns[:colIndex], row.Columns[colIndex+1:]...)
	recalcWidths(row)
	return out
}

// MoveColumnToRow detaches a column from its row and appends it to another
// row, recomputing widths on both. Moving within the same row is a no-op. If
// the source row is left empty it is deleted; when that row sat before the
// target the target index shifts down by one.
func MoveColumnToRow(doc model.Document, fromRowIndex, fromColIndex, toRowIndex int) model.Document {
	if fromRowIndex == toRowIndex {
		return doc
	}
	if !columnInRange(doc, fromRowIndex, fromColIndex) {
		return doc
	}
	if toRowIndex < 0 || toRowIndex >= len(doc.Rows) {
		return doc
	}
	out := doc.Clone()
	src := &out.Rows[fromRowIndex]
	col := src.Columns[fromColIndex]
	src.Columns = append(src.Columns[:fromColIndex], src.Columns[fromColIndex+1:]...)

	target := toRowIndex
	if len(src.Columns) == 0 {
		out.Rows = append(out.Rows[:fromRowIndex], out.Rows[fromRowIndex+1:]...)
		if fromRowIndex < target {
			target--
		}
	} else {
		recalcWidths(src)
	}

	dst := &out.Rows[target]
	dst.Columns = append(dst.Columns, col)
	recalcWidths(dst)
	return out
}

// UpdateElementData shallow-merges partial into the element's data wherever
// the element is found. Nested values in partial replace their counterparts
// wholesale; this is a top-level key merge, not a deep merge.
func UpdateElementData(doc model.Document, elementID string, partial map[string]any) model.Document {
	ri, ci, ei, ok := doc.FindElement(elementID)
	if !ok || len(partial) == 0 {
		return doc
	}
	out := doc.Clone()
	el := &out.Rows[ri].Columns[ci].Elements[ei]
	if el.Data == nil {
		el.Data = map[string]any{}
	}
	for k, v := range model.CloneData(partial) {
		el.Data[k] = v
	}
	return out
}

// UpdateElementStyle shallow-merges box-model overrides into the element's
// style map.
func UpdateElementStyle(doc model.Document, elementID string, partial map[string]any) model.Document {
	ri, ci, ei, ok := doc.FindElement(elementID)
	if !ok || len(partial) == 0 {
		return doc
	}
	out := doc.Clone()
	el := &out.Rows[ri].Columns[ci].Elements[ei]
	if el.Style == nil {
		el.Style = map[string]any{}
	}
	for k, v := range model.CloneData(partial) {
		el.Style[k] = v
	}
	return out
}

// RowSettingsPatch carries the fields of a row-settings update; nil fields
// are left untouched (shallow merge).
type RowSettingsPatch struct {
	BackgroundColor   *string
	BackgroundOpacity *float64
	BackgroundImage   *string
	Padding           *string
	MaxWidth          *string
}

// UpdateRowSettings applies a shallow merge of the patch into the row's
// settings.
func UpdateRowSettings(doc model.Document, rowIndex int, patch RowSettingsPatch) model.Document {
	if rowIndex < 0 || rowIndex >= len(doc.Rows) {
		return doc
	}
	out := doc.Clone()
	s := &out.Rows[rowIndex].Settings
	if patch.BackgroundColor != nil {
		s.BackgroundColor = *patch.BackgroundColor
	}
	if patch.BackgroundOpacity != nil {
		v := *patch.BackgroundOpacity
		s.BackgroundOpacity = &v
	}
	if patch.BackgroundImage != nil {
		s.BackgroundImage = *patch.BackgroundImage
	}
	if patch.Padding != nil {
		s.Padding = *patch.Padding
	}
	if patch.MaxWidth != nil {
		s.MaxWidth = *patch.MaxWidth
	}
	return out
}

// PageSettingsPatch carries the fields of a page-settings update; nil fields
// are left untouched.
type PageSettingsPatch struct {
	BackgroundColor          *string
	BackgroundOpacity        *float64
	BackgroundImage          *string
	ContentBackgroundColor   *string
	ContentBackgroundOpacity *float64
	ContentBackgroundImage   *string
}

// UpdatePageSettings applies a shallow merge of the patch into the page
// settings, allocating them on first use.
func UpdatePageSettings(doc model.Document, patch PageSettingsPatch) model.Document {
	out := doc.Clone()
	if out.Settings == nil {
		out.Settings = &model.PageSettings{}
	}
	s := out.Settings
	if patch.BackgroundColor != nil {
		s.BackgroundColor = *patch.BackgroundColor
	}
	if patch.BackgroundOpacity != nil {
		v := *patch.BackgroundOpacity
		s.BackgroundOpacity = &v
	}
	if patch.BackgroundImage != nil {
		s.BackgroundImage = *patch.BackgroundImage
	}
	if patch.ContentBackgroundColor != nil {
		s.ContentBackgroundColor = *patch.ContentBackgroundColor
	}
	if patch.ContentBackgroundOpacity != nil {
		v := *patch.ContentBackgroundOpacity
		s.ContentBackgroundOpacity = &v
	}
	if patch.ContentBackgroundImage != nil {
		s.ContentBackgroundImage = *patch.ContentBackgroundImage
	}
	return out
}

func columnInRange(doc model.Document, rowIndex, colIndex int) bool {
	return rowIndex >= 0 && rowIndex < len(doc.Rows) &&
		colIndex >= 0 && colIndex < len(doc.Rows[rowIndex].Columns)
}

func reidentifyRow(row model.Row) model.Row {
	row.ID = newID()
	for i := range row.Columns {
		row.Columns[i] = reidentifyColumn(row.Columns[i])
	}
	return row
}

func reidentifyColumn(col model.Column) model.Column {
	col.ID = newID()
	for i := range col.Elements {
		col.Elements[i].ID = newID()
	}
	return col
}
