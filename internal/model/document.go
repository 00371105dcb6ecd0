package model

// ElementType identifies one of the closed set of element kinds a column can
// hold. The registry package owns the default data for each type.
type ElementType string

const (
	TypeHeading       ElementType = "heading"
	TypeParagraph     ElementType = "paragraph"
	TypeList          ElementType = "list"
	TypeImage         ElementType = "image"
	TypeVideo         ElementType = "video"
	TypeSectionHeader ElementType = "section-header"
	TypeChangeCard    ElementType = "change-card"
	TypeComparison    ElementType = "comparison"
	TypeCardReference ElementType = "card-reference"
	TypeDivider       ElementType = "divider"
	TypeSpacer        ElementType = "spacer"
)

// RowType is the only row variant today; the field is reserved for future
// row kinds.
const RowType = "row"

// Padding sizes accepted by RowSettings.Padding.
const (
	PaddingNone = "none"
	PaddingSm   = "sm"
	PaddingMd   = "md"
	PaddingLg   = "lg"
	PaddingXl   = "xl"
)

// Max-width presets accepted by RowSettings.MaxWidth.
const (
	MaxWidthFull = "full"
	MaxWidthXl   = "xl"
	MaxWidth2xl  = "2xl"
	MaxWidth4xl  = "4xl"
	MaxWidth6xl  = "6xl"
)

// Change kinds used inside change-card/comparison "changes" lists.
const (
	ChangeBuff    = "buff"
	ChangeNerf    = "nerf"
	ChangeNeutral = "neutral"
)

// Document is the page-builder document: an ordered list of rows plus
// optional page-wide style settings. It is a pure value type; all mutation
// goes through the engine package, which returns fresh snapshots.
type Document struct {
	Rows     []Row         `json:"rows"`
	Settings *PageSettings `json:"settings,omitempty"`
}

// PageSettings styles the outer page and the inner content layer.
type PageSettings struct {
	BackgroundColor          string   `json:"backgroundColor,omitempty"`
	BackgroundOpacity        *float64 `json:"backgroundOpacity,omitempty"`
	BackgroundImage          string   `json:"backgroundImage,omitempty"`
	ContentBackgroundColor   string   `json:"contentBackgroundColor,omitempty"`
	ContentBackgroundOpacity *float64 `json:"contentBackgroundOpacity,omitempty"`
	ContentBackgroundImage   string   `json:"contentBackgroundImage,omitempty"`
}

// Row is a horizontal band of columns. A row always has at least one column;
// the engine deletes the row instead of leaving it empty.
type Row struct {
	ID       string      `json:"id"`
	Type     string      `json:"type"`
	Settings RowSettings `json:"settings"`
	Columns  []Column    `json:"columns"`
}

// RowSettings holds per-row presentation options.
type RowSettings struct {
	BackgroundColor   string   `json:"backgroundColor,omitempty"`
	BackgroundOpacity *float64 `json:"backgroundOpacity,omitempty"`
	BackgroundImage   string   `json:"backgroundImage,omitempty"`
	Padding           string   `json:"padding,omitempty"`
	MaxWidth          string   `json:"maxWidth,omitempty"`
}

// Column holds an ordered list of elements. Width is a derived percentage
// string ("50%"); the engine recomputes it whenever the column count of the
// owning row changes.
type Column struct {
	ID       string    `json:"id"`
	Width    string    `json:"width"`
	Elements []Element `json:"elements"`
}

// Element is one content block. Data is the per-type payload kept as decoded
// JSON so documents round-trip through the content store unchanged; the
// registry package defines the closed type set and each type's fields.
// Style carries free-form box-model overrides (marginTop, paddingLeft, ...),
// each a pixel number or the string "auto".
type Element struct {
	ID    string         `json:"id"`
	Type  ElementType    `json:"type"`
	Data  map[string]any `json:"data"`
	Style map[string]any `json:"style,omitempty"`
}

// Change is one entry of a change-card's "changes" list in its typed form.
// Inside Element.Data the same entry appears as a map.
type Change struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Empty returns the document a fresh editing session starts from.
func Empty() Document {
	return Document{Rows: []Row{}}
}

// Clone returns a deep copy. Snapshots pushed to history and documents handed
// to readers must never observe later mutation, so every slice and map is
// copied down to the leaves.
func (d Document) Clone() Document {
	out := Document{Rows: make([]Row, len(d.Rows))}
	for i, r := range d.Rows {
		out.Rows[i] = r.Clone()
	}
	if d.Settings != nil {
		s := *d.Settings
		if d.Settings.BackgroundOpacity != nil {
			v := *d.Settings.BackgroundOpacity
			s.BackgroundOpacity = &v
		}
		if d.Settings.ContentBackgroundOpacity != nil {
			v := *d.Settings.ContentBackgroundOpacity
			s.ContentBackgroundOpacity = &v
		}
		out.Settings = &s
	}
	return out
}

// Clone returns a deep copy of the row.
func (r Row) Clone() Row {
	out := r
	if r.Settings.BackgroundOpacity != nil {
		v := *r.Settings.BackgroundOpacity
		out.Settings.BackgroundOpacity = &v
	}
	out.Columns = make([]Column, len(r.Columns))
	for i, c := range r.Columns {
		out.Columns[i] = c.Clone()
	}
	return out
}

// Clone returns a deep copy of the column.
func (c Column) Clone() Column {
	out := c
	out.Elements = make([]Element, len(c.Elements))
	for i, e := range c.Elements {
		out.Elements[i] = e.Clone()
	}
	return out
}

// Clone returns a deep copy of the element, including nested maps and lists
// inside Data and Style.
func (e Element) Clone() Element {
	out := e
	out.Data = CloneData(e.Data)
	if e.Style != nil {
		out.Style = CloneData(e.Style)
	}
	return out
}

// CloneData deep-copies a decoded-JSON map.
func CloneData(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return CloneData(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out
	default:
		// Primitives (string, bool, float64, int, nil) copy by value.
		return v
	}
}

// Walk visits every element in document order (rows top to bottom, columns
// left to right, elements in column order). Returning false stops the walk.
func (d Document) Walk(fn func(rowIdx, colIdx, elemIdx int, el Element) bool) {
	for ri, row := range d.Rows {
		for ci, col := range row.Columns {
			for ei, el := range col.Elements {
				if !fn(ri, ci, ei, el) {
					return
				}
			}
		}
	}
}

// FindElement locates an element by id. ok is false when the id does not
// resolve anywhere in the document.
func (d Document) FindElement(id string) (rowIdx, colIdx, elemIdx int, ok bool) {
	rowIdx, colIdx, elemIdx = -1, -1, -1
	d.Walk(func(ri, ci, ei int, el Element) bool {
		if el.ID == id {
			rowIdx, colIdx, elemIdx = ri, ci, ei
			ok = true
			return false
		}
		return true
	})
	return
}

// ChangeCards returns every change-card element in document order. The
// versions lookup endpoint and the extraction pass both build on this.
func (d Document) ChangeCards() []Element {
	var cards []Element
	d.Walk(func(_, _, _ int, el Element) bool {
		if el.Type == TypeChangeCard {
			cards = append(cards, el.Clone())
		}
		return true
	})
	return cards
}

// ElementIDs returns every id in the document (rows, columns, elements).
func (d Document) ElementIDs() []string {
	var ids []string
	for _, row := range d.Rows {
		ids = append(ids, row.ID)
		for _, col := range row.Columns {
			ids = append(ids, col.ID)
			for _, el := range col.Elements {
				ids = append(ids, el.ID)
			}
		}
	}
	return ids
}

// GetString reads a string field out of decoded-JSON data, returning "" for
// missing or non-string values.
func GetString(data map[string]any, key string) string {
	if data == nil {
		return ""
	}
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}
