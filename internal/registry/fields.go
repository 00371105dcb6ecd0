package registry

import "devlogapi/internal/model"

// FieldKind tells a properties panel which control edits a field.
type FieldKind string

const (
	FieldText       FieldKind = "text"
	FieldTextarea   FieldKind = "textarea"
	FieldSelect     FieldKind = "select"
	FieldNumber     FieldKind = "number"
	FieldColor      FieldKind = "color"
	FieldImage      FieldKind = "image"
	FieldStringList FieldKind = "string-list"
	FieldChanges    FieldKind = "changes"
	FieldCardSide   FieldKind = "card-side"
	FieldCardPicker FieldKind = "card-picker"
)

// FieldSpec describes one editable field of an element's data payload.
type FieldSpec struct {
	Name    string    `json:"name"`
	Kind    FieldKind `json:"kind"`
	Options []string  `json:"options,omitempty"`
}

var alignOptions = []string{"left", "center", "right"}

// Fields returns the properties-panel contract for an element type: every
// editable field of its data payload, in display order. Unknown types return
// nil.
func Fields(t model.ElementType) []FieldSpec {
	switch t {
	case model.TypeHeading:
		return []FieldSpec{
			{Name: "text", Kind: FieldText},
			{Name: "level", Kind: FieldSelect, Options: []string{"h1", "h2", "h3", "h4"}},
			{Name: "align", Kind: FieldSelect, Options: alignOptions},
			{Name: "fontSize", Kind: FieldNumber},
			{Name: "fontFamily", Kind: FieldText},
		}
	case model.TypeParagraph:
		return []FieldSpec{
			{Name: "text", Kind: FieldTextarea},
			{Name: "align", Kind: FieldSelect, Options: alignOptions},
			{Name: "fontSize", Kind: FieldNumber},
			{Name: "fontFamily", Kind: FieldText},
		}
	case model.TypeList:
		return []FieldSpec{
			{Name: "items", Kind: FieldStringList},
			{Name: "bulletStyle", Kind: FieldSelect, Options: []string{"disc", "circle", "square", "decimal", "none"}},
			{Name: "align", Kind: FieldSelect, Options: alignOptions},
			{Name: "indent", Kind: FieldNumber},
			{Name: "fontSize", Kind: FieldNumber},
		}
	case model.TypeImage:
		return []FieldSpec{
			{Name: "src", Kind: FieldImage},
			{Name: "alt", Kind: FieldText},
			{Name: "caption", Kind: FieldText},
		}
	case model.TypeVideo:
		return []FieldSpec{
			{Name: "src", Kind: FieldText},
			{Name: "type", Kind: FieldSelect, Options: []string{"youtube", "file"}},
		}
	case model.TypeSectionHeader:
		return []FieldSpec{
			{Name: "text", Kind: FieldText},
			{Name: "color", Kind: FieldColor},
		}
	case model.TypeChangeCard:
		return []FieldSpec{
			{Name: "icon", Kind: FieldImage},
			{Name: "title", Kind: FieldText},
			{Name: "subtitle", Kind: FieldText},
			{Name: "changes", Kind: FieldChanges},
		}
	case model.TypeComparison:
		return []FieldSpec{
			{Name: "layout", Kind: FieldSelect, Options: []string{"side-by-side", "stacked"}},
			{Name: "title", Kind: FieldText},
			{Name: "overlay", Kind: FieldSelect, Options: []string{"none", "darken", "blur"}},
			{Name: "before", Kind: FieldCardSide},
			{Name: "after", Kind: FieldCardSide},
		}
	case model.TypeCardReference:
		return []FieldSpec{
			{Name: "sourceVersionId", Kind: FieldCardPicker},
			{Name: "sourceCardId", Kind: FieldCardPicker},
			{Name: "title", Kind: FieldText},
			{Name: "subtitle", Kind: FieldText},
			{Name: "icon", Kind: FieldImage},
			{Name: "changes", Kind: FieldChanges},
			{Name: "overlay", Kind: FieldSelect, Options: []string{"none", "darken", "blur"}},
		}
	case model.TypeDivider:
		return []FieldSpec{
			{Name: "style", Kind: FieldSelect, Options: []string{"solid", "dashed", "dotted"}},
			{Name: "color", Kind: FieldColor},
			{Name: "spacing", Kind: FieldNumber},
		}
	case model.TypeSpacer:
		return []FieldSpec{
			{Name: "height", Kind: FieldNumber},
		}
	}
	return nil
}
