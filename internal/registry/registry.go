// Package registry owns the closed set of element types: the default data a
// freshly inserted element starts from and the property fields each type
// exposes to its editor panel. Renderer dispatch lives in the render package;
// both switch over the same type set and are tested for exhaustiveness.
package registry

import "devlogapi/internal/model"

// ParagraphPlaceholder is the starter text for a new paragraph element.
const ParagraphPlaceholder = "Write something here..."

// types lists every element kind in a stable order.
var types = []model.ElementType{
	model.TypeHeading,
	model.TypeParagraph,
	model.TypeList,
	model.TypeImage,
	model.TypeVideo,
	model.TypeSectionHeader,
	model.TypeChangeCard,
	model.TypeComparison,
	model.TypeCardReference,
	model.TypeDivider,
	model.TypeSpacer,
}

// Types returns the closed element-type set in registration order.
func Types() []model.ElementType {
	out := make([]model.ElementType, len(types))
	copy(out, types)
	return out
}

// Known reports whether t is a registered element type.
func Known(t model.ElementType) bool {
	for _, k := range types {
		if k == t {
			return true
		}
	}
	return false
}

// DefaultData builds the initial data payload for a new element of type t.
// Every call returns freshly allocated maps and slices; callers may mutate
// the result freely. Unknown types return nil.
func DefaultData(t model.ElementType) map[string]any {
	switch t {
	case model.TypeHeading:
		return map[string]any{
			"text":       "Heading",
			"level":      "h2",
			"align":      "left",
			"fontSize":   "24",
			"fontFamily": "inherit",
		}
	case model.TypeParagraph:
		return map[string]any{
			"text":       ParagraphPlaceholder,
			"align":      "left",
			"fontSize":   "14",
			"fontFamily": "inherit",
		}
	case model.TypeList:
		return map[string]any{
			"items":       []any{"Item 1", "Item 2", "Item 3"},
			"bulletStyle": "disc",
			"align":       "left",
			"indent":      0,
			"fontSize":    "14",
		}
	case model.TypeImage:
		return map[string]any{
			"src":     "",
			"alt":     "",
			"caption": "",
		}
	case model.TypeVideo:
		return map[string]any{
			"src":  "",
			"type": "youtube",
		}
	case model.TypeSectionHeader:
		return map[string]any{
			"text":  "SECTION TITLE",
			"color": "#c23a2b",
		}
	case model.TypeChangeCard:
		return map[string]any{
			"icon":     "",
			"title":    "Item Name",
			"subtitle": "",
			"changes": []any{
				map[string]any{"type": model.ChangeBuff, "text": "Change description"},
			},
		}
	case model.TypeComparison:
		return map[string]any{
			"layout":  "side-by-side",
			"title":   "Comparison",
			"overlay": "darken",
			"before":  emptyCardSide(),
			"after":   emptyCardSide(),
		}
	case model.TypeCardReference:
		return map[string]any{
			"sourceVersionId": "",
			"sourceCardId":    "",
			"title":           "",
			"subtitle":        "",
			"icon":            "",
			"changes":         []any{},
			"overlay":         "none",
		}
	case model.TypeDivider:
		return map[string]any{
			"style":   "solid",
			"color":   "#333",
			"spacing": 5,
		}
	case model.TypeSpacer:
		return map[string]any{
			"height": 20,
		}
	}
	return nil
}

func emptyCardSide() map[string]any {
	return map[string]any{
		"title":    "",
		"subtitle": "",
		"icon":     "",
		"changes":  []any{},
	}
}
