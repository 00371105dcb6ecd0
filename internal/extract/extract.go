// Package extract implements the save-time card extraction pass: comparison
// and card-reference elements are scanned for "current state" card content,
// which is synthesized into canonical change-card elements so the document
// carries a flat gallery of cards without manual duplication. The pass is
// deterministic and idempotent given stable dedup keys.
package extract

import (
	"github.com/google/uuid"

	"devlogapi/internal/model"
)

// Key builds the dedup identity of a card: title + "-" + subtitle. Cards
// sharing a key are considered the same item and synthesized at most once.
func Key(title, subtitle string) string {
	return title + "-" + subtitle
}

// Run returns a copy of doc with change-cards synthesized from comparison
// "after" sides and card-reference elements, deduplicated against cards
// already present. Synthesized cards are appended, in discovery order, to the
// first row's first column; when the document has no rows a new full-width
// single-column row is created to hold them. The input document is never
// mutated.
func Run(doc model.Document) model.Document {
	out := doc.Clone()

	seen := map[string]bool{}
	out.Walk(func(_, _, _ int, el model.Element) bool {
		if el.Type == model.TypeChangeCard {
			seen[Key(model.GetString(el.Data, "title"), model.GetString(el.Data, "subtitle"))] = true
		}
		return true
	})

	var cards []model.Element
	out.Walk(func(_, _, _ int, el model.Element) bool {
		switch el.Type {
		case model.TypeComparison:
			after, _ := el.Data["after"].(map[string]any)
			if card, ok := synthesize(after); ok && !seen[cardKey(after)] {
				seen[cardKey(after)] = true
				cards = append(cards, card)
			}
		case model.TypeCardReference:
			if card, ok := synthesize(el.Data); ok && !seen[cardKey(el.Data)] {
				seen[cardKey(el.Data)] = true
				cards = append(cards, card)
			}
		}
		return true
	})

	if len(cards) == 0 {
		return out
	}

	// Cards land in the first row's first column. Stored documents are
	// untrusted, so a first row without columns gets a fresh full-width row
	// just like an empty document.
	target := 0
	if len(out.Rows) == 0 || len(out.Rows[0].Columns) == 0 {
		out.Rows = append(out.Rows, model.Row{
			ID:   uuid.NewString(),
			Type: model.RowType,
			Columns: []model.Column{{
				ID:       uuid.NewString(),
				Width:    "100%",
				Elements: []model.Element{},
			}},
		})
		target = len(out.Rows) - 1
	}
	col := &out.Rows[target].Columns[0]
	col.Elements = append(col.Elements, cards...)
	return out
}

func cardKey(data map[string]any) string {
	return Key(model.GetString(data, "title"), model.GetString(data, "subtitle"))
}

// synthesize builds a change-card from card-shaped data (icon/title/subtitle/
// changes). ok is false when the title is empty, which means there is nothing
// to extract.
func synthesize(data map[string]any) (model.Element, bool) {
	if model.GetString(data, "title") == "" {
		return model.Element{}, false
	}
	changes, _ := data["changes"].([]any)
	if changes == nil {
		changes = []any{}
	}
	return model.Element{
		ID:   uuid.NewString(),
		Type: model.TypeChangeCard,
		Data: model.CloneData(map[string]any{
			"icon":     model.GetString(data, "icon"),
			"title":    model.GetString(data, "title"),
			"subtitle": model.GetString(data, "subtitle"),
			"changes":  changes,
		}),
	}, true
}
