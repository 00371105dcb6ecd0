package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() Document {
	opacity := 0.5
	return Document{
		Rows: []Row{
			{
				ID:   "row-1",
				Type: RowType,
				Settings: RowSettings{
					BackgroundColor:   "#fff",
					BackgroundOpacity: &opacity,
					Padding:           PaddingMd,
					MaxWidth:          MaxWidth6xl,
				},
				Columns: []Column{
					{
						ID:    "col-1",
						Width: "50%",
						Elements: []Element{
							{
								ID:   "el-1",
								Type: TypeHeading,
								Data: map[string]any{"text": "Patch 1.2", "level": "h2"},
							},
							{
								ID:   "el-2",
								Type: TypeChangeCard,
								Data: map[string]any{
									"title":    "Dragon",
									"subtitle": "Boss",
									"changes": []any{
										map[string]any{"type": ChangeBuff, "text": "+10 HP"},
									},
								},
							},
						},
					},
					{
						ID:    "col-2",
						Width: "50%",
						Elements: []Element{
							{
								ID:    "el-3",
								Type:  TypeSpacer,
								Data:  map[string]any{"height": 20},
								Style: map[string]any{"marginTop": 8},
							},
						},
					},
				},
			},
			{
				ID:   "row-2",
				Type: RowType,
				Columns: []Column{
					{
						ID:    "col-3",
						Width: "100%",
						Elements: []Element{
							{
								ID:   "el-4",
								Type: TypeChangeCard,
								Data: map[string]any{"title": "Knight", "subtitle": "Unit"},
							},
						},
					},
				},
			},
		},
	}
}

func TestEmpty(t *testing.T) {
	doc := Empty()
	assert.NotNil(t, doc.Rows)
	assert.Empty(t, doc.Rows)
	assert.Nil(t, doc.Settings)

	b, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rows":[]}`, string(b))
}

func TestCloneIsDeep(t *testing.T) {
	orig := sampleDocument()
	clone := orig.Clone()
	require.Equal(t, orig, clone)

	// Mutating the clone down to the leaves must not touch the original.
	clone.Rows[0].ID = "changed"
	clone.Rows[0].Columns[0].Elements[0].Data["text"] = "changed"
	clone.Rows[0].Columns[1].Elements[0].Style["marginTop"] = 99
	changes := clone.Rows[0].Columns[0].Elements[1].Data["changes"].([]any)
	changes[0].(map[string]any)["text"] = "changed"
	*clone.Rows[0].Settings.BackgroundOpacity = 0.9

	assert.Equal(t, "row-1", orig.Rows[0].ID)
	assert.Equal(t, "Patch 1.2", orig.Rows[0].Columns[0].Elements[0].Data["text"])
	assert.Equal(t, 8, orig.Rows[0].Columns[1].Elements[0].Style["marginTop"])
	origChanges := orig.Rows[0].Columns[0].Elements[1].Data["changes"].([]any)
	assert.Equal(t, "+10 HP", origChanges[0].(map[string]any)["text"])
	assert.Equal(t, 0.5, *orig.Rows[0].Settings.BackgroundOpacity)
}

func TestClonePageSettings(t *testing.T) {
	opacity := 0.3
	orig := Document{Rows: []Row{}, Settings: &PageSettings{
		BackgroundColor:          "#111",
		ContentBackgroundOpacity: &opacity,
	}}

	clone := orig.Clone()
	require.NotNil(t, clone.Settings)
	clone.Settings.BackgroundColor = "#222"
	*clone.Settings.ContentBackgroundOpacity = 0.9

	assert.Equal(t, "#111", orig.Settings.BackgroundColor)
	assert.Equal(t, 0.3, *orig.Settings.ContentBackgroundOpacity)
}

func TestWalkOrder(t *testing.T) {
	doc := sampleDocument()

	var visited []string
	doc.Walk(func(_, _, _ int, el Element) bool {
		visited = append(visited, el.ID)
		return true
	})
	assert.Equal(t, []string{"el-1", "el-2", "el-3", "el-4"}, visited)
}

func TestWalkStops(t *testing.T) {
	doc := sampleDocument()

	var visited []string
	doc.Walk(func(_, _, _ int, el Element) bool {
		visited = append(visited, el.ID)
		return len(visited) < 2
	})
	assert.Equal(t, []string{"el-1", "el-2"}, visited)
}

func TestFindElement(t *testing.T) {
	doc := sampleDocument()

	ri, ci, ei, ok := doc.FindElement("el-3")
	require.True(t, ok)
	assert.Equal(t, 0, ri)
	assert.Equal(t, 1, ci)
	assert.Equal(t, 0, ei)

	ri, ci, ei, ok = doc.FindElement("el-4")
	require.True(t, ok)
	assert.Equal(t, 1, ri)
	assert.Equal(t, 0, ci)
	assert.Equal(t, 0, ei)

	_, _, _, ok = doc.FindElement("missing")
	assert.False(t, ok)
}

func TestChangeCards(t *testing.T) {
	doc := sampleDocument()

	cards := doc.ChangeCards()
	require.Len(t, cards, 2)
	assert.Equal(t, "el-2", cards[0].ID)
	assert.Equal(t, "el-4", cards[1].ID)

	// The returned cards are copies.
	cards[0].Data["title"] = "changed"
	assert.Equal(t, "Dragon", doc.Rows[0].Columns[0].Elements[1].Data["title"])
}

func TestElementIDs(t *testing.T) {
	ids := sampleDocument().ElementIDs()
	assert.Equal(t, []string{
		"row-1", "col-1", "el-1", "el-2", "col-2", "el-3",
		"row-2", "col-3", "el-4",
	}, ids)
}

func TestGetString(t *testing.T) {
	data := map[string]any{"title": "Dragon", "height": 20}

	assert.Equal(t, "Dragon", GetString(data, "title"))
	assert.Equal(t, "", GetString(data, "height"))
	assert.Equal(t, "", GetString(data, "missing"))
	assert.Equal(t, "", GetString(nil, "title"))
}

func TestDocumentJSONRoundTrip(t *testing.T) {
	raw := `{
		"rows": [{
			"id": "r1",
			"type": "row",
			"settings": {"padding": "lg", "maxWidth": "full"},
			"columns": [{
				"id": "c1",
				"width": "100%",
				"elements": [{
					"id": "e1",
					"type": "paragraph",
					"data": {"text": "hello", "fontSize": "16"},
					"style": {"marginTop": 4}
				}]
			}]
		}]
	}`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	require.Len(t, doc.Rows, 1)
	assert.Equal(t, PaddingLg, doc.Rows[0].Settings.Padding)
	assert.Equal(t, TypeParagraph, doc.Rows[0].Columns[0].Elements[0].Type)
	assert.Equal(t, "hello", doc.Rows[0].Columns[0].Elements[0].Data["text"])

	b, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(b))
}
