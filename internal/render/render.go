// Package render turns a document into the published devlog HTML page. It is
// the renderer half of the element registry contract: one branch per element
// type, with unknown types rendered as nothing. All text content is escaped.
package render

import (
	"fmt"
	"html"
	"strings"

	"devlogapi/internal/model"
)

var paddingCSS = map[string]string{
	model.PaddingNone: "0",
	model.PaddingSm:   "8px",
	model.PaddingMd:   "16px",
	model.PaddingLg:   "32px",
	model.PaddingXl:   "64px",
}

var maxWidthCSS = map[string]string{
	model.MaxWidthFull: "none",
	model.MaxWidthXl:   "36rem",
	model.MaxWidth2xl:  "42rem",
	model.MaxWidth4xl:  "56rem",
	model.MaxWidth6xl:  "72rem",
}

// Document renders the full page.
func Document(doc model.Document) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"></head>\n")
	b.WriteString("<body" + pageStyle(doc.Settings) + ">\n")
	for _, row := range doc.Rows {
		writeRow(&b, row)
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func pageStyle(s *model.PageSettings) string {
	if s == nil {
		return ""
	}
	var css []string
	if s.BackgroundColor != "" {
		css = append(css, "background-color:"+html.EscapeString(s.BackgroundColor))
	}
	if s.BackgroundImage != "" {
		css = append(css, fmt.Sprintf("background-image:url('%s')", html.EscapeString(s.BackgroundImage)))
	}
	if len(css) == 0 {
		return ""
	}
	return ` style="` + strings.Join(css, ";") + `"`
}

func writeRow(b *strings.Builder, row model.Row) {
	var css []string
	if row.Settings.BackgroundColor != "" {
		css = append(css, "background-color:"+html.EscapeString(row.Settings.BackgroundColor))
	}
	if p, ok := paddingCSS[row.Settings.Padding]; ok {
		css = append(css, "padding:"+p)
	}
	if w, ok := maxWidthCSS[row.Settings.MaxWidth]; ok {
		css = append(css, "max-width:"+w, "margin:0 auto")
	}
	style := ""
	if len(css) > 0 {
		style = ` style="display:flex;` + strings.Join(css, ";") + `"`
	} else {
		style = ` style="display:flex"`
	}
	b.WriteString("<div class=\"row\"" + style + ">\n")
	for _, col := range row.Columns {
		b.WriteString(fmt.Sprintf("<div class=\"column\" style=\"width:%s\">\n", html.EscapeString(col.Width)))
		for _, el := range col.Elements {
			b.WriteString(Element(el))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")
}

// Element renders one element. The switch covers every registered type;
// unknown types render as an empty string.
func Element(el model.Element) string {
	d := el.Data
	switch el.Type {
	case model.TypeHeading:
		// The level becomes a tag name, so anything outside h1-h6 falls back
		// to h2 instead of being interpolated.
		level := model.GetString(d, "level")
		switch level {
		case "h1", "h2", "h3", "h4", "h5", "h6":
		default:
			level = "h2"
		}
		return fmt.Sprintf("<%s style=\"text-align:%s\">%s</%s>\n",
			level, align(d), esc(d, "text"), level)
	case model.TypeParagraph:
		return fmt.Sprintf("<p style=\"text-align:%s\">%s</p>\n", align(d), esc(d, "text"))
	case model.TypeList:
		return renderList(d)
	case model.TypeImage:
		out := fmt.Sprintf("<figure><img src=\"%s\" alt=\"%s\">", esc(d, "src"), esc(d, "alt"))
		if c := model.GetString(d, "caption"); c != "" {
			out += "<figcaption>" + html.EscapeString(c) + "</figcaption>"
		}
		return out + "</figure>\n"
	case model.TypeVideo:
		if model.GetString(d, "type") == "youtube" {
			return fmt.Sprintf("<iframe src=\"%s\" allowfullscreen></iframe>\n", esc(d, "src"))
		}
		return fmt.Sprintf("<video src=\"%s\" controls></video>\n", esc(d, "src"))
	case model.TypeSectionHeader:
		return fmt.Sprintf("<h3 class=\"section-header\" style=\"color:%s\">%s</h3>\n",
			esc(d, "color"), esc(d, "text"))
	case model.TypeChangeCard:
		return renderCard(d, "change-card")
	case model.TypeComparison:
		before, _ := d["before"].(map[string]any)
		after, _ := d["after"].(map[string]any)
		return "<div class=\"comparison\"><h4>" + esc(d, "title") + "</h4>" +
			renderCard(before, "before") + renderCard(after, "after") + "</div>\n"
	case model.TypeCardReference:
		return renderCard(d, "card-reference")
	case model.TypeDivider:
		return fmt.Sprintf("<hr style=\"border-style:%s;border-color:%s\">\n",
			esc(d, "style"), esc(d, "color"))
	case model.TypeSpacer:
		h, _ := d["height"].(float64)
		if h == 0 {
			if n, ok := d["height"].(int); ok {
				h = float64(n)
			}
		}
		return fmt.Sprintf("<div style=\"height:%gpx\"></div>\n", h)
	}
	return ""
}

func renderList(d map[string]any) string {
	tag := "ul"
	if model.GetString(d, "bulletStyle") == "decimal" {
		tag = "ol"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<%s style=\"text-align:%s\">", tag, align(d)))
	if items, ok := d["items"].([]any); ok {
		for _, it := range items {
			if s, ok := it.(string); ok {
				b.WriteString("<li>" + html.EscapeString(s) + "</li>")
			}
		}
	}
	b.WriteString("</" + tag + ">\n")
	return b.String()
}

func renderCard(d map[string]any, class string) string {
	if d == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="` + class + `">`)
	if icon := model.GetString(d, "icon"); icon != "" {
		b.WriteString(fmt.Sprintf("<img class=\"icon\" src=\"%s\">", html.EscapeString(icon)))
	}
	b.WriteString("<strong>" + esc(d, "title") + "</strong>")
	if sub := model.GetString(d, "subtitle"); sub != "" {
		b.WriteString("<em>" + html.EscapeString(sub) + "</em>")
	}
	if changes, ok := d["changes"].([]any); ok && len(changes) > 0 {
		b.WriteString("<ul>")
		for _, c := range changes {
			cm, ok := c.(map[string]any)
			if !ok {
				continue
			}
			b.WriteString(fmt.Sprintf("<li class=\"%s\">%s</li>",
				html.EscapeString(model.GetString(cm, "type")),
				html.EscapeString(model.GetString(cm, "text"))))
		}
		b.WriteString("</ul>")
	}
	b.WriteString("</div>\n")
	return b.String()
}

func align(d map[string]any) string {
	a := model.GetString(d, "align")
	switch a {
	case "center", "right":
		return a
	}
	return "left"
}

func esc(d map[string]any, key string) string {
	return html.EscapeString(model.GetString(d, key))
}
