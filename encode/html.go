package encode

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/lingweave/interlinear/gloss"
)

// encodeHTML renders g as an HTML fragment. Class names follow the
// interlinear-gloss convention: the container carries "gloss", every line
// "gloss__line gloss__line--N" with N the source tier index, word groups
// "gloss__word", and abbreviation spans become <abbr> elements with the
// definition as title. Empty cells render as &nbsp; so columns keep their
// width.
func encodeHTML(g *gloss.Gloss, w io.Writer, es *EncState) error {
	ind := strings.Repeat(" ", es.indent)
	cls := "gloss"
	if !g.Spacing {
		cls += " gloss--no-space"
	}
	if err := writeString(w, fmt.Sprintf("<div class=%q>\n", cls)); err != nil {
		return err
	}
	emitted := false
	for _, u := range g.Units {
		if u.Kind == gloss.Passthrough {
			line := fmt.Sprintf("%s<p class=\"gloss__line gloss__line--%d\">%s</p>\n",
				ind, u.Tier, html.EscapeString(u.Content))
			if err := writeString(w, line); err != nil {
				return err
			}
			continue
		}
		if emitted {
			continue
		}
		emitted = true
		if err := writeString(w, ind+"<div class=\"gloss__words\">\n"); err != nil {
			return err
		}
		for _, word := range g.Words() {
			if err := writeHTMLWord(w, g, &word, ind); err != nil {
				return err
			}
		}
		if err := writeString(w, ind+"</div>\n"); err != nil {
			return err
		}
	}
	return writeString(w, "</div>\n")
}

func writeHTMLWord(w io.Writer, g *gloss.Gloss, word *gloss.Unit, ind string) error {
	if err := writeString(w, ind+ind+"<div class=\"gloss__word\">\n"); err != nil {
		return err
	}
	for j, c := range word.Cells {
		line := fmt.Sprintf("%s<p class=\"gloss__line gloss__line--%d\">%s</p>\n",
			ind+ind+ind, g.AlignedTiers[j], htmlCell(&c))
		if err := writeString(w, line); err != nil {
			return err
		}
	}
	return writeString(w, ind+ind+"</div>\n")
}

func htmlCell(c *gloss.Cell) string {
	if c.Empty {
		return "&nbsp;"
	}
	var sb strings.Builder
	for _, s := range c.Spans {
		if !s.Abbr {
			sb.WriteString(html.EscapeString(s.Text))
			continue
		}
		if s.Definition == "" {
			sb.WriteString("<abbr class=\"gloss__abbr\">")
		} else {
			fmt.Fprintf(&sb, "<abbr class=\"gloss__abbr\" title=\"%s\">", html.EscapeString(s.Definition))
		}
		sb.WriteString(html.EscapeString(s.Text))
		sb.WriteString("</abbr>")
	}
	return sb.String()
}
