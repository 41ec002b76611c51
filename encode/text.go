package encode

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/lingweave/interlinear/abbrev"
	"github.com/lingweave/interlinear/gloss"
)

// encodeText renders the classic column-padded interlinear layout: one
// output line per tier, with every word padded to its column width so the
// tiers line up. Passthrough lines print as-is in document order.
func encodeText(g *gloss.Gloss, w io.Writer, es *EncState) error {
	words := g.Words()
	widths := make([]int, len(words))
	for i, u := range words {
		for _, c := range u.Cells {
			if n := utf8.RuneCountInString(c.Text()); n > widths[i] {
				widths[i] = n
			}
		}
	}
	sep := "  "
	if !g.Spacing {
		sep = " "
	}

	emitted := false
	for _, u := range g.Units {
		if u.Kind == gloss.Passthrough {
			if err := writeString(w, es.color(PassthroughColor, u.Content)+"\n"); err != nil {
				return err
			}
			continue
		}
		if emitted {
			continue
		}
		emitted = true
		for j := range g.AlignedTiers {
			if err := writeTextTier(w, es, words, widths, j, sep); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeTextTier(w io.Writer, es *EncState, words []gloss.Unit, widths []int, tier int, sep string) error {
	parts := make([]string, len(words))
	for i, u := range words {
		c := &u.Cells[tier]
		parts[i] = textCell(es, c)
		if pad := widths[i] - utf8.RuneCountInString(c.Text()); pad > 0 {
			parts[i] += strings.Repeat(" ", pad)
		}
	}
	line := strings.TrimRight(strings.Join(parts, sep), " ")
	return writeString(w, line+"\n")
}

func textCell(es *EncState, c *gloss.Cell) string {
	if c.Empty {
		return ""
	}
	var sb strings.Builder
	for _, s := range c.Spans {
		sb.WriteString(es.color(spanAttr(s), s.Text))
	}
	return sb.String()
}

func spanAttr(s abbrev.Span) ColorAttr {
	switch {
	case !s.Abbr:
		return ColorAttr(-1)
	case s.Definition == "":
		return UnknownAbbrColor
	default:
		return AbbrColor
	}
}
