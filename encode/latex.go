package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/lingweave/interlinear/gloss"
)

// encodeLaTeX renders g as an expex glossing example: aligned tiers become
// \gla, \glb, \glc... lines (expex aligns columns on whitespace) and
// trailing passthrough lines become \glft free translations. Leading
// passthrough lines (the original orthography) are emitted as comments
// above the example. Abbreviation spans render in small caps.
func encodeLaTeX(g *gloss.Gloss, w io.Writer, es *EncState) error {
	var leading, trailing []gloss.Unit
	seenWord := false
	for _, u := range g.Units {
		if u.Kind == gloss.Word {
			seenWord = true
			continue
		}
		if seenWord {
			trailing = append(trailing, u)
		} else {
			leading = append(leading, u)
		}
	}
	for _, u := range leading {
		if err := writeString(w, "% "+u.Content+"\n"); err != nil {
			return err
		}
	}
	if err := writeString(w, "\\begingl\n"); err != nil {
		return err
	}
	words := g.Words()
	for j := range g.AlignedTiers {
		cells := make([]string, len(words))
		for i, word := range words {
			cells[i] = texCell(&word.Cells[j])
		}
		line := fmt.Sprintf("\\gl%c %s//\n", 'a'+j, strings.Join(cells, " "))
		if err := writeString(w, line); err != nil {
			return err
		}
	}
	for _, u := range trailing {
		if err := writeString(w, fmt.Sprintf("\\glft `%s'//\n", texEscape(u.Content))); err != nil {
			return err
		}
	}
	return writeString(w, "\\endgl\n")
}

func texCell(c *gloss.Cell) string {
	if c.Empty {
		return "{}"
	}
	var sb strings.Builder
	for _, s := range c.Spans {
		if s.Abbr {
			sb.WriteString("\\textsc{")
			sb.WriteString(texEscape(strings.ToLower(s.Text)))
			sb.WriteString("}")
			continue
		}
		sb.WriteString(texEscape(s.Text))
	}
	return sb.String()
}

var texEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

func texEscape(s string) string {
	return texEscaper.Replace(s)
}
