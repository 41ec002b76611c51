package parse

import (
	"strings"
	"unicode/utf8"

	"github.com/lingweave/interlinear/gloss"
)

// Format re-pads the aligned tier lines of every block in src so their
// word columns line up, gofmt-style. Comments, blank lines, passthrough
// markers, and passthrough line content are preserved verbatim. The
// configuration supplies the pattern set and the original/free-translation
// flags; tagging never applies to source text.
func Format(src string, cfg *gloss.Config) (string, error) {
	if cfg == nil {
		cfg = gloss.DefaultConfig()
	}
	lines := strings.Split(src, "\n")
	out := make([]string, len(lines))
	copy(out, lines)

	var idx []int
	flush := func() error {
		if len(idx) == 0 {
			return nil
		}
		tiers := make([]gloss.Tier, len(idx))
		for i, li := range idx {
			tiers[i] = parseTier(lines[li])
		}
		fmtd, err := formatBlock(cfg, tiers)
		if err != nil {
			return err
		}
		for i, li := range idx {
			if fmtd[i] != "" {
				out[li] = fmtd[i]
			}
		}
		idx = nil
		return nil
	}

	for li, line := range lines {
		trimmed := strings.TrimRight(line, "\r")
		switch {
		case strings.TrimSpace(trimmed) == "":
			if err := flush(); err != nil {
				return "", err
			}
		case strings.HasPrefix(trimmed, "#"):
			continue
		default:
			idx = append(idx, li)
		}
	}
	if err := flush(); err != nil {
		return "", err
	}
	return strings.Join(out, "\n"), nil
}

// formatBlock returns one replacement line per tier; passthrough tiers get
// "" meaning keep the source line as-is.
func formatBlock(cfg *gloss.Config, tiers []gloss.Tier) ([]string, error) {
	plain := *cfg
	plain.AutoTag = false
	g, err := gloss.Process(&plain, tiers)
	if err != nil {
		return nil, err
	}
	words := g.Words()
	widths := make([]int, len(words))
	for i, u := range words {
		for j := range u.Cells {
			if n := utf8.RuneCountInString(sourceToken(&u.Cells[j])); n > widths[i] {
				widths[i] = n
			}
		}
	}
	res := make([]string, len(tiers))
	for j, tier := range g.AlignedTiers {
		parts := make([]string, len(words))
		for i, u := range words {
			tok := sourceToken(&u.Cells[j])
			if pad := widths[i] - utf8.RuneCountInString(tok); pad > 0 {
				tok += strings.Repeat(" ", pad)
			}
			parts[i] = tok
		}
		res[tier] = strings.TrimRight(strings.Join(parts, "  "), " ")
	}
	return res, nil
}

// sourceToken writes a cell back in source form, re-wrapping tokens that
// would not survive re-tokenization as a single unit.
func sourceToken(c *gloss.Cell) string {
	if c.Empty {
		return ""
	}
	t := c.Text()
	if strings.ContainsAny(t, " \t") || t == "" {
		return "{" + t + "}"
	}
	return t
}
