package abbrev

import (
	"regexp"
	"strings"

	"github.com/lingweave/interlinear/debug"
)

// Span is one segment of an annotated token. Abbr marks segments recognized
// as abbreviation codes; such a segment carries the code's definition when
// the table resolves it, and an empty Definition otherwise.
type Span struct {
	Text       string `json:"text"`
	Abbr       bool   `json:"abbr,omitempty"`
	Definition string `json:"definition,omitempty"`
}

// A digit code only counts when followed by an upper-case letter or a word
// boundary, a lookahead RE2 cannot express, so that check happens in code
// after matching. Digit matches are one byte long, so rejecting one resumes
// at exactly the position the non-overlapping scan continues from.
var scanRE = regexp.MustCompile(`\b[0-4]|N?[A-Z]+\b`)

// Tag scans tok once, left to right, and returns it as a span sequence with
// every recognized abbreviation substring marked. Text outside any match
// passes through in plain spans. The scan never re-tags its own output.
func Tag(tok string, t Table) []Span {
	var spans []Span
	plain := 0
	for _, loc := range scanRE.FindAllStringIndex(tok, -1) {
		start, end := loc[0], loc[1]
		m := tok[start:end]
		if isDigit(m) && !upperOrBoundary(tok, end) {
			continue
		}
		if start > plain {
			spans = append(spans, Span{Text: tok[plain:start]})
		}
		spans = append(spans, resolve(m, t))
		plain = end
	}
	if plain < len(tok) {
		spans = append(spans, Span{Text: tok[plain:]})
	}
	if debug.Tag() {
		debug.Logf("tag: %q -> %+v\n", tok, spans)
	}
	return spans
}

func isDigit(m string) bool {
	return len(m) == 1 && m[0] >= '0' && m[0] <= '4'
}

func upperOrBoundary(tok string, i int) bool {
	if i >= len(tok) {
		return true
	}
	c := tok[i]
	if c >= 'A' && c <= 'Z' {
		return true
	}
	return !wordByte(c)
}

func wordByte(c byte) bool {
	return c == '_' ||
		c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z'
}

func resolve(m string, t Table) Span {
	if def, ok := t[m]; ok {
		return Span{Text: m, Abbr: true, Definition: def}
	}
	if len(m) > 1 && m[0] == 'N' {
		if def, ok := t[m[1:]]; ok {
			return Span{Text: m, Abbr: true, Definition: "non-" + def}
		}
	}
	return Span{Text: m, Abbr: true}
}

// Flatten returns the plain text of a span sequence, the original token.
func Flatten(spans []Span) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}
