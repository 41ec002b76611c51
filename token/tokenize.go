package token

import (
	"github.com/lingweave/interlinear/debug"
)

// Tokenize splits text into tokens by taking all non-overlapping matches of
// the pattern set, left to right. A match wrapped in braces emits its
// interior as a single token; the interior is not re-tokenized. Text that
// matches nothing yields zero tokens.
func (p *Pattern) Tokenize(text string) []string {
	ms := p.re.FindAllString(text, -1)
	if len(ms) == 0 {
		if debug.Token() {
			debug.Logf("token: %q -> no tokens\n", text)
		}
		return nil
	}
	toks := make([]string, len(ms))
	for i, m := range ms {
		if len(m) >= 2 && m[0] == '{' && m[len(m)-1] == '}' {
			m = m[1 : len(m)-1]
		}
		toks[i] = m
	}
	if debug.Token() {
		debug.Logf("token: %q -> %q\n", text, toks)
	}
	return toks
}
