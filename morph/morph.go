// Package morph builds gloss tiers from raw Japanese text.
//
// Segmentation comes from morphological analysis with kagome and the IPA
// dictionary. The result is three tier texts ready for the normal gloss
// pipeline: segmented surface forms, katakana readings, and upper-case POS
// codes the abbreviation tagger can decorate.
package morph

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Glosser wraps a kagome tokenizer. It is safe for concurrent use.
type Glosser struct {
	t *tokenizer.Tokenizer
}

func New() (*Glosser, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Glosser{t: t}, nil
}

// Tiers analyzes text and returns three tier texts: surface, reading, and
// POS codes. The tiers have one token per morpheme each, so they align
// one-to-one. Tokens containing whitespace are brace-wrapped so the
// tokenizer keeps them whole.
func (g *Glosser) Tiers(text string) []string {
	toks := g.t.Tokenize(text)
	surface := make([]string, len(toks))
	reading := make([]string, len(toks))
	pos := make([]string, len(toks))
	for i, tok := range toks {
		surface[i] = braceWrap(tok.Surface)
		r, ok := tok.Reading()
		if !ok || r == "" {
			r = tok.Surface
		}
		reading[i] = braceWrap(r)
		pos[i] = POSCode(tok.POS())
	}
	return []string{
		strings.Join(surface, " "),
		strings.Join(reading, " "),
		strings.Join(pos, " "),
	}
}

// posCodes maps IPA dictionary POS names to gloss codes. The second-level
// feature wins over the first when both are listed.
var posCodes = map[string]string{
	"名詞":   "NOUN",
	"代名詞":  "PRO",
	"数":    "NUM",
	"動詞":   "VERB",
	"形容詞":  "ADJ",
	"副詞":   "ADV",
	"連体詞":  "ADN",
	"接続詞":  "CONJ",
	"助詞":   "PRT",
	"助動詞":  "AUX",
	"感動詞":  "INTJ",
	"接頭詞":  "PREF",
	"記号":   "PUNCT",
	"フィラー": "FILL",
}

// POSCode maps a kagome POS feature list to an upper-case gloss code.
func POSCode(features []string) string {
	code := ""
	for i, f := range features {
		if i > 1 {
			break
		}
		if c, ok := posCodes[f]; ok {
			code = c
		}
	}
	if code == "" {
		return "X"
	}
	return code
}

func braceWrap(s string) string {
	if strings.ContainsAny(s, " \t") {
		return "{" + s + "}"
	}
	return s
}
