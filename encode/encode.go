package encode

import (
	"io"

	"github.com/lingweave/interlinear/format"
	"github.com/lingweave/interlinear/gloss"
)

type EncState struct {
	format format.Format
	indent int
	colors *Colors
}

// Encode renders g to w in the configured format (text when unset).
func Encode(g *gloss.Gloss, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.HTMLFormat:
		return encodeHTML(g, w, es)
	case format.LaTeXFormat:
		return encodeLaTeX(g, w, es)
	case format.JSONFormat:
		return encodeJSON(g, w, es)
	default:
		return encodeText(g, w, es)
	}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Color(a, s)
}
