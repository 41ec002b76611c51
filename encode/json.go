package encode

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lingweave/interlinear/gloss"
)

func encodeJSON(g *gloss.Gloss, w io.Writer, es *EncState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", strings.Repeat(" ", es.indent))
	return enc.Encode(g)
}
