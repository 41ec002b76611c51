package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lingweave/interlinear/format"
	"github.com/lingweave/interlinear/gloss"
)

func mustProcess(t *testing.T, cfg *gloss.Config, texts ...string) *gloss.Gloss {
	t.Helper()
	g, err := gloss.ProcessTexts(cfg, texts)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func render(t *testing.T, g *gloss.Gloss, opts ...EncodeOption) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := Encode(g, buf, opts...); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestEncodeText(t *testing.T) {
	g := mustProcess(t, nil,
		"gato-s negro-s",
		"cat-PL black-PL",
		"black cats",
	)
	got := render(t, g)
	want := "" +
		"gato-s  negro-s\n" +
		"cat-PL  black-PL\n" +
		"black cats\n"
	if got != want {
		t.Errorf("text encoding:\n%q\nwant:\n%q", got, want)
	}
}

func TestEncodeTextRaggedPadding(t *testing.T) {
	cfg := gloss.DefaultConfig()
	cfg.LastTierIsFreeTranslation = false
	g := mustProcess(t, cfg,
		"gato-s negro-s",
		"cat-PL",
	)
	got := render(t, g)
	want := "" +
		"gato-s  negro-s\n" +
		"cat-PL\n"
	if got != want {
		t.Errorf("text encoding:\n%q\nwant:\n%q", got, want)
	}
}

func TestEncodeTextNoSpacing(t *testing.T) {
	cfg := gloss.DefaultConfig()
	cfg.Spacing = false
	cfg.LastTierIsFreeTranslation = false
	g := mustProcess(t, cfg, "a b", "x y")
	got := render(t, g)
	want := "a b\nx y\n"
	if got != want {
		t.Errorf("text encoding:\n%q\nwant:\n%q", got, want)
	}
}

func TestEncodeHTML(t *testing.T) {
	g := mustProcess(t, nil, "amar", "AMAR-1SG", "I love")
	got := render(t, g, EncodeFormat(format.HTMLFormat))
	want := `<div class="gloss">
  <div class="gloss__words">
    <div class="gloss__word">
      <p class="gloss__line gloss__line--0">amar</p>
      <p class="gloss__line gloss__line--1"><abbr class="gloss__abbr">AMAR</abbr>-<abbr class="gloss__abbr" title="first person">1</abbr><abbr class="gloss__abbr" title="singular">SG</abbr></p>
    </div>
  </div>
  <p class="gloss__line gloss__line--2">I love</p>
</div>
`
	if got != want {
		t.Errorf("html encoding:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeHTMLEmptyCellAndEscaping(t *testing.T) {
	cfg := gloss.DefaultConfig()
	cfg.LastTierIsFreeTranslation = false
	g := mustProcess(t, cfg, "a<b c", "X")
	got := render(t, g, EncodeFormat(format.HTMLFormat))
	if !strings.Contains(got, "a&lt;b") {
		t.Errorf("content not escaped:\n%s", got)
	}
	if !strings.Contains(got, "&nbsp;") {
		t.Errorf("empty cell not rendered as &nbsp;:\n%s", got)
	}
}

func TestEncodeLaTeX(t *testing.T) {
	g := mustProcess(t, nil, "amar", "AMAR-1SG", "I love")
	got := render(t, g, EncodeFormat(format.LaTeXFormat))
	want := `\begingl
\gla amar//
\glb \textsc{amar}-\textsc{1}\textsc{sg}//
\glft ` + "`I love'//" + `
\endgl
`
	if got != want {
		t.Errorf("latex encoding:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeJSON(t *testing.T) {
	g := mustProcess(t, nil, "amar", "AMAR-1SG", "I love")
	got := render(t, g, EncodeFormat(format.JSONFormat))
	for _, frag := range []string{
		`"kind": "word"`,
		`"kind": "passthrough"`,
		`"alignedOffset": 0`,
		`"definition": "first person"`,
	} {
		if !strings.Contains(got, frag) {
			t.Errorf("json output missing %s:\n%s", frag, got)
		}
	}
}

func TestEncodeColorsPassthrough(t *testing.T) {
	// with no TTY color support forced on, colored output still carries
	// the cell text
	g := mustProcess(t, nil, "amar", "AMAR-1SG", "I love")
	got := render(t, g, EncodeColors(NewColors()))
	for _, frag := range []string{"amar", "AMAR", "1", "SG", "I love"} {
		if !strings.Contains(got, frag) {
			t.Errorf("colored output missing %q:\n%s", frag, got)
		}
	}
}
