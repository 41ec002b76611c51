package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lingweave/interlinear/gloss"
)

func TestParseBlocks(t *testing.T) {
	doc := `# a comment

gato-s negro-s
cat-PL black-PL
black cats


% elicited 2019-05-12
amar
AMAR-1SG
I love
`
	blocks, err := ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := []Block{
		{
			Line: 3,
			Tiers: []gloss.Tier{
				{Text: "gato-s negro-s"},
				{Text: "cat-PL black-PL"},
				{Text: "black cats"},
			},
		},
		{
			Line: 8,
			Tiers: []gloss.Tier{
				{Text: "elicited 2019-05-12", NoAlign: true},
				{Text: "amar"},
				{Text: "AMAR-1SG"},
				{Text: "I love"},
			},
		},
	}
	if diff := cmp.Diff(want, blocks); diff != "" {
		t.Errorf("Parse: %s", diff)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	for _, doc := range []string{"", "\n\n", "# only comments\n\n# more\n"} {
		blocks, err := ParseString(doc)
		if err != nil {
			t.Fatal(err)
		}
		if len(blocks) != 0 {
			t.Errorf("ParseString(%q): %d blocks, want 0", doc, len(blocks))
		}
	}
}

func TestParseCommentInsideBlock(t *testing.T) {
	blocks, err := ParseString("a b\n# note\nA B\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 1 || len(blocks[0].Tiers) != 2 {
		t.Fatalf("blocks = %+v", blocks)
	}
}

func TestParseCRLF(t *testing.T) {
	blocks, err := ParseString("a\r\nA\r\n")
	if err != nil {
		t.Fatal(err)
	}
	if blocks[0].Tiers[0].Text != "a" {
		t.Errorf("tier = %q", blocks[0].Tiers[0].Text)
	}
}
