package gloss

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lingweave/interlinear/abbrev"
)

func TestProcessEndToEnd(t *testing.T) {
	g, err := Process(DefaultConfig(), []Tier{
		{Text: "amar"},
		{Text: "AMAR-1SG"},
		{Text: "I love"},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := &Gloss{
		Units: []Unit{
			{
				Kind: Word,
				Cells: []Cell{
					{Tier: 0, Spans: []abbrev.Span{{Text: "amar"}}},
					{Tier: 1, Spans: []abbrev.Span{
						{Text: "AMAR", Abbr: true},
						{Text: "-"},
						{Text: "1", Abbr: true, Definition: "first person"},
						{Text: "SG", Abbr: true, Definition: "singular"},
					}},
				},
			},
			{Kind: Passthrough, Tier: 2, Content: "I love"},
		},
		AlignedTiers:  []int{0, 1},
		AlignedOffset: 0,
		Spacing:       true,
	}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("Process: %s", diff)
	}
}

func TestProcessOriginalLine(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FirstTierIsOriginal = true
	g, err := Process(cfg, []Tier{
		{Text: "Amárlo."},
		{Text: "amar-lo"},
		{Text: "love.INF-3SG"},
		{Text: "to love him"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if g.AlignedOffset != 1 {
		t.Errorf("AlignedOffset = %d, want 1", g.AlignedOffset)
	}
	if got, want := len(g.Units), 3; got != want {
		// original + one word column + free translation
		t.Fatalf("%d units, want %d", got, want)
	}
	if g.Units[0].Kind != Passthrough || g.Units[0].Tier != 0 {
		t.Errorf("unit 0 = %+v, want passthrough of tier 0", g.Units[0])
	}
	if g.Units[1].Kind != Word {
		t.Errorf("unit 1 = %+v, want word", g.Units[1])
	}
	if g.Units[2].Kind != Passthrough || g.Units[2].Tier != 3 {
		t.Errorf("unit 2 = %+v, want passthrough of tier 3", g.Units[2])
	}
}

func TestProcessRaggedTiers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LastTierIsFreeTranslation = false
	g, err := Process(cfg, []Tier{
		{Text: "gato-s negro-s"},
		{Text: "cat-PL"},
	})
	if err != nil {
		t.Fatal(err)
	}
	ws := g.Words()
	if len(ws) != 2 {
		t.Fatalf("%d word columns, want 2", len(ws))
	}
	second := ws[1].Cells
	if second[0].Text() != "negro-s" {
		t.Errorf("cell 0 of column 1 = %q", second[0].Text())
	}
	if !second[1].Empty {
		t.Errorf("cell 1 of column 1 not empty: %+v", second[1])
	}
}

func TestProcessNoAlignTier(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LastTierIsFreeTranslation = false
	g, err := Process(cfg, []Tier{
		{Text: "note to the reader", NoAlign: true},
		{Text: "gato-s"},
		{Text: "cat-PL"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if g.Units[0].Kind != Passthrough || g.Units[0].Content != "note to the reader" {
		t.Errorf("unit 0 = %+v", g.Units[0])
	}
	if g.AlignedOffset != 1 {
		t.Errorf("AlignedOffset = %d, want 1", g.AlignedOffset)
	}
}

func TestProcessAutoTagOff(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoTag = false
	cfg.LastTierIsFreeTranslation = false
	g, err := Process(cfg, []Tier{{Text: "amar"}, {Text: "AMAR-1SG"}})
	if err != nil {
		t.Fatal(err)
	}
	cells := g.Words()[0].Cells
	want := []abbrev.Span{{Text: "AMAR-1SG"}}
	if diff := cmp.Diff(want, cells[1].Spans); diff != "" {
		t.Errorf("spans with autoTag off: %s", diff)
	}
}

func TestProcessZeroTiers(t *testing.T) {
	_, err := Process(DefaultConfig(), nil)
	if !errors.Is(err, ErrInvalidGlossInput) {
		t.Errorf("err = %v, want ErrInvalidGlossInput", err)
	}
}

func TestProcessSingleTierAllPassthrough(t *testing.T) {
	g, err := Process(DefaultConfig(), []Tier{{Text: "just a translation"}})
	if err != nil {
		t.Fatal(err)
	}
	if g.AlignedOffset != -1 {
		t.Errorf("AlignedOffset = %d, want -1", g.AlignedOffset)
	}
	if len(g.Units) != 1 || g.Units[0].Kind != Passthrough {
		t.Errorf("units = %+v", g.Units)
	}
}
