package gloss

import (
	"fmt"

	"github.com/lingweave/interlinear/abbrev"
	"github.com/lingweave/interlinear/align"
	"github.com/lingweave/interlinear/token"
)

// Tier is one line of a gloss as handed to Process. NoAlign marks a line
// that bypasses tokenization and alignment regardless of its position.
type Tier struct {
	Text    string
	NoAlign bool
}

type UnitKind int

const (
	// Passthrough is a tier rendered as-is: an original line, a free
	// translation, or a line explicitly marked do-not-align.
	Passthrough UnitKind = iota
	// Word is one aligned column with a cell per aligned tier.
	Word
)

func (k UnitKind) String() string {
	switch k {
	case Passthrough:
		return "passthrough"
	case Word:
		return "word"
	default:
		return fmt.Sprintf("<unit kind %d>", int(k))
	}
}

func (k UnitKind) MarshalText() ([]byte, error) {
	switch k {
	case Passthrough, Word:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("%w: unit kind %d", ErrInvalidGlossInput, int(k))
	}
}

func (k *UnitKind) UnmarshalText(d []byte) error {
	switch string(d) {
	case "passthrough":
		*k = Passthrough
	case "word":
		*k = Word
	default:
		return fmt.Errorf("%w: unit kind %q", ErrInvalidGlossInput, string(d))
	}
	return nil
}

// Cell is one aligned tier's content within a Word unit. Empty cells stand
// in for tiers shorter than the word position and must render as a
// non-collapsing placeholder.
type Cell struct {
	Tier  int           `json:"tier"`
	Empty bool          `json:"empty,omitempty"`
	Spans []abbrev.Span `json:"spans,omitempty"`
}

// Text returns the cell's plain text.
func (c *Cell) Text() string {
	return abbrev.Flatten(c.Spans)
}

// Unit is one line descriptor of a processed gloss: either a passthrough
// line (Tier, Content) or an aligned word (Cells, one per aligned tier).
type Unit struct {
	Kind    UnitKind `json:"kind"`
	Tier    int      `json:"tier,omitempty"`
	Content string   `json:"content,omitempty"`
	Cells   []Cell   `json:"cells,omitempty"`
}

// Gloss is the processed form of one tiered-text unit. Units are ordered as
// in the source document: leading passthrough lines, then the word units in
// place of the aligned block, then trailing passthrough lines.
type Gloss struct {
	Units []Unit `json:"units"`
	// AlignedTiers lists the source indexes of the aligned tiers, in
	// order; word cells appear in this tier order.
	AlignedTiers []int `json:"alignedTiers,omitempty"`
	// AlignedOffset is the source tier index where aligned content
	// starts, -1 when every tier is a passthrough.
	AlignedOffset int `json:"alignedOffset"`
	// Spacing is the configured presentation flag, passed through
	// unchanged for the renderer.
	Spacing bool `json:"spacing"`
}

// Words returns the word units of g, in column order.
func (g *Gloss) Words() []Unit {
	var ws []Unit
	for _, u := range g.Units {
		if u.Kind == Word {
			ws = append(ws, u)
		}
	}
	return ws
}

// Process runs the gloss pipeline on one tiered-text unit: tokenize every
// aligned tier, align the token sequences, tag non-primary cells, and
// assemble the ordered unit sequence. It fails with ErrInvalidGlossInput
// when handed zero tiers; a failed gloss does not affect any other gloss.
func Process(cfg *Config, tiers []Tier) (*Gloss, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: gloss has no tiers", ErrInvalidGlossInput)
	}
	pat := cfg.Pattern
	if pat == nil {
		pat = token.Default()
	}

	n := len(tiers)
	skip := make([]bool, n)
	if cfg.FirstTierIsOriginal {
		skip[0] = true
	}
	// A single tier claimed as the original line cannot also be the
	// free translation.
	if cfg.LastTierIsFreeTranslation && !skip[n-1] {
		skip[n-1] = true
	}
	for i := range tiers {
		if tiers[i].NoAlign {
			skip[i] = true
		}
	}

	var (
		alignedIdx []int
		seqs       [][]string
	)
	for i := range tiers {
		if skip[i] {
			continue
		}
		alignedIdx = append(alignedIdx, i)
		seqs = append(seqs, pat.Tokenize(tiers[i].Text))
	}
	matrix := align.Align(seqs)

	g := &Gloss{
		AlignedTiers:  alignedIdx,
		AlignedOffset: -1,
		Spacing:       cfg.Spacing,
	}
	if len(alignedIdx) > 0 {
		g.AlignedOffset = alignedIdx[0]
	}

	emitted := false
	for i := range tiers {
		if skip[i] {
			g.Units = append(g.Units, Unit{Kind: Passthrough, Tier: i, Content: tiers[i].Text})
			continue
		}
		if emitted {
			continue
		}
		emitted = true
		for _, col := range matrix {
			cells := make([]Cell, len(col))
			for j, c := range col {
				cells[j] = makeCell(cfg, alignedIdx[j], j, c)
			}
			g.Units = append(g.Units, Unit{Kind: Word, Cells: cells})
		}
	}
	return g, nil
}

// ProcessTexts is Process over bare tier texts with no do-not-align marks.
func ProcessTexts(cfg *Config, texts []string) (*Gloss, error) {
	tiers := make([]Tier, len(texts))
	for i, t := range texts {
		tiers[i] = Tier{Text: t}
	}
	return Process(cfg, tiers)
}

// makeCell tags a cell when auto-tagging applies. The first aligned tier of
// a word (local index 0) is the segmented form, never an abbreviation tier,
// so it is never tagged.
func makeCell(cfg *Config, tier, local int, c align.Cell) Cell {
	if c.Empty {
		return Cell{Tier: tier, Empty: true}
	}
	if cfg.AutoTag && local > 0 {
		tbl := cfg.Abbreviations
		if tbl == nil {
			tbl = abbrev.Leipzig()
		}
		return Cell{Tier: tier, Spans: abbrev.Tag(c.Text, tbl)}
	}
	return Cell{Tier: tier, Spans: []abbrev.Span{{Text: c.Text}}}
}
