// Package gloss assembles tokenized, aligned, and tagged tiers into
// renderable gloss units.
//
// # Usage
//
//	cfg := gloss.DefaultConfig()
//	g, err := gloss.Process(cfg, []gloss.Tier{
//	    {Text: "amar"},
//	    {Text: "AMAR-1SG"},
//	    {Text: "I love"},
//	})
//
// Process runs the fixed per-gloss pipeline: tokenize every aligned tier,
// align the token sequences into word columns, tag the non-primary cells of
// each word, and emit an ordered sequence of units (passthrough lines and
// aligned words) for a renderer. Glosses are independent of each other; a
// Config is read-only and may be shared across concurrent Process calls.
//
// # Related Packages
//
//   - github.com/lingweave/interlinear/token - tier tokenization
//   - github.com/lingweave/interlinear/align - column alignment
//   - github.com/lingweave/interlinear/abbrev - abbreviation tagging
//   - github.com/lingweave/interlinear/encode - rendering of gloss units
package gloss
