// Package encode renders processed glosses.
//
// # Usage
//
//	g, _ := gloss.Process(cfg, tiers)
//	err := encode.Encode(g, os.Stdout)
//
//	// Encode as an HTML fragment
//	err = encode.Encode(g, w, encode.EncodeFormat(format.HTMLFormat))
//
//	// Colorize abbreviation spans for a terminal
//	err = encode.Encode(g, w, encode.EncodeColors(encode.NewColors()))
//
// Encoders consume only the gloss unit sequence; they never read or touch
// the surrounding document.
//
// # Related Packages
//
//   - github.com/lingweave/interlinear/gloss - gloss processing
//   - github.com/lingweave/interlinear/format - output format enum
package encode
