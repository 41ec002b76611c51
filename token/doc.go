// Package token splits a tier's raw text into morpheme/word tokens.
//
// # Usage
//
//	// Tokenize with the default pattern set
//	toks := token.Default().Tokenize("{a b c} d")
//	// toks == []string{"a b c", "d"}
//
//	// Compile a custom pattern set
//	p, err := token.Compile([]string{`{(.*?)}`, `[^\s-]+`})
//	if err != nil {
//	    return err
//	}
//	toks = p.Tokenize("gato-s")
//
// A pattern set is an ordered list of regexp fragments joined by
// alternation. Earlier fragments win at a shared start position, which is
// why the default set lists the brace-group fragment before the bare-token
// fragment: a brace-delimited run is preferred over splitting it.
//
// # Related Packages
//
//   - github.com/lingweave/interlinear/align - column alignment of token sequences
//   - github.com/lingweave/interlinear/abbrev - abbreviation tagging of tokens
package token
