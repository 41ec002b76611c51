// Package parse reads gloss source documents.
//
// A gloss document is plain text: each gloss is a block of tier lines, and
// blocks are separated by one or more blank lines. Lines starting with '#'
// are comments. A tier line starting with '%' is passed through without
// tokenization or alignment, with the '%' (and one following space, if
// present) stripped:
//
//	# Spanish, basic agreement
//	gato-s negro-s
//	cat-PL black-PL
//	black cats
//
//	%(elicited 2019-05-12)
//	amar
//	AMAR-1SG
//	I love
//
// # Related Packages
//
//   - github.com/lingweave/interlinear/gloss - processing of parsed blocks
package parse
