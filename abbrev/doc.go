// Package abbrev decorates gloss tokens with grammatical-abbreviation
// annotations.
//
// # Usage
//
//	spans := abbrev.Tag("AMAR-1SG", abbrev.Leipzig())
//	// AMAR -> marked, no definition
//	// -    -> plain
//	// 1    -> marked, "first person"
//	// SG   -> marked, "singular"
//
// Recognized codes are a single digit 0-4 followed by an upper-case letter
// or a word boundary, and maximal upper-case runs. A code prefixed with a
// literal N whose base form is in the table is treated as negated: NPST
// with PST="past" carries the definition "non-past". This is a fixed
// convention of the glossing notation, not inferred negation.
package abbrev
