// Package format enumerates the output formats a processed gloss can be
// rendered in.
package format
