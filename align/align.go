// Package align reconciles ragged per-tier token sequences into a
// rectangular matrix of word columns.
package align

import (
	"github.com/lingweave/interlinear/debug"
)

// Cell is one tier's entry in a word column. A Cell with Empty set marks a
// tier that has no token at that column; downstream renderers must keep it
// as a non-collapsing placeholder so column widths stay stable.
type Cell struct {
	Text  string
	Empty bool
}

// EmptyCell is the marker used to pad tiers shorter than the column count.
var EmptyCell = Cell{Empty: true}

// Align builds the column matrix for the given tier sequences. The outer
// index of the result is the column (word position), the inner index the
// tier. Every column has exactly len(seqs) cells; the column count is the
// maximum sequence length, zero when seqs is empty or all sequences are.
func Align(seqs [][]string) [][]Cell {
	cols := 0
	for _, s := range seqs {
		if len(s) > cols {
			cols = len(s)
		}
	}
	res := make([][]Cell, cols)
	for i := range res {
		row := make([]Cell, len(seqs))
		for j, s := range seqs {
			if i < len(s) {
				row[j] = Cell{Text: s[i]}
			} else {
				row[j] = EmptyCell
			}
		}
		res[i] = row
	}
	if debug.Align() {
		debug.Logf("align: %d tiers -> %d columns\n", len(seqs), cols)
	}
	return res
}
