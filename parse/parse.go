package parse

import (
	"bufio"
	"io"
	"strings"

	"github.com/lingweave/interlinear/gloss"
)

// Block is one gloss unit of a source document. Line is the 1-based source
// line of the block's first tier, kept for error reporting.
type Block struct {
	Tiers []gloss.Tier
	Line  int
}

// Parse reads a gloss document into blocks, in document order.
func Parse(r io.Reader) ([]Block, error) {
	var (
		blocks []Block
		cur    *Block
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r")
		switch {
		case strings.TrimSpace(line) == "":
			if cur != nil {
				blocks = append(blocks, *cur)
				cur = nil
			}
		case strings.HasPrefix(line, "#"):
			continue
		default:
			if cur == nil {
				cur = &Block{Line: ln}
			}
			cur.Tiers = append(cur.Tiers, parseTier(line))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if cur != nil {
		blocks = append(blocks, *cur)
	}
	return blocks, nil
}

// ParseString is Parse over a string.
func ParseString(s string) ([]Block, error) {
	return Parse(strings.NewReader(s))
}

func parseTier(line string) gloss.Tier {
	if rest, ok := strings.CutPrefix(line, "%"); ok {
		rest = strings.TrimPrefix(rest, " ")
		return gloss.Tier{Text: rest, NoAlign: true}
	}
	return gloss.Tier{Text: line}
}
