// Package filter selects gloss blocks with compiled expressions.
//
// Expressions use the expr language and are evaluated per block against an
// Env, e.g.:
//
//	ilg render -filter 'len(Tiers) > 2' corpus.gloss
//	ilg render -filter 'Text contains "PST"' corpus.gloss
package filter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/lingweave/interlinear/debug"
)

// Env is the evaluation environment for one gloss block.
type Env struct {
	// Index is the 0-based position of the block in its document.
	Index int
	// Tiers holds the block's tier texts, passthrough tiers included.
	Tiers []string
	// Text is the whole block joined by newlines.
	Text string
}

type Filter struct {
	src string
	prg *vm.Program
}

// Compile compiles a boolean block-selection expression.
func Compile(src string) (*Filter, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", src, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

// Match evaluates the filter against one block's environment.
func (f *Filter) Match(env Env) (bool, error) {
	res, err := expr.Run(f.prg, env)
	if err != nil {
		return false, fmt.Errorf("filter %q: %w", f.src, err)
	}
	v, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q: returned %T, not bool", f.src, res)
	}
	if debug.Filter() {
		debug.Logf("filter: block %d -> %v\n", env.Index, v)
	}
	return v, nil
}

func (f *Filter) String() string {
	return f.src
}
