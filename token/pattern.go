package token

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern is a compiled pattern set. It is immutable after Compile and safe
// for concurrent use.
type Pattern struct {
	re *regexp.Regexp
}

// DefaultFragments returns the default pattern fragments: a brace group or
// a maximal run of non-whitespace.
func DefaultFragments() []string {
	return []string{`{(.*?)}`, `([^\s]+)`}
}

var defaultPattern = mustCompile(DefaultFragments())

// Default returns the pattern set built from DefaultFragments.
func Default() *Pattern {
	return defaultPattern
}

// Compile normalizes a pattern-set specification into a Pattern. Accepted
// shapes are a fragment list ([]string, or []any whose elements are all
// strings), a single fragment string, an already compiled *regexp.Regexp,
// or nil for the default set. Anything else fails with ErrInvalidPatternSet.
func Compile(spec any) (*Pattern, error) {
	var frags []string
	switch v := spec.(type) {
	case nil:
		frags = DefaultFragments()
	case *regexp.Regexp:
		if v == nil {
			return nil, fmt.Errorf("%w: nil regexp", ErrInvalidPatternSet)
		}
		return &Pattern{re: v}, nil
	case string:
		frags = []string{v}
	case []string:
		frags = v
	case []any:
		frags = make([]string, len(v))
		for i, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("%w: fragment %d is %T, not string", ErrInvalidPatternSet, i, e)
			}
			frags[i] = s
		}
	default:
		return nil, fmt.Errorf("%w: unsupported shape %T", ErrInvalidPatternSet, spec)
	}
	if len(frags) == 0 {
		return nil, fmt.Errorf("%w: empty fragment list", ErrInvalidPatternSet)
	}
	re, err := regexp.Compile(strings.Join(frags, "|"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPatternSet, err)
	}
	return &Pattern{re: re}, nil
}

// MustCompile is Compile for known-good specifications.
func MustCompile(spec any) *Pattern {
	p, err := Compile(spec)
	if err != nil {
		panic(err)
	}
	return p
}

func mustCompile(frags []string) *Pattern {
	return MustCompile(frags)
}

// String returns the combined regexp source of the pattern set.
func (p *Pattern) String() string {
	return p.re.String()
}
