package token

import (
	"errors"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokenizeTest struct {
	in   string
	want []string
}

func TestTokenizeDefault(t *testing.T) {
	tts := []tokenizeTest{
		{
			in:   "amar",
			want: []string{"amar"},
		},
		{
			in:   "AMAR-1SG",
			want: []string{"AMAR-1SG"},
		},
		{
			in:   "gato-s   negro-s",
			want: []string{"gato-s", "negro-s"},
		},
		{
			in:   "{a b c} d",
			want: []string{"a b c", "d"},
		},
		{
			in:   "x {ir a} y",
			want: []string{"x", "ir a", "y"},
		},
		{
			in:   "{}",
			want: []string{""},
		},
		{
			in:   "",
			want: nil,
		},
		{
			in:   "   ",
			want: nil,
		},
	}
	p := Default()
	for _, tt := range tts {
		got := p.Tokenize(tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Tokenize(%q): %s", tt.in, diff)
		}
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	p := Default()
	a := p.Tokenize("{ir a} casa PST")
	b := p.Tokenize("{ir a} casa PST")
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same input, different tokens: %s", diff)
	}
}

func TestTokenizeCustomFragments(t *testing.T) {
	p, err := Compile([]string{`{(.*?)}`, `[^\s-]+`})
	if err != nil {
		t.Fatal(err)
	}
	got := p.Tokenize("gato-s")
	want := []string{"gato", "s"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize: %s", diff)
	}
}

func TestCompileShapes(t *testing.T) {
	for _, spec := range []any{
		nil,
		`([^\s]+)`,
		[]string{`{(.*?)}`, `([^\s]+)`},
		[]any{`{(.*?)}`, `([^\s]+)`},
		regexp.MustCompile(`\S+`),
	} {
		if _, err := Compile(spec); err != nil {
			t.Errorf("Compile(%#v): %v", spec, err)
		}
	}
}

func TestCompileRejects(t *testing.T) {
	for _, spec := range []any{
		[]any{`ok`, 3},
		[]any{nil},
		42,
		map[string]string{"a": "b"},
		[]string{},
		`(`,
	} {
		_, err := Compile(spec)
		if err == nil {
			t.Errorf("Compile(%#v): expected error", spec)
			continue
		}
		if !errors.Is(err, ErrInvalidPatternSet) {
			t.Errorf("Compile(%#v): error %v does not wrap ErrInvalidPatternSet", spec, err)
		}
	}
}

func TestCompiledPassthrough(t *testing.T) {
	re := regexp.MustCompile(`[a-z]+`)
	p, err := Compile(re)
	if err != nil {
		t.Fatal(err)
	}
	got := p.Tokenize("ab12cd")
	want := []string{"ab", "cd"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize: %s", diff)
	}
}
