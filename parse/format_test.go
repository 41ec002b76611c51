package parse

import (
	"testing"
)

func TestFormat(t *testing.T) {
	src := `# corpus
gato-s negro-s
cat-PL   black-PL
black cats

% elicited
{ir a}    casa
go.INF home
I go home
`
	want := `# corpus
gato-s  negro-s
cat-PL  black-PL
black cats

% elicited
{ir a}  casa
go.INF  home
I go home
`
	got, err := Format(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Format:\n%q\nwant:\n%q", got, want)
	}
}

func TestFormatIdempotent(t *testing.T) {
	src := "a   b c\nA B   C\nfree line\n"
	once, err := Format(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Format(once, nil)
	if err != nil {
		t.Fatal(err)
	}
	if once != twice {
		t.Errorf("not idempotent:\n%q\nvs\n%q", once, twice)
	}
}

func TestFormatPreservesPassthrough(t *testing.T) {
	src := "%   note   kept   verbatim\na b\nA B\n"
	got, err := Format(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got[:len("%   note   kept   verbatim")] != "%   note   kept   verbatim" {
		t.Errorf("passthrough line rewritten:\n%q", got)
	}
}
