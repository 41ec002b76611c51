package textdiff

import (
	"strings"
	"testing"
)

func TestUnifiedEqual(t *testing.T) {
	if d := Unified("a\nb\n", "a\nb\n"); d != "" {
		t.Errorf("diff of equal inputs:\n%s", d)
	}
}

func TestUnifiedChange(t *testing.T) {
	a := "gato-s negro-s\ncat-PL black-PL\n"
	b := "gato-s  negro-s\ncat-PL  black-PL\n"
	d := Unified(a, b)
	for _, frag := range []string{
		"-gato-s negro-s",
		"+gato-s  negro-s",
	} {
		if !strings.Contains(d, frag) {
			t.Errorf("diff missing %q:\n%s", frag, d)
		}
	}
}

func TestUnifiedKeepsContext(t *testing.T) {
	a := "one\ntwo\nthree\n"
	b := "one\nTWO\nthree\n"
	d := Unified(a, b)
	if !strings.Contains(d, " one\n") {
		t.Errorf("diff missing context line:\n%s", d)
	}
	if !strings.Contains(d, "-two\n") || !strings.Contains(d, "+TWO\n") {
		t.Errorf("diff missing change:\n%s", d)
	}
}
