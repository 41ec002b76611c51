package morph

import (
	"strings"
	"testing"

	"github.com/lingweave/interlinear/token"
)

func TestPOSCode(t *testing.T) {
	tts := []struct {
		in   []string
		want string
	}{
		{[]string{"名詞", "一般"}, "NOUN"},
		{[]string{"名詞", "代名詞", "一般"}, "PRO"},
		{[]string{"名詞", "数"}, "NUM"},
		{[]string{"動詞", "自立"}, "VERB"},
		{[]string{"助動詞"}, "AUX"},
		{[]string{"未知の品詞"}, "X"},
		{nil, "X"},
	}
	for _, tt := range tts {
		if got := POSCode(tt.in); got != tt.want {
			t.Errorf("POSCode(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTiersAlign(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatal(err)
	}
	tiers := g.Tiers("猫が魚を食べた。")
	if len(tiers) != 3 {
		t.Fatalf("%d tiers, want 3", len(tiers))
	}
	p := token.Default()
	n := len(p.Tokenize(tiers[0]))
	if n == 0 {
		t.Fatalf("no tokens in surface tier %q", tiers[0])
	}
	for i, tier := range tiers {
		if got := len(p.Tokenize(tier)); got != n {
			t.Errorf("tier %d has %d tokens, want %d (%q)", i, got, n, tier)
		}
	}
	if !strings.Contains(tiers[2], "PRT") {
		t.Errorf("POS tier %q missing particle code", tiers[2])
	}
}
