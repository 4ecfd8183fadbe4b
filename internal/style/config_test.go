package style_test

import (
	"testing"

	"github.com/xavierguihot/scalafmt/internal/dialect"
	"github.com/xavierguihot/scalafmt/internal/style"
)

func TestCaseApply(t *testing.T) {
	cases := []struct {
		rule style.Case
		in   string
		want string
	}{
		{style.CasePreserve, "10e3F", "10e3F"},
		{style.CaseLower, "10E3F", "10e3f"},
		{style.CaseUpper, "0xffl", "0XFFL"},
	}
	for _, c := range cases {
		if got := c.rule.Apply(c.in); got != c.want {
			t.Fatalf("%v.Apply(%q): want %q, got %q", c.rule, c.in, c.want, got)
		}
	}
}

func TestParseTrailingCommas(t *testing.T) {
	for _, name := range []string{"never", "always", "preserve"} {
		p, err := style.ParseTrailingCommas(name)
		if err != nil {
			t.Fatalf("parse %q: %v", name, err)
		}
		if p.String() != name {
			t.Fatalf("round trip: want %q, got %q", name, p.String())
		}
	}
	if _, err := style.ParseTrailingCommas("multiple"); err == nil {
		t.Fatalf("unknown policy must not parse")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := style.Default()
	if !cfg.ReformatDocstrings || !cfg.StripMargin {
		t.Fatalf("stock defaults must reformat docstrings and strip margins")
	}
	if cfg.Dialect != dialect.KindScala213 {
		t.Fatalf("stock dialect: want scala213, got %v", cfg.Dialect)
	}
	if _, ok := cfg.AlignRuleFor("=>"); !ok {
		t.Fatalf("preset 'some' must align case arrows")
	}
	if _, ok := cfg.AlignRuleFor("="); ok {
		t.Fatalf("preset 'some' must not align assignments")
	}
}

func TestCategoryRemap(t *testing.T) {
	cfg := style.Default()
	cfg.AlignTreeCategory = map[string]string{"Defn.Val": "Given", "Defn.Var": "Given"}
	if got := cfg.TreeCategory("Defn.Val"); got != "Given" {
		t.Fatalf("tree category: want %q, got %q", "Given", got)
	}
	if got := cfg.TreeCategory("Defn.Def"); got != "Defn.Def" {
		t.Fatalf("tree category identity: want %q, got %q", "Defn.Def", got)
	}
	if got := cfg.TokenCategory("Eq"); got != "Eq" {
		t.Fatalf("token category identity: want %q, got %q", "Eq", got)
	}
}

func TestRewriteToken(t *testing.T) {
	cfg := style.Default()
	cfg.RewriteTokens = map[string]string{"⇒": "=>", "←": "<-"}
	if got := cfg.RewriteToken("⇒"); got != "=>" {
		t.Fatalf("rewrite: want %q, got %q", "=>", got)
	}
	if got := cfg.RewriteToken("x"); got != "x" {
		t.Fatalf("identity fallback: want %q, got %q", "x", got)
	}
}

func TestAlignPreset(t *testing.T) {
	if _, err := style.AlignPreset("nope"); err == nil {
		t.Fatalf("unknown preset must fail")
	}
	none, err := style.AlignPreset("none")
	if err != nil || len(none) != 0 {
		t.Fatalf("preset none: want empty rules, got %v (%v)", none, err)
	}
	most, err := style.AlignPreset("most")
	if err != nil {
		t.Fatalf("preset most: %v", err)
	}
	found := false
	for _, r := range most {
		if r.Token == "=" && r.Owner.MatchString("Defn.Val") {
			found = true
		}
	}
	if !found {
		t.Fatalf("preset most must align = for Defn.Val")
	}
}
