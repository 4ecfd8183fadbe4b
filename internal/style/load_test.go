package style_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xavierguihot/scalafmt/internal/dialect"
	"github.com/xavierguihot/scalafmt/internal/style"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".scalafmt.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
dialect = "scala3"
trailing_commas = "always"
strip_margin = false

[docstrings]
reformat = true
scaladoc_indent = true

[literals]
long = "upper"
float = "lower"

[align]
preset = "more"

[[align.tokens]]
code = ":="
owner = 'Term\.ApplyInfix'

[rewrite_tokens]
"⇒" = "=>"
`)
	cfg, err := style.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Dialect != dialect.KindScala3 {
		t.Fatalf("dialect: want scala3, got %v", cfg.Dialect)
	}
	if cfg.TrailingCommas != style.TrailingCommasAlways {
		t.Fatalf("trailing commas: want always, got %v", cfg.TrailingCommas)
	}
	if cfg.StripMargin {
		t.Fatalf("strip_margin=false must override the default")
	}
	if !cfg.ScaladocIndent {
		t.Fatalf("scaladoc_indent must be set")
	}
	if _, ok := cfg.AlignRuleFor("="); !ok {
		t.Fatalf("preset more must align assignments")
	}
	rule, ok := cfg.AlignRuleFor(":=")
	if !ok || !rule.Owner.MatchString("Term.ApplyInfix") {
		t.Fatalf("extra align token must be appended")
	}
	if got := cfg.RewriteToken("⇒"); got != "=>" {
		t.Fatalf("rewrite table: want %q, got %q", "=>", got)
	}
}

func TestLoadAbsentKeysKeepDefaults(t *testing.T) {
	path := writeConfig(t, `dialect = "scala212"`)
	cfg, err := style.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.ReformatDocstrings || !cfg.StripMargin {
		t.Fatalf("absent keys must keep stock defaults")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `max_column = 120`)
	if _, err := style.Load(path); err == nil {
		t.Fatalf("unknown key must be rejected")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	for _, body := range []string{
		`dialect = "scala4"`,
		`trailing_commas = "sometimes"`,
		"[literals]\nlong = \"title\"",
		"[[align.tokens]]\ncode = \"=\"\nowner = \"(\"",
	} {
		path := writeConfig(t, body)
		if _, err := style.Load(path); err == nil {
			t.Fatalf("config %q must be rejected", body)
		}
	}
}
