package style

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/xavierguihot/scalafmt/internal/dialect"
)

// rawConfig mirrors the .scalafmt.toml layout. Booleans are pointers so an
// absent key keeps the stock default instead of forcing false.
type rawConfig struct {
	Dialect             string            `toml:"dialect"`
	TrailingCommas      string            `toml:"trailing_commas"`
	StripMargin         *bool             `toml:"strip_margin"`
	BlankBeforeTopLevel *bool             `toml:"blank_line_before_top_level"`
	LegacyPackageBlanks *bool             `toml:"legacy_package_blanks"`
	RewriteTokens       map[string]string `toml:"rewrite_tokens"`
	Docstrings          rawDocstrings     `toml:"docstrings"`
	Literals            rawLiterals       `toml:"literals"`
	Align               rawAlign          `toml:"align"`
}

type rawDocstrings struct {
	Reformat       *bool `toml:"reformat"`
	ScaladocIndent *bool `toml:"scaladoc_indent"`
}

type rawLiterals struct {
	Long   string `toml:"long"`
	Float  string `toml:"float"`
	Double string `toml:"double"`
}

type rawAlign struct {
	Preset        string            `toml:"preset"`
	Tokens        []rawAlignToken   `toml:"tokens"`
	TreeCategory  map[string]string `toml:"tree_category"`
	TokenCategory map[string]string `toml:"token_category"`
}

type rawAlignToken struct {
	Code  string `toml:"code"`
	Owner string `toml:"owner"`
}

// Load reads a .scalafmt.toml file on top of the stock defaults.
func Load(path string) (*Config, error) {
	var raw rawConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("style: %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("style: %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return raw.apply(Default())
}

func (raw rawConfig) apply(cfg *Config) (*Config, error) {
	if raw.Dialect != "" {
		k, err := dialect.Parse(raw.Dialect)
		if err != nil {
			return nil, err
		}
		cfg.Dialect = k
	}
	if raw.TrailingCommas != "" {
		p, err := ParseTrailingCommas(raw.TrailingCommas)
		if err != nil {
			return nil, err
		}
		cfg.TrailingCommas = p
	}
	if raw.StripMargin != nil {
		cfg.StripMargin = *raw.StripMargin
	}
	if raw.BlankBeforeTopLevel != nil {
		cfg.BlankBeforeTopLevel = *raw.BlankBeforeTopLevel
	}
	if raw.LegacyPackageBlanks != nil {
		cfg.LegacyPackageBlanks = *raw.LegacyPackageBlanks
	}
	if raw.RewriteTokens != nil {
		cfg.RewriteTokens = raw.RewriteTokens
	}
	if raw.Docstrings.Reformat != nil {
		cfg.ReformatDocstrings = *raw.Docstrings.Reformat
	}
	if raw.Docstrings.ScaladocIndent != nil {
		cfg.ScaladocIndent = *raw.Docstrings.ScaladocIndent
	}
	if err := raw.Literals.apply(cfg); err != nil {
		return nil, err
	}
	if err := raw.Align.apply(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (raw rawLiterals) apply(cfg *Config) error {
	for _, field := range []struct {
		name  string
		value string
		dst   *Case
	}{
		{"literals.long", raw.Long, &cfg.LongLiteralCase},
		{"literals.float", raw.Float, &cfg.FloatLiteralCase},
		{"literals.double", raw.Double, &cfg.DoubleLiteralCase},
	} {
		if field.value == "" {
			continue
		}
		c, err := ParseCase(field.value)
		if err != nil {
			return fmt.Errorf("style: %s: %w", field.name, err)
		}
		*field.dst = c
	}
	return nil
}

func (raw rawAlign) apply(cfg *Config) error {
	if raw.Preset != "" {
		rules, err := AlignPreset(raw.Preset)
		if err != nil {
			return err
		}
		cfg.AlignRules = rules
	}
	for _, rt := range raw.Tokens {
		rule, err := NewAlignRule(rt.Code, rt.Owner)
		if err != nil {
			return err
		}
		cfg.AlignRules = append(cfg.AlignRules, rule)
	}
	if raw.TreeCategory != nil {
		cfg.AlignTreeCategory = raw.TreeCategory
	}
	if raw.TokenCategory != nil {
		cfg.AlignTokenCategory = raw.TokenCategory
	}
	return nil
}
