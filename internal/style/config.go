package style

import (
	"github.com/xavierguihot/scalafmt/internal/dialect"
)

// Config is the full set of options the renderer consults. The zero value is
// not usable directly; call Default or Config.WithDefaults.
type Config struct {
	// ReformatDocstrings re-indents the interior asterisk lines of block
	// comments.
	ReformatDocstrings bool
	// ScaladocIndent uses the two-space scaladoc asterisk indent for doc
	// comments instead of the javadoc one-space indent.
	ScaladocIndent bool
	// StripMargin re-indents the pipe margins of multiline strings and
	// interpolations.
	StripMargin bool

	// TrailingCommas is the policy for multi-line comma lists.
	TrailingCommas TrailingCommas

	// AlignRules lists the alignable token texts with their owner patterns.
	AlignRules []AlignRule
	// AlignTreeCategory merges owner tree-kind names into equivalence
	// classes before alignment keys are compared.
	AlignTreeCategory map[string]string
	// AlignTokenCategory merges token-kind names the same way.
	AlignTokenCategory map[string]string

	// RewriteTokens substitutes exact token texts on output.
	RewriteTokens map[string]string

	// LongLiteralCase, FloatLiteralCase, and DoubleLiteralCase normalize the
	// case of the respective numeric literals. Hex digits after an 0x prefix
	// are never touched by LongLiteralCase.
	LongLiteralCase   Case
	FloatLiteralCase  Case
	DoubleLiteralCase Case

	// BlankBeforeTopLevel inserts a blank line before multi-line top-level
	// statements.
	BlankBeforeTopLevel bool
	// LegacyPackageBlanks keeps the pre-1.x blank-line behavior around
	// package clauses.
	LegacyPackageBlanks bool

	// Dialect gates edition-specific grammar, notably trailing commas.
	Dialect dialect.Kind
}

// Default returns the stock configuration.
func Default() *Config {
	rules, _ := AlignPreset("some")
	return &Config{
		ReformatDocstrings:  true,
		ScaladocIndent:      false,
		StripMargin:         true,
		TrailingCommas:      TrailingCommasNever,
		AlignRules:          rules,
		LongLiteralCase:     CaseUpper,
		FloatLiteralCase:    CaseLower,
		DoubleLiteralCase:   CaseLower,
		BlankBeforeTopLevel: false,
		Dialect:             dialect.KindScala213,
	}
}

// WithDefaults fills the fields that must not stay zero.
func (c Config) WithDefaults() Config {
	if c.Dialect == dialect.KindUnknown {
		c.Dialect = dialect.KindScala213
	}
	return c
}

// AlignRuleFor returns the align rule configured for a token text.
func (c *Config) AlignRuleFor(tokenText string) (AlignRule, bool) {
	for _, r := range c.AlignRules {
		if r.Token == tokenText {
			return r, true
		}
	}
	return AlignRule{}, false
}

// TreeCategory remaps an owner tree-kind name through the configured
// equivalence classes, defaulting to identity.
func (c *Config) TreeCategory(name string) string {
	if mapped, ok := c.AlignTreeCategory[name]; ok {
		return mapped
	}
	return name
}

// TokenCategory remaps a token-kind name the same way.
func (c *Config) TokenCategory(name string) string {
	if mapped, ok := c.AlignTokenCategory[name]; ok {
		return mapped
	}
	return name
}

// RewriteToken substitutes a token text if a rewrite is configured, falling
// back to the original text.
func (c *Config) RewriteToken(text string) string {
	if sub, ok := c.RewriteTokens[text]; ok {
		return sub
	}
	return text
}
