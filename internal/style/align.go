package style

import (
	"fmt"
	"regexp"
)

// AlignRule marks one token text as alignable when its owner's class name
// matches Owner. Single-line comments are configured under the text "//".
type AlignRule struct {
	Token string
	Owner *regexp.Regexp
}

// NewAlignRule compiles an owner pattern into a rule.
func NewAlignRule(tokenText, ownerPattern string) (AlignRule, error) {
	re, err := regexp.Compile(ownerPattern)
	if err != nil {
		return AlignRule{}, fmt.Errorf("style: align owner pattern for %q: %w", tokenText, err)
	}
	return AlignRule{Token: tokenText, Owner: re}, nil
}

func mustRule(tokenText, ownerPattern string) AlignRule {
	return AlignRule{Token: tokenText, Owner: regexp.MustCompile(ownerPattern)}
}

var alignPresets = map[string][]AlignRule{
	"none": {},
	"some": {
		mustRule("extends", `Template|Defn\.`),
		mustRule("%", `Term\.ApplyInfix`),
		mustRule("%%", `Term\.ApplyInfix`),
		mustRule("=>", `Case`),
		mustRule("<-", `Enumerator\.Generator`),
		mustRule("//", `.*`),
	},
	"more": {
		mustRule("extends", `Template|Defn\.`),
		mustRule("%", `Term\.ApplyInfix`),
		mustRule("%%", `Term\.ApplyInfix`),
		mustRule("=>", `Case`),
		mustRule("<-", `Enumerator\.Generator`),
		mustRule("//", `.*`),
		mustRule("=", `Defn\.(Va(l|r)|Def|Type)|Term\.Assign`),
		mustRule("->", `Term\.ApplyInfix`),
	},
	"most": {
		mustRule("extends", `Template|Defn\.`),
		mustRule("%", `Term\.ApplyInfix`),
		mustRule("%%", `Term\.ApplyInfix`),
		mustRule("=>", `Case`),
		mustRule("<-", `Enumerator\.Generator`),
		mustRule("//", `.*`),
		mustRule("=", `Defn\.(Va(l|r)|Def|Type)|Term\.Assign`),
		mustRule("->", `Term\.ApplyInfix`),
		mustRule(":", `Decl\.|Defn\.`),
		mustRule("{", `Template`),
	},
}

// AlignPreset returns the named built-in rule set.
func AlignPreset(name string) ([]AlignRule, error) {
	rules, ok := alignPresets[name]
	if !ok {
		return nil, fmt.Errorf("style: unknown align preset %q", name)
	}
	out := make([]AlignRule, len(rules))
	copy(out, rules)
	return out, nil
}
