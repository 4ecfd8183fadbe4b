package style

import (
	"fmt"
	"strings"
)

// Case is a literal-suffix case normalization rule.
type Case uint8

const (
	// CasePreserve leaves literal text unchanged.
	CasePreserve Case = iota
	// CaseLower lowercases the literal text.
	CaseLower
	// CaseUpper uppercases the literal text.
	CaseUpper
)

// Apply normalizes s according to the rule.
func (c Case) Apply(s string) string {
	switch c {
	case CaseLower:
		return strings.ToLower(s)
	case CaseUpper:
		return strings.ToUpper(s)
	default:
		return s
	}
}

func (c Case) String() string {
	switch c {
	case CaseLower:
		return "lower"
	case CaseUpper:
		return "upper"
	default:
		return "preserve"
	}
}

// ParseCase resolves a case rule name as written in configuration.
func ParseCase(name string) (Case, error) {
	switch name {
	case "preserve":
		return CasePreserve, nil
	case "lower":
		return CaseLower, nil
	case "upper":
		return CaseUpper, nil
	default:
		return CasePreserve, fmt.Errorf("style: unknown literal case %q", name)
	}
}

// TrailingCommas is the trailing-comma policy for multi-line comma lists.
// The set is deliberately open: the upstream formatter grew more values over
// time, and only Never/Always change the output today.
type TrailingCommas uint8

const (
	// TrailingCommasNever removes trailing commas from multi-line lists.
	TrailingCommasNever TrailingCommas = iota
	// TrailingCommasAlways inserts trailing commas into multi-line lists.
	TrailingCommasAlways
	// TrailingCommasPreserve leaves multi-line lists as the source wrote
	// them. Single-line trailing commas are still removed unconditionally.
	TrailingCommasPreserve
)

func (p TrailingCommas) String() string {
	switch p {
	case TrailingCommasAlways:
		return "always"
	case TrailingCommasPreserve:
		return "preserve"
	default:
		return "never"
	}
}

// ParseTrailingCommas resolves a policy name as written in configuration.
func ParseTrailingCommas(name string) (TrailingCommas, error) {
	switch name {
	case "never":
		return TrailingCommasNever, nil
	case "always":
		return TrailingCommasAlways, nil
	case "preserve":
		return TrailingCommasPreserve, nil
	default:
		return TrailingCommasNever, fmt.Errorf("style: unknown trailing-commas policy %q", name)
	}
}
