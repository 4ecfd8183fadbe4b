package dialect

import "fmt"

// Kind represents a Scala edition a source file is parsed as.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindScala211
	KindScala212
	KindScala213
	KindScala3

	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindScala211:
		return "scala211"
	case KindScala212:
		return "scala212"
	case KindScala213:
		return "scala213"
	case KindScala3:
		return "scala3"
	default:
		return "unknown"
	}
}

func (k Kind) GoString() string {
	return fmt.Sprintf("Kind(%s)", k.String())
}

// Parse resolves a dialect name as written in configuration.
func Parse(name string) (Kind, error) {
	for k := KindScala211; k < kindCount; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("dialect: unknown dialect %q", name)
}

// UnmarshalText lets configuration decoders read dialect names directly.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// AllowTrailingCommas reports whether the edition's grammar accepts trailing
// commas in argument and import lists. 2.11 predates the grammar change.
func (k Kind) AllowTrailingCommas() bool {
	switch k {
	case KindScala212, KindScala213, KindScala3:
		return true
	default:
		return false
	}
}
