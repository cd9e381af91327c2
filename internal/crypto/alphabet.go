package crypto

import "strings"

// CharacterClass identifies one of the recognized character categories.
type CharacterClass int

const (
	Uppercase CharacterClass = iota
	Lowercase
	Digits
	Symbols
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// AllClasses lists every class in alphabet order.
var AllClasses = []CharacterClass{Uppercase, Lowercase, Digits, Symbols}

// Charset returns the fixed character set of the class, or "" for unknown values.
func (c CharacterClass) Charset() string {
	switch c {
	case Uppercase:
		return uppercaseChars
	case Lowercase:
		return lowercaseChars
	case Digits:
		return digitChars
	case Symbols:
		return symbolChars
	default:
		return ""
	}
}

func (c CharacterClass) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Digits:
		return "digits"
	case Symbols:
		return "symbols"
	default:
		return "unknown"
	}
}

// BuildAlphabet concatenates the character sets of the enabled classes.
// The result is always ordered uppercase, lowercase, digits, symbols regardless of
// the input order; duplicates and unknown classes are ignored. An empty selection
// yields an empty alphabet.
func BuildAlphabet(classes []CharacterClass) string {
	var sb strings.Builder
	for _, c := range AllClasses {
		if containsClass(classes, c) {
			sb.WriteString(c.Charset())
		}
	}
	return sb.String()
}

func containsClass(classes []CharacterClass, want CharacterClass) bool {
	for _, c := range classes {
		if c == want {
			return true
		}
	}
	return false
}
