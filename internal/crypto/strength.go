package crypto

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Strength labels.
const (
	LabelTooShort   = "Too Short"
	LabelWeak       = "Weak"
	LabelFair       = "Fair"
	LabelGood       = "Good"
	LabelStrong     = "Strong"
	LabelVeryStrong = "Very Strong"
)

// StrengthResult is the entropy-based rating of a password.
type StrengthResult struct {
	Score    int
	Label    string
	PoolSize int
	Entropy  float64
}

// scoreThresholds are the inclusive lower bounds, in bits, of scores 1 through 4.
var scoreThresholds = [...]struct {
	bits  float64
	score int
	label string
}{
	{128, 4, LabelVeryStrong},
	{60, 3, LabelStrong},
	{36, 2, LabelGood},
	{28, 1, LabelFair},
}

// EstimateStrength rates password by the classes its characters actually come
// from, independent of how it was produced. Characters outside the four
// recognized classes add nothing to the pool.
func EstimateStrength(password string) StrengthResult {
	if password == "" {
		return StrengthResult{Score: 0, Label: LabelTooShort}
	}

	pool := poolSize(password)
	if pool == 0 {
		return StrengthResult{Score: 0, Label: LabelWeak}
	}

	entropy := float64(utf8.RuneCountInString(password)) * math.Log2(float64(pool))
	score, label := classify(entropy)

	return StrengthResult{
		Score:    score,
		Label:    label,
		PoolSize: pool,
		Entropy:  entropy,
	}
}

func classify(bits float64) (int, string) {
	for _, t := range scoreThresholds {
		if bits >= t.bits {
			return t.score, t.label
		}
	}
	return 0, LabelWeak
}

func poolSize(password string) int {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case r < utf8.RuneSelf && strings.ContainsRune(symbolChars, r):
			hasSymbol = true
		}
	}

	pool := 0
	if hasUpper {
		pool += len(uppercaseChars)
	}
	if hasLower {
		pool += len(lowercaseChars)
	}
	if hasDigit {
		pool += len(digitChars)
	}
	if hasSymbol {
		pool += len(symbolChars)
	}
	return pool
}
