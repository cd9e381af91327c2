package crypto

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// Generator draws passwords from a cryptographically secure randomness source.
// It holds no mutable state and is safe for concurrent use as long as its source is.
type Generator struct {
	source io.Reader
}

var defaultGenerator = NewGenerator(nil)

// NewGenerator creates a Generator reading from source. A nil source selects crypto/rand.Reader.
func NewGenerator(source io.Reader) *Generator {
	if source == nil {
		source = rand.Reader
	}
	return &Generator{source: source}
}

// Generate creates a password using the default crypto/rand backed generator.
func Generate(length int, classes []CharacterClass) (string, error) {
	return defaultGenerator.Generate(length, classes)
}

// Generate returns length characters drawn uniformly, with replacement, from the
// alphabet of the given classes.
//
// An empty class selection or a non-positive length yields "" and no error; the
// caller decides whether that is acceptable. A failing randomness source is returned
// as an error and never replaced by a weaker one.
func (g *Generator) Generate(length int, classes []CharacterClass) (string, error) {
	alphabet := BuildAlphabet(classes)
	if alphabet == "" || length <= 0 {
		return "", nil
	}

	result := make([]byte, length)
	for i := range result {
		ch, err := g.randChar(alphabet)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	return string(result), nil
}

// randChar picks a random character from charset. rand.Int rejects out-of-range
// samples, so every index is equally likely.
func (g *Generator) randChar(charset string) (byte, error) {
	n, err := rand.Int(g.source, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, errors.Wrap(err, "reading secure random source")
	}
	return charset[n.Int64()], nil
}
