package service

import (
	"errors"

	"github.com/vaultpass/passforge/internal/crypto"
	"github.com/vaultpass/passforge/internal/model"
)

const (
	DefaultLength = 16
	MinLength     = 6
	MaxLength     = 64
	MaxCount      = 100
)

var (
	ErrLengthTooShort  = errors.New("password length must be at least 6")
	ErrLengthTooLong   = errors.New("password length must be at most 64")
	ErrCountOutOfRange = errors.New("password count must be between 1 and 100")
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen *crypto.Generator
}

// NewGeneratorService creates a new GeneratorService backed by gen.
// A nil gen uses the crypto/rand backed generator.
func NewGeneratorService(gen *crypto.Generator) *GeneratorService {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	return &GeneratorService{gen: gen}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length, classes, err := s.resolve(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	return s.generate(length, classes)
}

// GenerateBatch produces count independent passwords for the same request.
func (s *GeneratorService) GenerateBatch(req model.GenerateRequest, count int) ([]model.GenerateResponse, error) {
	if count < 1 || count > MaxCount {
		return nil, ErrCountOutOfRange
	}

	length, classes, err := s.resolve(req)
	if err != nil {
		return nil, err
	}

	resps := make([]model.GenerateResponse, 0, count)
	for i := 0; i < count; i++ {
		resp, err := s.generate(length, classes)
		if err != nil {
			return nil, err
		}
		resps = append(resps, resp)
	}
	return resps, nil
}

// Estimate rates an arbitrary password.
func (s *GeneratorService) Estimate(password string) model.StrengthResponse {
	return toStrengthResponse(crypto.EstimateStrength(password))
}

func (s *GeneratorService) generate(length int, classes []crypto.CharacterClass) (model.GenerateResponse, error) {
	password, err := s.gen.Generate(length, classes)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = className(c)
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Classes:  names,
		Strength: toStrengthResponse(crypto.EstimateStrength(password)),
	}, nil
}

// resolve applies defaults and validates the request. When every class is
// disabled, lowercase is switched back on so the core always gets a usable selection.
func (s *GeneratorService) resolve(req model.GenerateRequest) (int, []crypto.CharacterClass, error) {
	length := req.Length
	if length == 0 {
		length = DefaultLength
	}
	if length < MinLength {
		return 0, nil, ErrLengthTooShort
	}
	if length > MaxLength {
		return 0, nil, ErrLengthTooLong
	}

	var classes []crypto.CharacterClass
	if boolOrDefault(req.Uppercase, true) {
		classes = append(classes, crypto.Uppercase)
	}
	if boolOrDefault(req.Lowercase, true) {
		classes = append(classes, crypto.Lowercase)
	}
	if boolOrDefault(req.Numbers, true) {
		classes = append(classes, crypto.Digits)
	}
	if boolOrDefault(req.Symbols, true) {
		classes = append(classes, crypto.Symbols)
	}
	if len(classes) == 0 {
		classes = []crypto.CharacterClass{crypto.Lowercase}
	}

	return length, classes, nil
}

func toStrengthResponse(r crypto.StrengthResult) model.StrengthResponse {
	return model.StrengthResponse{
		Score:    r.Score,
		Label:    r.Label,
		PoolSize: r.PoolSize,
		Entropy:  r.Entropy,
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

// className returns the name the flags and config keys use for a class.
func className(c crypto.CharacterClass) string {
	if c == crypto.Digits {
		return "numbers"
	}

	return c.String()
}
