package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// GenerateResponse represents a generated password and its strength.
type GenerateResponse struct {
	Password string           `json:"password"`
	Length   int              `json:"length"`
	Classes  []string         `json:"classes"`
	Strength StrengthResponse `json:"strength"`
}

// StrengthResponse represents the entropy rating of a password.
type StrengthResponse struct {
	Score    int     `json:"score"`
	Label    string  `json:"label"`
	PoolSize int     `json:"pool_size"`
	Entropy  float64 `json:"entropy_bits"`
}
