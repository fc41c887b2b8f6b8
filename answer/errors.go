package answer

import "errors"

var (
	// ErrPrimaryGeneratorRequired is returned when no primary generator is provided.
	ErrPrimaryGeneratorRequired = errors.New("primary generator required")

	// ErrSynthesisFailed indicates both generation providers failed.
	ErrSynthesisFailed = errors.New("answer synthesis failed")
)
