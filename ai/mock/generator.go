package mock

import "context"

// MockGenerator is a test double for ai.Generator.
// It allows custom behavior injection via function fields.
type MockGenerator struct {
	// CompleteFunc is called by Complete if set.
	// If nil, Complete returns Response.
	CompleteFunc func(ctx context.Context, prompt string, temperature float64) (string, error)

	// Response is the canned answer returned when CompleteFunc is nil.
	Response string

	// Err is returned when CompleteFunc is nil and Err is non-nil.
	Err error

	callCount   int
	lastPrompt  string
	lastTemp    float64
}

// NewMockGenerator creates a mock generator returning the given canned response.
// Note: returns concrete type to allow test assertions and behavior injection.
func NewMockGenerator(response string) *MockGenerator {
	return &MockGenerator{Response: response}
}

// Complete returns the injected behavior, the configured error, or the
// canned response, in that order of precedence.
func (m *MockGenerator) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	m.callCount++
	m.lastPrompt = prompt
	m.lastTemp = temperature

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, prompt, temperature)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// CallCount returns the number of times Complete was called.
func (m *MockGenerator) CallCount() int {
	return m.callCount
}

// LastPrompt returns the prompt passed to the most recent Complete call.
func (m *MockGenerator) LastPrompt() string {
	return m.lastPrompt
}

// LastTemperature returns the temperature of the most recent Complete call.
func (m *MockGenerator) LastTemperature() float64 {
	return m.lastTemp
}

// Reset clears the call count and injected behavior.
func (m *MockGenerator) Reset() {
	m.callCount = 0
	m.lastPrompt = ""
	m.lastTemp = 0
	m.CompleteFunc = nil
	m.Err = nil
}
