package provider

import "context"

// Mock is a Provider for tests. It honors the same contract as the real
// adapters: debug mode short-circuits, and errors from Generate are embedded
// in the result text rather than returned.
type Mock struct {
	// ModelList is returned by Models.
	ModelList []string

	// Generate produces the result for each call. When nil, a fixed
	// placeholder is returned. A returned error is embedded exactly as
	// the real adapters embed vendor failures.
	Generate func(req ReviewRequest) (string, error)

	// Calls counts GenerateReview invocations, including debug calls.
	Calls int
}

func (m *Mock) Name() string { return "Mock" }

func (m *Mock) Models(ctx context.Context) []string {
	return append([]string(nil), m.ModelList...)
}

func (m *Mock) GenerateReview(ctx context.Context, req ReviewRequest) string {
	m.Calls++
	if req.Debug {
		return DebugSentinel
	}
	if m.Generate == nil {
		return "mock review"
	}
	text, err := m.Generate(req)
	if err != nil {
		return errorText(err)
	}
	return text
}
