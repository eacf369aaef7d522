package engine

import "time"

// MockTimeProvider is a hand-driven clock for tests
// Single goroutine only, like the frame loop that reads it
type MockTimeProvider struct {
	current time.Time
}

// NewMockTimeProvider creates a mock clock starting at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{current: start}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	return m.current
}

// SetTime jumps to t, which may lie in the past to simulate a faulty clock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.current = t
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
