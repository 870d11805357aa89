package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a controllable clock for tests
// AutoStep, when non-zero, is added after every Now call so a loop sees time pass per frame
type MockTimeProvider struct {
	mu       sync.Mutex
	current  time.Time
	AutoStep time.Duration
}

// NewMockTimeProvider creates a mock clock starting at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{current: start}
}

// Now returns the mocked time, then applies AutoStep
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.current
	m.current = m.current.Add(m.AutoStep)
	return now
}

// SetTime jumps the clock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}
