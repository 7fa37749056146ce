package app

import (
	"sync"
	"time"
)

// Clock supplies wall time to the control loop
type Clock interface {
	Now() time.Time
}

// SystemClock provides the real system time with monotonic clock readings
type SystemClock struct{}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock is a manually driven clock for tests
// With a non-zero step every Now call advances the clock, simulating tick cost
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
	step        time.Duration
}

// NewMockClock creates a mock clock with the given start time and per-read step
func NewMockClock(start time.Time, step time.Duration) *MockClock {
	return &MockClock{currentTime: start, step: step}
}

// Now returns the current mocked time, then applies the step
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.currentTime
	m.currentTime = m.currentTime.Add(m.step)
	return now
}

// Advance moves the clock forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// SetStep changes the per-read advance
func (m *MockClock) SetStep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.step = d
}
