// Package mocks provides mock implementations of interfaces for testing.
// These follow Go best practices for test doubles.
package mocks

import (
	"context"
	"sync"

	"github.com/gomeson/gomeson/pkg/types"
)

// MockCommandRunner is a mock implementation of CommandRunner for testing
type MockCommandRunner struct {
	mu          sync.Mutex
	invocations []types.DriverInvocation

	// Status and Err are returned from every Run call
	Status int
	Err    error
}

// NewMockCommandRunner creates a new mock runner
func NewMockCommandRunner() *MockCommandRunner {
	return &MockCommandRunner{}
}

// Run records the invocation and returns the scripted result
func (m *MockCommandRunner) Run(_ context.Context, inv types.DriverInvocation) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.invocations = append(m.invocations, inv)
	return m.Status, m.Err
}

// Invocations returns all recorded invocations
func (m *MockCommandRunner) Invocations() []types.DriverInvocation {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]types.DriverInvocation, len(m.invocations))
	copy(out, m.invocations)
	return out
}

// MockNotifier is a mock implementation of Notifier for testing
type MockNotifier struct {
	mu        sync.Mutex
	Successes []string
	Failures  []string
}

// NewMockNotifier creates a new mock notifier
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// NotifyBuildSuccess records a success notification
func (m *MockNotifier) NotifyBuildSuccess(backend string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Successes = append(m.Successes, backend)
}

// NotifyBuildFailure records a failure notification
func (m *MockNotifier) NotifyBuildFailure(backend string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Failures = append(m.Failures, backend)
}
