package actor

import (
	"context"
	"sync"
)

// MockGreeter is a mock implementation of Greeter for testing
type MockGreeter struct {
	// Mock return values
	GreetVal string
	GreetErr error
	// GreetFunc, when set, takes precedence over GreetVal/GreetErr
	GreetFunc func(ctx context.Context, name string) (string, error)

	mu    sync.Mutex
	names []string
}

// Ensure MockGreeter implements Greeter
var _ Greeter = (*MockGreeter)(nil)

func (m *MockGreeter) Greet(ctx context.Context, name string) (string, error) {
	m.mu.Lock()
	m.names = append(m.names, name)
	m.mu.Unlock()

	if m.GreetFunc != nil {
		return m.GreetFunc(ctx, name)
	}
	return m.GreetVal, m.GreetErr
}

// Calls returns the names passed to Greet, in call order
func (m *MockGreeter) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// LastName returns the most recent argument, or "" if never called
func (m *MockGreeter) LastName() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.names) == 0 {
		return ""
	}
	return m.names[len(m.names)-1]
}
