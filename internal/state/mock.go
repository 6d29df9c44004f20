// internal/state/mock.go
package state

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Mock is an in-memory test double for Manager.
type Mock struct {
	mu       sync.Mutex
	values   map[string]string
	clientID string
	failNext error
	closed   bool
}

// NewMock creates a new mock state store for testing.
func NewMock() *Mock {
	return &Mock{values: make(map[string]string)}
}

func (m *Mock) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeErr(); err != nil {
		return "", false, err
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Mock) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.takeErr(); err != nil {
		return err
	}
	m.values[key] = value
	return nil
}

func (m *Mock) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *Mock) ClientID() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clientID == "" {
		m.clientID = uuid.NewString()
	}
	return m.clientID, nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errors.New("already closed")
	}
	m.closed = true
	return nil
}

// Test helpers

// FailNext makes the next Get or Set return err.
func (m *Mock) FailNext(err error) {
	m.mu.Lock()
	m.failNext = err
	m.mu.Unlock()
}

// Value returns the raw stored value for key.
func (m *Mock) Value(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *Mock) takeErr() error {
	err := m.failNext
	m.failNext = nil
	return err
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
