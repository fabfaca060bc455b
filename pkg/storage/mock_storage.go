package storage

import (
	"github.com/pkg/errors"
)

// MockStore implements Store with in-memory lines
type MockStore struct {
	lines   []string
	exists  bool
	creates int // Number of Create calls

	// Injected failures, returned by the matching operation when set
	ExistsErr error
	CreateErr error
	AppendErr error
}

func (m *MockStore) Exists() (bool, error) {
	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}
	return m.exists, nil
}

func (m *MockStore) Create(header string) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.creates++
	m.exists = true
	m.lines = []string{header}
	return nil
}

func (m *MockStore) Append(line string) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	if !m.exists {
		// Append mode creates the file without a header
		m.exists = true
	}
	m.lines = append(m.lines, line)
	return nil
}

// Lines returns a copy of everything written so far
func (m *MockStore) Lines() []string {
	return append([]string(nil), m.lines...)
}

// Creates returns how many times the log was created
func (m *MockStore) Creates() int {
	return m.creates
}

func NewMockStore() *MockStore {
	return &MockStore{}
}

// NewMockStoreWithLines returns a store that already holds lines, as if the log pre-existed
func NewMockStoreWithLines(lines ...string) *MockStore {
	return &MockStore{lines: append([]string(nil), lines...), exists: true}
}

// ErrMockFailure is a convenience error for injected failures
var ErrMockFailure = errors.New("mock store failure")
