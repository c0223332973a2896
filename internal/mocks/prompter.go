package mocks

// MockPrompter is a mock implementation of the routers.Prompter interface.
//
// This allows testing confirmation flows without reading from stdin.
type MockPrompter struct {
	// ConfirmFunc is called by Confirm if not nil
	ConfirmFunc func(message string) (bool, error)

	// Track calls for verification in tests
	ConfirmCalls int

	// Messages records every prompt message passed to Confirm, in order.
	Messages []string
}

// Confirm asks the user to confirm an action.
func (m *MockPrompter) Confirm(message string) (bool, error) {
	m.ConfirmCalls++
	m.Messages = append(m.Messages, message)
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(message)
	}
	return true, nil
}

// NewMockPrompter creates a new mock prompter that confirms by default.
func NewMockPrompter() *MockPrompter {
	return &MockPrompter{}
}
