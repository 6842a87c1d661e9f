package internal

import "sync"

// MessageManager collects shopper-facing messages for the surrounding
// checkout to display. Only the in-payment-flow decline path writes here.
type MessageManager struct {
	mu       sync.Mutex
	messages []string
}

func NewMessageManager() *MessageManager {
	return &MessageManager{}
}

func (m *MessageManager) AddErrorMessage(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

// Take returns the queued messages and clears the queue.
func (m *MessageManager) Take() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	messages := m.messages
	m.messages = nil
	return messages
}
