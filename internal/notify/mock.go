package notify

import (
	"context"
	"log"
)

// MockNotifier implements the Notifier interface by logging to stdout.
// Used when no Resend API key is configured.
type MockNotifier struct{}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) FeedbackReceived(ctx context.Context, name, text string) error {
	if name == "" {
		name = "Anonymous"
	}
	log.Printf("📨 [MockNotifier] Feedback from %s: %s", name, text)
	return nil
}
