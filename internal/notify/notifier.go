package notify

import "context"

// Notifier delivers a notice about newly submitted feedback.
// The interface keeps the email provider swappable without refactoring.
type Notifier interface {
	FeedbackReceived(ctx context.Context, name, text string) error
}
