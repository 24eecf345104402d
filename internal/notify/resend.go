package notify

import (
	"context"
	"fmt"
	"html"

	"github.com/resend/resend-go/v2"
)

// ResendNotifier emails the course staff whenever feedback arrives.
type ResendNotifier struct {
	client *resend.Client
	from   string
	to     string
}

func NewResendNotifier(apiKey, from, to string) *ResendNotifier {
	return &ResendNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

func (n *ResendNotifier) FeedbackReceived(ctx context.Context, name, text string) error {
	who := name
	if who == "" {
		who = "Anonymous"
	}

	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		Subject: fmt.Sprintf("New student feedback from %s", who),
		Html: fmt.Sprintf(`
			<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
				<h2 style="color: #333;">📝 New feedback received</h2>
				<p><strong>From:</strong> %s</p>
				<p style="background: #f4f4f5; padding: 12px; border-radius: 8px;">%s</p>
			</div>
		`, html.EscapeString(who), html.EscapeString(text)),
	}

	_, err := n.client.Emails.Send(params)
	return err
}
