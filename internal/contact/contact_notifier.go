package contact

import (
	"context"
	"fmt"

	"github.com/piyushraj0718/payrollmanagement/internal/events"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/mailer"
)

// Notifier mails the site owner about a received contact message.
type Notifier struct {
	sender mailer.Sender
}

func NewNotifier(sender mailer.Sender) *Notifier {
	return &Notifier{sender: sender}
}

func notificationFor(event events.ContactMessageReceivedEvent) mailer.Message {
	return mailer.Message{
		Subject: fmt.Sprintf("New Contact Message from %s", event.Name),
		Body:    fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", event.Name, event.Email, event.Message),
	}
}

func (n *Notifier) NotifyContactMessage(ctx context.Context, event events.ContactMessageReceivedEvent) error {
	return n.sender.Send(ctx, notificationFor(event))
}
