package interfaces

import "context"

// INotificationDispatcher abstracts the outbound e-mail transport
// (e.g. Amazon SES). Dispatch happens only after the state transition
// persisted; failures are logged by the caller and never propagate
// into the operation's outcome.

type INotificationDispatcher interface {
	Notify(ctx context.Context, recipients []string, subject, body string) error
}
