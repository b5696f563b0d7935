package usecase

import (
	"context"
	"log"

	"gestao_terceiros/internal/domain/entities"
	"gestao_terceiros/internal/usecase/interfaces"
)

// notifier resolves recipients through the directory and fans out
// e-mail after a transition committed. Dispatch and resolution
// failures are logged and swallowed: the workflow's correctness never
// depends on delivery.

type notifier struct {
	directory interfaces.IDirectory
	mailer    interfaces.INotificationDispatcher
}

func newNotifier(directory interfaces.IDirectory, mailer interfaces.INotificationDispatcher) *notifier {
	return &notifier{directory: directory, mailer: mailer}
}

func (n *notifier) send(ctx context.Context, recipients []string, subject, body string) {
	if n == nil || n.mailer == nil || len(recipients) == 0 {
		return
	}
	if err := n.mailer.Notify(ctx, recipients, subject, body); err != nil {
		log.Printf("[notify] dispatch failed subject=%q recipients=%d err=%v", subject, len(recipients), err)
	}
}

func (n *notifier) toUser(ctx context.Context, userID, subject, body string) {
	if n == nil || n.directory == nil || userID == "" {
		return
	}
	u, err := n.directory.GetUser(ctx, userID)
	if err != nil || u.Email == "" {
		log.Printf("[notify] recipient lookup failed user_id=%s err=%v", userID, err)
		return
	}
	n.send(ctx, []string{u.Email}, subject, body)
}

func (n *notifier) toRole(ctx context.Context, role entities.Role, subject, body string) {
	if n == nil || n.directory == nil {
		return
	}
	users, err := n.directory.UsersByRole(ctx, role)
	if err != nil {
		log.Printf("[notify] role lookup failed role=%s err=%v", role, err)
		return
	}
	n.send(ctx, emailsOf(users), subject, body)
}

// toManagersFor notifies every manager sharing a work center with the
// request's coordinator.
func (n *notifier) toManagersFor(ctx context.Context, coordinatorID, subject, body string) {
	if n == nil || n.directory == nil {
		return
	}
	managers, err := n.directory.ManagersForCoordinator(ctx, coordinatorID)
	if err != nil {
		log.Printf("[notify] manager lookup failed coordinator_id=%s err=%v", coordinatorID, err)
		return
	}
	n.send(ctx, emailsOf(managers), subject, body)
}

func emailsOf(users []entities.User) []string {
	emails := make([]string, 0, len(users))
	for _, u := range users {
		if u.Email != "" {
			emails = append(emails, u.Email)
		}
	}
	return emails
}
