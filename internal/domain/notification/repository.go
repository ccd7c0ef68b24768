package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	// Newest first.
	ListByRecipient(ctx context.Context, username string) ([]Notification, error)
	// MarkAllRead flips every unread row of the recipient and reports how many changed.
	MarkAllRead(ctx context.Context, username string) (int64, error)
}
