package notification

import (
	"context"
	"strings"
	"time"

	"multisuministros-codes/internal/domain/errs"
	domain "multisuministros-codes/internal/domain/notification"
	"multisuministros-codes/internal/usecase/access"
	"multisuministros-codes/pkg/session"
)

type Inbox struct {
	Unread int                   `json:"unread"`
	Items  []domain.Notification `json:"items"`
}

type Usecase struct {
	repo domain.Repository
	now  func() time.Time
}

func NewUsecase(r domain.Repository) *Usecase {
	return &Usecase{repo: r, now: func() time.Time { return time.Now().UTC() }}
}

// Push stores an unread message for username.
func (u *Usecase) Push(ctx context.Context, username, message string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(message) == "" {
		return errs.Validation("recipient and message are required")
	}
	return u.repo.Create(ctx, &domain.Notification{Recipient: username, Message: message, CreatedAt: u.now()})
}

// ListFor returns the caller's notifications, newest first.
func (u *Usecase) ListFor(ctx context.Context, s session.Session) (*Inbox, error) {
	if err := access.Require(s); err != nil {
		return nil, err
	}
	items, err := u.repo.ListByRecipient(ctx, s.Username)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Notification{}
	}
	in := &Inbox{Items: items}
	for _, n := range items {
		if !n.Read {
			in.Unread++
		}
	}
	return in, nil
}

func (u *Usecase) MarkAllRead(ctx context.Context, s session.Session) (int64, error) {
	if err := access.Require(s); err != nil {
		return 0, err
	}
	return u.repo.MarkAllRead(ctx, s.Username)
}
