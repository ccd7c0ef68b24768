package coderequest

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "multisuministros-codes/internal/domain/coderequest"
	"multisuministros-codes/internal/domain/errs"
	"multisuministros-codes/internal/domain/notification"
	"multisuministros-codes/internal/domain/product"
	"multisuministros-codes/internal/domain/uow"
	"multisuministros-codes/internal/domain/user"
	"multisuministros-codes/internal/usecase/access"
	"multisuministros-codes/pkg/session"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	now  func() time.Time
}

// NewUsecase: reads go through repo, every state change through tx.
func NewUsecase(repo domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, uow: tx, now: func() time.Time { return time.Now().UTC() }}
}

func (u *Usecase) Submit(ctx context.Context, s session.Session, in SubmitInput) (*domain.CodeRequest, error) {
	if err := access.Require(s, user.RoleVendor, user.RoleAdmin); err != nil {
		return nil, err
	}
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return nil, errs.Validation("description is required")
	}
	if in.Price.IsNegative() {
		return nil, errs.Validation("price must be >= 0")
	}

	now := u.now()
	req := &domain.CodeRequest{
		Description: desc,
		Price:       in.Price.Round(2),
		Supplier:    strings.TrimSpace(in.Supplier),
		Submitter:   s.Username,
		Status:      domain.StatusPending,
		Note:        domain.VerificationPlaceholder,
		CreatedAt:   now,
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Requests.Create(ctx, req); err != nil {
			return err
		}
		return r.Notifications.Create(ctx, &notification.Notification{
			Recipient: s.Username,
			Message:   msgSubmitted,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// Approve moves a pending request to Approved and registers the catalog entry
// under code. Nothing is written when the code is already taken.
func (u *Usecase) Approve(ctx context.Context, s session.Session, id uint64, code string) (*product.Product, error) {
	if err := access.Require(s, user.RoleAdmin); err != nil {
		return nil, err
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errs.Validation("code is required")
	}

	var created *product.Product
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Requests.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if req.Status != domain.StatusPending {
			return domain.ErrInvalidTransition
		}

		taken, err := r.Products.ExistsByCode(ctx, code)
		if err != nil {
			return err
		}
		if taken {
			return product.ErrDuplicateCode
		}

		now := u.now()
		assigned := code
		if err := r.Requests.TransitionFromPending(ctx, id, domain.Transition{
			To:           domain.StatusApproved,
			By:           s.Username,
			At:           now,
			AssignedCode: &assigned,
		}); err != nil {
			return err
		}

		p := &product.Product{
			Code:        code,
			Description: req.Description,
			Price:       req.Price,
			TaxRate:     product.StandardTaxRate,
			Supplier:    req.Supplier,
			CreatedBy:   req.Submitter,
			CreatedAt:   now,
		}
		if err := r.Products.Create(ctx, p); err != nil {
			return err
		}

		if err := r.Notifications.Create(ctx, &notification.Notification{
			Recipient: req.Submitter,
			Message:   fmt.Sprintf(msgApproved, code),
			CreatedAt: now,
		}); err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (u *Usecase) Reject(ctx context.Context, s session.Session, id uint64, reason string) error {
	if err := access.Require(s, user.RoleAdmin); err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.Validation("reason is required")
	}

	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		req, err := r.Requests.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if req.Status != domain.StatusPending {
			return domain.ErrInvalidTransition
		}

		now := u.now()
		if err := r.Requests.TransitionFromPending(ctx, id, domain.Transition{
			To: domain.StatusRejected,
			By: s.Username,
			At: now,
		}); err != nil {
			return err
		}
		return r.Notifications.Create(ctx, &notification.Notification{
			Recipient: req.Submitter,
			Message:   fmt.Sprintf(msgRejected, id, reason),
			CreatedAt: now,
		})
	})
}

// ListPending is the admin review queue, newest first.
func (u *Usecase) ListPending(ctx context.Context, s session.Session) ([]domain.CodeRequest, error) {
	if err := access.Require(s, user.RoleAdmin); err != nil {
		return nil, err
	}
	return u.repo.ListByStatus(ctx, domain.StatusPending)
}

func (u *Usecase) ListMine(ctx context.Context, s session.Session) ([]domain.CodeRequest, error) {
	if err := access.Require(s); err != nil {
		return nil, err
	}
	return u.repo.ListBySubmitter(ctx, s.Username)
}
