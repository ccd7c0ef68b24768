package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"multisuministros-codes/internal/domain/errs"
	"multisuministros-codes/internal/domain/uow"
	"multisuministros-codes/internal/domain/user"
	"multisuministros-codes/internal/usecase/access"
	"multisuministros-codes/pkg/password"
	"multisuministros-codes/pkg/session"
)

type Usecase struct {
	users    user.Repository
	uow      uow.UnitOfWork
	tokens   TokenIssuer
	hashCost int
	now      func() time.Time
}

func NewUsecase(users user.Repository, tx uow.UnitOfWork, tokens TokenIssuer) *Usecase {
	return &Usecase{users: users, uow: tx, tokens: tokens, now: time.Now}
}

// WithHashCost overrides the bcrypt cost; tests use bcrypt.MinCost.
func (u *Usecase) WithHashCost(cost int) *Usecase {
	u.hashCost = cost
	return u
}

func credentials(username, plain string) (string, string, error) {
	username, plain = strings.TrimSpace(username), strings.TrimSpace(plain)
	if username == "" || plain == "" {
		return "", "", errs.Validation("username and password are required")
	}
	return username, plain, nil
}

// Authenticate checks the password and issues a session token.
func (u *Usecase) Authenticate(ctx context.Context, username, plain string) (*LoginResult, error) {
	username, plain, err := credentials(username, plain)
	if err != nil {
		return nil, err
	}
	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !password.Verify(plain, usr.PasswordHash) {
		return nil, user.ErrInvalidCredentials
	}

	tok, err := u.tokens.Issue(usr.ID, usr.Username, string(usr.Role))
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:     tok,
		ExpiresAt: u.now().Add(u.tokens.TTL()).UTC(),
		Username:  usr.Username,
		Role:      string(usr.Role),
	}, nil
}

// RegisterVendor creates a vendor account while fewer than user.MaxVendors
// exist. The count and insert share a transaction; concurrent registrations
// can still overshoot by the number of racing requests.
func (u *Usecase) RegisterVendor(ctx context.Context, username, plain string) (*user.User, error) {
	username, plain, err := credentials(username, plain)
	if err != nil {
		return nil, err
	}
	hash, err := password.Hash(plain, u.hashCost)
	if err != nil {
		return nil, err
	}

	usr := &user.User{Username: username, PasswordHash: hash, Role: user.RoleVendor}
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		n, err := r.Users.CountByRole(ctx, user.RoleVendor)
		if err != nil {
			return err
		}
		if n >= user.MaxVendors {
			return user.ErrVendorLimit
		}
		return r.Users.Create(ctx, usr)
	})
	if err != nil {
		return nil, err
	}
	return usr, nil
}

// CreateVendor is RegisterVendor on behalf of an admin.
func (u *Usecase) CreateVendor(ctx context.Context, s session.Session, username, plain string) (*user.User, error) {
	if err := access.Require(s, user.RoleAdmin); err != nil {
		return nil, err
	}
	return u.RegisterVendor(ctx, username, plain)
}

func (u *Usecase) VendorCount(ctx context.Context, s session.Session) (*VendorCount, error) {
	if err := access.Require(s, user.RoleAdmin); err != nil {
		return nil, err
	}
	n, err := u.users.CountByRole(ctx, user.RoleVendor)
	if err != nil {
		return nil, err
	}
	return &VendorCount{Count: n, Max: user.MaxVendors}, nil
}

// EnsureAdmin creates the admin account when the username is free and reports
// whether it did. An existing account is left untouched.
func (u *Usecase) EnsureAdmin(ctx context.Context, username, plain string) (bool, error) {
	username, plain, err := credentials(username, plain)
	if err != nil {
		return false, err
	}
	if _, err := u.users.GetByUsername(ctx, username); err == nil {
		return false, nil
	} else if !errors.Is(err, user.ErrNotFound) {
		return false, err
	}

	hash, err := password.Hash(plain, u.hashCost)
	if err != nil {
		return false, err
	}
	if err := u.users.Create(ctx, &user.User{Username: username, PasswordHash: hash, Role: user.RoleAdmin}); err != nil {
		if errors.Is(err, user.ErrDuplicateUsername) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
