package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aikidoconnect/backoffice/internal/backoffice/domain"
	"github.com/aikidoconnect/backoffice/internal/backoffice/store"
	"github.com/aikidoconnect/backoffice/pkg/slogx"
)

var (
	ErrAccountNotFound = errors.New("account not found")

	// ErrSuperAdminImmutable rejects any role change or deletion that targets
	// the super admin account, regardless of who asks.
	ErrSuperAdminImmutable = errors.New("super admin account cannot be modified")
)

// AccountService manages the admin directory: listing accounts and changing
// roles. The super admin, identified by configured email, is exempt from any
// mutation.
type AccountService struct {
	Store           store.Store
	SuperAdminEmail string
}

func (s *AccountService) isSuperAdmin(email string) bool {
	return s.SuperAdminEmail != "" &&
		strings.EqualFold(email, s.SuperAdminEmail)
}

// List returns every account joined with its role, newest first.
func (s *AccountService) List(ctx context.Context) ([]store.AccountWithRole, error) {
	return s.Store.Roles().ListAccounts(ctx)
}

// Get returns one account with its role.
func (s *AccountService) Get(ctx context.Context, accountID string) (store.AccountWithRole, error) {
	account, err := s.Store.Accounts().GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.AccountWithRole{}, ErrAccountNotFound
		}
		return store.AccountWithRole{}, err
	}
	ra, err := s.Store.Roles().Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.AccountWithRole{}, ErrAccountNotFound
		}
		return store.AccountWithRole{}, err
	}
	return store.AccountWithRole{Account: account, Role: ra.Role}, nil
}

// UpdateRole changes an account's role. The super admin's role can never be
// changed, not even to administrator.
func (s *AccountService) UpdateRole(ctx context.Context, accountID string, role domain.Role) error {
	log := slogx.FromContext(ctx)

	if !role.Valid() {
		return ErrInvalidRole
	}

	account, err := s.Store.Accounts().GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	if s.isSuperAdmin(account.Email) {
		log.Warn("role change attempted on super admin",
			slog.String("account_id", accountID),
		)
		return ErrSuperAdminImmutable
	}

	if err := s.Store.Roles().UpdateRole(ctx, accountID, role); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		log.Error("failed to update role",
			slog.String("account_id", accountID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("account role updated",
		slog.String("account_id", accountID),
		slog.String("role", string(role)),
	)
	return nil
}

// Delete removes an account and its role assignment. The super admin cannot
// be deleted.
func (s *AccountService) Delete(ctx context.Context, accountID string) error {
	log := slogx.FromContext(ctx)

	account, err := s.Store.Accounts().GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	if s.isSuperAdmin(account.Email) {
		log.Warn("deletion attempted on super admin",
			slog.String("account_id", accountID),
		)
		return ErrSuperAdminImmutable
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Roles().Delete(ctx, accountID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		return tx.Accounts().Delete(ctx, accountID)
	})
	if err != nil {
		log.Error("failed to delete account",
			slog.String("account_id", accountID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("account deleted", slog.String("account_id", accountID))
	return nil
}
