package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aikidoconnect/backoffice/internal/backoffice/domain"
	"github.com/aikidoconnect/backoffice/internal/backoffice/store"
	"github.com/aikidoconnect/backoffice/pkg/cryptox"
	"github.com/aikidoconnect/backoffice/pkg/idx"
	"github.com/aikidoconnect/backoffice/pkg/slogx"
)

var (
	ErrBootstrapAlready       = errors.New("directory already bootstrapped")
	ErrBootstrapUnauthorized  = errors.New("unauthorized bootstrap attempt")
	ErrBootstrapDisabled      = errors.New("bootstrap is not configured")
	ErrBootstrapEmailMismatch = errors.New("bootstrap email does not match the configured super admin")
)

// BootstrapService creates the first administrator of an empty directory,
// guarded by a pre-shared token. Once any account exists the endpoint is
// permanently closed; further admins arrive through invitations.
//
// The account it creates is the super admin, so the request email must match
// SuperAdminEmail. Otherwise the immutability checks keyed on that email
// would protect an account that does not exist.
type BootstrapService struct {
	Store           store.Store
	Token           string
	SuperAdminEmail string
}

// IsBootstrapped reports whether the directory has at least one account.
func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	n, err := s.Store.Accounts().Count(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Bootstrap creates the initial administrator account.
func (s *BootstrapService) Bootstrap(
	ctx context.Context,
	token string,
	email string,
	password string,
	firstName string,
	lastName string,
) (domain.Account, error) {
	log := slogx.FromContext(ctx)

	// An empty configured token means bootstrap was never enabled; refuse
	// rather than accept an empty match.
	if s.Token == "" {
		return domain.Account{}, ErrBootstrapDisabled
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		log.Warn("unauthorized bootstrap attempt")
		return domain.Account{}, ErrBootstrapUnauthorized
	}

	if bootstrapped, err := s.IsBootstrapped(ctx); err != nil {
		return domain.Account{}, err
	} else if bootstrapped {
		log.Warn("bootstrap attempted on populated directory")
		return domain.Account{}, ErrBootstrapAlready
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.EqualFold(email, strings.TrimSpace(s.SuperAdminEmail)) {
		log.Warn("bootstrap email does not match configured super admin")
		return domain.Account{}, ErrBootstrapEmailMismatch
	}

	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash bootstrap password", slog.Any("error", err))
		return domain.Account{}, err
	}

	now := time.Now().UTC()
	account := domain.Account{
		ID:           idx.New().String(),
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// Re-check emptiness inside the transaction; two racing bootstraps
		// must not both create an administrator.
		n, err := tx.Accounts().Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrBootstrapAlready
		}

		if err := tx.Accounts().Create(ctx, account); err != nil {
			return err
		}
		return tx.Roles().Assign(ctx, domain.RoleAssignment{
			AccountID:  account.ID,
			Role:       domain.RoleAdministrator,
			AssignedAt: now,
			UpdatedAt:  now,
		})
	})
	if err != nil {
		if !errors.Is(err, ErrBootstrapAlready) {
			log.Error("failed to bootstrap directory", slog.Any("error", err))
		}
		return domain.Account{}, err
	}

	log.Info("directory bootstrapped", slog.String("account_id", account.ID))
	return account, nil
}
