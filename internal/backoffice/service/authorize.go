package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aikidoconnect/backoffice/internal/backoffice/domain"
	"github.com/aikidoconnect/backoffice/internal/backoffice/store"
	"github.com/aikidoconnect/backoffice/pkg/slogx"
)

var ErrForbidden = errors.New("capability not granted")

// AuthorizeService answers "may this account do that" questions. The role is
// re-read from the store on every call rather than trusted from the session
// token, so a role change takes effect on the subject's very next request.
type AuthorizeService struct {
	Store store.Store
}

// Role returns the current role of an account.
func (s *AuthorizeService) Role(ctx context.Context, accountID string) (domain.Role, error) {
	ra, err := s.Store.Roles().Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrAccountNotFound
		}
		return "", err
	}
	return ra.Role, nil
}

// Require returns nil when the account's current role grants the capability,
// ErrForbidden when it does not, and ErrAccountNotFound for unknown or
// deleted accounts.
func (s *AuthorizeService) Require(ctx context.Context, accountID string, cap domain.Capability) error {
	log := slogx.FromContext(ctx)

	role, err := s.Role(ctx, accountID)
	if err != nil {
		return err
	}

	if !role.Can(cap) {
		log.Warn("capability denied",
			slog.String("account_id", accountID),
			slog.String("role", string(role)),
			slog.String("capability", string(cap)),
		)
		return ErrForbidden
	}

	return nil
}
