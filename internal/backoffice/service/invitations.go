package service

import (
	"context"
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
	ErrInvalidInviteRequest = errors.New("invalid invitation request")
	ErrInvalidRole          = errors.New("invalid role")
	ErrAlreadyRegistered    = errors.New("email already has an account")
	ErrInvitationPending    = errors.New("email already has a pending invitation")
	ErrInvitationNotFound   = errors.New("invitation not found")

	// ErrInvalidToken covers every unusable token state: malformed, never
	// issued, expired, or already redeemed. Callers must not be able to
	// distinguish these cases.
	ErrInvalidToken = errors.New("invalid or expired invitation token")
)

// DefaultInviteTTL is how long an invitation stays redeemable.
const DefaultInviteTTL = 7 * 24 * time.Hour

// InvitationService manages the invitation lifecycle: issue, lookup, redeem,
// revoke. Redemption is the only path that creates accounts after bootstrap.
type InvitationService struct {
	Store store.Store
	TTL   time.Duration

	// Now is overridable for tests. Nil means time.Now.
	Now func() time.Time
}

func (s *InvitationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *InvitationService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultInviteTTL
}

// Issue creates an invitation for an email with a target role and returns it
// with the raw token. At most one pending invitation may exist per email, and
// emails with an existing account cannot be invited.
func (s *InvitationService) Issue(
	ctx context.Context,
	invitedBy string,
	email string,
	role domain.Role,
) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || invitedBy == "" {
		return domain.Invitation{}, ErrInvalidInviteRequest
	}
	if !role.Valid() {
		log.Warn("invitation issue with unknown role", slog.String("role", string(role)))
		return domain.Invitation{}, ErrInvalidRole
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	now := s.now()
	inv := domain.Invitation{
		ID:        idx.New().String(),
		Email:     email,
		Role:      role,
		Token:     token,
		InvitedBy: invitedBy,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl()),
	}

	// The duplicate checks and the insert share one transaction so two
	// concurrent issues for the same email cannot both succeed.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Accounts().GetByEmail(ctx, email); err == nil {
			return ErrAlreadyRegistered
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		if _, err := tx.Invitations().FindPendingByEmail(ctx, email, now); err == nil {
			return ErrInvitationPending
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		return tx.Invitations().Create(ctx, inv)
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyRegistered) || errors.Is(err, ErrInvitationPending) {
			log.Warn("invitation issue rejected",
				slog.String("email", email),
				slog.Any("reason", err),
			)
		} else {
			log.Error("failed to create invitation", slog.Any("error", err))
		}
		return domain.Invitation{}, err
	}

	log.Info("invitation issued",
		slog.String("invitation_id", inv.ID),
		slog.String("email", email),
		slog.String("role", string(role)),
		slog.String("invited_by", invitedBy),
		slog.Time("expires_at", inv.ExpiresAt),
	)

	return inv, nil
}

// Lookup resolves a token to its invitation for the onboarding page. Any
// unusable token, whatever the reason, yields ErrInvalidToken.
func (s *InvitationService) Lookup(ctx context.Context, token string) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	// Tokens are checked against the expected shape before touching the
	// store, so garbage input never reaches a query.
	if !domain.ValidInviteTokenShape(token) {
		return domain.Invitation{}, ErrInvalidToken
	}

	inv, err := s.Store.Invitations().GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrInvalidToken
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	if !inv.Redeemable(s.now()) {
		return domain.Invitation{}, ErrInvalidToken
	}

	return inv, nil
}

// Redeem exchanges a valid token for a new account carrying the invitation's
// role. The claim and the account creation happen in one transaction; losing
// the claim race yields ErrInvalidToken like any other dead token.
func (s *InvitationService) Redeem(
	ctx context.Context,
	token string,
	password string,
	firstName string,
	lastName string,
) (domain.Account, domain.Role, error) {
	log := slogx.FromContext(ctx)

	if password == "" || firstName == "" || lastName == "" {
		return domain.Account{}, "", ErrInvalidInviteRequest
	}

	// Fail fast on dead tokens before paying for the password hash.
	inv, err := s.Lookup(ctx, token)
	if err != nil {
		return domain.Account{}, "", err
	}

	passwordHash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Account{}, "", err
	}

	now := s.now()
	account := domain.Account{
		ID:           idx.New().String(),
		Email:        inv.Email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// The conditional claim is the authority on liveness. If another
		// redemption got here first, or the invitation expired between the
		// lookup and now, zero rows match and the claim fails.
		if err := tx.Invitations().Claim(ctx, inv.ID, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidToken
			}
			return err
		}

		if _, err := tx.Accounts().GetByEmail(ctx, inv.Email); err == nil {
			// Rolling back leaves the invitation unredeemed, so there is no
			// window where a dead token blocked a registered email.
			return ErrAlreadyRegistered
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		if err := tx.Accounts().Create(ctx, account); err != nil {
			return err
		}

		return tx.Roles().Assign(ctx, domain.RoleAssignment{
			AccountID:  account.ID,
			Role:       inv.Role,
			AssignedAt: now,
			UpdatedAt:  now,
		})
	})
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			log.Warn("invitation redemption lost claim", slog.String("invitation_id", inv.ID))
		} else if errors.Is(err, ErrAlreadyRegistered) {
			log.Warn("invitation redemption for registered email",
				slog.String("invitation_id", inv.ID),
			)
		} else {
			log.Error("failed to redeem invitation",
				slog.String("invitation_id", inv.ID),
				slog.Any("error", err),
			)
		}
		return domain.Account{}, "", err
	}

	log.Info("account created via invitation",
		slog.String("account_id", account.ID),
		slog.String("invitation_id", inv.ID),
		slog.String("role", string(inv.Role)),
	)

	return account, inv.Role, nil
}

// Revoke deletes an invitation regardless of its state. Revoking an expired
// or redeemed invitation is a valid cleanup action, not an error.
func (s *InvitationService) Revoke(ctx context.Context, invitationID string) error {
	log := slogx.FromContext(ctx)

	inv, err := s.Store.Invitations().GetByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation for revocation",
			slog.String("invitation_id", invitationID),
			slog.Any("error", err),
		)
		return err
	}

	if err := s.Store.Invitations().Delete(ctx, invitationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		log.Error("failed to revoke invitation",
			slog.String("invitation_id", invitationID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("invitation revoked",
		slog.String("invitation_id", inv.ID),
		slog.String("email", inv.Email),
		slog.Bool("was_redeemed", inv.RedeemedAt != nil),
		slog.Bool("was_expired", inv.Expired(s.now())),
	)
	return nil
}

// ListPending returns unredeemed, unexpired invitations, newest first.
func (s *InvitationService) ListPending(ctx context.Context) ([]domain.Invitation, error) {
	return s.Store.Invitations().ListPending(ctx, s.now())
}
