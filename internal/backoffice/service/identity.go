package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aikidoconnect/backoffice/internal/backoffice/domain"
	"github.com/aikidoconnect/backoffice/internal/backoffice/store"
	"github.com/aikidoconnect/backoffice/pkg/cryptox"
	"github.com/aikidoconnect/backoffice/pkg/idx"
	"github.com/aikidoconnect/backoffice/pkg/jwtx"
	"github.com/aikidoconnect/backoffice/pkg/slogx"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// sign-in failures do not leak which emails have accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)

// DefaultResetTTL is how long a password reset token stays usable.
const DefaultResetTTL = 1 * time.Hour

// Session is the outcome of a successful sign-in.
type Session struct {
	Account   domain.Account
	Role      domain.Role
	Token     string
	ExpiresAt time.Time
}

// IdentityService handles credential verification and session minting, plus
// the password reset flow.
type IdentityService struct {
	Store      store.Store
	Signer     *jwtx.Signer
	Issuer     string
	SessionTTL time.Duration
	ResetTTL   time.Duration
}

func (s *IdentityService) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return jwtx.DefaultSessionTTL
}

func (s *IdentityService) resetTTL() time.Duration {
	if s.ResetTTL > 0 {
		return s.ResetTTL
	}
	return DefaultResetTTL
}

// SignIn verifies credentials and mints a session token. The role embedded in
// the token reflects issuance time only; authorization re-reads it per
// request.
func (s *IdentityService) SignIn(ctx context.Context, email, password string) (Session, error) {
	log := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	account, err := s.Store.Accounts().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a hash verification anyway so unknown emails cost the
			// same as wrong passwords.
			_ = cryptox.VerifyPassword(password, dummyHash())
			log.Warn("sign-in for unknown email")
			return Session{}, ErrInvalidCredentials
		}
		log.Error("failed to fetch account", slog.Any("error", err))
		return Session{}, err
	}

	if err := cryptox.VerifyPassword(password, account.PasswordHash); err != nil {
		log.Warn("sign-in with wrong password", slog.String("account_id", account.ID))
		return Session{}, ErrInvalidCredentials
	}

	ra, err := s.Store.Roles().Get(ctx, account.ID)
	if err != nil {
		log.Error("failed to fetch role for sign-in",
			slog.String("account_id", account.ID),
			slog.Any("error", err),
		)
		return Session{}, err
	}

	session, err := s.MintSession(ctx, account, ra.Role)
	if err != nil {
		return Session{}, err
	}

	log.Info("sign-in succeeded",
		slog.String("account_id", account.ID),
		slog.String("role", string(ra.Role)),
	)

	return session, nil
}

// MintSession signs a session token for an already-authenticated account.
// Invitation redemption uses it to hand the new member a live session.
func (s *IdentityService) MintSession(ctx context.Context, account domain.Account, role domain.Role) (Session, error) {
	log := slogx.FromContext(ctx)

	claims := jwtx.NewSessionClaims(s.Issuer, account.ID, account.Email, string(role), s.sessionTTL())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return Session{}, err
	}

	return Session{
		Account:   account,
		Role:      role,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// RequestPasswordReset issues a reset token for the account behind email. The
// returned token is handed to the delivery channel; it is empty when no
// account matches, and callers must respond identically either way.
func (s *IdentityService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	log := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))

	account, err := s.Store.Accounts().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("password reset requested for unknown email")
			return "", nil
		}
		return "", err
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate reset token", slog.Any("error", err))
		return "", err
	}

	now := time.Now().UTC()
	pr := domain.PasswordReset{
		ID:        idx.New().String(),
		AccountID: account.ID,
		TokenHash: cryptox.FingerprintToken(token),
		CreatedAt: now,
		ExpiresAt: now.Add(s.resetTTL()),
	}

	if err := s.Store.PasswordResets().Create(ctx, pr); err != nil {
		log.Error("failed to store password reset", slog.Any("error", err))
		return "", err
	}

	log.Info("password reset issued", slog.String("account_id", account.ID))
	return token, nil
}

// ConfirmPasswordReset redeems a reset token for a new password. Marking the
// reset used and updating the hash share one transaction so a token can never
// change two passwords.
func (s *IdentityService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	log := slogx.FromContext(ctx)

	if token == "" || newPassword == "" {
		return ErrInvalidResetToken
	}

	now := time.Now().UTC()
	pr, err := s.Store.PasswordResets().GetActiveByTokenHash(ctx, cryptox.FingerprintToken(token), now)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("password reset with invalid token")
			return ErrInvalidResetToken
		}
		return err
	}

	newHash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		log.Error("failed to hash new password", slog.Any("error", err))
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.PasswordResets().MarkUsed(ctx, pr.ID, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidResetToken
			}
			return err
		}
		return tx.Accounts().UpdatePasswordHash(ctx, pr.AccountID, newHash)
	})
	if err != nil {
		if !errors.Is(err, ErrInvalidResetToken) {
			log.Error("failed to apply password reset",
				slog.String("account_id", pr.AccountID),
				slog.Any("error", err),
			)
		}
		return err
	}

	log.Info("password reset completed", slog.String("account_id", pr.AccountID))
	return nil
}

// dummyHash keeps sign-in timing flat for unknown emails. Its password is
// random and never stored. Minted on first use, not at package init: the
// pepper path is not configured until the application (or a TestMain) has
// started.
var dummyHash = sync.OnceValue(func() string {
	h, err := cryptox.HashPassword(cryptox.MustGenerateToken(cryptox.TokenSize128))
	if err != nil {
		return ""
	}
	return h
})
