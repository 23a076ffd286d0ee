package store

import (
	"context"
	"errors"
	"time"

	"github.com/aikidoconnect/backoffice/internal/backoffice/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the directory service: the single source of truth for accounts,
// role assignments, invitations, and site content. Concrete drivers (sqlite
// today) implement it. Sub-repositories keep concerns tidy and let tests
// fake one table at a time.
type Store interface {
	Accounts() Accounts
	Roles() Roles
	Invitations() Invitations
	PasswordResets() PasswordResets
	Sheets() Sheets
	Videos() Videos

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction: rolled back if fn errors,
	// committed otherwise. Multi-step operations that must be atomic
	// (invitation redemption above all) go through here.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the backing database is still reachable.
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped store with Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// GetByID returns an account by id.
	GetByID(ctx context.Context, id string) (domain.Account, error)

	// GetByEmail matches case-insensitively (emails are stored lowercase).
	GetByEmail(ctx context.Context, email string) (domain.Account, error)

	// Create inserts a new account (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	Create(ctx context.Context, a domain.Account) error

	// UpdatePasswordHash sets the password hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, accountID, newHash string) error

	Delete(ctx context.Context, accountID string) error

	Count(ctx context.Context) (int64, error)
}

// AccountWithRole is the joined row backing the user-management screen.
type AccountWithRole struct {
	Account domain.Account
	Role    domain.Role
}

type Roles interface {
	// Get returns the single role assignment for an account.
	Get(ctx context.Context, accountID string) (domain.RoleAssignment, error)

	// Assign creates the role assignment for a freshly created account.
	Assign(ctx context.Context, ra domain.RoleAssignment) error

	// UpdateRole overwrites the role for an account and bumps updated_at.
	UpdateRole(ctx context.Context, accountID string, role domain.Role) error

	Delete(ctx context.Context, accountID string) error

	// ListAccounts returns every account joined with its role, newest first.
	ListAccounts(ctx context.Context) ([]AccountWithRole, error)
}

type Invitations interface {
	Create(ctx context.Context, inv domain.Invitation) error

	// GetByToken is the narrow token lookup: exact match on the token
	// column, nothing else. Callers validate the token shape first.
	GetByToken(ctx context.Context, token string) (domain.Invitation, error)

	// GetByID returns an invitation regardless of state.
	GetByID(ctx context.Context, id string) (domain.Invitation, error)

	// FindPendingByEmail returns the outstanding (unredeemed, unexpired as
	// of now) invitation for an email, or ErrNotFound.
	FindPendingByEmail(ctx context.Context, email string, now time.Time) (domain.Invitation, error)

	// Claim conditionally sets redeemed_at: it succeeds only if the row is
	// still unredeemed and unexpired at now. Returns ErrNotFound when the
	// compare-and-set misses, which the caller treats as authoritative.
	Claim(ctx context.Context, id string, now time.Time) error

	// ListPending returns unredeemed, unexpired invitations, newest first.
	ListPending(ctx context.Context, now time.Time) ([]domain.Invitation, error)

	// Delete removes an invitation in any state (pending, expired, or
	// redeemed). Returns ErrNotFound for an unknown id.
	Delete(ctx context.Context, id string) error

	CountPending(ctx context.Context, now time.Time) (int64, error)
}

type PasswordResets interface {
	Create(ctx context.Context, pr domain.PasswordReset) error

	// GetActiveByTokenHash returns an unused, unexpired reset by fingerprint.
	GetActiveByTokenHash(ctx context.Context, hash string, now time.Time) (domain.PasswordReset, error)

	// MarkUsed sets used_at, conditionally on it being null.
	MarkUsed(ctx context.Context, id string, now time.Time) error

	// DeleteExpired is housekeeping.
	DeleteExpired(ctx context.Context, now time.Time) error
}

type Sheets interface {
	Create(ctx context.Context, s domain.TechnicalSheet) error
	Update(ctx context.Context, s domain.TechnicalSheet) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (domain.TechnicalSheet, error)
	GetBySlug(ctx context.Context, slug string) (domain.TechnicalSheet, error)

	// List returns all sheets ordered by last update, newest first.
	List(ctx context.Context) ([]domain.TechnicalSheet, error)

	// ListPublished returns published sheets only, for the public site.
	ListPublished(ctx context.Context) ([]domain.TechnicalSheet, error)

	Count(ctx context.Context) (total int64, published int64, err error)
}

type Videos interface {
	Create(ctx context.Context, v domain.Video) error
	Update(ctx context.Context, v domain.Video) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (domain.Video, error)
	List(ctx context.Context) ([]domain.Video, error)
	Count(ctx context.Context) (total int64, published int64, err error)
}
