package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aikidoconnect/backoffice/internal/backoffice/domain"
	"github.com/aikidoconnect/backoffice/internal/backoffice/store"
)

type passwordResetsRepo struct {
	db dbtx
}

func (r *passwordResetsRepo) Create(ctx context.Context, pr domain.PasswordReset) error {
	if pr.CreatedAt.IsZero() {
		pr.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO password_resets (id, account_id, token_hash, expires_at, used_at, created_at)
		 VALUES (?, ?, ?, ?, NULL, ?)`,
		pr.ID, pr.AccountID, pr.TokenHash, pr.ExpiresAt, pr.CreatedAt)
	return mapConstraint(err)
}

func (r *passwordResetsRepo) GetActiveByTokenHash(
	ctx context.Context,
	hash string,
	now time.Time,
) (domain.PasswordReset, error) {
	var pr domain.PasswordReset
	var used sql.NullTime
	err := r.db.QueryRowContext(ctx,
		`SELECT id, account_id, token_hash, expires_at, used_at, created_at
		 FROM password_resets
		 WHERE token_hash = ? AND used_at IS NULL AND expires_at > ?`,
		hash, now.UTC()).
		Scan(&pr.ID, &pr.AccountID, &pr.TokenHash, &pr.ExpiresAt, &used, &pr.CreatedAt)
	if err != nil {
		return domain.PasswordReset{}, mapNotFound(err)
	}
	if used.Valid {
		t := used.Time
		pr.UsedAt = &t
	}
	return pr, nil
}

func (r *passwordResetsRepo) MarkUsed(ctx context.Context, id string, now time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE password_resets SET used_at = ? WHERE id = ? AND used_at IS NULL`,
		now.UTC(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *passwordResetsRepo) DeleteExpired(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM password_resets WHERE expires_at <= ? OR used_at IS NOT NULL`,
		now.UTC())
	return err
}
