package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/aikidoconnect/backoffice/internal/backoffice/domain"
	"github.com/aikidoconnect/backoffice/internal/backoffice/store"
)

type invitationsRepo struct {
	db dbtx
}

const invitationColumns = `id, email, role, token, invited_by, expires_at, redeemed_at, created_at`

func (r *invitationsRepo) Create(ctx context.Context, inv domain.Invitation) error {
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invitations (id, email, role, token, invited_by, expires_at, redeemed_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, NULL, ?)`,
		inv.ID, strings.ToLower(inv.Email), inv.Role, inv.Token, inv.InvitedBy,
		inv.ExpiresAt, inv.CreatedAt)
	return mapConstraint(err)
}

func (r *invitationsRepo) GetByToken(ctx context.Context, token string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE token = ?`, token)
	return scanInvitation(row)
}

func (r *invitationsRepo) GetByID(ctx context.Context, id string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE id = ?`, id)
	return scanInvitation(row)
}

func (r *invitationsRepo) FindPendingByEmail(
	ctx context.Context,
	email string,
	now time.Time,
) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations
		 WHERE email = ? AND redeemed_at IS NULL AND expires_at > ?
		 LIMIT 1`,
		strings.ToLower(strings.TrimSpace(email)), now.UTC())
	return scanInvitation(row)
}

// Claim is the compare-and-set that makes redemption exactly-once: the UPDATE
// only matches while redeemed_at is still null and the row is unexpired, so
// of two racing redeemers exactly one sees a row change.
func (r *invitationsRepo) Claim(ctx context.Context, id string, now time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invitations SET redeemed_at = ?
		 WHERE id = ? AND redeemed_at IS NULL AND expires_at > ?`,
		now.UTC(), id, now.UTC())
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *invitationsRepo) ListPending(ctx context.Context, now time.Time) ([]domain.Invitation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations
		 WHERE redeemed_at IS NULL AND expires_at > ?
		 ORDER BY created_at DESC`, now.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invitationsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM invitations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *invitationsRepo) CountPending(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM invitations WHERE redeemed_at IS NULL AND expires_at > ?`,
		now.UTC()).Scan(&n)
	return n, err
}

func scanInvitation(row rowScanner) (domain.Invitation, error) {
	var inv domain.Invitation
	var redeemed sql.NullTime
	err := row.Scan(&inv.ID, &inv.Email, &inv.Role, &inv.Token, &inv.InvitedBy,
		&inv.ExpiresAt, &redeemed, &inv.CreatedAt)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	if redeemed.Valid {
		t := redeemed.Time
		inv.RedeemedAt = &t
	}
	return inv, nil
}
