package sqlite

import (
	"context"
	"time"

	"github.com/aikidoconnect/backoffice/internal/backoffice/domain"
	"github.com/aikidoconnect/backoffice/internal/backoffice/store"
)

type rolesRepo struct {
	db dbtx
}

func (r *rolesRepo) Get(ctx context.Context, accountID string) (domain.RoleAssignment, error) {
	var ra domain.RoleAssignment
	err := r.db.QueryRowContext(ctx,
		`SELECT account_id, role, assigned_at, updated_at
		 FROM role_assignments WHERE account_id = ?`, accountID).
		Scan(&ra.AccountID, &ra.Role, &ra.AssignedAt, &ra.UpdatedAt)
	if err != nil {
		return domain.RoleAssignment{}, mapNotFound(err)
	}
	return ra, nil
}

func (r *rolesRepo) Assign(ctx context.Context, ra domain.RoleAssignment) error {
	now := time.Now().UTC()
	if ra.AssignedAt.IsZero() {
		ra.AssignedAt = now
	}
	if ra.UpdatedAt.IsZero() {
		ra.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO role_assignments (account_id, role, assigned_at, updated_at)
		 VALUES (?, ?, ?, ?)`,
		ra.AccountID, ra.Role, ra.AssignedAt, ra.UpdatedAt)
	return mapConstraint(err)
}

func (r *rolesRepo) UpdateRole(ctx context.Context, accountID string, role domain.Role) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE role_assignments SET role = ?, updated_at = ? WHERE account_id = ?`,
		role, time.Now().UTC(), accountID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *rolesRepo) Delete(ctx context.Context, accountID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM role_assignments WHERE account_id = ?`, accountID)
	return err
}

func (r *rolesRepo) ListAccounts(ctx context.Context) ([]store.AccountWithRole, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT a.id, a.email, a.first_name, a.last_name, a.password_hash,
		        a.created_at, a.updated_at, ra.role
		 FROM accounts a
		 JOIN role_assignments ra ON ra.account_id = a.id
		 ORDER BY a.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.AccountWithRole
	for rows.Next() {
		var awr store.AccountWithRole
		a := &awr.Account
		if err := rows.Scan(&a.ID, &a.Email, &a.FirstName, &a.LastName,
			&a.PasswordHash, &a.CreatedAt, &a.UpdatedAt, &awr.Role); err != nil {
			return nil, err
		}
		out = append(out, awr)
	}
	return out, rows.Err()
}
