package sqlite

import (
	"context"
	"time"

	"github.com/aikidoconnect/backoffice/internal/backoffice/domain"
	"github.com/aikidoconnect/backoffice/internal/backoffice/store"
)

type sheetsRepo struct {
	db dbtx
}

const sheetColumns = `id, title, slug, content, category, published, created_at, updated_at`

func (r *sheetsRepo) Create(ctx context.Context, s domain.TechnicalSheet) error {
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO technical_sheets (id, title, slug, content, category, published, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Title, s.Slug, s.Content, s.Category, s.Published, s.CreatedAt, s.UpdatedAt)
	return mapConstraint(err)
}

func (r *sheetsRepo) Update(ctx context.Context, s domain.TechnicalSheet) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE technical_sheets
		 SET title = ?, slug = ?, content = ?, category = ?, published = ?, updated_at = ?
		 WHERE id = ?`,
		s.Title, s.Slug, s.Content, s.Category, s.Published, time.Now().UTC(), s.ID)
	if err != nil {
		return mapConstraint(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *sheetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM technical_sheets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *sheetsRepo) GetByID(ctx context.Context, id string) (domain.TechnicalSheet, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+sheetColumns+` FROM technical_sheets WHERE id = ?`, id)
	return scanSheet(row)
}

func (r *sheetsRepo) GetBySlug(ctx context.Context, slug string) (domain.TechnicalSheet, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+sheetColumns+` FROM technical_sheets WHERE slug = ?`, slug)
	return scanSheet(row)
}

func (r *sheetsRepo) List(ctx context.Context) ([]domain.TechnicalSheet, error) {
	return r.list(ctx,
		`SELECT `+sheetColumns+` FROM technical_sheets ORDER BY updated_at DESC`)
}

func (r *sheetsRepo) ListPublished(ctx context.Context) ([]domain.TechnicalSheet, error) {
	return r.list(ctx,
		`SELECT `+sheetColumns+` FROM technical_sheets WHERE published = 1 ORDER BY title`)
}

func (r *sheetsRepo) list(ctx context.Context, query string) ([]domain.TechnicalSheet, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TechnicalSheet
	for rows.Next() {
		s, err := scanSheet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *sheetsRepo) Count(ctx context.Context) (total int64, published int64, err error) {
	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(published), 0) FROM technical_sheets`).
		Scan(&total, &published)
	return total, published, err
}

func scanSheet(row rowScanner) (domain.TechnicalSheet, error) {
	var s domain.TechnicalSheet
	err := row.Scan(&s.ID, &s.Title, &s.Slug, &s.Content, &s.Category,
		&s.Published, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.TechnicalSheet{}, mapNotFound(err)
	}
	return s, nil
}
