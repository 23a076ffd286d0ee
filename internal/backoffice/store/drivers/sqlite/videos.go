package sqlite

import (
	"context"
	"time"

	"github.com/aikidoconnect/backoffice/internal/backoffice/domain"
	"github.com/aikidoconnect/backoffice/internal/backoffice/store"
)

type videosRepo struct {
	db dbtx
}

const videoColumns = `id, title, url, description, published, created_at, updated_at`

func (r *videosRepo) Create(ctx context.Context, v domain.Video) error {
	now := time.Now().UTC()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	if v.UpdatedAt.IsZero() {
		v.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO videos (id, title, url, description, published, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.Title, v.URL, v.Description, v.Published, v.CreatedAt, v.UpdatedAt)
	return mapConstraint(err)
}

func (r *videosRepo) Update(ctx context.Context, v domain.Video) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE videos SET title = ?, url = ?, description = ?, published = ?, updated_at = ?
		 WHERE id = ?`,
		v.Title, v.URL, v.Description, v.Published, time.Now().UTC(), v.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *videosRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *videosRepo) GetByID(ctx context.Context, id string) (domain.Video, error) {
	var v domain.Video
	err := r.db.QueryRowContext(ctx,
		`SELECT `+videoColumns+` FROM videos WHERE id = ?`, id).
		Scan(&v.ID, &v.Title, &v.URL, &v.Description, &v.Published, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return domain.Video{}, mapNotFound(err)
	}
	return v, nil
}

func (r *videosRepo) List(ctx context.Context) ([]domain.Video, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+videoColumns+` FROM videos ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Video
	for rows.Next() {
		var v domain.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.URL, &v.Description, &v.Published,
			&v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *videosRepo) Count(ctx context.Context) (total int64, published int64, err error) {
	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(published), 0) FROM videos`).
		Scan(&total, &published)
	return total, published, err
}
