package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aikidoconnect/backoffice/internal/backoffice/domain"
	"github.com/aikidoconnect/backoffice/internal/backoffice/store"
	"github.com/aikidoconnect/backoffice/pkg/idx"
	"github.com/aikidoconnect/backoffice/pkg/slogx"
)

var (
	ErrSheetNotFound   = errors.New("technical sheet not found")
	ErrSheetSlugTaken  = errors.New("a sheet with this title already exists")
	ErrInvalidCategory = errors.New("invalid sheet category")
	ErrInvalidSheet    = errors.New("invalid sheet request")
)

// SheetService manages technical sheets. Slugs are derived from the title at
// creation and stay stable across edits so published URLs never break.
type SheetService struct {
	Store store.Store
}

// Create inserts a new sheet with a slug derived from its title.
func (s *SheetService) Create(
	ctx context.Context,
	title, category, content string,
	published bool,
) (domain.TechnicalSheet, error) {
	log := slogx.FromContext(ctx)

	title = strings.TrimSpace(title)
	if title == "" {
		return domain.TechnicalSheet{}, ErrInvalidSheet
	}
	if !domain.ValidSheetCategory(category) {
		return domain.TechnicalSheet{}, ErrInvalidCategory
	}

	slug := domain.Slugify(title)
	if slug == "" {
		return domain.TechnicalSheet{}, ErrInvalidSheet
	}

	now := time.Now().UTC()
	sheet := domain.TechnicalSheet{
		ID:        idx.New().String(),
		Title:     title,
		Slug:      slug,
		Content:   content,
		Category:  category,
		Published: published,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.Sheets().Create(ctx, sheet); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.TechnicalSheet{}, ErrSheetSlugTaken
		}
		log.Error("failed to create sheet", slog.Any("error", err))
		return domain.TechnicalSheet{}, err
	}

	log.Info("sheet created",
		slog.String("sheet_id", sheet.ID),
		slog.String("slug", slug),
	)
	return sheet, nil
}

// Update edits a sheet's title, category, content, or publication state. The
// slug is never recomputed.
func (s *SheetService) Update(
	ctx context.Context,
	id string,
	title, category, content string,
	published bool,
) (domain.TechnicalSheet, error) {
	log := slogx.FromContext(ctx)

	title = strings.TrimSpace(title)
	if title == "" {
		return domain.TechnicalSheet{}, ErrInvalidSheet
	}
	if !domain.ValidSheetCategory(category) {
		return domain.TechnicalSheet{}, ErrInvalidCategory
	}

	sheet, err := s.Store.Sheets().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TechnicalSheet{}, ErrSheetNotFound
		}
		return domain.TechnicalSheet{}, err
	}

	sheet.Title = title
	sheet.Category = category
	sheet.Content = content
	sheet.Published = published
	sheet.UpdatedAt = time.Now().UTC()

	if err := s.Store.Sheets().Update(ctx, sheet); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TechnicalSheet{}, ErrSheetNotFound
		}
		log.Error("failed to update sheet",
			slog.String("sheet_id", id),
			slog.Any("error", err),
		)
		return domain.TechnicalSheet{}, err
	}

	log.Info("sheet updated", slog.String("sheet_id", id))
	return sheet, nil
}

func (s *SheetService) Get(ctx context.Context, id string) (domain.TechnicalSheet, error) {
	sheet, err := s.Store.Sheets().GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.TechnicalSheet{}, ErrSheetNotFound
	}
	return sheet, err
}

// GetPublishedBySlug serves the public site; unpublished sheets are invisible
// through this path.
func (s *SheetService) GetPublishedBySlug(ctx context.Context, slug string) (domain.TechnicalSheet, error) {
	sheet, err := s.Store.Sheets().GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TechnicalSheet{}, ErrSheetNotFound
		}
		return domain.TechnicalSheet{}, err
	}
	if !sheet.Published {
		return domain.TechnicalSheet{}, ErrSheetNotFound
	}
	return sheet, nil
}

func (s *SheetService) List(ctx context.Context) ([]domain.TechnicalSheet, error) {
	return s.Store.Sheets().List(ctx)
}

func (s *SheetService) ListPublished(ctx context.Context) ([]domain.TechnicalSheet, error) {
	return s.Store.Sheets().ListPublished(ctx)
}

func (s *SheetService) Delete(ctx context.Context, id string) error {
	log := slogx.FromContext(ctx)

	if err := s.Store.Sheets().Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSheetNotFound
		}
		log.Error("failed to delete sheet",
			slog.String("sheet_id", id),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("sheet deleted", slog.String("sheet_id", id))
	return nil
}
