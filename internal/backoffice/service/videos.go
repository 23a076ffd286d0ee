package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/aikidoconnect/backoffice/internal/backoffice/domain"
	"github.com/aikidoconnect/backoffice/internal/backoffice/store"
	"github.com/aikidoconnect/backoffice/pkg/idx"
	"github.com/aikidoconnect/backoffice/pkg/slogx"
)

var (
	ErrVideoNotFound = errors.New("video not found")
	ErrInvalidVideo  = errors.New("invalid video request")
)

// VideoService manages the pedagogical video catalogue.
type VideoService struct {
	Store store.Store
}

func validVideoURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (s *VideoService) Create(
	ctx context.Context,
	title, rawURL, description string,
	published bool,
) (domain.Video, error) {
	log := slogx.FromContext(ctx)

	title = strings.TrimSpace(title)
	if title == "" || !validVideoURL(rawURL) {
		return domain.Video{}, ErrInvalidVideo
	}

	now := time.Now().UTC()
	video := domain.Video{
		ID:          idx.New().String(),
		Title:       title,
		URL:         rawURL,
		Description: description,
		Published:   published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Videos().Create(ctx, video); err != nil {
		log.Error("failed to create video", slog.Any("error", err))
		return domain.Video{}, err
	}

	log.Info("video created", slog.String("video_id", video.ID))
	return video, nil
}

func (s *VideoService) Update(
	ctx context.Context,
	id string,
	title, rawURL, description string,
	published bool,
) (domain.Video, error) {
	log := slogx.FromContext(ctx)

	title = strings.TrimSpace(title)
	if title == "" || !validVideoURL(rawURL) {
		return domain.Video{}, ErrInvalidVideo
	}

	video, err := s.Store.Videos().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Video{}, ErrVideoNotFound
		}
		return domain.Video{}, err
	}

	video.Title = title
	video.URL = rawURL
	video.Description = description
	video.Published = published
	video.UpdatedAt = time.Now().UTC()

	if err := s.Store.Videos().Update(ctx, video); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Video{}, ErrVideoNotFound
		}
		log.Error("failed to update video",
			slog.String("video_id", id),
			slog.Any("error", err),
		)
		return domain.Video{}, err
	}

	log.Info("video updated", slog.String("video_id", id))
	return video, nil
}

func (s *VideoService) Get(ctx context.Context, id string) (domain.Video, error) {
	video, err := s.Store.Videos().GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Video{}, ErrVideoNotFound
	}
	return video, err
}

func (s *VideoService) List(ctx context.Context) ([]domain.Video, error) {
	return s.Store.Videos().List(ctx)
}

func (s *VideoService) Delete(ctx context.Context, id string) error {
	log := slogx.FromContext(ctx)

	if err := s.Store.Videos().Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrVideoNotFound
		}
		log.Error("failed to delete video",
			slog.String("video_id", id),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("video deleted", slog.String("video_id", id))
	return nil
}
