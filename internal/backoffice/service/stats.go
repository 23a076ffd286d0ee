package service

import (
	"context"
	"time"

	"github.com/aikidoconnect/backoffice/internal/backoffice/store"
)

// Stats is the dashboard snapshot: directory and content counts.
type Stats struct {
	Accounts           int64
	PendingInvitations int64
	Sheets             int64
	PublishedSheets    int64
	Videos             int64
	PublishedVideos    int64
}

// StatsService aggregates counts for the admin dashboard. Counts are read
// independently; the dashboard tolerates slight skew between them.
type StatsService struct {
	Store store.Store
}

func (s *StatsService) Snapshot(ctx context.Context) (Stats, error) {
	var out Stats

	accounts, err := s.Store.Accounts().Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	out.Accounts = accounts

	pending, err := s.Store.Invitations().CountPending(ctx, time.Now())
	if err != nil {
		return Stats{}, err
	}
	out.PendingInvitations = pending

	sheets, publishedSheets, err := s.Store.Sheets().Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	out.Sheets = sheets
	out.PublishedSheets = publishedSheets

	videos, publishedVideos, err := s.Store.Videos().Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	out.Videos = videos
	out.PublishedVideos = publishedVideos

	return out, nil
}
