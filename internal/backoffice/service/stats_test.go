package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aikidoconnect/backoffice/internal/backoffice/domain"
)

func TestStatsSnapshot(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	admin := seedAccount(t, st, "admin@aikido.test", domain.RoleAdministrator)
	seedAccount(t, st, "editor@aikido.test", domain.RoleEditor)

	invitations := &InvitationService{Store: st}
	_, err := invitations.Issue(ctx, admin.ID, "pending@example.com", domain.RoleEditor)
	require.NoError(t, err)

	sheets := &SheetService{Store: st}
	_, err = sheets.Create(ctx, "Ikkyo", "techniques-base", "", true)
	require.NoError(t, err)
	_, err = sheets.Create(ctx, "Brouillon", "autre", "", false)
	require.NoError(t, err)

	videos := &VideoService{Store: st}
	_, err = videos.Create(ctx, "Ukemi", "https://videos.example.com/ukemi.mp4", "", true)
	require.NoError(t, err)

	svc := &StatsService{Store: st}
	stats, err := svc.Snapshot(ctx)
	require.NoError(t, err)

	require.Equal(t, Stats{
		Accounts:           2,
		PendingInvitations: 1,
		Sheets:             2,
		PublishedSheets:    1,
		Videos:             1,
		PublishedVideos:    1,
	}, stats)
}

func TestStatsSnapshot_EmptyDirectory(t *testing.T) {
	svc := &StatsService{Store: newTestStore(t)}

	stats, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, Stats{}, stats)
}
