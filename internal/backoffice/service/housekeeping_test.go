package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aikidoconnect/backoffice/internal/backoffice/domain"
	"github.com/aikidoconnect/backoffice/pkg/cryptox"
	"github.com/aikidoconnect/backoffice/pkg/idx"
)

func TestHousekeeping_PurgesExpiredResets(t *testing.T) {
	st := newTestStore(t)
	admin := seedAccount(t, st, "admin@aikido.test", domain.RoleAdministrator)
	ctx := context.Background()

	now := time.Now().UTC()
	expired := domain.PasswordReset{
		ID:        idx.New().String(),
		AccountID: admin.ID,
		TokenHash: cryptox.FingerprintToken(cryptox.MustGenerateToken(cryptox.TokenSize256)),
		CreatedAt: now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
	}
	require.NoError(t, st.PasswordResets().Create(ctx, expired))

	liveToken := cryptox.MustGenerateToken(cryptox.TokenSize256)
	live := domain.PasswordReset{
		ID:        idx.New().String(),
		AccountID: admin.ID,
		TokenHash: cryptox.FingerprintToken(liveToken),
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	require.NoError(t, st.PasswordResets().Create(ctx, live))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	hk := NewHousekeepingService(st, logger, time.Hour)
	hk.Start()
	hk.Stop()

	// The live reset survived the sweep, the expired one did not.
	_, err := st.PasswordResets().GetActiveByTokenHash(ctx, live.TokenHash, now)
	require.NoError(t, err)
}
