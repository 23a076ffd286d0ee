package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidInviteTokenShape(t *testing.T) {
	t.Parallel()

	valid := strings.Repeat("0123456789abcdef", 4)
	require.Len(t, valid, InviteTokenLength)
	require.True(t, ValidInviteTokenShape(valid))

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"too short", valid[:63]},
		{"too long", valid + "a"},
		{"uppercase hex", strings.ToUpper(valid)},
		{"non-hex characters", strings.Repeat("g", 64)},
		{"embedded whitespace", valid[:32] + " " + valid[33:]},
		{"sql-ish garbage", "' OR 1=1 --" + strings.Repeat("a", 53)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.False(t, ValidInviteTokenShape(tt.token))
		})
	}
}

func TestInvitationRedeemable(t *testing.T) {
	t.Parallel()

	now := time.Now()
	redeemed := now.Add(-time.Hour)

	pending := Invitation{ExpiresAt: now.Add(time.Hour)}
	require.True(t, pending.Redeemable(now))
	require.False(t, pending.Expired(now))

	expired := Invitation{ExpiresAt: now.Add(-time.Minute)}
	require.False(t, expired.Redeemable(now))
	require.True(t, expired.Expired(now))

	// Expiry boundary is exclusive: an invitation is dead at the instant
	// expires_at passes.
	boundary := Invitation{ExpiresAt: now}
	require.False(t, boundary.Redeemable(now))

	used := Invitation{ExpiresAt: now.Add(time.Hour), RedeemedAt: &redeemed}
	require.False(t, used.Redeemable(now))
	require.False(t, used.Expired(now))
}
