package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aikidoconnect/backoffice/internal/backoffice/domain"
)

// newInvitationFixture returns the service wired to a fresh store, plus a
// settable clock and a seeded administrator to act as the inviter.
func newInvitationFixture(t *testing.T) (*InvitationService, *time.Time, domain.Account) {
	t.Helper()

	st := newTestStore(t)
	admin := seedAccount(t, st, "admin@aikido.test", domain.RoleAdministrator)

	now := time.Now().UTC()
	svc := &InvitationService{
		Store: st,
		Now:   func() time.Time { return now },
	}
	return svc, &now, admin
}

func TestInvitationIssue(t *testing.T) {
	svc, _, admin := newInvitationFixture(t)
	ctx := context.Background()

	inv, err := svc.Issue(ctx, admin.ID, "New.Editor@Example.COM", domain.RoleEditor)
	require.NoError(t, err)

	require.True(t, domain.ValidInviteTokenShape(inv.Token),
		"token must be 64 lowercase hex characters")
	require.Equal(t, "new.editor@example.com", inv.Email, "email is stored lowercase")
	require.Equal(t, domain.RoleEditor, inv.Role)
	require.Equal(t, admin.ID, inv.InvitedBy)
	require.Nil(t, inv.RedeemedAt)
	require.Equal(t, inv.CreatedAt.Add(DefaultInviteTTL), inv.ExpiresAt)

	pending, err := svc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, inv.ID, pending[0].ID)
}

func TestInvitationIssue_Rejections(t *testing.T) {
	svc, _, admin := newInvitationFixture(t)
	ctx := context.Background()

	t.Run("unknown role", func(t *testing.T) {
		_, err := svc.Issue(ctx, admin.ID, "someone@example.com", domain.Role("owner"))
		require.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("empty email", func(t *testing.T) {
		_, err := svc.Issue(ctx, admin.ID, "   ", domain.RoleEditor)
		require.ErrorIs(t, err, ErrInvalidInviteRequest)
	})

	t.Run("registered email", func(t *testing.T) {
		_, err := svc.Issue(ctx, admin.ID, "Admin@Aikido.Test", domain.RoleEditor)
		require.ErrorIs(t, err, ErrAlreadyRegistered)
	})

	t.Run("duplicate pending", func(t *testing.T) {
		_, err := svc.Issue(ctx, admin.ID, "dup@example.com", domain.RoleEditor)
		require.NoError(t, err)

		_, err = svc.Issue(ctx, admin.ID, "dup@example.com", domain.RoleContentCreator)
		require.ErrorIs(t, err, ErrInvitationPending)
	})
}

func TestInvitationIssue_ReissueAfterExpiry(t *testing.T) {
	svc, now, admin := newInvitationFixture(t)
	ctx := context.Background()

	_, err := svc.Issue(ctx, admin.ID, "slow@example.com", domain.RoleEditor)
	require.NoError(t, err)

	// A pending invitation blocks a second issue, but once it expires the
	// email is invitable again.
	*now = now.Add(8 * 24 * time.Hour)
	_, err = svc.Issue(ctx, admin.ID, "slow@example.com", domain.RoleEditor)
	require.NoError(t, err)
}

func TestInvitationLookup(t *testing.T) {
	svc, now, admin := newInvitationFixture(t)
	ctx := context.Background()

	inv, err := svc.Issue(ctx, admin.ID, "invited@example.com", domain.RoleContentCreator)
	require.NoError(t, err)

	got, err := svc.Lookup(ctx, inv.Token)
	require.NoError(t, err)
	require.Equal(t, inv.ID, got.ID)
	require.Equal(t, domain.RoleContentCreator, got.Role)

	t.Run("malformed tokens", func(t *testing.T) {
		for _, token := range []string{
			"",
			"short",
			strings.ToUpper(inv.Token),
			inv.Token + "00",
			strings.Repeat("g", 64),
		} {
			_, err := svc.Lookup(ctx, token)
			require.ErrorIs(t, err, ErrInvalidToken)
		}
	})

	t.Run("well-formed but never issued", func(t *testing.T) {
		_, err := svc.Lookup(ctx, strings.Repeat("ab", 32))
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("still valid a day before expiry", func(t *testing.T) {
		*now = inv.ExpiresAt.Add(-24 * time.Hour)
		_, err := svc.Lookup(ctx, inv.Token)
		require.NoError(t, err)
	})

	t.Run("dead at expiry", func(t *testing.T) {
		*now = inv.ExpiresAt
		_, err := svc.Lookup(ctx, inv.Token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestInvitationRedeem(t *testing.T) {
	svc, _, admin := newInvitationFixture(t)
	ctx := context.Background()

	inv, err := svc.Issue(ctx, admin.ID, "newbie@example.com", domain.RoleEditor)
	require.NoError(t, err)

	account, role, err := svc.Redeem(ctx, inv.Token, "s3cret-enough", "Marie", "Dupont")
	require.NoError(t, err)
	require.Equal(t, "newbie@example.com", account.Email)
	require.Equal(t, domain.RoleEditor, role)

	// The account exists and carries the invitation's role.
	ra, err := svc.Store.Roles().Get(ctx, account.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleEditor, ra.Role)

	// The token is spent: lookup and a second redemption both fail the same
	// way as any dead token.
	_, err = svc.Lookup(ctx, inv.Token)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, _, err = svc.Redeem(ctx, inv.Token, "another-pass", "Jean", "Martin")
	require.ErrorIs(t, err, ErrInvalidToken)

	// No pending invitation remains for the email.
	pending, err := svc.ListPending(ctx)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestInvitationRedeem_MissingFields(t *testing.T) {
	svc, _, admin := newInvitationFixture(t)
	ctx := context.Background()

	inv, err := svc.Issue(ctx, admin.ID, "strict@example.com", domain.RoleEditor)
	require.NoError(t, err)

	for _, tt := range []struct {
		name                          string
		password, firstName, lastName string
	}{
		{"no password", "", "Marie", "Dupont"},
		{"no first name", "pass", "", "Dupont"},
		{"no last name", "pass", "Marie", ""},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Redeem(ctx, inv.Token, tt.password, tt.firstName, tt.lastName)
			require.ErrorIs(t, err, ErrInvalidInviteRequest)
		})
	}

	// The invitation is untouched by rejected attempts.
	_, err = svc.Lookup(ctx, inv.Token)
	require.NoError(t, err)
}

func TestInvitationRedeem_Expired(t *testing.T) {
	svc, now, admin := newInvitationFixture(t)
	ctx := context.Background()

	inv, err := svc.Issue(ctx, admin.ID, "late@example.com", domain.RoleEditor)
	require.NoError(t, err)

	*now = now.Add(8 * 24 * time.Hour)
	_, _, err = svc.Redeem(ctx, inv.Token, "too-late", "Marie", "Dupont")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestInvitationRedeem_Concurrent(t *testing.T) {
	svc, _, admin := newInvitationFixture(t)
	ctx := context.Background()

	inv, err := svc.Issue(ctx, admin.ID, "contested@example.com", domain.RoleContentCreator)
	require.NoError(t, err)

	const attempts = 5
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = svc.Redeem(ctx, inv.Token, "race-pass", "Racer", "One")
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrInvalidToken):
			lost++
		default:
			t.Fatalf("unexpected redemption error: %v", err)
		}
	}
	require.Equal(t, 1, won, "exactly one redemption may win")
	require.Equal(t, attempts-1, lost)

	// Exactly one account came out of it: the inviter plus the winner.
	n, err := svc.Store.Accounts().Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}

func TestInvitationRevoke(t *testing.T) {
	svc, _, admin := newInvitationFixture(t)
	ctx := context.Background()

	inv, err := svc.Issue(ctx, admin.ID, "revoked@example.com", domain.RoleEditor)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, inv.ID))

	_, err = svc.Lookup(ctx, inv.Token)
	require.ErrorIs(t, err, ErrInvalidToken)

	// Revoking frees the email for a fresh invitation.
	_, err = svc.Issue(ctx, admin.ID, "revoked@example.com", domain.RoleEditor)
	require.NoError(t, err)

	t.Run("unknown id", func(t *testing.T) {
		require.ErrorIs(t, svc.Revoke(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV"), ErrInvitationNotFound)
	})

	t.Run("redeemed invitation is valid cleanup", func(t *testing.T) {
		inv, err := svc.Issue(ctx, admin.ID, "spent@example.com", domain.RoleEditor)
		require.NoError(t, err)
		_, _, err = svc.Redeem(ctx, inv.Token, "pass-word", "Spent", "Token")
		require.NoError(t, err)

		require.NoError(t, svc.Revoke(ctx, inv.ID))
	})
}

func TestInvitationListPending_FiltersDeadInvitations(t *testing.T) {
	svc, now, admin := newInvitationFixture(t)
	ctx := context.Background()

	redeemed, err := svc.Issue(ctx, admin.ID, "done@example.com", domain.RoleEditor)
	require.NoError(t, err)
	_, _, err = svc.Redeem(ctx, redeemed.Token, "pass", "Done", "Already")
	require.NoError(t, err)

	expired, err := svc.Issue(ctx, admin.ID, "old@example.com", domain.RoleEditor)
	require.NoError(t, err)

	*now = now.Add(8 * 24 * time.Hour)
	fresh, err := svc.Issue(ctx, admin.ID, "fresh@example.com", domain.RoleEditor)
	require.NoError(t, err)

	pending, err := svc.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, fresh.ID, pending[0].ID)
	require.NotEqual(t, expired.ID, pending[0].ID)
}
