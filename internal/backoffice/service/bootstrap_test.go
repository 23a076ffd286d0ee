package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aikidoconnect/backoffice/internal/backoffice/domain"
)

func TestBootstrap(t *testing.T) {
	st := newTestStore(t)
	svc := &BootstrapService{Store: st, Token: "launch-code", SuperAdminEmail: "founder@aikido.test"}
	ctx := context.Background()

	bootstrapped, err := svc.IsBootstrapped(ctx)
	require.NoError(t, err)
	require.False(t, bootstrapped)

	account, err := svc.Bootstrap(ctx, "launch-code", "Founder@Aikido.Test", "first-pass", "Ada", "Founder")
	require.NoError(t, err)
	require.Equal(t, "founder@aikido.test", account.Email)

	ra, err := st.Roles().Get(ctx, account.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdministrator, ra.Role)

	bootstrapped, err = svc.IsBootstrapped(ctx)
	require.NoError(t, err)
	require.True(t, bootstrapped)
}

func TestBootstrap_ClosedOncePopulated(t *testing.T) {
	st := newTestStore(t)
	svc := &BootstrapService{Store: st, Token: "launch-code", SuperAdminEmail: "founder@aikido.test"}
	ctx := context.Background()

	_, err := svc.Bootstrap(ctx, "launch-code", "founder@aikido.test", "first-pass", "Ada", "Founder")
	require.NoError(t, err)

	// Even the correct token cannot reopen a populated directory.
	_, err = svc.Bootstrap(ctx, "launch-code", "second@aikido.test", "pass", "Eve", "Second")
	require.ErrorIs(t, err, ErrBootstrapAlready)

	n, err := st.Accounts().Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestBootstrap_WrongToken(t *testing.T) {
	st := newTestStore(t)
	svc := &BootstrapService{Store: st, Token: "launch-code", SuperAdminEmail: "founder@aikido.test"}

	_, err := svc.Bootstrap(context.Background(), "guess", "founder@aikido.test", "pass", "Ada", "Founder")
	require.ErrorIs(t, err, ErrBootstrapUnauthorized)
}

func TestBootstrap_EmailMustMatchSuperAdmin(t *testing.T) {
	st := newTestStore(t)
	svc := &BootstrapService{Store: st, Token: "launch-code", SuperAdminEmail: "founder@aikido.test"}
	ctx := context.Background()

	// A mismatching email would create an administrator the super-admin
	// immutability checks never protect.
	_, err := svc.Bootstrap(ctx, "launch-code", "other@aikido.test", "pass", "Eve", "Other")
	require.ErrorIs(t, err, ErrBootstrapEmailMismatch)

	n, err := st.Accounts().Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 0, n)

	// Matching is case-insensitive, like every other email comparison.
	_, err = svc.Bootstrap(ctx, "launch-code", "Founder@AIKIDO.test", "pass", "Ada", "Founder")
	require.NoError(t, err)
}

func TestBootstrap_Disabled(t *testing.T) {
	st := newTestStore(t)
	svc := &BootstrapService{Store: st, Token: "", SuperAdminEmail: "founder@aikido.test"}

	// An unset token disables bootstrap entirely; an empty presented token
	// must not match it.
	_, err := svc.Bootstrap(context.Background(), "", "founder@aikido.test", "pass", "Ada", "Founder")
	require.ErrorIs(t, err, ErrBootstrapDisabled)
}
