package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aikidoconnect/backoffice/internal/backoffice/domain"
)

func TestAccountList(t *testing.T) {
	st := newTestStore(t)
	seedAccount(t, st, "root@aikido.test", domain.RoleAdministrator)
	editor := seedAccount(t, st, "editor@aikido.test", domain.RoleEditor)

	svc := &AccountService{Store: st, SuperAdminEmail: "root@aikido.test"}

	accounts, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	byEmail := map[string]domain.Role{}
	for _, a := range accounts {
		byEmail[a.Account.Email] = a.Role
	}
	require.Equal(t, domain.RoleAdministrator, byEmail["root@aikido.test"])
	require.Equal(t, domain.RoleEditor, byEmail["editor@aikido.test"])

	got, err := svc.Get(context.Background(), editor.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleEditor, got.Role)
}

func TestAccountUpdateRole(t *testing.T) {
	st := newTestStore(t)
	editor := seedAccount(t, st, "editor@aikido.test", domain.RoleEditor)

	svc := &AccountService{Store: st, SuperAdminEmail: "root@aikido.test"}
	ctx := context.Background()

	require.NoError(t, svc.UpdateRole(ctx, editor.ID, domain.RoleAdministrator))

	got, err := svc.Get(ctx, editor.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdministrator, got.Role)

	t.Run("invalid role", func(t *testing.T) {
		require.ErrorIs(t, svc.UpdateRole(ctx, editor.ID, "owner"), ErrInvalidRole)
	})

	t.Run("unknown account", func(t *testing.T) {
		err := svc.UpdateRole(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV", domain.RoleEditor)
		require.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestAccountSuperAdminImmutable(t *testing.T) {
	st := newTestStore(t)
	root := seedAccount(t, st, "root@aikido.test", domain.RoleAdministrator)

	svc := &AccountService{Store: st, SuperAdminEmail: "Root@Aikido.Test"}
	ctx := context.Background()

	// Case-insensitive match on the configured email; neither demotion nor a
	// no-op "promotion" is allowed.
	require.ErrorIs(t, svc.UpdateRole(ctx, root.ID, domain.RoleEditor), ErrSuperAdminImmutable)
	require.ErrorIs(t, svc.UpdateRole(ctx, root.ID, domain.RoleAdministrator), ErrSuperAdminImmutable)
	require.ErrorIs(t, svc.Delete(ctx, root.ID), ErrSuperAdminImmutable)

	got, err := svc.Get(ctx, root.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdministrator, got.Role)
}

func TestAccountDelete(t *testing.T) {
	st := newTestStore(t)
	editor := seedAccount(t, st, "editor@aikido.test", domain.RoleEditor)

	svc := &AccountService{Store: st, SuperAdminEmail: "root@aikido.test"}
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, editor.ID))

	_, err := svc.Get(ctx, editor.ID)
	require.ErrorIs(t, err, ErrAccountNotFound)

	t.Run("unknown account", func(t *testing.T) {
		require.ErrorIs(t, svc.Delete(ctx, editor.ID), ErrAccountNotFound)
	})
}
