package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aikidoconnect/backoffice/internal/backoffice/domain"
	"github.com/aikidoconnect/backoffice/internal/backoffice/store/drivers/sqlite"
	"github.com/aikidoconnect/backoffice/pkg/cryptox"
	"github.com/aikidoconnect/backoffice/pkg/idx"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "backoffice-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)
	os.Remove(pepperPath)

	os.Exit(m.Run())
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// seedAccount inserts an account with the given role and returns it. The
// password is always "correct horse".
func seedAccount(t *testing.T, st *sqlite.Store, email string, role domain.Role) domain.Account {
	t.Helper()
	ctx := context.Background()

	hash, err := cryptox.HashPassword("correct horse")
	require.NoError(t, err)

	now := time.Now().UTC()
	account := domain.Account{
		ID:           idx.New().String(),
		Email:        email,
		FirstName:    "Test",
		LastName:     "Account",
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, st.Accounts().Create(ctx, account))
	require.NoError(t, st.Roles().Assign(ctx, domain.RoleAssignment{
		AccountID:  account.ID,
		Role:       role,
		AssignedAt: now,
		UpdatedAt:  now,
	}))
	return account
}
