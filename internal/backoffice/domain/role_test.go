package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoleValid(t *testing.T) {
	t.Parallel()

	require.True(t, RoleAdministrator.Valid())
	require.True(t, RoleEditor.Valid())
	require.True(t, RoleContentCreator.Valid())

	require.False(t, Role("").Valid())
	require.False(t, Role("admin").Valid())
	require.False(t, Role("Administrator").Valid())
}

func TestRoleCapabilities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role Role
		cap  Capability
		want bool
	}{
		{RoleAdministrator, CapViewStatistics, true},
		{RoleAdministrator, CapManageUsers, true},
		{RoleAdministrator, CapEditContent, true},
		{RoleAdministrator, CapManageVideos, true},

		{RoleEditor, CapViewStatistics, false},
		{RoleEditor, CapManageUsers, false},
		{RoleEditor, CapEditContent, true},
		{RoleEditor, CapManageVideos, true},

		{RoleContentCreator, CapViewStatistics, false},
		{RoleContentCreator, CapManageUsers, false},
		{RoleContentCreator, CapEditContent, false},
		{RoleContentCreator, CapManageVideos, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.cap), func(t *testing.T) {
			require.Equal(t, tt.want, tt.role.Can(tt.cap))
		})
	}
}

func TestUnknownRoleGrantsNothing(t *testing.T) {
	t.Parallel()

	for _, cap := range []Capability{CapViewStatistics, CapManageUsers, CapEditContent, CapManageVideos} {
		require.False(t, Role("viewer").Can(cap))
		require.False(t, Role("").Can(cap))
	}
}
