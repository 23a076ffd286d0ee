package domain

import "time"

// Role is the single role held by an account. Roles are a closed set; there
// is no role table to administer.
type Role string

const (
	RoleAdministrator  Role = "administrator"
	RoleEditor         Role = "editor"
	RoleContentCreator Role = "content_creator"
)

// Roles lists every valid role, in descending order of privilege.
var Roles = []Role{RoleAdministrator, RoleEditor, RoleContentCreator}

func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleEditor, RoleContentCreator:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// Capability is a named permission checked against a role's static grant set.
type Capability string

const (
	CapViewStatistics Capability = "view_statistics"
	CapManageUsers    Capability = "manage_users"
	CapEditContent    Capability = "edit_content"
	CapManageVideos   Capability = "manage_videos"
)

// grants is the single role-to-capability table consulted for every
// authorization decision. Adding a screen means adding a row here, not a
// conditional somewhere in a handler.
var grants = map[Role]map[Capability]struct{}{
	RoleAdministrator: {
		CapViewStatistics: {},
		CapManageUsers:    {},
		CapEditContent:    {},
		CapManageVideos:   {},
	},
	RoleEditor: {
		CapEditContent:  {},
		CapManageVideos: {},
	},
	RoleContentCreator: {
		CapManageVideos: {},
	},
}

// Can reports whether the role grants the capability.
func (r Role) Can(c Capability) bool {
	_, ok := grants[r][c]
	return ok
}

// RoleAssignment pairs an account with its single active role.
type RoleAssignment struct {
	AccountID  string
	Role       Role
	AssignedAt time.Time
	UpdatedAt  time.Time
}
