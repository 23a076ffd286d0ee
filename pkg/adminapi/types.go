// Package adminapi defines the wire types of the backoffice HTTP API. It is
// shared by the server handlers and by Go clients of the service.
package adminapi

import "time"

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// --- Identity ---

// SignInRequest carries admin credentials.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse carries a freshly minted session token.
type SessionResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	Account     Account   `json:"account"`
}

// Account is the public view of an admin account.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// PasswordResetRequest asks for a reset token to be issued for an email.
// The response is identical whether or not the account exists.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirm redeems a reset token for a new password.
type PasswordResetConfirm struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// --- Bootstrap ---

// BootstrapRequest creates the first administrator of an empty directory.
type BootstrapRequest struct {
	Token     string `json:"token" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

// --- Invitations ---

// IssueInvitationRequest invites an email to join with a role.
type IssueInvitationRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=administrator editor content_creator"`
}

// Invitation is the admin-facing view of a pending invitation. Token is the
// raw invite secret; admins relay it to the invitee out of band.
type Invitation struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	InvitedBy string    `json:"invited_by"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// InvitationLookup is the unauthenticated view returned during onboarding.
// It deliberately omits the token and inviter.
type InvitationLookup struct {
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RedeemInvitationRequest turns a valid invitation into an account.
type RedeemInvitationRequest struct {
	Token     string `json:"token" validate:"required"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

// --- Directory ---

// UpdateRoleRequest changes an account's role.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=administrator editor content_creator"`
}

// --- Content ---

// TechnicalSheetRequest creates or updates a technical sheet.
type TechnicalSheetRequest struct {
	Title     string `json:"title" validate:"required"`
	Category  string `json:"category" validate:"required"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

// TechnicalSheet is the full sheet representation.
type TechnicalSheet struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VideoRequest creates or updates a video entry.
type VideoRequest struct {
	Title       string `json:"title" validate:"required"`
	URL         string `json:"url" validate:"required,url"`
	Description string `json:"description"`
	Published   bool   `json:"published"`
}

// Video is the full video representation.
type Video struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// --- Stats ---

// Stats summarizes content and directory counts for the dashboard.
type Stats struct {
	Accounts           int64 `json:"accounts"`
	PendingInvitations int64 `json:"pending_invitations"`
	Sheets             int64 `json:"sheets"`
	PublishedSheets    int64 `json:"published_sheets"`
	Videos             int64 `json:"videos"`
	PublishedVideos    int64 `json:"published_videos"`
}
