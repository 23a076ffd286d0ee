package domain

import (
	"regexp"
	"time"
)

// InviteTokenLength is the lexical length of an invitation token: 32 random
// bytes rendered as lowercase hex. The length and character class are part of
// the redemption-link contract and are validated before any lookup.
const InviteTokenLength = 64

var inviteTokenShape = regexp.MustCompile(`^[0-9a-f]{64}$`)

// ValidInviteTokenShape reports whether s has the exact shape of an
// invitation token. Shape rejection happens without a store round trip so a
// malformed token and an unknown token are indistinguishable to the caller.
func ValidInviteTokenShape(s string) bool {
	return inviteTokenShape.MatchString(s)
}

// Invitation is an offer to join the backoffice with a pre-assigned role.
// The token is a capability: possession is proof of authorization to redeem.
//
// Lifecycle: Pending --redeem--> Redeemed (terminal);
// Pending --expiry--> Expired (terminal, row retained until revoked);
// Pending --revoke--> row deleted. Nothing leaves Redeemed.
type Invitation struct {
	ID         string
	Email      string
	Role       Role
	Token      string
	InvitedBy  string
	ExpiresAt  time.Time
	RedeemedAt *time.Time
	CreatedAt  time.Time
}

// Redeemable reports whether the invitation can still be consumed at now.
func (i Invitation) Redeemable(now time.Time) bool {
	return i.RedeemedAt == nil && now.Before(i.ExpiresAt)
}

// Expired reports whether the unredeemed invitation has passed its expiry.
func (i Invitation) Expired(now time.Time) bool {
	return i.RedeemedAt == nil && !now.Before(i.ExpiresAt)
}
