package invitation

import "time"

// Status is the lifecycle state of a group invitation.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

// Invitation invites a user to join a group. A declined or accepted
// invitation can be re-sent, which resets it to pending under the new
// inviter.
type Invitation struct {
	ID        int64     `json:"id"`
	GroupID   int64     `json:"group_id"`
	InviterID int64     `json:"inviter_id"`
	InviteeID int64     `json:"invitee_id"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`

	// Decorations joined in by the repository.
	GroupName       string `json:"group_name,omitempty"`
	InviterUsername string `json:"inviter_username,omitempty"`
}
