package invitation

// CreateInvitationRequest represents the request to invite a user to a group.
type CreateInvitationRequest struct {
	InviteeID int64 `json:"invitee_id" example:"2"`
}

// RespondInvitationRequest accepts or declines a pending invitation.
type RespondInvitationRequest struct {
	Status Status `json:"status" example:"accepted"`
}

// InvitationResponse represents the response for an invitation.
type InvitationResponse struct {
	ID              int64  `json:"id" example:"1"`
	GroupID         int64  `json:"group_id" example:"1"`
	GroupName       string `json:"group_name,omitempty" example:"Ski trip"`
	InviterID       int64  `json:"inviter_id" example:"1"`
	InviterUsername string `json:"inviter_username,omitempty" example:"alice"`
	InviteeID       int64  `json:"invitee_id" example:"2"`
	Status          Status `json:"status" example:"pending"`
	CreatedAt       string `json:"created_at" example:"2026-01-15T12:00:00Z"`
}

// ToResponse converts an Invitation model to an InvitationResponse DTO.
func (i *Invitation) ToResponse() *InvitationResponse {
	return &InvitationResponse{
		ID:              i.ID,
		GroupID:         i.GroupID,
		GroupName:       i.GroupName,
		InviterID:       i.InviterID,
		InviterUsername: i.InviterUsername,
		InviteeID:       i.InviteeID,
		Status:          i.Status,
		CreatedAt:       i.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
