package invitation

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrInvitationPending  = errors.New("a pending invitation already exists for this user and group")
	ErrNotGroupMember     = errors.New("you are not a member of this group")
	ErrAlreadyMember      = errors.New("user is already a member of this group")
	ErrInviteeNotFound    = errors.New("user to invite not found")
	ErrAlreadyResponded   = errors.New("this invitation has already been responded to")
	ErrInvalidStatus      = errors.New("status must be 'accepted' or 'declined'")
)

// Store is the persistence surface the service needs.
type Store interface {
	Create(ctx context.Context, groupID, inviterID, inviteeID int64) (*Invitation, error)
	GetByID(ctx context.Context, id int64) (*Invitation, error)
	GetByGroupAndInvitee(ctx context.Context, groupID, inviteeID int64) (*Invitation, error)
	Resend(ctx context.Context, id, inviterID int64) (*Invitation, error)
	UpdateStatus(ctx context.Context, id int64, status Status) (*Invitation, error)
	ListPendingByInvitee(ctx context.Context, inviteeID int64) ([]*Invitation, error)
}

// MemberRegistry exposes group membership checks and joins.
type MemberRegistry interface {
	IsMember(ctx context.Context, groupID, userID int64) (bool, error)
	Join(ctx context.Context, groupID, userID int64) error
}

// UserDirectory checks that invitees exist.
type UserDirectory interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Service handles invitation business logic.
type Service struct {
	store   Store
	members MemberRegistry
	users   UserDirectory
}

// NewService creates a new invitation service.
func NewService(store Store, members MemberRegistry, users UserDirectory) *Service {
	return &Service{store: store, members: members, users: users}
}

// Invite sends an invitation for inviteeID to join the group. The
// inviter must be a member, the invitee must exist and not already be
// a member, and at most one invitation exists per group/invitee pair:
// an actioned one is re-sent, a pending one is rejected.
func (s *Service) Invite(ctx context.Context, groupID, inviterID, inviteeID int64) (*Invitation, error) {
	isMember, err := s.members.IsMember(ctx, groupID, inviterID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, ErrNotGroupMember
	}

	exists, err := s.users.Exists(ctx, inviteeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrInviteeNotFound
	}

	isMember, err = s.members.IsMember(ctx, groupID, inviteeID)
	if err != nil {
		return nil, err
	}
	if isMember {
		return nil, ErrAlreadyMember
	}

	existing, err := s.store.GetByGroupAndInvitee(ctx, groupID, inviteeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Status == StatusPending {
			return nil, ErrInvitationPending
		}
		return s.store.Resend(ctx, existing.ID, inviterID)
	}

	return s.store.Create(ctx, groupID, inviterID, inviteeID)
}

// PendingForUser returns the user's pending invitations.
func (s *Service) PendingForUser(ctx context.Context, userID int64) ([]*Invitation, error) {
	return s.store.ListPendingByInvitee(ctx, userID)
}

// Respond records the invitee's answer to a pending invitation.
// Accepting joins them to the group.
func (s *Service) Respond(ctx context.Context, invitationID, userID int64, status Status) (*Invitation, error) {
	if status != StatusAccepted && status != StatusDeclined {
		return nil, ErrInvalidStatus
	}

	inv, err := s.store.GetByID(ctx, invitationID)
	if err != nil {
		return nil, err
	}
	// An invitation is invisible to everyone but its invitee.
	if inv == nil || inv.InviteeID != userID {
		return nil, ErrInvitationNotFound
	}
	if inv.Status != StatusPending {
		return nil, ErrAlreadyResponded
	}

	updated, err := s.store.UpdateStatus(ctx, invitationID, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrInvitationNotFound
	}

	if status == StatusAccepted {
		isMember, err := s.members.IsMember(ctx, updated.GroupID, userID)
		if err != nil {
			return nil, err
		}
		if !isMember {
			if err := s.members.Join(ctx, updated.GroupID, userID); err != nil {
				return nil, err
			}
		}
	}

	return updated, nil
}
