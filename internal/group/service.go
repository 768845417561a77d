package group

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrGroupNotFound  = errors.New("group not found")
	ErrMemberNotFound = errors.New("member not found")
	ErrNotAuthorized  = errors.New("not authorized to perform this action")
)

// Service handles group business logic.
type Service struct {
	repo *Repository
}

// NewService creates a new group service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new group and adds the creator as admin.
func (s *Service) Create(ctx context.Context, creatorID int64, req *CreateGroupRequest) (*Group, error) {
	g, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.AddMember(ctx, g.ID, creatorID, MemberRoleAdmin); err != nil {
		return nil, err
	}

	return g, nil
}

// GetByID retrieves a group by its ID.
func (s *Service) GetByID(ctx context.Context, id int64) (*Group, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}
	return g, nil
}

// GetByIDWithMembers retrieves a group with all its members.
func (s *Service) GetByIDWithMembers(ctx context.Context, id int64) (*Group, []*GroupMember, error) {
	g, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	members, err := s.repo.GetMembers(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return g, members, nil
}

// ListByUserID retrieves all groups the user belongs to.
func (s *Service) ListByUserID(ctx context.Context, userID int64) ([]*Group, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// Update modifies an existing group.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateGroupRequest) (*Group, error) {
	g, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}
	return g, nil
}

// Delete removes a group. Only an admin may delete it.
func (s *Service) Delete(ctx context.Context, id, requesterID int64) error {
	members, err := s.repo.GetMembers(ctx, id)
	if err != nil {
		return err
	}

	isAdmin := false
	for _, m := range members {
		if m.UserID == requesterID && m.Role == MemberRoleAdmin {
			isAdmin = true
			break
		}
	}
	if !isAdmin {
		return ErrNotAuthorized
	}

	return s.repo.Delete(ctx, id)
}

// AddMember adds a user to a group.
func (s *Service) AddMember(ctx context.Context, groupID int64, req *AddMemberRequest) (*GroupMember, error) {
	g, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}

	return s.repo.AddMember(ctx, groupID, req.UserID, req.Role)
}

// Join adds a user to a group with the default member role.
func (s *Service) Join(ctx context.Context, groupID, userID int64) error {
	_, err := s.repo.AddMember(ctx, groupID, userID, MemberRoleMember)
	return err
}

// RemoveMember removes a user from a group. The departed member's
// historical bills remain but stop counting toward group balances.
func (s *Service) RemoveMember(ctx context.Context, groupID, userID int64) error {
	return s.repo.RemoveMember(ctx, groupID, userID)
}

// MemberIDs returns the current member ids of a group in join order.
func (s *Service) MemberIDs(ctx context.Context, groupID int64) ([]int64, error) {
	return s.repo.MemberIDs(ctx, groupID)
}

// IsMember reports whether the user belongs to the group.
func (s *Service) IsMember(ctx context.Context, groupID, userID int64) (bool, error) {
	return s.repo.IsMember(ctx, groupID, userID)
}
