package invitation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	invitations map[int64]*Invitation
	nextID      int64
}

func newStubStore(invitations ...*Invitation) *stubStore {
	s := &stubStore{invitations: map[int64]*Invitation{}, nextID: 1}
	for _, inv := range invitations {
		s.invitations[inv.ID] = inv
		if inv.ID >= s.nextID {
			s.nextID = inv.ID + 1
		}
	}
	return s
}

func (s *stubStore) Create(_ context.Context, groupID, inviterID, inviteeID int64) (*Invitation, error) {
	inv := &Invitation{
		ID:        s.nextID,
		GroupID:   groupID,
		InviterID: inviterID,
		InviteeID: inviteeID,
		Status:    StatusPending,
		CreatedAt: time.Now(),
	}
	s.invitations[inv.ID] = inv
	s.nextID++
	return inv, nil
}

func (s *stubStore) GetByID(_ context.Context, id int64) (*Invitation, error) {
	return s.invitations[id], nil
}

func (s *stubStore) GetByGroupAndInvitee(_ context.Context, groupID, inviteeID int64) (*Invitation, error) {
	for _, inv := range s.invitations {
		if inv.GroupID == groupID && inv.InviteeID == inviteeID {
			return inv, nil
		}
	}
	return nil, nil
}

func (s *stubStore) Resend(_ context.Context, id, inviterID int64) (*Invitation, error) {
	inv := s.invitations[id]
	if inv == nil {
		return nil, nil
	}
	inv.Status = StatusPending
	inv.InviterID = inviterID
	inv.CreatedAt = time.Now()
	return inv, nil
}

func (s *stubStore) UpdateStatus(_ context.Context, id int64, status Status) (*Invitation, error) {
	inv := s.invitations[id]
	if inv == nil {
		return nil, nil
	}
	inv.Status = status
	return inv, nil
}

func (s *stubStore) ListPendingByInvitee(_ context.Context, inviteeID int64) ([]*Invitation, error) {
	var out []*Invitation
	for _, inv := range s.invitations {
		if inv.InviteeID == inviteeID && inv.Status == StatusPending {
			out = append(out, inv)
		}
	}
	return out, nil
}

type stubRegistry struct {
	members map[int64][]int64
	joined  [][2]int64
}

func (s *stubRegistry) IsMember(_ context.Context, groupID, userID int64) (bool, error) {
	for _, id := range s.members[groupID] {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubRegistry) Join(_ context.Context, groupID, userID int64) error {
	s.members[groupID] = append(s.members[groupID], userID)
	s.joined = append(s.joined, [2]int64{groupID, userID})
	return nil
}

type stubDirectory struct {
	users []int64
}

func (s *stubDirectory) Exists(_ context.Context, id int64) (bool, error) {
	for _, u := range s.users {
		if u == id {
			return true, nil
		}
	}
	return false, nil
}

func TestInviteCreatesPendingInvitation(t *testing.T) {
	store := newStubStore()
	registry := &stubRegistry{members: map[int64][]int64{1: {1}}}
	svc := NewService(store, registry, &stubDirectory{users: []int64{1, 2}})

	inv, err := svc.Invite(context.Background(), 1, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, inv.Status)
	assert.Equal(t, int64(1), inv.InviterID)
	assert.Equal(t, int64(2), inv.InviteeID)
}

func TestInviteValidation(t *testing.T) {
	tests := []struct {
		name      string
		inviterID int64
		inviteeID int64
		wantErr   error
	}{
		{"inviter not a member", 9, 2, ErrNotGroupMember},
		{"invitee does not exist", 1, 99, ErrInviteeNotFound},
		{"invitee already a member", 1, 3, ErrAlreadyMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStubStore()
			registry := &stubRegistry{members: map[int64][]int64{1: {1, 3}}}
			svc := NewService(store, registry, &stubDirectory{users: []int64{1, 2, 3}})

			_, err := svc.Invite(context.Background(), 1, tt.inviterID, tt.inviteeID)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestInviteRejectsDuplicatePending(t *testing.T) {
	store := newStubStore(&Invitation{
		ID: 1, GroupID: 1, InviterID: 1, InviteeID: 2, Status: StatusPending,
	})
	registry := &stubRegistry{members: map[int64][]int64{1: {1}}}
	svc := NewService(store, registry, &stubDirectory{users: []int64{1, 2}})

	_, err := svc.Invite(context.Background(), 1, 1, 2)
	assert.ErrorIs(t, err, ErrInvitationPending)
}

func TestInviteResendsDeclinedInvitation(t *testing.T) {
	store := newStubStore(&Invitation{
		ID: 1, GroupID: 1, InviterID: 1, InviteeID: 2, Status: StatusDeclined,
	})
	registry := &stubRegistry{members: map[int64][]int64{1: {1, 3}}}
	svc := NewService(store, registry, &stubDirectory{users: []int64{1, 2, 3}})

	inv, err := svc.Invite(context.Background(), 1, 3, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(1), inv.ID)
	assert.Equal(t, StatusPending, inv.Status)
	assert.Equal(t, int64(3), inv.InviterID)
}

func TestRespondAcceptJoinsGroup(t *testing.T) {
	store := newStubStore(&Invitation{
		ID: 1, GroupID: 1, InviterID: 1, InviteeID: 2, Status: StatusPending,
	})
	registry := &stubRegistry{members: map[int64][]int64{1: {1}}}
	svc := NewService(store, registry, &stubDirectory{users: []int64{1, 2}})

	inv, err := svc.Respond(context.Background(), 1, 2, StatusAccepted)
	require.NoError(t, err)

	assert.Equal(t, StatusAccepted, inv.Status)
	assert.Equal(t, [][2]int64{{1, 2}}, registry.joined)
}

func TestRespondDeclineDoesNotJoin(t *testing.T) {
	store := newStubStore(&Invitation{
		ID: 1, GroupID: 1, InviterID: 1, InviteeID: 2, Status: StatusPending,
	})
	registry := &stubRegistry{members: map[int64][]int64{1: {1}}}
	svc := NewService(store, registry, &stubDirectory{users: []int64{1, 2}})

	inv, err := svc.Respond(context.Background(), 1, 2, StatusDeclined)
	require.NoError(t, err)

	assert.Equal(t, StatusDeclined, inv.Status)
	assert.Empty(t, registry.joined)
}

func TestRespondValidation(t *testing.T) {
	pending := &Invitation{ID: 1, GroupID: 1, InviterID: 1, InviteeID: 2, Status: StatusPending}
	actioned := &Invitation{ID: 2, GroupID: 1, InviterID: 1, InviteeID: 2, Status: StatusAccepted}

	tests := []struct {
		name         string
		invitationID int64
		userID       int64
		status       Status
		wantErr      error
	}{
		{"unknown invitation", 99, 2, StatusAccepted, ErrInvitationNotFound},
		{"responder is not the invitee", 1, 3, StatusAccepted, ErrInvitationNotFound},
		{"already responded", 2, 2, StatusDeclined, ErrAlreadyResponded},
		{"invalid status", 1, 2, Status("maybe"), ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStubStore(pending, actioned)
			registry := &stubRegistry{members: map[int64][]int64{1: {1}}}
			svc := NewService(store, registry, &stubDirectory{users: []int64{1, 2, 3}})

			_, err := svc.Respond(context.Background(), tt.invitationID, tt.userID, tt.status)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
