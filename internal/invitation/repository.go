package invitation

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles invitation data persistence.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new invitation repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const invitationColumns = `
	i.id, i.group_id, i.inviter_id, i.invitee_id, i.status, i.created_at,
	COALESCE(g.name, ''), COALESCE(u.username, '')
`

func scanInvitation(row interface{ Scan(...any) error }) (*Invitation, error) {
	inv := &Invitation{}
	err := row.Scan(
		&inv.ID, &inv.GroupID, &inv.InviterID, &inv.InviteeID, &inv.Status, &inv.CreatedAt,
		&inv.GroupName, &inv.InviterUsername,
	)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// Create inserts a pending invitation.
func (r *Repository) Create(ctx context.Context, groupID, inviterID, inviteeID int64) (*Invitation, error) {
	query := `
		WITH ins AS (
			INSERT INTO group_invitations (group_id, inviter_id, invitee_id, status)
			VALUES ($1, $2, $3, 'pending')
			RETURNING id, group_id, inviter_id, invitee_id, status, created_at
		)
		SELECT ` + invitationColumns + `
		FROM ins i
		LEFT JOIN groups g ON i.group_id = g.id
		LEFT JOIN users u ON i.inviter_id = u.id
	`

	inv, err := scanInvitation(r.db.QueryRowContext(ctx, query, groupID, inviterID, inviteeID))
	if err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	return inv, nil
}

// GetByID retrieves an invitation by ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM group_invitations i
		LEFT JOIN groups g ON i.group_id = g.id
		LEFT JOIN users u ON i.inviter_id = u.id
		WHERE i.id = $1
	`

	inv, err := scanInvitation(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return inv, nil
}

// GetByGroupAndInvitee retrieves the invitation for a group/invitee
// pair, regardless of status.
func (r *Repository) GetByGroupAndInvitee(ctx context.Context, groupID, inviteeID int64) (*Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM group_invitations i
		LEFT JOIN groups g ON i.group_id = g.id
		LEFT JOIN users u ON i.inviter_id = u.id
		WHERE i.group_id = $1 AND i.invitee_id = $2
	`

	inv, err := scanInvitation(r.db.QueryRowContext(ctx, query, groupID, inviteeID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return inv, nil
}

// Resend resets an actioned invitation back to pending under a new
// inviter with a fresh timestamp.
func (r *Repository) Resend(ctx context.Context, id, inviterID int64) (*Invitation, error) {
	query := `
		WITH upd AS (
			UPDATE group_invitations
			SET status = 'pending', inviter_id = $2, created_at = NOW()
			WHERE id = $1
			RETURNING id, group_id, inviter_id, invitee_id, status, created_at
		)
		SELECT ` + invitationColumns + `
		FROM upd i
		LEFT JOIN groups g ON i.group_id = g.id
		LEFT JOIN users u ON i.inviter_id = u.id
	`

	inv, err := scanInvitation(r.db.QueryRowContext(ctx, query, id, inviterID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resend invitation: %w", err)
	}

	return inv, nil
}

// UpdateStatus records the invitee's response.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status Status) (*Invitation, error) {
	query := `
		WITH upd AS (
			UPDATE group_invitations
			SET status = $2
			WHERE id = $1
			RETURNING id, group_id, inviter_id, invitee_id, status, created_at
		)
		SELECT ` + invitationColumns + `
		FROM upd i
		LEFT JOIN groups g ON i.group_id = g.id
		LEFT JOIN users u ON i.inviter_id = u.id
	`

	inv, err := scanInvitation(r.db.QueryRowContext(ctx, query, id, status))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update invitation: %w", err)
	}

	return inv, nil
}

// ListPendingByInvitee retrieves a user's pending invitations, newest first.
func (r *Repository) ListPendingByInvitee(ctx context.Context, inviteeID int64) ([]*Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM group_invitations i
		LEFT JOIN groups g ON i.group_id = g.id
		LEFT JOIN users u ON i.inviter_id = u.id
		WHERE i.invitee_id = $1 AND i.status = 'pending'
		ORDER BY i.created_at DESC, i.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, inviteeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invitations: %w", err)
	}

	return invitations, nil
}
