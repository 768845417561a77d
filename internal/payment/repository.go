package payment

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles payment data persistence.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new payment repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const selectColumns = `
	p.id, p.group_id, p.payer_id, p.payee_id, p.bill_id,
	p.amount, p.payment_date, p.notes, p.created_at,
	payer.username, payee.username
`

const selectJoins = `
	FROM payments p
	JOIN users payer ON p.payer_id = payer.id
	JOIN users payee ON p.payee_id = payee.id
`

func scanPayment(row interface{ Scan(...any) error }) (*Payment, error) {
	p := &Payment{}
	err := row.Scan(
		&p.ID, &p.GroupID, &p.PayerID, &p.PayeeID, &p.BillID,
		&p.Amount, &p.PaymentDate, &p.Notes, &p.CreatedAt,
		&p.PayerUsername, &p.PayeeUsername,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new payment.
func (r *Repository) Create(ctx context.Context, p *Payment) (*Payment, error) {
	query := `
		INSERT INTO payments (group_id, payer_id, payee_id, bill_id, amount, payment_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		p.GroupID, p.PayerID, p.PayeeID, p.BillID, p.Amount, p.PaymentDate, p.Notes,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return p, nil
}

// GetByID retrieves a payment by ID.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Payment, error) {
	query := `SELECT ` + selectColumns + selectJoins + `WHERE p.id = $1`

	p, err := scanPayment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return p, nil
}

// ListByGroup retrieves a group's payments, newest first, bounded by
// limit. Optional member filters narrow to one member's payments or to
// the payments exchanged between two members.
func (r *Repository) ListByGroup(ctx context.Context, groupID int64, limit int, memberA, memberB *int64) ([]*Payment, error) {
	query := `SELECT ` + selectColumns + selectJoins + `WHERE p.group_id = $1`
	args := []any{groupID}

	switch {
	case memberA != nil && memberB != nil:
		query += ` AND ((p.payer_id = $2 AND p.payee_id = $3) OR (p.payer_id = $3 AND p.payee_id = $2))`
		args = append(args, *memberA, *memberB)
	case memberA != nil:
		query += ` AND (p.payer_id = $2 OR p.payee_id = $2)`
		args = append(args, *memberA)
	}

	query += fmt.Sprintf(` ORDER BY p.payment_date DESC, p.id DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}

// Update modifies a payment.
func (r *Repository) Update(ctx context.Context, id int64, req *UpdatePaymentRequest) (*Payment, error) {
	query := `
		UPDATE payments
		SET amount = $2,
		    payment_date = COALESCE($3, payment_date),
		    notes = $4,
		    bill_id = $5
		WHERE id = $1
		RETURNING id
	`

	var updatedID int64
	err := r.db.QueryRowContext(ctx, query, id, req.Amount, req.PaymentDate, req.Notes, req.BillID).Scan(&updatedID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	return r.GetByID(ctx, updatedID)
}

// Delete removes a payment.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}
