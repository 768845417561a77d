package bill

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// Repository handles bill data persistence.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new bill repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a bill and all its nested rows in one transaction.
func (r *Repository) Create(ctx context.Context, b *Bill) (*Bill, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO bills (group_id, created_by, title, description, total_amount, split_method)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err = tx.QueryRowContext(ctx, query,
		b.GroupID, b.CreatedBy, b.Title, b.Description, b.TotalAmount, b.SplitMethod,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	if err := r.insertNested(ctx, tx, b); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit bill: %w", err)
	}

	return b, nil
}

// Update replaces a bill's row and all its nested rows with the new state.
func (r *Repository) Update(ctx context.Context, b *Bill) (*Bill, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE bills
		SET title = $2, description = $3, total_amount = $4, split_method = $5
		WHERE id = $1
		RETURNING created_at
	`
	err = tx.QueryRowContext(ctx, query,
		b.ID, b.Title, b.Description, b.TotalAmount, b.SplitMethod,
	).Scan(&b.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update bill: %w", err)
	}

	// Nested rows are replaced wholesale; splits go before their items.
	for _, table := range []string{"initial_payments", "bill_item_splits", "bill_items", "bill_parts"} {
		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf("DELETE FROM %s WHERE bill_id = $1", table), b.ID); err != nil {
			return nil, fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := r.insertNested(ctx, tx, b); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit bill update: %w", err)
	}

	return b, nil
}

func (r *Repository) insertNested(ctx context.Context, tx *sql.Tx, b *Bill) error {
	for _, ip := range b.InitialPayments {
		ip.BillID = b.ID
		_, err := tx.ExecContext(ctx, `
			INSERT INTO initial_payments (bill_id, user_id, amount_paid)
			VALUES ($1, $2, $3)
		`, b.ID, ip.UserID, ip.AmountPaid)
		if err != nil {
			return fmt.Errorf("failed to insert initial payment: %w", err)
		}
	}

	for _, item := range b.Items {
		item.BillID = b.ID
		_, err := tx.ExecContext(ctx, `
			INSERT INTO bill_items (bill_id, item_id, name, unit_price, quantity)
			VALUES ($1, $2, $3, $4, $5)
		`, b.ID, item.ItemID, item.Name, item.UnitPrice, item.Quantity)
		if err != nil {
			return fmt.Errorf("failed to insert bill item: %w", err)
		}

		for _, sp := range item.Splits {
			sp.BillID = b.ID
			sp.ItemID = item.ItemID
			_, err := tx.ExecContext(ctx, `
				INSERT INTO bill_item_splits (bill_id, item_id, user_id, quantity)
				VALUES ($1, $2, $3, $4)
			`, b.ID, item.ItemID, sp.UserID, sp.Quantity)
			if err != nil {
				return fmt.Errorf("failed to insert item split: %w", err)
			}
		}
	}

	for _, part := range b.Parts {
		part.BillID = b.ID
		_, err := tx.ExecContext(ctx, `
			INSERT INTO bill_parts (bill_id, user_id, amount_owed)
			VALUES ($1, $2, $3)
		`, b.ID, part.UserID, part.AmountOwed)
		if err != nil {
			return fmt.Errorf("failed to insert bill part: %w", err)
		}
	}

	return nil
}

// GetByID retrieves a fully-populated bill.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Bill, error) {
	query := `
		SELECT b.id, b.group_id, b.created_by, b.title, b.description,
		       b.total_amount, b.split_method, b.created_at,
		       COALESCE(u.username, '')
		FROM bills b
		LEFT JOIN users u ON b.created_by = u.id
		WHERE b.id = $1
	`

	b := &Bill{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.GroupID, &b.CreatedBy, &b.Title, &b.Description,
		&b.TotalAmount, &b.SplitMethod, &b.CreatedAt, &b.CreatorUsername,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	if err := r.loadNested(ctx, []*Bill{b}); err != nil {
		return nil, err
	}

	return b, nil
}

// ListByGroup retrieves every bill of a group, newest first, bounded by
// limit, with all nested rows populated.
func (r *Repository) ListByGroup(ctx context.Context, groupID int64, limit int) ([]*Bill, error) {
	query := `
		SELECT b.id, b.group_id, b.created_by, b.title, b.description,
		       b.total_amount, b.split_method, b.created_at,
		       COALESCE(u.username, '')
		FROM bills b
		LEFT JOIN users u ON b.created_by = u.id
		WHERE b.group_id = $1
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, groupID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []*Bill
	for rows.Next() {
		b := &Bill{}
		if err := rows.Scan(
			&b.ID, &b.GroupID, &b.CreatedBy, &b.Title, &b.Description,
			&b.TotalAmount, &b.SplitMethod, &b.CreatedAt, &b.CreatorUsername,
		); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}

	if err := r.loadNested(ctx, bills); err != nil {
		return nil, err
	}

	return bills, nil
}

// loadNested batch-loads initial payments, items, item splits, and
// parts for the given bills.
func (r *Repository) loadNested(ctx context.Context, bills []*Bill) error {
	if len(bills) == 0 {
		return nil
	}

	byID := make(map[int64]*Bill, len(bills))
	ids := make([]int64, 0, len(bills))
	for _, b := range bills {
		byID[b.ID] = b
		ids = append(ids, b.ID)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT bill_id, user_id, amount_paid
		FROM initial_payments
		WHERE bill_id = ANY($1)
		ORDER BY bill_id, user_id
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load initial payments: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		ip := &InitialPayment{}
		if err := rows.Scan(&ip.BillID, &ip.UserID, &ip.AmountPaid); err != nil {
			return fmt.Errorf("failed to scan initial payment: %w", err)
		}
		byID[ip.BillID].InitialPayments = append(byID[ip.BillID].InitialPayments, ip)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate initial payments: %w", err)
	}

	itemRows, err := r.db.QueryContext(ctx, `
		SELECT bill_id, item_id, name, unit_price, quantity
		FROM bill_items
		WHERE bill_id = ANY($1)
		ORDER BY bill_id, item_id
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load bill items: %w", err)
	}
	defer itemRows.Close()

	type itemKey struct{ billID, itemID int64 }
	items := make(map[itemKey]*Item)
	for itemRows.Next() {
		item := &Item{}
		if err := itemRows.Scan(&item.BillID, &item.ItemID, &item.Name, &item.UnitPrice, &item.Quantity); err != nil {
			return fmt.Errorf("failed to scan bill item: %w", err)
		}
		items[itemKey{item.BillID, item.ItemID}] = item
		byID[item.BillID].Items = append(byID[item.BillID].Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate bill items: %w", err)
	}

	splitRows, err := r.db.QueryContext(ctx, `
		SELECT bill_id, item_id, user_id, quantity
		FROM bill_item_splits
		WHERE bill_id = ANY($1)
		ORDER BY bill_id, item_id, user_id
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load item splits: %w", err)
	}
	defer splitRows.Close()
	for splitRows.Next() {
		sp := &ItemSplit{}
		if err := splitRows.Scan(&sp.BillID, &sp.ItemID, &sp.UserID, &sp.Quantity); err != nil {
			return fmt.Errorf("failed to scan item split: %w", err)
		}
		if item, ok := items[itemKey{sp.BillID, sp.ItemID}]; ok {
			item.Splits = append(item.Splits, sp)
		}
	}
	if err := splitRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate item splits: %w", err)
	}

	partRows, err := r.db.QueryContext(ctx, `
		SELECT bill_id, user_id, amount_owed
		FROM bill_parts
		WHERE bill_id = ANY($1)
		ORDER BY bill_id, user_id
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load bill parts: %w", err)
	}
	defer partRows.Close()
	for partRows.Next() {
		part := &Part{}
		if err := partRows.Scan(&part.BillID, &part.UserID, &part.AmountOwed); err != nil {
			return fmt.Errorf("failed to scan bill part: %w", err)
		}
		byID[part.BillID].Parts = append(byID[part.BillID].Parts, part)
	}
	if err := partRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate bill parts: %w", err)
	}

	return nil
}

// Delete removes a bill and its nested rows in one transaction.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"initial_payments", "bill_item_splits", "bill_items", "bill_parts"} {
		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf("DELETE FROM %s WHERE bill_id = $1", table), id); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrBillNotFound
	}

	return tx.Commit()
}
