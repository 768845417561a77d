package bill

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharedtab/billsplit/internal/ledger"
	"github.com/sharedtab/billsplit/internal/money"
)

func TestRepositoryUpdateReplacesNestedRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE bills").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	// Splits are cleared alongside the other nested tables, not left to
	// a schema-level cascade.
	for _, table := range []string{"initial_payments", "bill_item_splits", "bill_items", "bill_parts"} {
		mock.ExpectExec("DELETE FROM " + table + " WHERE bill_id").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectExec("INSERT INTO bill_items").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO bill_item_splits").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	repo := NewRepository(db)
	b := &Bill{
		ID:          7,
		Title:       "groceries",
		TotalAmount: money.MustFromString("12.00"),
		SplitMethod: ledger.SplitItem,
		Items: []*Item{
			{
				ItemID:    1,
				Name:      "milk",
				UnitPrice: money.MustFromString("12.00"),
				Quantity:  1,
				Splits:    []*ItemSplit{{UserID: 1, Quantity: 1}},
			},
		},
	}

	_, err = repo.Update(context.Background(), b)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDeleteRemovesNestedRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	for _, table := range []string{"initial_payments", "bill_item_splits", "bill_items", "bill_parts"} {
		mock.ExpectExec("DELETE FROM " + table + " WHERE bill_id").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectExec("DELETE FROM bills").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewRepository(db)
	require.NoError(t, repo.Delete(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	for _, table := range []string{"initial_payments", "bill_item_splits", "bill_items", "bill_parts"} {
		mock.ExpectExec("DELETE FROM " + table + " WHERE bill_id").
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec("DELETE FROM bills").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	repo := NewRepository(db)
	err = repo.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBillNotFound)
}

func TestRepositoryDeleteWrapsDBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM initial_payments").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	repo := NewRepository(db)
	err = repo.Delete(context.Background(), 7)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrBillNotFound))
}
