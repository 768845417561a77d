package payment

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM payments").WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRepository(db)
	err = repo.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestRepositoryDeleteWrapsDBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM payments").WillReturnError(errors.New("connection reset"))

	repo := NewRepository(db)
	err = repo.Delete(context.Background(), 7)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrPaymentNotFound))
}
