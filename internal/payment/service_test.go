package payment

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type stubMembership struct {
	members map[int64]bool
}

func (s *stubMembership) IsMember(_ context.Context, _ int64, userID int64) (bool, error) {
	return s.members[userID], nil
}

func newValidationService(members ...int64) *Service {
	m := make(map[int64]bool, len(members))
	for _, id := range members {
		m[id] = true
	}
	// Validation happens before any repository access, so a nil
	// repository is safe for these tests.
	return NewService(nil, &stubMembership{members: m})
}

func TestCreateRejectsSelfPayment(t *testing.T) {
	svc := newValidationService(1, 2)

	_, err := svc.Create(context.Background(), 1, &CreatePaymentRequest{
		GroupID: 1,
		PayeeID: 1,
		Amount:  decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, ErrCannotPaySelf)
}

func TestCreateRejectsNonPositiveAmount(t *testing.T) {
	svc := newValidationService(1, 2)

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := svc.Create(context.Background(), 1, &CreatePaymentRequest{
			GroupID: 1,
			PayeeID: 2,
			Amount:  amount,
		})
		assert.ErrorIs(t, err, ErrNonPositive)
	}
}

func TestCreateRequiresMembership(t *testing.T) {
	svc := newValidationService(1, 2)

	_, err := svc.Create(context.Background(), 99, &CreatePaymentRequest{
		GroupID: 1,
		PayeeID: 2,
		Amount:  decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, ErrPayerNotMember)

	_, err = svc.Create(context.Background(), 1, &CreatePaymentRequest{
		GroupID: 1,
		PayeeID: 99,
		Amount:  decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, ErrPayeeNotMember)
}

func TestUpdateRejectsNonPositiveAmount(t *testing.T) {
	svc := newValidationService(1, 2)

	_, err := svc.Update(context.Background(), 1, &UpdatePaymentRequest{
		Amount: decimal.Zero,
	})
	assert.ErrorIs(t, err, ErrNonPositive)
}
