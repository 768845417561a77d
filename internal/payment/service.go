package payment

import (
	"context"
	"errors"
	"time"

	"github.com/sharedtab/billsplit/internal/ledger"
	"github.com/sharedtab/billsplit/internal/money"
)

// Common errors
var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrCannotPaySelf   = errors.New("payer and payee must be different users")
	ErrNonPositive     = errors.New("payment amount must be positive")
	ErrPayeeNotMember  = errors.New("payee is not a member of the group")
	ErrPayerNotMember  = errors.New("payer is not a member of the group")
)

// AggregationLimit bounds how many payments a single balance
// computation consumes.
const AggregationLimit = 1000

// MembershipChecker reports whether a user belongs to a group.
type MembershipChecker interface {
	IsMember(ctx context.Context, groupID, userID int64) (bool, error)
}

// Service handles payment business logic.
type Service struct {
	repo       *Repository
	membership MembershipChecker
}

// NewService creates a new payment service.
func NewService(repo *Repository, membership MembershipChecker) *Service {
	return &Service{repo: repo, membership: membership}
}

// Create records a payment from the authenticated user to a payee in
// the same group.
func (s *Service) Create(ctx context.Context, payerID int64, req *CreatePaymentRequest) (*Payment, error) {
	if payerID == req.PayeeID {
		return nil, ErrCannotPaySelf
	}
	if !req.Amount.IsPositive() {
		return nil, ErrNonPositive
	}

	payerIsMember, err := s.membership.IsMember(ctx, req.GroupID, payerID)
	if err != nil {
		return nil, err
	}
	if !payerIsMember {
		return nil, ErrPayerNotMember
	}

	payeeIsMember, err := s.membership.IsMember(ctx, req.GroupID, req.PayeeID)
	if err != nil {
		return nil, err
	}
	if !payeeIsMember {
		return nil, ErrPayeeNotMember
	}

	paymentDate := time.Now().UTC()
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	p := &Payment{
		GroupID:     req.GroupID,
		PayerID:     payerID,
		PayeeID:     req.PayeeID,
		BillID:      req.BillID,
		Amount:      money.Round2(req.Amount),
		PaymentDate: paymentDate,
		Notes:       req.Notes,
	}

	return s.repo.Create(ctx, p)
}

// GetByID retrieves a payment by ID.
func (s *Service) GetByID(ctx context.Context, id int64) (*Payment, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPaymentNotFound
	}
	return p, nil
}

// ListByGroup retrieves a group's payments with optional member filters.
func (s *Service) ListByGroup(ctx context.Context, groupID int64, limit int, memberA, memberB *int64) ([]*Payment, error) {
	if limit < 1 {
		limit = 50
	}
	if limit > AggregationLimit {
		limit = AggregationLimit
	}
	return s.repo.ListByGroup(ctx, groupID, limit, memberA, memberB)
}

// Update modifies a payment.
func (s *Service) Update(ctx context.Context, id int64, req *UpdatePaymentRequest) (*Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrNonPositive
	}

	req.Amount = money.Round2(req.Amount)
	p, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPaymentNotFound
	}
	return p, nil
}

// Delete removes a payment.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// LedgerPayments returns the group's payments as engine views, bounded
// by the aggregation limit. Implements the balance feature's payment
// provider.
func (s *Service) LedgerPayments(ctx context.Context, groupID int64) ([]ledger.Payment, error) {
	payments, err := s.repo.ListByGroup(ctx, groupID, AggregationLimit, nil, nil)
	if err != nil {
		return nil, err
	}
	return toLedger(payments), nil
}

// LedgerPaymentsBetween returns the payments exchanged between two
// members as engine views, for the bilateral balance view.
func (s *Service) LedgerPaymentsBetween(ctx context.Context, groupID, userA, userB int64) ([]ledger.Payment, error) {
	payments, err := s.repo.ListByGroup(ctx, groupID, AggregationLimit, &userA, &userB)
	if err != nil {
		return nil, err
	}
	return toLedger(payments), nil
}

func toLedger(payments []*Payment) []ledger.Payment {
	views := make([]ledger.Payment, len(payments))
	for i, p := range payments {
		views[i] = p.ToLedger()
	}
	return views
}
