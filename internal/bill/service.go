package bill

import (
	"context"
	"errors"
	"fmt"

	"github.com/sharedtab/billsplit/internal/bill/split"
	"github.com/sharedtab/billsplit/internal/ledger"
	"github.com/sharedtab/billsplit/internal/money"
)

// Common errors
var (
	ErrBillNotFound       = errors.New("bill not found")
	ErrInvalidSplitMethod = errors.New("invalid split method")
	ErrNotGroupMembers    = errors.New("all referenced users must be members of the group")
)

// AggregationLimit bounds how many bills a single balance computation
// consumes. Large enough for correctness in practice, small enough to
// keep aggregation bounded.
const AggregationLimit = 1000

// MemberDirectory supplies the current member ids of a group, in join
// order. Equal splits distribute over exactly this list.
type MemberDirectory interface {
	MemberIDs(ctx context.Context, groupID int64) ([]int64, error)
}

// Service handles bill business logic.
type Service struct {
	repo    *Repository
	members MemberDirectory
	splits  *split.Factory
}

// NewService creates a new bill service.
func NewService(repo *Repository, members MemberDirectory, splits *split.Factory) *Service {
	return &Service{repo: repo, members: members, splits: splits}
}

// Create validates the request against its split method, generates the
// stored parts, and persists the bill with all nested rows.
func (s *Service) Create(ctx context.Context, creatorID int64, req *CreateBillRequest) (*Bill, error) {
	if !req.SplitMethod.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSplitMethod, req.SplitMethod)
	}

	memberIDs, err := s.members.MemberIDs(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferencedUsers(memberIDs, req.InitialPayments, req.Items, req.Parts); err != nil {
		return nil, err
	}

	strategy, err := s.splits.Create(req.SplitMethod)
	if err != nil {
		return nil, err
	}

	in := splitInput(req.TotalAmount, memberIDs, req.InitialPayments, req.Items, req.Parts)
	parts, err := strategy.Parts(in)
	if err != nil {
		return nil, err
	}

	b := &Bill{
		GroupID:     req.GroupID,
		CreatedBy:   &creatorID,
		Title:       req.Title,
		Description: req.Description,
		TotalAmount: money.Round2(req.TotalAmount),
		SplitMethod: req.SplitMethod,
	}
	fillNested(b, req.InitialPayments, req.Items, parts)

	return s.repo.Create(ctx, b)
}

// Update replaces a bill with its full new state, re-running split
// validation and part generation.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateBillRequest) (*Bill, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrBillNotFound
	}

	if !req.SplitMethod.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSplitMethod, req.SplitMethod)
	}

	memberIDs, err := s.members.MemberIDs(ctx, existing.GroupID)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferencedUsers(memberIDs, req.InitialPayments, req.Items, req.Parts); err != nil {
		return nil, err
	}

	strategy, err := s.splits.Create(req.SplitMethod)
	if err != nil {
		return nil, err
	}

	in := splitInput(req.TotalAmount, memberIDs, req.InitialPayments, req.Items, req.Parts)
	parts, err := strategy.Parts(in)
	if err != nil {
		return nil, err
	}

	b := &Bill{
		ID:          id,
		GroupID:     existing.GroupID,
		CreatedBy:   existing.CreatedBy,
		Title:       req.Title,
		Description: req.Description,
		TotalAmount: money.Round2(req.TotalAmount),
		SplitMethod: req.SplitMethod,
	}
	fillNested(b, req.InitialPayments, req.Items, parts)

	updated, err := s.repo.Update(ctx, b)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrBillNotFound
	}
	return updated, nil
}

// GetByID retrieves a fully-populated bill.
func (s *Service) GetByID(ctx context.Context, id int64) (*Bill, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBillNotFound
	}
	return b, nil
}

// ListByGroup retrieves a group's bills, newest first.
func (s *Service) ListByGroup(ctx context.Context, groupID int64, limit int) ([]*Bill, error) {
	if limit < 1 {
		limit = 50
	}
	if limit > AggregationLimit {
		limit = AggregationLimit
	}
	return s.repo.ListByGroup(ctx, groupID, limit)
}

// Delete removes a bill.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// LedgerBills returns the group's bills as engine views, bounded by the
// aggregation limit. Implements the balance feature's bill provider.
func (s *Service) LedgerBills(ctx context.Context, groupID int64) ([]ledger.Bill, error) {
	bills, err := s.repo.ListByGroup(ctx, groupID, AggregationLimit)
	if err != nil {
		return nil, err
	}

	views := make([]ledger.Bill, len(bills))
	for i, b := range bills {
		views[i] = b.ToLedger()
	}
	return views, nil
}

// checkReferencedUsers ensures every user referenced by the request is
// a current group member.
func (s *Service) checkReferencedUsers(memberIDs []int64,
	initialPayments []InitialPaymentInput, items []ItemInput, parts []PartInput) error {

	members := make(map[int64]struct{}, len(memberIDs))
	for _, id := range memberIDs {
		members[id] = struct{}{}
	}

	check := func(userID int64) error {
		if _, ok := members[userID]; !ok {
			return fmt.Errorf("%w: user %d", ErrNotGroupMembers, userID)
		}
		return nil
	}

	for _, ip := range initialPayments {
		if err := check(ip.UserID); err != nil {
			return err
		}
	}
	for _, item := range items {
		for _, sp := range item.Splits {
			if err := check(sp.UserID); err != nil {
				return err
			}
		}
	}
	for _, p := range parts {
		if err := check(p.UserID); err != nil {
			return err
		}
	}

	return nil
}

// fillNested populates a bill's nested rows from request inputs and the
// generated parts.
func fillNested(b *Bill, initialPayments []InitialPaymentInput, items []ItemInput, parts []ledger.BillPart) {
	for _, ip := range initialPayments {
		b.InitialPayments = append(b.InitialPayments, &InitialPayment{
			UserID:     ip.UserID,
			AmountPaid: money.Round2(ip.AmountPaid),
		})
	}

	for i, item := range items {
		mi := &Item{
			ItemID:    int64(i + 1),
			Name:      item.Name,
			UnitPrice: money.Round2(item.UnitPrice),
			Quantity:  item.Quantity,
		}
		for _, sp := range item.Splits {
			mi.Splits = append(mi.Splits, &ItemSplit{
				ItemID:   mi.ItemID,
				UserID:   sp.UserID,
				Quantity: sp.Quantity,
			})
		}
		b.Items = append(b.Items, mi)
	}

	for _, p := range parts {
		b.Parts = append(b.Parts, &Part{
			UserID:     p.UserID,
			AmountOwed: p.AmountOwed,
		})
	}
}
