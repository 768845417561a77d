// Package balance exposes the ledger engine over a group's live data:
// it fetches members, bills, and payments through narrow provider
// interfaces and recomputes balances and settlement plans on every
// call. Nothing computed here is ever stored.
package balance

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/sharedtab/billsplit/internal/ledger"
)

// Common errors
var (
	ErrSelfBalance    = errors.New("cannot calculate balance with oneself")
	ErrNotGroupMember = errors.New("user is not a member of the group")
)

// MemberProvider supplies the authoritative member ids of a group.
type MemberProvider interface {
	MemberIDs(ctx context.Context, groupID int64) ([]int64, error)
}

// BillProvider supplies a group's bills as engine views, bounded by the
// provider's own aggregation limit.
type BillProvider interface {
	LedgerBills(ctx context.Context, groupID int64) ([]ledger.Bill, error)
}

// PaymentProvider supplies a group's payments as engine views.
type PaymentProvider interface {
	LedgerPayments(ctx context.Context, groupID int64) ([]ledger.Payment, error)
	LedgerPaymentsBetween(ctx context.Context, groupID, userA, userB int64) ([]ledger.Payment, error)
}

// UserDirectory resolves display names for balance and settlement output.
type UserDirectory interface {
	UsernamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error)
}

// Service recomputes group balances, settlement plans, and bilateral
// balances on demand.
type Service struct {
	members  MemberProvider
	bills    BillProvider
	payments PaymentProvider
	users    UserDirectory
	logger   *slog.Logger
}

// NewService creates a new balance service.
func NewService(members MemberProvider, bills BillProvider, payments PaymentProvider, users UserDirectory, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		members:  members,
		bills:    bills,
		payments: payments,
		users:    users,
		logger:   logger,
	}
}

// GroupBalances computes the net balance of every current member of
// the group, decorated with usernames.
func (s *Service) GroupBalances(ctx context.Context, groupID int64) (*GroupBalanceSummary, error) {
	balances, memberIDs, err := s.netBalances(ctx, groupID)
	if err != nil {
		return nil, err
	}

	names, err := s.users.UsernamesByIDs(ctx, memberIDs)
	if err != nil {
		return nil, err
	}

	summary := &GroupBalanceSummary{GroupID: groupID}
	for _, id := range memberIDs {
		summary.Balances = append(summary.Balances, UserNetBalance{
			UserID:    id,
			Username:  names[id],
			NetAmount: balances[id].StringFixed(2),
		})
	}

	s.logger.Debug("computed group balances", "group_id", groupID, "members", len(memberIDs))
	return summary, nil
}

// GroupSettlements computes the suggested payments that would settle
// every member's balance.
func (s *Service) GroupSettlements(ctx context.Context, groupID int64) (*SettlementSummary, error) {
	balances, _, err := s.netBalances(ctx, groupID)
	if err != nil {
		return nil, err
	}

	summary := &SettlementSummary{GroupID: groupID, SuggestedPayments: []SuggestedPaymentView{}}
	plan := ledger.SuggestSettlements(balances)
	if len(plan) == 0 {
		return summary, nil
	}

	involved := make(map[int64]struct{})
	var involvedIDs []int64
	for _, sp := range plan {
		for _, id := range []int64{sp.PayerID, sp.PayeeID} {
			if _, ok := involved[id]; !ok {
				involved[id] = struct{}{}
				involvedIDs = append(involvedIDs, id)
			}
		}
	}

	names, err := s.users.UsernamesByIDs(ctx, involvedIDs)
	if err != nil {
		return nil, err
	}

	for _, sp := range plan {
		summary.SuggestedPayments = append(summary.SuggestedPayments, SuggestedPaymentView{
			PayerID:       sp.PayerID,
			PayerUsername: names[sp.PayerID],
			PayeeID:       sp.PayeeID,
			PayeeUsername: names[sp.PayeeID],
			Amount:        sp.Amount.StringFixed(2),
		})
	}

	s.logger.Debug("computed settlement plan", "group_id", groupID, "transfers", len(plan))
	return summary, nil
}

// BalanceBetween reconstructs the net amount userA owes userB within
// the group, in whole currency units. Positive means A owes B.
func (s *Service) BalanceBetween(ctx context.Context, groupID, userA, userB int64) (decimal.Decimal, error) {
	if userA == userB {
		return decimal.Zero, ErrSelfBalance
	}

	memberIDs, err := s.members.MemberIDs(ctx, groupID)
	if err != nil {
		return decimal.Zero, err
	}
	if !contains(memberIDs, userA) || !contains(memberIDs, userB) {
		return decimal.Zero, ErrNotGroupMember
	}

	bills, err := s.bills.LedgerBills(ctx, groupID)
	if err != nil {
		return decimal.Zero, err
	}
	payments, err := s.payments.LedgerPaymentsBetween(ctx, groupID, userA, userB)
	if err != nil {
		return decimal.Zero, err
	}

	return ledger.BalanceBetween(userA, userB, bills, payments), nil
}

// BalancesWithMembers reconstructs the requesting user's bilateral
// balance with every other current member.
func (s *Service) BalancesWithMembers(ctx context.Context, groupID, userID int64) ([]MemberBalanceView, error) {
	memberIDs, err := s.members.MemberIDs(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !contains(memberIDs, userID) {
		return nil, ErrNotGroupMember
	}

	bills, err := s.bills.LedgerBills(ctx, groupID)
	if err != nil {
		return nil, err
	}

	names, err := s.users.UsernamesByIDs(ctx, memberIDs)
	if err != nil {
		return nil, err
	}

	var views []MemberBalanceView
	for _, other := range memberIDs {
		if other == userID {
			continue
		}
		payments, err := s.payments.LedgerPaymentsBetween(ctx, groupID, userID, other)
		if err != nil {
			return nil, err
		}
		amount := ledger.BalanceBetween(userID, other, bills, payments)
		views = append(views, MemberBalanceView{
			UserID:   other,
			Username: names[other],
			Balance:  amount.StringFixed(0),
		})
	}

	return views, nil
}

// netBalances fetches the group snapshot and runs the aggregator.
func (s *Service) netBalances(ctx context.Context, groupID int64) (map[int64]decimal.Decimal, []int64, error) {
	memberIDs, err := s.members.MemberIDs(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	if len(memberIDs) == 0 {
		return map[int64]decimal.Decimal{}, nil, nil
	}

	bills, err := s.bills.LedgerBills(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	payments, err := s.payments.LedgerPayments(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}

	return ledger.NetBalances(memberIDs, bills, payments), memberIDs, nil
}

func contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
