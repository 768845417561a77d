package balance

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharedtab/billsplit/internal/ledger"
)

type stubMembers struct {
	ids []int64
}

func (s *stubMembers) MemberIDs(_ context.Context, _ int64) ([]int64, error) {
	return s.ids, nil
}

type stubBills struct {
	bills []ledger.Bill
}

func (s *stubBills) LedgerBills(_ context.Context, _ int64) ([]ledger.Bill, error) {
	return s.bills, nil
}

type stubPayments struct {
	payments []ledger.Payment
}

func (s *stubPayments) LedgerPayments(_ context.Context, _ int64) ([]ledger.Payment, error) {
	return s.payments, nil
}

func (s *stubPayments) LedgerPaymentsBetween(_ context.Context, _ int64, userA, userB int64) ([]ledger.Payment, error) {
	var out []ledger.Payment
	for _, p := range s.payments {
		if (p.PayerID == userA && p.PayeeID == userB) || (p.PayerID == userB && p.PayeeID == userA) {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubUsers struct {
	names map[int64]string
}

func (s *stubUsers) UsernamesByIDs(_ context.Context, ids []int64) (map[int64]string, error) {
	out := make(map[int64]string, len(ids))
	for _, id := range ids {
		if name, ok := s.names[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestService(members []int64, bills []ledger.Bill, payments []ledger.Payment, names map[int64]string) *Service {
	return NewService(
		&stubMembers{ids: members},
		&stubBills{bills: bills},
		&stubPayments{payments: payments},
		&stubUsers{names: names},
		nil,
	)
}

func TestGroupBalances(t *testing.T) {
	bills := []ledger.Bill{
		{
			ID:          1,
			TotalAmount: dec("90.00"),
			SplitMethod: ledger.SplitExact,
			InitialPayments: []ledger.InitialPayment{
				{UserID: 1, AmountPaid: dec("90.00")},
			},
			Parts: []ledger.BillPart{
				{UserID: 1, AmountOwed: dec("30.00")},
				{UserID: 2, AmountOwed: dec("30.00")},
				{UserID: 3, AmountOwed: dec("30.00")},
			},
		},
	}
	payments := []ledger.Payment{
		{PayerID: 2, PayeeID: 1, Amount: dec("10.00")},
	}
	names := map[int64]string{1: "alice", 2: "bob", 3: "carol"}

	svc := newTestService([]int64{1, 2, 3}, bills, payments, names)

	summary, err := svc.GroupBalances(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, summary.Balances, 3)

	assert.Equal(t, int64(1), summary.GroupID)
	// Negative means the group owes the member.
	assert.Equal(t, UserNetBalance{UserID: 1, Username: "alice", NetAmount: "-50.00"}, summary.Balances[0])
	assert.Equal(t, UserNetBalance{UserID: 2, Username: "bob", NetAmount: "20.00"}, summary.Balances[1])
	assert.Equal(t, UserNetBalance{UserID: 3, Username: "carol", NetAmount: "30.00"}, summary.Balances[2])
}

func TestGroupBalancesEmptyGroup(t *testing.T) {
	svc := newTestService(nil, nil, nil, nil)

	summary, err := svc.GroupBalances(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, summary.Balances)
}

func TestGroupSettlements(t *testing.T) {
	bills := []ledger.Bill{
		{
			ID:          1,
			TotalAmount: dec("60.00"),
			SplitMethod: ledger.SplitExact,
			InitialPayments: []ledger.InitialPayment{
				{UserID: 1, AmountPaid: dec("60.00")},
			},
			Parts: []ledger.BillPart{
				{UserID: 1, AmountOwed: dec("20.00")},
				{UserID: 2, AmountOwed: dec("20.00")},
				{UserID: 3, AmountOwed: dec("20.00")},
			},
		},
	}
	names := map[int64]string{1: "alice", 2: "bob", 3: "carol"}

	svc := newTestService([]int64{1, 2, 3}, bills, nil, names)

	summary, err := svc.GroupSettlements(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, summary.SuggestedPayments, 2)

	assert.Equal(t, SuggestedPaymentView{
		PayerID: 2, PayerUsername: "bob",
		PayeeID: 1, PayeeUsername: "alice",
		Amount: "20.00",
	}, summary.SuggestedPayments[0])
	assert.Equal(t, SuggestedPaymentView{
		PayerID: 3, PayerUsername: "carol",
		PayeeID: 1, PayeeUsername: "alice",
		Amount: "20.00",
	}, summary.SuggestedPayments[1])
}

func TestGroupSettlementsAllSettled(t *testing.T) {
	svc := newTestService([]int64{1, 2}, nil, nil, map[int64]string{1: "alice", 2: "bob"})

	summary, err := svc.GroupSettlements(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, summary.SuggestedPayments)
	assert.NotNil(t, summary.SuggestedPayments)
}

func TestBalanceBetween(t *testing.T) {
	bills := []ledger.Bill{
		{
			ID:          1,
			TotalAmount: dec("40.00"),
			SplitMethod: ledger.SplitExact,
			InitialPayments: []ledger.InitialPayment{
				{UserID: 1, AmountPaid: dec("40.00")},
			},
			Parts: []ledger.BillPart{
				{UserID: 1, AmountOwed: dec("20.00")},
				{UserID: 2, AmountOwed: dec("20.00")},
			},
		},
	}
	payments := []ledger.Payment{
		{PayerID: 2, PayeeID: 1, Amount: dec("5.00")},
	}

	svc := newTestService([]int64{1, 2}, bills, payments, map[int64]string{1: "alice", 2: "bob"})

	// Bob owes Alice 20 from the bill, minus the 5 he paid back.
	amount, err := svc.BalanceBetween(context.Background(), 1, 2, 1)
	require.NoError(t, err)
	assert.True(t, amount.Equal(dec("15")), "got %s", amount)

	// Reversed perspective negates.
	amount, err = svc.BalanceBetween(context.Background(), 1, 1, 2)
	require.NoError(t, err)
	assert.True(t, amount.Equal(dec("-15")), "got %s", amount)
}

func TestBalanceBetweenSelf(t *testing.T) {
	svc := newTestService([]int64{1, 2}, nil, nil, nil)

	_, err := svc.BalanceBetween(context.Background(), 1, 1, 1)
	assert.ErrorIs(t, err, ErrSelfBalance)
}

func TestBalanceBetweenNonMember(t *testing.T) {
	svc := newTestService([]int64{1, 2}, nil, nil, nil)

	_, err := svc.BalanceBetween(context.Background(), 1, 1, 99)
	assert.ErrorIs(t, err, ErrNotGroupMember)
}

func TestBalancesWithMembers(t *testing.T) {
	bills := []ledger.Bill{
		{
			ID:          1,
			TotalAmount: dec("90.00"),
			SplitMethod: ledger.SplitExact,
			InitialPayments: []ledger.InitialPayment{
				{UserID: 1, AmountPaid: dec("90.00")},
			},
			Parts: []ledger.BillPart{
				{UserID: 1, AmountOwed: dec("30.00")},
				{UserID: 2, AmountOwed: dec("30.00")},
				{UserID: 3, AmountOwed: dec("30.00")},
			},
		},
	}
	names := map[int64]string{1: "alice", 2: "bob", 3: "carol"}

	svc := newTestService([]int64{1, 2, 3}, bills, nil, names)

	views, err := svc.BalancesWithMembers(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// Bob owes Alice his 30 share; nothing between Bob and Carol.
	assert.Equal(t, MemberBalanceView{UserID: 1, Username: "alice", Balance: "30"}, views[0])
	assert.Equal(t, MemberBalanceView{UserID: 3, Username: "carol", Balance: "0"}, views[1])
}

func TestBalancesWithMembersNonMember(t *testing.T) {
	svc := newTestService([]int64{1, 2}, nil, nil, nil)

	_, err := svc.BalancesWithMembers(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrNotGroupMember)
}
