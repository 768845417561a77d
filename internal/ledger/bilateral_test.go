package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceBetween_SelfIsZero(t *testing.T) {
	bills := []Bill{{
		TotalAmount: dec("50.00"),
		SplitMethod: SplitEqual,
		Parts:       []BillPart{{UserID: 1, AmountOwed: dec("50.00")}},
	}}

	assert.True(t, BalanceBetween(1, 1, bills, nil).IsZero())
}

func TestBalanceBetween_DirectPaymentsOnly(t *testing.T) {
	payments := []Payment{
		{PayerID: 1, PayeeID: 2, Amount: dec("40.00")},
		{PayerID: 2, PayeeID: 1, Amount: dec("15.00")},
	}

	// A paid B 40, B paid A 15: net, B owes A 25, i.e. A owes B -25.
	got := BalanceBetween(1, 2, nil, payments)
	assert.True(t, dec("-25").Equal(got))
}

func TestBalanceBetween_SurplusCoversOtherShare(t *testing.T) {
	// B fronts the whole 90.00 bill, equal three-way split.
	bill := Bill{
		TotalAmount: dec("90.00"),
		SplitMethod: SplitEqual,
		InitialPayments: []InitialPayment{
			{UserID: 2, AmountPaid: dec("90.00")},
		},
		Parts: []BillPart{
			{UserID: 1, AmountOwed: dec("30.00")},
			{UserID: 2, AmountOwed: dec("30.00")},
			{UserID: 3, AmountOwed: dec("30.00")},
		},
	}

	// B's surplus is 60.00; it covers A's full 30.00 share.
	got := BalanceBetween(1, 2, []Bill{bill}, nil)
	assert.True(t, dec("30").Equal(got))

	// Symmetric view flips the sign.
	assert.True(t, dec("-30").Equal(BalanceBetween(2, 1, []Bill{bill}, nil)))
}

func TestBalanceBetween_MutualSurplusesNet(t *testing.T) {
	billA := Bill{
		ID:          1,
		TotalAmount: dec("40.00"),
		SplitMethod: SplitExact,
		InitialPayments: []InitialPayment{
			{UserID: 1, AmountPaid: dec("40.00")},
		},
		Parts: []BillPart{
			{UserID: 1, AmountOwed: dec("20.00")},
			{UserID: 2, AmountOwed: dec("20.00")},
		},
	}
	billB := Bill{
		ID:          2,
		TotalAmount: dec("10.00"),
		SplitMethod: SplitExact,
		InitialPayments: []InitialPayment{
			{UserID: 2, AmountPaid: dec("10.00")},
		},
		Parts: []BillPart{
			{UserID: 1, AmountOwed: dec("5.00")},
			{UserID: 2, AmountOwed: dec("5.00")},
		},
	}

	// A covered 20 of B's shares, B covered 5 of A's: A owes B -15.
	got := BalanceBetween(1, 2, []Bill{billA, billB}, nil)
	assert.True(t, dec("-15").Equal(got))
}

func TestBalanceBetween_BillWithoutEitherShareIsSkipped(t *testing.T) {
	bill := Bill{
		TotalAmount: dec("30.00"),
		SplitMethod: SplitExact,
		InitialPayments: []InitialPayment{
			{UserID: 2, AmountPaid: dec("30.00")},
		},
		Parts: []BillPart{
			{UserID: 3, AmountOwed: dec("15.00")},
			{UserID: 4, AmountOwed: dec("15.00")},
		},
	}

	// Neither user 1 nor user 2 holds a share; B's fronting is ignored.
	assert.True(t, BalanceBetween(1, 2, []Bill{bill}, nil).IsZero())
}

func TestBalanceBetween_SurplusCappedAtOtherShare(t *testing.T) {
	// B fronts 100 on a bill where B's own share is 10 and A's is 20:
	// B's surplus is 90 but can only cover A's 20.
	bill := Bill{
		TotalAmount: dec("100.00"),
		SplitMethod: SplitExact,
		InitialPayments: []InitialPayment{
			{UserID: 2, AmountPaid: dec("100.00")},
		},
		Parts: []BillPart{
			{UserID: 1, AmountOwed: dec("20.00")},
			{UserID: 2, AmountOwed: dec("10.00")},
			{UserID: 3, AmountOwed: dec("70.00")},
		},
	}

	got := BalanceBetween(1, 2, []Bill{bill}, nil)
	assert.True(t, dec("20").Equal(got))
}

func TestBalanceBetween_RoundsToWholeUnits(t *testing.T) {
	bill := Bill{
		TotalAmount: dec("10.01"),
		SplitMethod: SplitExact,
		InitialPayments: []InitialPayment{
			{UserID: 2, AmountPaid: dec("10.01")},
		},
		Parts: []BillPart{
			{UserID: 1, AmountOwed: dec("5.51")},
			{UserID: 2, AmountOwed: dec("4.50")},
		},
	}

	// Precise amount is 5.51; the one-to-one view rounds half-up to 6.
	got := BalanceBetween(1, 2, []Bill{bill}, nil)
	assert.True(t, dec("6").Equal(got))
}

// In the degenerate two-member group, the bilateral view must agree
// with the aggregator (up to its whole-unit rounding). With more
// members the two derivations legitimately diverge.
func TestBalanceBetween_AgreesWithAggregatorForTwoMembers(t *testing.T) {
	bills := []Bill{
		{
			ID:          1,
			TotalAmount: dec("80.00"),
			SplitMethod: SplitEqual,
			InitialPayments: []InitialPayment{
				{UserID: 1, AmountPaid: dec("80.00")},
			},
			Parts: []BillPart{
				{UserID: 1, AmountOwed: dec("40.00")},
				{UserID: 2, AmountOwed: dec("40.00")},
			},
		},
		{
			ID:          2,
			TotalAmount: dec("26.00"),
			SplitMethod: SplitExact,
			InitialPayments: []InitialPayment{
				{UserID: 2, AmountPaid: dec("26.00")},
			},
			Parts: []BillPart{
				{UserID: 1, AmountOwed: dec("13.00")},
				{UserID: 2, AmountOwed: dec("13.00")},
			},
		},
	}
	payments := []Payment{
		{PayerID: 2, PayeeID: 1, Amount: dec("7.00")},
	}

	bilateral := BalanceBetween(2, 1, bills, payments)

	balances := NetBalances([]int64{1, 2}, bills, payments)
	require.Len(t, balances, 2)

	// Positive aggregator balance for user 2 means user 2 owes the
	// group, which in a two-member group is exactly user 1.
	assert.True(t, bilateral.Equal(balances[2].Round(0)),
		"bilateral %s vs aggregated %s", bilateral, balances[2])
}
