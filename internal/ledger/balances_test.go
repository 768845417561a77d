package ledger

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetBalances_EmptyInputsYieldZeroBalances(t *testing.T) {
	balances := NetBalances([]int64{1, 2, 3}, nil, nil)

	require.Len(t, balances, 3)
	for id, bal := range balances {
		assert.True(t, bal.IsZero(), "member %d expected zero balance", id)
	}
}

func TestNetBalances_NoMembers(t *testing.T) {
	balances := NetBalances(nil, []Bill{{TotalAmount: dec("10.00")}}, nil)
	assert.Empty(t, balances)
}

// A fronts 90.00, split equally among A, B, C.
func TestNetBalances_FrontedBillEqualSplit(t *testing.T) {
	bill := Bill{
		ID:          1,
		GroupID:     1,
		TotalAmount: dec("90.00"),
		SplitMethod: SplitEqual,
		InitialPayments: []InitialPayment{
			{UserID: 1, AmountPaid: dec("90.00")},
		},
		Parts: []BillPart{
			{UserID: 1, AmountOwed: dec("30.00")},
			{UserID: 2, AmountOwed: dec("30.00")},
			{UserID: 3, AmountOwed: dec("30.00")},
		},
	}

	balances := NetBalances([]int64{1, 2, 3}, []Bill{bill}, nil)

	assert.True(t, dec("-60.00").Equal(balances[1]))
	assert.True(t, dec("30.00").Equal(balances[2]))
	assert.True(t, dec("30.00").Equal(balances[3]))
}

func TestNetBalances_PaymentsShiftBothSides(t *testing.T) {
	payments := []Payment{
		{PayerID: 2, PayeeID: 1, Amount: dec("30.00")},
	}

	bill := Bill{
		TotalAmount: dec("90.00"),
		SplitMethod: SplitEqual,
		InitialPayments: []InitialPayment{
			{UserID: 1, AmountPaid: dec("90.00")},
		},
		Parts: []BillPart{
			{UserID: 1, AmountOwed: dec("30.00")},
			{UserID: 2, AmountOwed: dec("30.00")},
			{UserID: 3, AmountOwed: dec("30.00")},
		},
	}

	balances := NetBalances([]int64{1, 2, 3}, []Bill{bill}, payments)

	// B paid A 30.00: B is settled, A is now owed only 30.00.
	assert.True(t, dec("-30.00").Equal(balances[1]))
	assert.True(t, balances[2].IsZero())
	assert.True(t, dec("30.00").Equal(balances[3]))
}

func TestNetBalances_DepartedMembersArePruned(t *testing.T) {
	bill := Bill{
		TotalAmount: dec("60.00"),
		SplitMethod: SplitEqual,
		InitialPayments: []InitialPayment{
			{UserID: 99, AmountPaid: dec("60.00")}, // no longer a member
		},
		Parts: []BillPart{
			{UserID: 1, AmountOwed: dec("20.00")},
			{UserID: 2, AmountOwed: dec("20.00")},
			{UserID: 99, AmountOwed: dec("20.00")},
		},
	}

	balances := NetBalances([]int64{1, 2}, []Bill{bill}, nil)

	require.Len(t, balances, 2)
	_, present := balances[99]
	assert.False(t, present)
	assert.True(t, dec("20.00").Equal(balances[1]))
	assert.True(t, dec("20.00").Equal(balances[2]))
}

func TestNetBalances_ItemBillParticipantsFromSplits(t *testing.T) {
	bill := Bill{
		TotalAmount: dec("20.00"),
		SplitMethod: SplitItem,
		InitialPayments: []InitialPayment{
			{UserID: 2, AmountPaid: dec("20.00")},
		},
		Items: []BillItem{
			{ItemID: 1, UnitPrice: dec("10.00"), Quantity: 2, Splits: []BillItemSplit{
				{UserID: 1, Quantity: 1},
				{UserID: 2, Quantity: 1},
			}},
		},
	}

	balances := NetBalances([]int64{1, 2, 3}, []Bill{bill}, nil)

	assert.True(t, dec("10.00").Equal(balances[1]))
	assert.True(t, dec("-10.00").Equal(balances[2]))
	assert.True(t, balances[3].IsZero())
}

// Zero-sum property: for a closed group (every fronted amount and every
// share belongs to a current member, bills fully paid up front), the
// balances always sum to zero.
func TestNetBalances_ZeroSumProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		t.Run(fmt.Sprintf("trial_%d", trial), func(t *testing.T) {
			n := 2 + rng.Intn(6)
			members := make([]int64, n)
			for i := range members {
				members[i] = int64(i + 1)
			}

			var bills []Bill
			for b := 0; b < 1+rng.Intn(5); b++ {
				// Random whole-cent total, fronted entirely by one member.
				totalCents := int64(100 + rng.Intn(100000))
				total := decimal.New(totalCents, -2)

				parts := equalParts(members, total)
				bills = append(bills, Bill{
					ID:          int64(b + 1),
					TotalAmount: total,
					SplitMethod: SplitEqual,
					InitialPayments: []InitialPayment{
						{UserID: members[rng.Intn(n)], AmountPaid: total},
					},
					Parts: parts,
				})
			}

			var payments []Payment
			for p := 0; p < rng.Intn(4); p++ {
				payer := members[rng.Intn(n)]
				payee := members[rng.Intn(n)]
				if payer == payee {
					continue
				}
				payments = append(payments, Payment{
					PayerID: payer,
					PayeeID: payee,
					Amount:  decimal.New(int64(1+rng.Intn(5000)), -2),
				})
			}

			balances := NetBalances(members, bills, payments)

			sum := decimal.Zero
			for _, bal := range balances {
				sum = sum.Add(bal)
			}
			assert.True(t, sum.IsZero(), "balances must sum to zero, got %s", sum)
		})
	}
}

// equalParts mirrors the equal-split persistence rule: base share at
// whole-cent granularity with any remainder cents going to the first
// members in order.
func equalParts(members []int64, total decimal.Decimal) []BillPart {
	n := int64(len(members))
	cents := total.Mul(decimal.New(100, 0)).IntPart()
	base := cents / n
	remainder := cents % n

	parts := make([]BillPart, len(members))
	for i, id := range members {
		share := base
		if int64(i) < remainder {
			share++
		}
		parts[i] = BillPart{UserID: id, AmountOwed: decimal.New(share, -2)}
	}
	return parts
}

func TestNetBalances_IsIdempotent(t *testing.T) {
	bill := Bill{
		TotalAmount: dec("90.00"),
		SplitMethod: SplitEqual,
		InitialPayments: []InitialPayment{
			{UserID: 1, AmountPaid: dec("90.00")},
		},
		Parts: []BillPart{
			{UserID: 1, AmountOwed: dec("30.00")},
			{UserID: 2, AmountOwed: dec("30.00")},
			{UserID: 3, AmountOwed: dec("30.00")},
		},
	}

	first := NetBalances([]int64{1, 2, 3}, []Bill{bill}, nil)
	second := NetBalances([]int64{1, 2, 3}, []Bill{bill}, nil)

	require.Equal(t, len(first), len(second))
	for id, bal := range first {
		assert.True(t, bal.Equal(second[id]))
	}
}
