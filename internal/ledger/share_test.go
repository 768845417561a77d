package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharedtab/billsplit/internal/money"
)

func dec(s string) decimal.Decimal {
	return money.MustFromString(s)
}

func TestShare_EqualLooksUpPart(t *testing.T) {
	bill := Bill{
		ID:          1,
		TotalAmount: dec("100.00"),
		SplitMethod: SplitEqual,
		Parts: []BillPart{
			{UserID: 1, AmountOwed: dec("34.00")},
			{UserID: 2, AmountOwed: dec("33.00")},
			{UserID: 3, AmountOwed: dec("33.00")},
		},
	}

	assert.True(t, dec("34.00").Equal(Share(bill, 1)))
	assert.True(t, dec("33.00").Equal(Share(bill, 2)))
	assert.True(t, dec("33.00").Equal(Share(bill, 3)))
}

func TestShare_ExactLooksUpPart(t *testing.T) {
	bill := Bill{
		ID:          2,
		TotalAmount: dec("75.50"),
		SplitMethod: SplitExact,
		Parts: []BillPart{
			{UserID: 7, AmountOwed: dec("50.25")},
			{UserID: 9, AmountOwed: dec("25.25")},
		},
	}

	assert.True(t, dec("50.25").Equal(Share(bill, 7)))
	assert.True(t, dec("25.25").Equal(Share(bill, 9)))
}

func TestShare_UserWithoutPartOwesZero(t *testing.T) {
	bill := Bill{
		SplitMethod: SplitEqual,
		Parts:       []BillPart{{UserID: 1, AmountOwed: dec("10.00")}},
	}

	share := Share(bill, 42)
	assert.True(t, share.IsZero())
}

func TestShare_ItemAccumulatesAcrossItems(t *testing.T) {
	bill := Bill{
		ID:          3,
		TotalAmount: dec("20.00"),
		SplitMethod: SplitItem,
		Items: []BillItem{
			{
				ItemID:    1,
				UnitPrice: dec("10.00"),
				Quantity:  2,
				Splits: []BillItemSplit{
					{UserID: 1, Quantity: 1},
					{UserID: 2, Quantity: 1},
				},
			},
		},
	}

	assert.True(t, dec("10.00").Equal(Share(bill, 1)))
	assert.True(t, dec("10.00").Equal(Share(bill, 2)))
	assert.True(t, Share(bill, 3).IsZero())
}

func TestShare_ItemUserInManyItems(t *testing.T) {
	bill := Bill{
		SplitMethod: SplitItem,
		Items: []BillItem{
			{ItemID: 1, UnitPrice: dec("2.50"), Quantity: 4, Splits: []BillItemSplit{
				{UserID: 1, Quantity: 3},
				{UserID: 2, Quantity: 1},
			}},
			{ItemID: 2, UnitPrice: dec("1.25"), Quantity: 2, Splits: []BillItemSplit{
				{UserID: 1, Quantity: 2},
			}},
		},
	}

	// 2.50*3 + 1.25*2 = 10.00
	assert.True(t, dec("10.00").Equal(Share(bill, 1)))
	assert.True(t, dec("2.50").Equal(Share(bill, 2)))
}

func TestShare_IsIdempotent(t *testing.T) {
	bill := Bill{
		SplitMethod: SplitItem,
		Items: []BillItem{
			{ItemID: 1, UnitPrice: dec("3.33"), Quantity: 3, Splits: []BillItemSplit{
				{UserID: 5, Quantity: 3},
			}},
		},
	}

	first := Share(bill, 5)
	second := Share(bill, 5)
	require.True(t, first.Equal(second))
}

func TestSplitMethod_Valid(t *testing.T) {
	assert.True(t, SplitEqual.Valid())
	assert.True(t, SplitExact.Valid())
	assert.True(t, SplitItem.Valid())
	assert.False(t, SplitMethod("percentage").Valid())
	assert.False(t, SplitMethod("").Valid())
}
