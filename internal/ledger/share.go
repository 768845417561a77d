package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/sharedtab/billsplit/internal/money"
)

// Share returns the amount userID owes for a single bill, derived from
// the bill's stored line data. It is the single source of truth for a
// user's share; every balance computation routes through it. A user
// with no assigned share owes zero, never an error.
func Share(bill Bill, userID int64) decimal.Decimal {
	owed := money.Zero()

	switch bill.SplitMethod {
	case SplitEqual, SplitExact:
		// The definitive amount is stored per part.
		for _, part := range bill.Parts {
			if part.UserID == userID {
				owed = part.AmountOwed
				break
			}
		}

	case SplitItem:
		// Accumulate unit price times the quantity assigned to the user.
		// A user may appear in zero, one, or many items.
		for _, item := range bill.Items {
			for _, split := range item.Splits {
				if split.UserID == userID {
					owed = owed.Add(item.UnitPrice.Mul(decimal.NewFromInt(split.Quantity)))
					break
				}
			}
		}
	}

	return money.Round2(owed)
}
