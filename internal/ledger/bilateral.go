package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/sharedtab/billsplit/internal/money"
)

// BalanceBetween reconstructs the net amount userA owes userB from raw
// bills and the direct payments exchanged between exactly these two
// users. A positive result means A owes B.
//
// This is a deliberately independent derivation from NetBalances: it
// walks only the A-B sub-graph of surplus transfers, so it agrees with
// the aggregator only in the degenerate two-member-group case. The
// result is quantized to whole currency units, a display-oriented
// coarsening specific to the one-to-one view.
func BalanceBetween(userA, userB int64, bills []Bill, directPayments []Payment) decimal.Decimal {
	if userA == userB {
		return decimal.Zero
	}

	aOwesB := decimal.Zero

	for _, p := range directPayments {
		switch {
		case p.PayerID == userA && p.PayeeID == userB:
			aOwesB = aOwesB.Sub(p.Amount) // A paid B down
		case p.PayerID == userB && p.PayeeID == userA:
			aOwesB = aOwesB.Add(p.Amount)
		}
	}

	for _, bill := range bills {
		aShare := Share(bill, userA)
		bShare := Share(bill, userB)

		// The bill only matters if at least one of the two holds a share.
		if !aShare.IsPositive() && !bShare.IsPositive() {
			continue
		}

		aPaid := initialPaidBy(bill, userA)
		bPaid := initialPaidBy(bill, userB)

		// If B fronted more than their own share, the surplus covered
		// part of A's share: A owes B that much more.
		bSurplus := bPaid.Sub(bShare)
		if bSurplus.IsPositive() && aShare.IsPositive() {
			aOwesB = aOwesB.Add(decimal.Min(bSurplus, aShare))
		}

		// Symmetrically, A's surplus covering B's share reduces the total.
		aSurplus := aPaid.Sub(aShare)
		if aSurplus.IsPositive() && bShare.IsPositive() {
			aOwesB = aOwesB.Sub(decimal.Min(aSurplus, bShare))
		}
	}

	return money.RoundWhole(aOwesB)
}

// initialPaidBy sums the up-front payments userID made on a bill.
func initialPaidBy(bill Bill, userID int64) decimal.Decimal {
	total := decimal.Zero
	for _, ip := range bill.InitialPayments {
		if ip.UserID == userID {
			total = total.Add(ip.AmountPaid)
		}
	}
	return total
}
