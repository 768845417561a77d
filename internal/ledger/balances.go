package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/sharedtab/billsplit/internal/money"
)

// NetBalances aggregates a group's bills and payments into one signed
// balance per current member. Positive means the member still owes the
// group; negative means the group owes them. For a closed group the
// balances always sum to zero.
//
// memberIDs is the authoritative set of current members: amounts
// fronted or owed by users missing from it are dropped at every
// accumulation step, so departed members' historical debts are not
// carried forward.
func NetBalances(memberIDs []int64, bills []Bill, payments []Payment) map[int64]decimal.Decimal {
	balances := make(map[int64]decimal.Decimal, len(memberIDs))
	for _, id := range memberIDs {
		balances[id] = money.Zero()
	}

	for _, bill := range bills {
		// Fronting money reduces what the payer still owes.
		for _, ip := range bill.InitialPayments {
			if bal, ok := balances[ip.UserID]; ok {
				balances[ip.UserID] = bal.Sub(ip.AmountPaid)
			}
		}

		// Only users actually assigned a portion of this bill owe a share.
		for _, userID := range bill.participantIDs() {
			bal, ok := balances[userID]
			if !ok {
				continue
			}
			share := Share(bill, userID)
			if share.IsPositive() {
				balances[userID] = bal.Add(share)
			}
		}
	}

	for _, p := range payments {
		if bal, ok := balances[p.PayerID]; ok {
			balances[p.PayerID] = bal.Sub(p.Amount)
		}
		if bal, ok := balances[p.PayeeID]; ok {
			balances[p.PayeeID] = bal.Add(p.Amount)
		}
	}

	return balances
}

// participantIDs returns the unique set of users assigned a portion of
// the bill: the union of part holders and item-split holders.
func (b Bill) participantIDs() []int64 {
	seen := make(map[int64]struct{})
	var ids []int64

	add := func(id int64) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	for _, part := range b.Parts {
		add(part.UserID)
	}
	for _, item := range b.Items {
		for _, split := range item.Splits {
			add(split.UserID)
		}
	}

	return ids
}
