// Package ledger is the balance and settlement engine: pure functions
// over already-fetched snapshots of a group's bills and payments. It
// answers "who owes whom, and how much" and produces a settlement plan
// that would zero every balance. Nothing here touches the database or
// holds state; the same inputs always produce the same outputs.
package ledger

import "github.com/shopspring/decimal"

// SplitMethod determines how a bill's total is divided among participants.
type SplitMethod string

const (
	SplitEqual SplitMethod = "equal"
	SplitExact SplitMethod = "exact"
	SplitItem  SplitMethod = "item"
)

// Valid reports whether m is one of the known split methods.
func (m SplitMethod) Valid() bool {
	switch m {
	case SplitEqual, SplitExact, SplitItem:
		return true
	}
	return false
}

// Bill is the engine's read-only view of one bill: the split method
// plus the stored line data the share calculation needs. The persistence
// layer validates totals at creation time; the engine trusts them.
type Bill struct {
	ID              int64
	GroupID         int64
	TotalAmount     decimal.Decimal
	SplitMethod     SplitMethod
	InitialPayments []InitialPayment
	Parts           []BillPart // equal / exact
	Items           []BillItem // item
}

// InitialPayment is money a member fronted when the bill was created.
type InitialPayment struct {
	UserID     int64
	AmountPaid decimal.Decimal
}

// BillPart is the definitive share of one user for equal/exact bills.
type BillPart struct {
	UserID     int64
	AmountOwed decimal.Decimal
}

// BillItem is one line of an itemized bill.
type BillItem struct {
	ItemID    int64
	UnitPrice decimal.Decimal
	Quantity  int64
	Splits    []BillItemSplit
}

// BillItemSplit assigns part of an item's quantity to one user.
type BillItemSplit struct {
	UserID   int64
	Quantity int64
}

// Payment is a direct settlement transaction between two members,
// optionally linked to the bill it settles.
type Payment struct {
	PayerID int64
	PayeeID int64
	Amount  decimal.Decimal
	BillID  *int64
}

// SuggestedPayment is one leg of a settlement plan. Amount is always
// strictly positive.
type SuggestedPayment struct {
	PayerID int64
	PayeeID int64
	Amount  decimal.Decimal
}
