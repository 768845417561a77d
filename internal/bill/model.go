package bill

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sharedtab/billsplit/internal/ledger"
)

// Bill is a shared expense recorded against a group, with the per-user
// line data its split method needs.
type Bill struct {
	ID          int64                `json:"id"`
	GroupID     int64                `json:"group_id"`
	CreatedBy   *int64               `json:"created_by,omitempty"`
	Title       string               `json:"title"`
	Description *string              `json:"description,omitempty"`
	TotalAmount decimal.Decimal      `json:"total_amount"`
	SplitMethod ledger.SplitMethod   `json:"split_method"`
	CreatedAt   time.Time            `json:"created_at"`

	InitialPayments []*InitialPayment `json:"initial_payments,omitempty"`
	Items           []*Item           `json:"items,omitempty"`
	Parts           []*Part           `json:"parts,omitempty"`

	// Populated via JOIN
	CreatorUsername string `json:"creator_username,omitempty"`
}

// InitialPayment is money a member fronted when the bill was created.
type InitialPayment struct {
	BillID     int64           `json:"bill_id"`
	UserID     int64           `json:"user_id"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
}

// Item is one receipt line of a bill.
type Item struct {
	BillID    int64           `json:"bill_id"`
	ItemID    int64           `json:"item_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
	Splits    []*ItemSplit    `json:"splits,omitempty"`
}

// ItemSplit assigns part of an item's quantity to one user.
type ItemSplit struct {
	BillID   int64 `json:"bill_id"`
	ItemID   int64 `json:"item_id"`
	UserID   int64 `json:"user_id"`
	Quantity int64 `json:"quantity"`
}

// Part is the stored share of one user for equal/exact bills.
type Part struct {
	BillID     int64           `json:"bill_id"`
	UserID     int64           `json:"user_id"`
	AmountOwed decimal.Decimal `json:"amount_owed"`
}

// ToLedger converts the persisted bill into the engine's read-only view.
func (b *Bill) ToLedger() ledger.Bill {
	lb := ledger.Bill{
		ID:          b.ID,
		GroupID:     b.GroupID,
		TotalAmount: b.TotalAmount,
		SplitMethod: b.SplitMethod,
	}

	for _, ip := range b.InitialPayments {
		lb.InitialPayments = append(lb.InitialPayments, ledger.InitialPayment{
			UserID:     ip.UserID,
			AmountPaid: ip.AmountPaid,
		})
	}
	for _, part := range b.Parts {
		lb.Parts = append(lb.Parts, ledger.BillPart{
			UserID:     part.UserID,
			AmountOwed: part.AmountOwed,
		})
	}
	for _, item := range b.Items {
		li := ledger.BillItem{
			ItemID:    item.ItemID,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
		for _, sp := range item.Splits {
			li.Splits = append(li.Splits, ledger.BillItemSplit{
				UserID:   sp.UserID,
				Quantity: sp.Quantity,
			})
		}
		lb.Items = append(lb.Items, li)
	}

	return lb
}
