package bill

import (
	"github.com/shopspring/decimal"

	"github.com/sharedtab/billsplit/internal/bill/split"
	"github.com/sharedtab/billsplit/internal/ledger"
)

// InitialPaymentInput is one up-front payment in a create/update request.
type InitialPaymentInput struct {
	UserID     int64           `json:"user_id"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
}

// ItemSplitInput assigns item quantity to a user in a create/update request.
type ItemSplitInput struct {
	UserID   int64 `json:"user_id"`
	Quantity int64 `json:"quantity"`
}

// ItemInput is one receipt line in a create/update request.
type ItemInput struct {
	Name      string           `json:"name"`
	UnitPrice decimal.Decimal  `json:"unit_price"`
	Quantity  int64            `json:"quantity"`
	Splits    []ItemSplitInput `json:"splits,omitempty"`
}

// PartInput is one exact-amount share in a create/update request.
type PartInput struct {
	UserID     int64           `json:"user_id"`
	AmountOwed decimal.Decimal `json:"amount_owed"`
}

// CreateBillRequest represents the request to create a bill.
type CreateBillRequest struct {
	GroupID         int64                 `json:"group_id"`
	Title           string                `json:"title"`
	Description     *string               `json:"description,omitempty"`
	TotalAmount     decimal.Decimal       `json:"total_amount"`
	SplitMethod     ledger.SplitMethod    `json:"split_method"`
	InitialPayments []InitialPaymentInput `json:"initial_payments,omitempty"`
	Items           []ItemInput           `json:"items,omitempty"`
	Parts           []PartInput           `json:"parts,omitempty"`
}

// UpdateBillRequest replaces a bill with its full new state.
type UpdateBillRequest struct {
	Title           string                `json:"title"`
	Description     *string               `json:"description,omitempty"`
	TotalAmount     decimal.Decimal       `json:"total_amount"`
	SplitMethod     ledger.SplitMethod    `json:"split_method"`
	InitialPayments []InitialPaymentInput `json:"initial_payments,omitempty"`
	Items           []ItemInput           `json:"items,omitempty"`
	Parts           []PartInput           `json:"parts,omitempty"`
}

// splitInput assembles the strategy input from request fields plus the
// group's current member ids. Item ids are assigned in request order,
// starting at 1, matching how they are persisted.
func splitInput(total decimal.Decimal, memberIDs []int64,
	initialPayments []InitialPaymentInput, items []ItemInput, parts []PartInput) *split.Input {

	in := &split.Input{
		TotalAmount: total,
		MemberIDs:   memberIDs,
	}

	for _, ip := range initialPayments {
		in.InitialPayments = append(in.InitialPayments, ledger.InitialPayment{
			UserID:     ip.UserID,
			AmountPaid: ip.AmountPaid,
		})
	}
	for i, item := range items {
		li := ledger.BillItem{
			ItemID:    int64(i + 1),
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
		for _, sp := range item.Splits {
			li.Splits = append(li.Splits, ledger.BillItemSplit{
				UserID:   sp.UserID,
				Quantity: sp.Quantity,
			})
		}
		in.Items = append(in.Items, li)
	}
	for _, p := range parts {
		in.Parts = append(in.Parts, ledger.BillPart{
			UserID:     p.UserID,
			AmountOwed: p.AmountOwed,
		})
	}

	return in
}

// BillResponse represents the response for a bill.
type BillResponse struct {
	ID              int64                 `json:"id"`
	GroupID         int64                 `json:"group_id"`
	CreatedBy       *int64                `json:"created_by,omitempty"`
	CreatorUsername string                `json:"creator_username,omitempty"`
	Title           string                `json:"title"`
	Description     *string               `json:"description,omitempty"`
	TotalAmount     string                `json:"total_amount"`
	SplitMethod     ledger.SplitMethod    `json:"split_method"`
	CreatedAt       string                `json:"created_at"`
	InitialPayments []*InitialPayment     `json:"initial_payments,omitempty"`
	Items           []*Item               `json:"items,omitempty"`
	Parts           []*Part               `json:"parts,omitempty"`
}

// ToResponse converts a Bill model to a BillResponse DTO.
func (b *Bill) ToResponse() *BillResponse {
	return &BillResponse{
		ID:              b.ID,
		GroupID:         b.GroupID,
		CreatedBy:       b.CreatedBy,
		CreatorUsername: b.CreatorUsername,
		Title:           b.Title,
		Description:     b.Description,
		TotalAmount:     b.TotalAmount.StringFixed(2),
		SplitMethod:     b.SplitMethod,
		CreatedAt:       b.CreatedAt.Format("2006-01-02T15:04:05Z"),
		InitialPayments: b.InitialPayments,
		Items:           b.Items,
		Parts:           b.Parts,
	}
}
