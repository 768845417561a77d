package payment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sharedtab/billsplit/internal/ledger"
)

// Payment is a direct settlement transaction between two group members,
// optionally linked to the bill it settles.
type Payment struct {
	ID          int64           `json:"id"`
	GroupID     int64           `json:"group_id"`
	PayerID     int64           `json:"payer_id"`
	PayeeID     int64           `json:"payee_id"`
	BillID      *int64          `json:"bill_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"payment_date"`
	Notes       *string         `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`

	// Populated via JOIN
	PayerUsername string `json:"payer_username,omitempty"`
	PayeeUsername string `json:"payee_username,omitempty"`
}

// ToLedger converts the persisted payment into the engine's view.
func (p *Payment) ToLedger() ledger.Payment {
	return ledger.Payment{
		PayerID: p.PayerID,
		PayeeID: p.PayeeID,
		Amount:  p.Amount,
		BillID:  p.BillID,
	}
}
