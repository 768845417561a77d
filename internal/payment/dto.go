package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest represents the request to record a payment. The
// payer is always the authenticated user.
type CreatePaymentRequest struct {
	GroupID     int64           `json:"group_id"`
	PayeeID     int64           `json:"payee_id"`
	Amount      decimal.Decimal `json:"amount"`
	BillID      *int64          `json:"bill_id,omitempty"`
	Notes       *string         `json:"notes,omitempty"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
}

// UpdatePaymentRequest represents the request to update a payment.
type UpdatePaymentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate *time.Time      `json:"payment_date,omitempty"`
	Notes       *string         `json:"notes,omitempty"`
	BillID      *int64          `json:"bill_id,omitempty"`
}

// PaymentResponse represents the response for a payment.
type PaymentResponse struct {
	ID            int64   `json:"id"`
	GroupID       int64   `json:"group_id"`
	PayerID       int64   `json:"payer_id"`
	PayerUsername string  `json:"payer_username,omitempty"`
	PayeeID       int64   `json:"payee_id"`
	PayeeUsername string  `json:"payee_username,omitempty"`
	BillID        *int64  `json:"bill_id,omitempty"`
	Amount        string  `json:"amount"`
	PaymentDate   string  `json:"payment_date"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// ToResponse converts a Payment model to a PaymentResponse DTO.
func (p *Payment) ToResponse() *PaymentResponse {
	return &PaymentResponse{
		ID:            p.ID,
		GroupID:       p.GroupID,
		PayerID:       p.PayerID,
		PayerUsername: p.PayerUsername,
		PayeeID:       p.PayeeID,
		PayeeUsername: p.PayeeUsername,
		BillID:        p.BillID,
		Amount:        p.Amount.StringFixed(2),
		PaymentDate:   p.PaymentDate.Format("2006-01-02"),
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
