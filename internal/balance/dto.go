package balance

// UserNetBalance is one member's net position within a group.
// Positive means the member still owes the group; negative means the
// group owes the member.
type UserNetBalance struct {
	UserID    int64  `json:"user_id" example:"1"`
	Username  string `json:"username" example:"john_doe"`
	NetAmount string `json:"net_amount" example:"25.50"`
}

// GroupBalanceSummary is the response for GET /groups/{id}/balances.
type GroupBalanceSummary struct {
	GroupID  int64            `json:"group_id" example:"1"`
	Balances []UserNetBalance `json:"balances"`
}

// SuggestedPaymentView is one transfer of a settlement plan.
type SuggestedPaymentView struct {
	PayerID       int64  `json:"payer_id" example:"2"`
	PayerUsername string `json:"payer_username" example:"jane_doe"`
	PayeeID       int64  `json:"payee_id" example:"1"`
	PayeeUsername string `json:"payee_username" example:"john_doe"`
	Amount        string `json:"amount" example:"25.50"`
}

// SettlementSummary is the response for GET /groups/{id}/settlements.
type SettlementSummary struct {
	GroupID           int64                  `json:"group_id" example:"1"`
	SuggestedPayments []SuggestedPaymentView `json:"suggested_payments"`
}

// BilateralBalance is the response for GET /groups/{id}/balances/with/{userId}.
// Balance is in whole currency units; positive means the requesting
// user owes the other user.
type BilateralBalance struct {
	UserID  int64  `json:"user_id" example:"2"`
	OtherID int64  `json:"other_user_id" example:"3"`
	Balance string `json:"balance" example:"20"`
}

// MemberBalanceView is one entry of the per-member bilateral listing.
type MemberBalanceView struct {
	UserID   int64  `json:"user_id" example:"3"`
	Username string `json:"username" example:"jane_doe"`
	Balance  string `json:"balance" example:"-15"`
}
