package split

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sharedtab/billsplit/internal/ledger"
)

// Input carries everything a strategy needs to validate a bill and
// produce its stored parts.
type Input struct {
	TotalAmount     decimal.Decimal
	MemberIDs       []int64 // current group members, in join order
	InitialPayments []ledger.InitialPayment
	Items           []ledger.BillItem
	Parts           []ledger.BillPart // caller-supplied, exact method only
}

// Strategy is the interface all split methods implement. Parts returns
// the BillPart rows to persist for the bill; the item method stores no
// parts because shares derive from the items themselves.
type Strategy interface {
	// Method returns the split method this strategy handles.
	Method() ledger.SplitMethod

	// Validate checks the input for this method's rules.
	Validate(in *Input) error

	// Parts computes the bill parts to store.
	Parts(in *Input) ([]ledger.BillPart, error)
}

// Factory creates split strategies based on the requested method.
type Factory struct{}

// NewFactory creates a new factory instance.
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the strategy implementation for the given method.
func (f *Factory) Create(method ledger.SplitMethod) (Strategy, error) {
	switch method {
	case ledger.SplitEqual:
		return &EqualStrategy{}, nil
	case ledger.SplitExact:
		return &ExactStrategy{}, nil
	case ledger.SplitItem:
		return &ItemStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown split method: %s", method)
	}
}

var (
	ErrNoMembers             = errors.New("group has no members to split among")
	ErrNonPositiveTotal      = errors.New("total amount must be positive")
	ErrInitialPaymentsExceed = errors.New("sum of initial payments cannot exceed the total amount")
	ErrItemsTotalMismatch    = errors.New("item prices do not sum to the total amount")
	ErrPartsTotalMismatch    = errors.New("bill parts do not sum to the total amount")
	ErrPartsRequired         = errors.New("bill parts are required for the exact split method")
	ErrPartsNotAllowed       = errors.New("bill parts are only allowed for the exact split method")
	ErrItemsRequired         = errors.New("an itemized bill must include at least one item")
	ErrItemSplitsRequired    = errors.New("every item needs splits for the item split method")
	ErrItemSplitsNotAllowed  = errors.New("item-level splits are not allowed for this split method")
	ErrSplitQuantityMismatch = errors.New("item split quantities do not sum to the item quantity")
	ErrNegativePartAmount    = errors.New("bill part amounts cannot be negative")
	ErrDuplicatePartUser     = errors.New("a user appears in more than one bill part")
)

// sumTolerance is the slack allowed when comparing client-computed sums
// against the bill total.
var sumTolerance = decimal.New(1, -2) // 0.01

// validateCommon enforces the rules shared by every split method.
func validateCommon(in *Input) error {
	if !in.TotalAmount.IsPositive() {
		return ErrNonPositiveTotal
	}

	fronted := decimal.Zero
	for _, ip := range in.InitialPayments {
		fronted = fronted.Add(ip.AmountPaid)
	}
	if fronted.GreaterThan(in.TotalAmount) {
		return ErrInitialPaymentsExceed
	}

	// Items may accompany any method as receipt detail; when present
	// their prices must account for the whole bill.
	if len(in.Items) > 0 {
		itemsTotal := decimal.Zero
		for _, item := range in.Items {
			itemsTotal = itemsTotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)))
		}
		if itemsTotal.Sub(in.TotalAmount).Abs().GreaterThan(sumTolerance) {
			return fmt.Errorf("%w: items sum to %s, total is %s",
				ErrItemsTotalMismatch, itemsTotal, in.TotalAmount)
		}
	}

	return nil
}

// itemsCarrySplits reports whether any item carries item-level splits.
func itemsCarrySplits(items []ledger.BillItem) bool {
	for _, item := range items {
		if len(item.Splits) > 0 {
			return true
		}
	}
	return false
}
