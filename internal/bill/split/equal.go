package split

import (
	"github.com/shopspring/decimal"

	"github.com/sharedtab/billsplit/internal/ledger"
)

// EqualStrategy divides the bill total over all current group members
// at whole-currency-unit granularity: everyone gets the base share and
// the remainder is handed out one unit at a time to the first members
// in order, so the parts always sum to the total exactly.
type EqualStrategy struct{}

// Method returns the split method identifier.
func (s *EqualStrategy) Method() ledger.SplitMethod {
	return ledger.SplitEqual
}

// Validate checks the inputs for an equal split.
func (s *EqualStrategy) Validate(in *Input) error {
	if err := validateCommon(in); err != nil {
		return err
	}
	if len(in.MemberIDs) == 0 {
		return ErrNoMembers
	}
	if len(in.Parts) > 0 {
		return ErrPartsNotAllowed
	}
	if itemsCarrySplits(in.Items) {
		return ErrItemSplitsNotAllowed
	}
	return nil
}

// Parts distributes the total over the member list.
func (s *EqualStrategy) Parts(in *Input) ([]ledger.BillPart, error) {
	if err := s.Validate(in); err != nil {
		return nil, err
	}

	n := int64(len(in.MemberIDs))
	count := decimal.NewFromInt(n)
	one := decimal.NewFromInt(1)

	base := in.TotalAmount.Div(count).Floor()
	leftover := in.TotalAmount.Sub(base.Mul(count))
	remainderUnits := leftover.Floor()
	// Sub-unit leftover only exists for totals with cents; it goes to
	// the first member so the parts still sum to the total exactly.
	cents := leftover.Sub(remainderUnits)

	parts := make([]ledger.BillPart, len(in.MemberIDs))
	for i, userID := range in.MemberIDs {
		share := base
		if decimal.NewFromInt(int64(i)).LessThan(remainderUnits) {
			share = share.Add(one)
		}
		if i == 0 {
			share = share.Add(cents)
		}
		parts[i] = ledger.BillPart{UserID: userID, AmountOwed: share}
	}

	return parts, nil
}
