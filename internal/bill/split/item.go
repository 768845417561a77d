package split

import (
	"fmt"

	"github.com/sharedtab/billsplit/internal/ledger"
)

// ItemStrategy splits a bill by receipt line: each item's quantity is
// assigned to users, and a user's share is derived from the items at
// read time. No bill parts are stored.
type ItemStrategy struct{}

// Method returns the split method identifier.
func (s *ItemStrategy) Method() ledger.SplitMethod {
	return ledger.SplitItem
}

// Validate checks the inputs for an itemized split.
func (s *ItemStrategy) Validate(in *Input) error {
	if err := validateCommon(in); err != nil {
		return err
	}
	if len(in.Items) == 0 {
		return ErrItemsRequired
	}
	if len(in.Parts) > 0 {
		return ErrPartsNotAllowed
	}

	for _, item := range in.Items {
		if len(item.Splits) == 0 {
			return fmt.Errorf("%w: item %d has none", ErrItemSplitsRequired, item.ItemID)
		}
		var assigned int64
		for _, sp := range item.Splits {
			assigned += sp.Quantity
		}
		if assigned != item.Quantity {
			return fmt.Errorf("%w: item %d has quantity %d but splits assign %d",
				ErrSplitQuantityMismatch, item.ItemID, item.Quantity, assigned)
		}
	}

	return nil
}

// Parts validates the items and returns no parts; shares come from the
// items themselves.
func (s *ItemStrategy) Parts(in *Input) ([]ledger.BillPart, error) {
	if err := s.Validate(in); err != nil {
		return nil, err
	}
	return nil, nil
}
