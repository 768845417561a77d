package split

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sharedtab/billsplit/internal/ledger"
	"github.com/sharedtab/billsplit/internal/money"
)

// ExactStrategy stores the caller-specified amount per participant.
// The amounts must cover the bill total.
type ExactStrategy struct{}

// Method returns the split method identifier.
func (s *ExactStrategy) Method() ledger.SplitMethod {
	return ledger.SplitExact
}

// Validate checks the inputs for an exact split.
func (s *ExactStrategy) Validate(in *Input) error {
	if err := validateCommon(in); err != nil {
		return err
	}
	if len(in.Parts) == 0 {
		return ErrPartsRequired
	}
	if itemsCarrySplits(in.Items) {
		return ErrItemSplitsNotAllowed
	}

	seen := make(map[int64]struct{}, len(in.Parts))
	sum := decimal.Zero
	for _, part := range in.Parts {
		if part.AmountOwed.IsNegative() {
			return ErrNegativePartAmount
		}
		if _, dup := seen[part.UserID]; dup {
			return ErrDuplicatePartUser
		}
		seen[part.UserID] = struct{}{}
		sum = sum.Add(part.AmountOwed)
	}

	if sum.Sub(in.TotalAmount).Abs().GreaterThanOrEqual(sumTolerance) {
		return fmt.Errorf("%w: parts sum to %s, total is %s",
			ErrPartsTotalMismatch, sum, in.TotalAmount)
	}

	return nil
}

// Parts returns the specified amounts, quantized to scale 2.
func (s *ExactStrategy) Parts(in *Input) ([]ledger.BillPart, error) {
	if err := s.Validate(in); err != nil {
		return nil, err
	}

	parts := make([]ledger.BillPart, len(in.Parts))
	for i, part := range in.Parts {
		parts[i] = ledger.BillPart{
			UserID:     part.UserID,
			AmountOwed: money.Round2(part.AmountOwed),
		}
	}

	return parts, nil
}
