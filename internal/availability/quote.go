package availability

import (
	"time"

	apperrors "github.com/sewakita/sewakita-backend/pkg/errors"
	"github.com/sewakita/sewakita-backend/pkg/enums"
)

const millisPerDay = 24 * 60 * 60 * 1000

// Quote is the priced rental for a validated interval. Amounts are rupiah.
type Quote struct {
	RentalDays      int
	TotalPrice      int64
	DepositAmount   int64
	RemainingAmount int64
	StatusHint      enums.OrderStatus
}

// ComputeQuote prices a rental window. Days are counted by dividing the
// elapsed wall-clock milliseconds by a fixed day constant and rounding up,
// so a window from June 1 to June 4 is three rental days.
//
// StatusHint is PAID only when the deposit covers the entire total; callers
// that carry an explicit status ignore the hint. The hint never downgrades
// an order that is already PAID.
func ComputeQuote(dailyRate int64, start, end time.Time, deposit int64) (Quote, error) {
	interval, err := NewInterval(start, end)
	if err != nil {
		return Quote{}, err
	}
	if dailyRate <= 0 {
		return Quote{}, apperrors.New(apperrors.CodeValidation, "daily rate must be positive")
	}
	if deposit < 0 {
		return Quote{}, apperrors.New(apperrors.CodeValidation, "deposit amount cannot be negative")
	}

	elapsedMillis := interval.End.Sub(interval.Start).Milliseconds()
	days := int((elapsedMillis + millisPerDay - 1) / millisPerDay)
	if days <= 0 {
		return Quote{}, apperrors.New(apperrors.CodeValidation, "rental must cover at least one day")
	}

	total := int64(days) * dailyRate
	if deposit > total {
		return Quote{}, apperrors.New(apperrors.CodeValidation, "deposit amount cannot exceed total price")
	}

	hint := enums.OrderStatusPendingReview
	if deposit == total && total > 0 {
		hint = enums.OrderStatusPaid
	}

	return Quote{
		RentalDays:      days,
		TotalPrice:      total,
		DepositAmount:   deposit,
		RemainingAmount: total - deposit,
		StatusHint:      hint,
	}, nil
}
