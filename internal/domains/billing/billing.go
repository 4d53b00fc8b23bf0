// Package billing holds the front desk's money arithmetic: checkout
// proration, payment breakdown summation, and booking status bucketing.
// Everything here is pure; persistence of the resulting figures is the
// caller's job.
package billing

import (
	"errors"
	"fmt"
	"math"
	"time"

	bookingModel "frontdesk/internal/domains/booking/model"
)

type AdjustmentKind string

const (
	AdjustmentNone        AdjustmentKind = "none"
	AdjustmentRefund      AdjustmentKind = "refund"
	AdjustmentExtraCharge AdjustmentKind = "extra_charge"
)

var (
	ErrZeroNightStay         = errors.New("scheduled stay must be at least one night")
	ErrCheckoutBeforeCheckin = errors.New("actual checkout cannot be before check-in")
	ErrNegativeAmount        = errors.New("original amount cannot be negative")
)

// Proration is the outcome of re-rating a stay against its actual checkout
// date. FinalAmount always equals the original amount plus Adjustment.
type Proration struct {
	ScheduledDays int            `json:"scheduled_days"`
	ActualDays    int            `json:"actual_days"`
	DayDifference int            `json:"day_difference"`
	DailyRate     float64        `json:"daily_rate"`
	Adjustment    float64        `json:"adjustment"`
	FinalAmount   float64        `json:"final_amount"`
	Kind          AdjustmentKind `json:"kind"`
	Reason        string         `json:"reason"`
}

// StayDays counts billable days between two instants, rounding any partial
// day up. A stay that runs past a day boundary is charged for the full day.
func StayDays(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}

// Prorate computes the signed adjustment owed when a guest checks out on a
// different day than booked. Early departure refunds the unused nights at
// the stay's average daily rate; late departure charges the extra nights at
// the same rate. Zero-night scheduled stays are rejected rather than
// re-rated: the daily rate would be undefined and such bookings are refused
// at creation time as well.
func Prorate(checkIn, scheduledOut, actualOut time.Time, originalAmount float64) (Proration, error) {
	if originalAmount < 0 {
		return Proration{}, ErrNegativeAmount
	}

	if actualOut.Before(checkIn) {
		return Proration{}, ErrCheckoutBeforeCheckin
	}

	scheduledDays := StayDays(checkIn, scheduledOut)
	if scheduledDays <= 0 {
		return Proration{}, ErrZeroNightStay
	}

	actualDays := StayDays(checkIn, actualOut)
	dayDifference := scheduledDays - actualDays
	dailyRate := originalAmount / float64(scheduledDays)

	result := Proration{
		ScheduledDays: scheduledDays,
		ActualDays:    actualDays,
		DayDifference: dayDifference,
		DailyRate:     dailyRate,
		Kind:          AdjustmentNone,
	}

	switch {
	case dayDifference > 0:
		result.Adjustment = -dailyRate * float64(dayDifference)
		result.Kind = AdjustmentRefund
		result.Reason = fmt.Sprintf("checked out %d day(s) early, refund of %.2f", dayDifference, -result.Adjustment)
	case dayDifference < 0:
		result.Adjustment = dailyRate * float64(-dayDifference)
		result.Kind = AdjustmentExtraCharge
		result.Reason = fmt.Sprintf("checked out %d day(s) late, additional charge of %.2f", -dayDifference, result.Adjustment)
	default:
		result.Reason = "checked out on schedule, no adjustment"
	}

	result.FinalAmount = originalAmount + result.Adjustment

	return result, nil
}

// PaymentBreakdown is the per-instrument ledger of a booking. Nil fields are
// instruments the desk never recorded and count as zero.
type PaymentBreakdown struct {
	AdvanceCash *float64
	AdvanceCard *float64
	AdvanceUPI  *float64
	AdvanceBank *float64

	ReceiptCash *float64
	ReceiptCard *float64
	ReceiptUPI  *float64
	ReceiptBank *float64

	TaxAmount       float64
	PriceAdjustment float64
	TotalAmount     float64
}

type Totals struct {
	AdvanceTotal float64 `json:"advance_total"`
	ReceiptTotal float64 `json:"receipt_total"`
	Collected    float64 `json:"collected"`
	Outstanding  float64 `json:"outstanding"`
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}

// PaymentTotals sums the breakdown into advance/receipt totals and derives
// the outstanding balance, floored at zero for display. Every report and the
// checkout flow share this one implementation.
func PaymentTotals(b PaymentBreakdown) Totals {
	advance := orZero(b.AdvanceCash) + orZero(b.AdvanceCard) + orZero(b.AdvanceUPI) + orZero(b.AdvanceBank)
	receipt := orZero(b.ReceiptCash) + orZero(b.ReceiptCard) + orZero(b.ReceiptUPI) + orZero(b.ReceiptBank)

	outstanding := b.TotalAmount - (advance + receipt)
	if outstanding < 0 {
		outstanding = 0
	}

	return Totals{
		AdvanceTotal: advance,
		ReceiptTotal: receipt,
		Collected:    advance + receipt,
		Outstanding:  outstanding,
	}
}

// InstrumentTotals is the per-instrument view of collected money, advance
// and receipt combined. It backs the revenue report's reconciliation against
// the cash drawer and terminal settlements.
type InstrumentTotals struct {
	Cash float64 `json:"cash"`
	Card float64 `json:"card"`
	UPI  float64 `json:"upi"`
	Bank float64 `json:"bank"`
}

// PaymentInstruments folds one breakdown into per-instrument totals.
func PaymentInstruments(b PaymentBreakdown) InstrumentTotals {
	return InstrumentTotals{
		Cash: orZero(b.AdvanceCash) + orZero(b.ReceiptCash),
		Card: orZero(b.AdvanceCard) + orZero(b.ReceiptCard),
		UPI:  orZero(b.AdvanceUPI) + orZero(b.ReceiptUPI),
		Bank: orZero(b.AdvanceBank) + orZero(b.ReceiptBank),
	}
}

// Add combines two instrument totals.
func (t InstrumentTotals) Add(other InstrumentTotals) InstrumentTotals {
	return InstrumentTotals{
		Cash: t.Cash + other.Cash,
		Card: t.Card + other.Card,
		UPI:  t.UPI + other.UPI,
		Bank: t.Bank + other.Bank,
	}
}

// Bucket partitions booking statuses the way every report groups them.
type Bucket string

const (
	BucketPrimary   Bucket = "primary"
	BucketCancelled Bucket = "cancelled"
	BucketNoShow    Bucket = "no_show"
	BucketPending   Bucket = "pending"
)

// ClassifyStatus maps a booking status onto its report bucket. Live and
// completed stays all land in primary; anything unrecognized does too, so a
// new status never silently drops rows from a report.
func ClassifyStatus(status string) Bucket {
	switch status {
	case bookingModel.StatusCancelled:
		return BucketCancelled
	case bookingModel.StatusNoShow:
		return BucketNoShow
	case bookingModel.StatusPending:
		return BucketPending
	default:
		return BucketPrimary
	}
}
