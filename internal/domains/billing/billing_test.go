package billing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/internal/domains/billing"
	bookingModel "frontdesk/internal/domains/booking/model"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 12, 0, 0, 0, time.UTC)
}

func TestProrate(t *testing.T) {
	type args struct {
		checkIn        time.Time
		scheduledOut   time.Time
		actualOut      time.Time
		originalAmount float64
	}

	tests := []struct {
		name    string
		args    args
		want    billing.Proration
		wantErr error
	}{
		{
			name: "early checkout refunds unused nights",
			args: args{
				checkIn:        day(1),
				scheduledOut:   day(4),
				actualOut:      day(3),
				originalAmount: 3000,
			},
			want: billing.Proration{
				ScheduledDays: 3,
				ActualDays:    2,
				DayDifference: 1,
				DailyRate:     1000,
				Adjustment:    -1000,
				FinalAmount:   2000,
				Kind:          billing.AdjustmentRefund,
				Reason:        "checked out 1 day(s) early, refund of 1000.00",
			},
		},
		{
			name: "late checkout charges extra nights",
			args: args{
				checkIn:        day(1),
				scheduledOut:   day(4),
				actualOut:      day(5),
				originalAmount: 3000,
			},
			want: billing.Proration{
				ScheduledDays: 3,
				ActualDays:    4,
				DayDifference: -1,
				DailyRate:     1000,
				Adjustment:    1000,
				FinalAmount:   4000,
				Kind:          billing.AdjustmentExtraCharge,
				Reason:        "checked out 1 day(s) late, additional charge of 1000.00",
			},
		},
		{
			name: "on-time checkout leaves the amount untouched",
			args: args{
				checkIn:        day(1),
				scheduledOut:   day(4),
				actualOut:      day(4),
				originalAmount: 3000,
			},
			want: billing.Proration{
				ScheduledDays: 3,
				ActualDays:    3,
				DayDifference: 0,
				DailyRate:     1000,
				Adjustment:    0,
				FinalAmount:   3000,
				Kind:          billing.AdjustmentNone,
				Reason:        "checked out on schedule, no adjustment",
			},
		},
		{
			name: "partial extra day rounds up to a full night",
			args: args{
				checkIn:        day(1),
				scheduledOut:   day(4),
				actualOut:      day(4).Add(6 * time.Hour),
				originalAmount: 3000,
			},
			want: billing.Proration{
				ScheduledDays: 3,
				ActualDays:    4,
				DayDifference: -1,
				DailyRate:     1000,
				Adjustment:    1000,
				FinalAmount:   4000,
				Kind:          billing.AdjustmentExtraCharge,
				Reason:        "checked out 1 day(s) late, additional charge of 1000.00",
			},
		},
		{
			name: "zero-night scheduled stay is rejected",
			args: args{
				checkIn:        day(1),
				scheduledOut:   day(1),
				actualOut:      day(2),
				originalAmount: 1500,
			},
			wantErr: billing.ErrZeroNightStay,
		},
		{
			name: "checkout before check-in is rejected",
			args: args{
				checkIn:        day(3),
				scheduledOut:   day(5),
				actualOut:      day(2),
				originalAmount: 2000,
			},
			wantErr: billing.ErrCheckoutBeforeCheckin,
		},
		{
			name: "negative amount is rejected",
			args: args{
				checkIn:        day(1),
				scheduledOut:   day(3),
				actualOut:      day(3),
				originalAmount: -100,
			},
			wantErr: billing.ErrNegativeAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := billing.Prorate(tt.args.checkIn, tt.args.scheduledOut, tt.args.actualOut, tt.args.originalAmount)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProrate_FinalAmountInvariant(t *testing.T) {
	amounts := []float64{0, 450, 3000, 9999.99}
	offsets := []int{-2, -1, 0, 1, 3}

	for _, amount := range amounts {
		for _, offset := range offsets {
			actual := day(5).AddDate(0, 0, offset)
			if actual.Before(day(1)) {
				continue
			}

			got, err := billing.Prorate(day(1), day(5), actual, amount)
			require.NoError(t, err)
			assert.InDelta(t, amount+got.Adjustment, got.FinalAmount, 1e-9)
		}
	}
}

func ptr(v float64) *float64 {
	return &v
}

func TestPaymentTotals(t *testing.T) {
	tests := []struct {
		name      string
		breakdown billing.PaymentBreakdown
		want      billing.Totals
	}{
		{
			name: "nil instruments count as zero",
			breakdown: billing.PaymentBreakdown{
				AdvanceCash: ptr(500),
				AdvanceCard: ptr(0),
				AdvanceUPI:  ptr(200),
				TotalAmount: 3000,
			},
			want: billing.Totals{
				AdvanceTotal: 700,
				ReceiptTotal: 0,
				Collected:    700,
				Outstanding:  2300,
			},
		},
		{
			name: "advance and receipt are summed independently",
			breakdown: billing.PaymentBreakdown{
				AdvanceCash: ptr(1000),
				ReceiptCard: ptr(1500),
				ReceiptUPI:  ptr(500),
				TotalAmount: 3000,
			},
			want: billing.Totals{
				AdvanceTotal: 1000,
				ReceiptTotal: 2000,
				Collected:    3000,
				Outstanding:  0,
			},
		},
		{
			name: "overpayment floors outstanding at zero",
			breakdown: billing.PaymentBreakdown{
				ReceiptBank: ptr(5000),
				TotalAmount: 3000,
			},
			want: billing.Totals{
				AdvanceTotal: 0,
				ReceiptTotal: 5000,
				Collected:    5000,
				Outstanding:  0,
			},
		},
		{
			name:      "empty breakdown owes the full amount",
			breakdown: billing.PaymentBreakdown{TotalAmount: 1200},
			want: billing.Totals{
				AdvanceTotal: 0,
				ReceiptTotal: 0,
				Collected:    0,
				Outstanding:  1200,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, billing.PaymentTotals(tt.breakdown))
		})
	}
}

func TestPaymentInstruments(t *testing.T) {
	tests := []struct {
		name      string
		breakdown billing.PaymentBreakdown
		want      billing.InstrumentTotals
	}{
		{
			name: "advance and receipt merge per instrument",
			breakdown: billing.PaymentBreakdown{
				AdvanceCash: ptr(1000),
				ReceiptCash: ptr(500),
				ReceiptCard: ptr(800),
				AdvanceUPI:  ptr(200),
				TotalAmount: 3000,
			},
			want: billing.InstrumentTotals{Cash: 1500, Card: 800, UPI: 200, Bank: 0},
		},
		{
			name:      "empty breakdown yields all zeros",
			breakdown: billing.PaymentBreakdown{TotalAmount: 1200},
			want:      billing.InstrumentTotals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, billing.PaymentInstruments(tt.breakdown))
		})
	}
}

func TestInstrumentTotals_Add(t *testing.T) {
	a := billing.InstrumentTotals{Cash: 100, Card: 200}
	b := billing.InstrumentTotals{Cash: 50, UPI: 75, Bank: 25}

	assert.Equal(t, billing.InstrumentTotals{Cash: 150, Card: 200, UPI: 75, Bank: 25}, a.Add(b))
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status string
		want   billing.Bucket
	}{
		{bookingModel.StatusCancelled, billing.BucketCancelled},
		{bookingModel.StatusNoShow, billing.BucketNoShow},
		{bookingModel.StatusPending, billing.BucketPending},
		{bookingModel.StatusReserved, billing.BucketPrimary},
		{bookingModel.StatusConfirmed, billing.BucketPrimary},
		{bookingModel.StatusCheckedIn, billing.BucketPrimary},
		{bookingModel.StatusCheckedOut, billing.BucketPrimary},
		{"something_new", billing.BucketPrimary},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, billing.ClassifyStatus(tt.status))
		})
	}
}
