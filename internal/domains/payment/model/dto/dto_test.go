package dto_test

import (
	"testing"

	"frontdesk/internal/domains/payment/model"
	"frontdesk/internal/domains/payment/model/dto"
)

func float(v float64) *float64 {
	return &v
}

func TestUpdatePaymentRequest_IsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.UpdatePaymentRequest
		expected bool
	}{
		{
			name:     "all fields nil",
			req:      dto.UpdatePaymentRequest{},
			expected: true,
		},
		{
			name:     "explicit zero is not empty",
			req:      dto.UpdatePaymentRequest{AdvanceCash: float(0)},
			expected: false,
		},
		{
			name:     "single instrument set",
			req:      dto.UpdatePaymentRequest{ReceiptUPI: float(250)},
			expected: false,
		},
		{
			name:     "only tax set",
			req:      dto.UpdatePaymentRequest{TaxAmount: float(120)},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.IsEmpty(); got != tt.expected {
				t.Errorf("expected IsEmpty to be %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNewBreakdown(t *testing.T) {
	breakdown := dto.NewBreakdown("booking-1", 4500, "staff-1")

	if breakdown.ID == "" {
		t.Error("expected a generated ID")
	}

	if breakdown.BookingID != "booking-1" {
		t.Errorf("expected booking ID booking-1, got %s", breakdown.BookingID)
	}

	if breakdown.TotalAmount != 4500 {
		t.Errorf("expected total amount 4500, got %f", breakdown.TotalAmount)
	}

	if breakdown.AdvanceCash != nil {
		t.Error("expected instruments to start unset")
	}

	if breakdown.CreatedBy != "staff-1" || breakdown.ModifiedBy != "staff-1" {
		t.Error("expected metadata stamped with the creating staff")
	}
}

func TestPaymentResponse_FromModel(t *testing.T) {
	m := model.PaymentBreakdown{
		ID:          "payment-1",
		BookingID:   "booking-1",
		AdvanceCash: float(1000),
		ReceiptCard: float(500),
		TaxAmount:   180,
		TotalAmount: 3000,
	}

	var res dto.PaymentResponse
	res.FromModel(m)

	if res.ID != "payment-1" || res.BookingID != "booking-1" {
		t.Errorf("unexpected identifiers %s/%s", res.ID, res.BookingID)
	}

	if res.AdvanceCash == nil || *res.AdvanceCash != 1000 {
		t.Error("expected advance cash to carry over")
	}

	if res.AdvanceCard != nil {
		t.Error("expected unset instruments to stay nil")
	}

	if res.Totals.AdvanceTotal != 1000 {
		t.Errorf("expected advance total 1000, got %f", res.Totals.AdvanceTotal)
	}

	if res.Totals.ReceiptTotal != 500 {
		t.Errorf("expected receipt total 500, got %f", res.Totals.ReceiptTotal)
	}

	if res.Totals.Outstanding != 1500 {
		t.Errorf("expected outstanding 1500, got %f", res.Totals.Outstanding)
	}
}
