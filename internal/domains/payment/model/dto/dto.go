package dto

import (
	"github.com/google/uuid"

	"frontdesk/internal/domains/billing"
	"frontdesk/internal/domains/payment/model"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

// UpdatePaymentRequest records money against individual instruments. Only
// the fields present in the request are written; omitted instruments keep
// their stored value.
type UpdatePaymentRequest struct {
	AdvanceCash *float64 `db:"advance_cash" json:"advance_cash" validate:"omitempty,gte=0"`
	AdvanceCard *float64 `db:"advance_card" json:"advance_card" validate:"omitempty,gte=0"`
	AdvanceUPI  *float64 `db:"advance_upi"  json:"advance_upi"  validate:"omitempty,gte=0"`
	AdvanceBank *float64 `db:"advance_bank" json:"advance_bank" validate:"omitempty,gte=0"`

	ReceiptCash *float64 `db:"receipt_cash" json:"receipt_cash" validate:"omitempty,gte=0"`
	ReceiptCard *float64 `db:"receipt_card" json:"receipt_card" validate:"omitempty,gte=0"`
	ReceiptUPI  *float64 `db:"receipt_upi"  json:"receipt_upi"  validate:"omitempty,gte=0"`
	ReceiptBank *float64 `db:"receipt_bank" json:"receipt_bank" validate:"omitempty,gte=0"`

	TaxAmount *float64 `db:"tax_amount" json:"tax_amount" validate:"omitempty,gte=0"`
}

func (r *UpdatePaymentRequest) IsEmpty() bool {
	return r.AdvanceCash == nil && r.AdvanceCard == nil && r.AdvanceUPI == nil && r.AdvanceBank == nil &&
		r.ReceiptCash == nil && r.ReceiptCard == nil && r.ReceiptUPI == nil && r.ReceiptBank == nil &&
		r.TaxAmount == nil
}

func NewBreakdown(bookingID string, totalAmount float64, staff string) model.PaymentBreakdown {
	return model.PaymentBreakdown{
		ID:          uuid.NewString(),
		BookingID:   bookingID,
		TotalAmount: totalAmount,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  staff,
			ModifiedBy: staff,
		},
	}
}

type PaymentResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`

	AdvanceCash *float64 `json:"advance_cash"`
	AdvanceCard *float64 `json:"advance_card"`
	AdvanceUPI  *float64 `json:"advance_upi"`
	AdvanceBank *float64 `json:"advance_bank"`

	ReceiptCash *float64 `json:"receipt_cash"`
	ReceiptCard *float64 `json:"receipt_card"`
	ReceiptUPI  *float64 `json:"receipt_upi"`
	ReceiptBank *float64 `json:"receipt_bank"`

	TaxAmount       float64 `json:"tax_amount"`
	PriceAdjustment float64 `json:"price_adjustment"`
	TotalAmount     float64 `json:"total_amount"`

	Totals billing.Totals `json:"totals"`

	gDto.Metadata
}

func (r *PaymentResponse) FromModel(m model.PaymentBreakdown) {
	r.ID = m.ID
	r.BookingID = m.BookingID
	r.AdvanceCash = m.AdvanceCash
	r.AdvanceCard = m.AdvanceCard
	r.AdvanceUPI = m.AdvanceUPI
	r.AdvanceBank = m.AdvanceBank
	r.ReceiptCash = m.ReceiptCash
	r.ReceiptCard = m.ReceiptCard
	r.ReceiptUPI = m.ReceiptUPI
	r.ReceiptBank = m.ReceiptBank
	r.TaxAmount = m.TaxAmount
	r.PriceAdjustment = m.PriceAdjustment
	r.TotalAmount = m.TotalAmount
	r.Totals = billing.PaymentTotals(ToBillingBreakdown(m))
	r.Metadata.FromModel(m.Metadata)
}

// ToBillingBreakdown bridges the stored row into the billing value type.
func ToBillingBreakdown(m model.PaymentBreakdown) billing.PaymentBreakdown {
	return billing.PaymentBreakdown{
		AdvanceCash:     m.AdvanceCash,
		AdvanceCard:     m.AdvanceCard,
		AdvanceUPI:      m.AdvanceUPI,
		AdvanceBank:     m.AdvanceBank,
		ReceiptCash:     m.ReceiptCash,
		ReceiptCard:     m.ReceiptCard,
		ReceiptUPI:      m.ReceiptUPI,
		ReceiptBank:     m.ReceiptBank,
		TaxAmount:       m.TaxAmount,
		PriceAdjustment: m.PriceAdjustment,
		TotalAmount:     m.TotalAmount,
	}
}
