package model

import (
	"frontdesk/shared/model"
)

const (
	TableName  = "booking_payment_breakdown"
	EntityName = "payment_breakdown"

	FieldID        = "id"
	FieldBookingID = "booking_id"

	FieldAdvanceCash = "advance_cash"
	FieldAdvanceCard = "advance_card"
	FieldAdvanceUPI  = "advance_upi"
	FieldAdvanceBank = "advance_bank"

	FieldReceiptCash = "receipt_cash"
	FieldReceiptCard = "receipt_card"
	FieldReceiptUPI  = "receipt_upi"
	FieldReceiptBank = "receipt_bank"

	FieldTaxAmount       = "tax_amount"
	FieldPriceAdjustment = "price_adjustment"
	FieldTotalAmount     = "total_amount"
)

// PaymentBreakdown is one row per booking. Instrument columns stay NULL
// until the desk records money against them; NULL and zero are distinct on
// purpose so reports can tell "never paid" from "paid nothing".
type PaymentBreakdown struct {
	ID        string `db:"id"`
	BookingID string `db:"booking_id"`

	AdvanceCash *float64 `db:"advance_cash"`
	AdvanceCard *float64 `db:"advance_card"`
	AdvanceUPI  *float64 `db:"advance_upi"`
	AdvanceBank *float64 `db:"advance_bank"`

	ReceiptCash *float64 `db:"receipt_cash"`
	ReceiptCard *float64 `db:"receipt_card"`
	ReceiptUPI  *float64 `db:"receipt_upi"`
	ReceiptBank *float64 `db:"receipt_bank"`

	TaxAmount       float64 `db:"tax_amount"`
	PriceAdjustment float64 `db:"price_adjustment"`
	TotalAmount     float64 `db:"total_amount"`

	model.Metadata
}
