package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                  = "id"
	FieldBookingNumber       = "booking_number"
	FieldGuestID             = "guest_id"
	FieldStaffID             = "staff_id"
	FieldStatus              = "status"
	FieldCheckInDate         = "check_in_date"
	FieldCheckOutDate        = "check_out_date"
	FieldActualCheckIn       = "actual_check_in"
	FieldActualCheckOut      = "actual_check_out"
	FieldTotalAmount         = "total_amount"
	FieldCancelReason        = "cancel_reason"
	FieldEarlyCheckoutReason = "early_checkout_reason"
)

// Booking lifecycle statuses. A booking moves forward only; cancelled and
// no_show are terminal.
const (
	StatusPending    = "pending"
	StatusReserved   = "reserved"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
	StatusNoShow     = "no_show"
)

type Booking struct {
	ID                  string     `db:"id"`
	BookingNumber       string     `db:"booking_number"`
	GuestID             string     `db:"guest_id"`
	StaffID             string     `db:"staff_id"`
	Status              string     `db:"status"`
	CheckInDate         time.Time  `db:"check_in_date"`
	CheckOutDate        time.Time  `db:"check_out_date"`
	ActualCheckIn       *time.Time `db:"actual_check_in"`
	ActualCheckOut      *time.Time `db:"actual_check_out"`
	TotalAmount         float64    `db:"total_amount"`
	CancelReason        *string    `db:"cancel_reason"`
	EarlyCheckoutReason *string    `db:"early_checkout_reason"`

	GuestName string `db:"guest_name" table:"guests" column:"full_name"`

	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN guests ON guests.id = bookings.guest_id"
}
