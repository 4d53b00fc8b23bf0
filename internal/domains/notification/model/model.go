package model

import (
	"time"
)

const (
	EventBookingCreated    = "booking.created"
	EventBookingCheckedIn  = "booking.checked_in"
	EventBookingCheckedOut = "booking.checked_out"
	EventBookingCancelled  = "booking.cancelled"
	EventBookingNoShow     = "booking.no_show"
)

// BookingEvent is the payload published for every booking lifecycle change.
// Consumers (guest messaging, analytics) key on EventType.
type BookingEvent struct {
	EventType     string    `json:"event_type"`
	BookingID     string    `json:"booking_id"`
	BookingNumber string    `json:"booking_number"`
	GuestID       string    `json:"guest_id"`
	GuestName     string    `json:"guest_name,omitempty"`
	Status        string    `json:"status"`
	TotalAmount   float64   `json:"total_amount"`
	Adjustment    float64   `json:"adjustment,omitempty"`
	Reason        string    `json:"reason,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
