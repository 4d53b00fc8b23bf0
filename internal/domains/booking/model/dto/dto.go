package dto

import (
	"time"

	"frontdesk/internal/domains/billing"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
)

type CreateBookingRequest struct {
	GuestID      string   `json:"guest_id"       validate:"required,uuid"`
	RoomIDs      []string `json:"room_ids"       validate:"required,min=1,dive,uuid"`
	CheckInDate  string   `json:"check_in_date"  validate:"required"`
	CheckOutDate string   `json:"check_out_date" validate:"required"`
	Status       string   `json:"status"         validate:"omitempty,oneof=pending reserved confirmed"`
}

type UpdateBookingRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reserved confirmed"`
}

type CheckoutRequest struct {
	ActualCheckOut string `json:"actual_check_out" validate:"omitempty"`
	Reason         string `json:"reason"           validate:"omitempty,max=255"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required,max=255"`
}

type BookingRoomResponse struct {
	ID             string  `json:"id"`
	RoomID         string  `json:"room_id"`
	RoomNumber     string  `json:"room_number"`
	RoomTypeName   string  `json:"room_type_name"`
	CheckInDate    string  `json:"check_in_date"`
	CheckOutDate   string  `json:"check_out_date"`
	ActualCheckIn  string  `json:"actual_check_in,omitempty"`
	ActualCheckOut string  `json:"actual_check_out,omitempty"`
	Status         string  `json:"status"`
	Rate           float64 `json:"rate"`
	Nights         int     `json:"nights"`
	Total          float64 `json:"total"`
}

func (r *BookingRoomResponse) FromModel(m model.BookingRoom) {
	r.ID = m.ID
	r.RoomID = m.RoomID
	r.RoomNumber = m.RoomNumber
	r.RoomTypeName = m.RoomTypeName
	r.CheckInDate = m.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = m.CheckOutDate.Format(constant.DateOnlyFormat)
	r.Status = m.Status
	r.Rate = m.Rate
	r.Nights = m.Nights
	r.Total = m.Total

	if m.ActualCheckIn != nil {
		r.ActualCheckIn = m.ActualCheckIn.Format(constant.DateFormat)
	}

	if m.ActualCheckOut != nil {
		r.ActualCheckOut = m.ActualCheckOut.Format(constant.DateFormat)
	}
}

type BookingResponse struct {
	ID                  string                `json:"id"`
	BookingNumber       string                `json:"booking_number"`
	GuestID             string                `json:"guest_id"`
	GuestName           string                `json:"guest_name"`
	StaffID             string                `json:"staff_id"`
	Status              string                `json:"status"`
	CheckInDate         string                `json:"check_in_date"`
	CheckOutDate        string                `json:"check_out_date"`
	ActualCheckIn       string                `json:"actual_check_in,omitempty"`
	ActualCheckOut      string                `json:"actual_check_out,omitempty"`
	TotalAmount         float64               `json:"total_amount"`
	CancelReason        string                `json:"cancel_reason,omitempty"`
	EarlyCheckoutReason string                `json:"early_checkout_reason,omitempty"`
	Rooms               []BookingRoomResponse `json:"rooms,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.BookingNumber = m.BookingNumber
	r.GuestID = m.GuestID
	r.GuestName = m.GuestName
	r.StaffID = m.StaffID
	r.Status = m.Status
	r.CheckInDate = m.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = m.CheckOutDate.Format(constant.DateOnlyFormat)
	r.TotalAmount = m.TotalAmount

	if m.ActualCheckIn != nil {
		r.ActualCheckIn = m.ActualCheckIn.Format(constant.DateFormat)
	}

	if m.ActualCheckOut != nil {
		r.ActualCheckOut = m.ActualCheckOut.Format(constant.DateFormat)
	}

	if m.CancelReason != nil {
		r.CancelReason = *m.CancelReason
	}

	if m.EarlyCheckoutReason != nil {
		r.EarlyCheckoutReason = *m.EarlyCheckoutReason
	}

	r.Metadata.FromModel(m.Metadata)
}

func (r *BookingResponse) AttachRooms(rooms []model.BookingRoom) {
	r.Rooms = make([]BookingRoomResponse, len(rooms))
	for i, room := range rooms {
		r.Rooms[i].FromModel(room)
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// RoomFailure reports one room-leg that could not be transitioned during a
// bulk operation. The rest of the legs proceed.
type RoomFailure struct {
	RoomID string `json:"room_id"`
	Error  string `json:"error"`
}

type CheckInResponse struct {
	Booking     BookingResponse `json:"booking"`
	FailedRooms []RoomFailure   `json:"failed_rooms,omitempty"`
}

type CheckoutResponse struct {
	Booking     BookingResponse   `json:"booking"`
	Proration   billing.Proration `json:"proration"`
	FailedRooms []RoomFailure     `json:"failed_rooms,omitempty"`
}

// ParseActualCheckout resolves the optional actual checkout date, defaulting
// to today. Booking dates are date-only midnights, so the defaulted instant
// is truncated to its date; otherwise an on-time checkout would rate as a
// partial extra day.
func (c *CheckoutRequest) ParseActualCheckout(now time.Time) (time.Time, error) {
	if c.ActualCheckOut == constant.Empty {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}

	parsed, err := shared.ParseFlexibleDate(c.ActualCheckOut)
	if err != nil {
		return time.Time{}, err
	}

	return parsed, nil
}
