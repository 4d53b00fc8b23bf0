package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	BookingRoomTableName  = "booking_rooms"
	BookingRoomEntityName = "booking_room"

	FieldBookingRoomID = "id"
	FieldBookingID     = "booking_id"
	FieldRoomID        = "room_id"
	FieldRate          = "rate"
	FieldNights        = "nights"
	FieldRoomTotal     = "total"
)

// BookingRoom is one room-leg of a booking. Each leg carries its own dates
// and status so rooms of the same booking can check in and out independently.
type BookingRoom struct {
	ID             string     `db:"id"`
	BookingID      string     `db:"booking_id"`
	RoomID         string     `db:"room_id"`
	CheckInDate    time.Time  `db:"check_in_date"`
	CheckOutDate   time.Time  `db:"check_out_date"`
	ActualCheckIn  *time.Time `db:"actual_check_in"`
	ActualCheckOut *time.Time `db:"actual_check_out"`
	Status         string     `db:"status"`
	Rate           float64    `db:"rate"`
	Nights         int        `db:"nights"`
	Total          float64    `db:"total"`

	RoomNumber   string `db:"room_number" table:"rooms" column:"room_number"`
	RoomTypeName string `db:"room_type_name" table:"room_types" column:"name"`

	model.Metadata
}

func (BookingRoom) GetJoinQuery() string {
	return "LEFT JOIN rooms ON rooms.id = booking_rooms.room_id " +
		"LEFT JOIN room_types ON room_types.id = rooms.room_type_id"
}
