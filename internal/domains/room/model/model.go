package model

import (
	"frontdesk/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldRoomTypeID = "room_type_id"
	FieldFloor      = "floor"
	FieldStatus     = "status"
	FieldNotes      = "notes"
)

// Room statuses. Housekeeping drives the cleaning to available transition;
// check-in and checkout drive the rest.
const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusCleaning    = "cleaning"
	StatusMaintenance = "maintenance"
)

type Room struct {
	ID         string `db:"id"`
	RoomNumber string `db:"room_number"`
	RoomTypeID string `db:"room_type_id"`
	Floor      int    `db:"floor"`
	Status     string `db:"status"`
	Notes      string `db:"notes"`

	RoomTypeName string  `db:"room_type_name" table:"room_types" column:"name"`
	BaseRate     float64 `db:"base_rate"      table:"room_types" column:"base_rate"`

	model.Metadata
}

func (Room) GetJoinQuery() string {
	return "LEFT JOIN room_types ON room_types.id = rooms.room_type_id"
}
