package model

import (
	"frontdesk/shared/model"
)

const (
	RoomTypeTableName  = "room_types"
	RoomTypeEntityName = "room_type"

	FieldRoomTypeName = "name"
	FieldBaseRate     = "base_rate"
	FieldCapacity     = "capacity"
)

type RoomType struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	BaseRate    float64 `db:"base_rate"`
	Capacity    int     `db:"capacity"`
	Description string  `db:"description"`
	model.Metadata
}
