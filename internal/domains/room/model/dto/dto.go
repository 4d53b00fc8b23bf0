package dto

import (
	"github.com/google/uuid"

	"frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber string `json:"room_number"  validate:"required,max=10"`
	RoomTypeID string `json:"room_type_id" validate:"required,uuid"`
	Floor      int    `json:"floor"        validate:"omitempty,gte=0"`
	Notes      string `json:"notes"        validate:"omitempty,max=255"`
}

func (c *CreateRoomRequest) ToModel(staff string) model.Room {
	return model.Room{
		ID:         uuid.NewString(),
		RoomNumber: c.RoomNumber,
		RoomTypeID: c.RoomTypeID,
		Floor:      c.Floor,
		Status:     model.StatusAvailable,
		Notes:      c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  staff,
			ModifiedBy: staff,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber string `db:"room_number"  json:"room_number"  validate:"omitempty,max=10"`
	RoomTypeID string `db:"room_type_id" json:"room_type_id" validate:"omitempty,uuid"`
	Floor      *int   `db:"floor"        json:"floor"        validate:"omitempty,gte=0"`
	Status     string `db:"status"       json:"status"       validate:"omitempty,oneof=available occupied cleaning maintenance"`
	Notes      string `db:"notes"        json:"notes"        validate:"omitempty,max=255"`
}

type RoomResponse struct {
	ID           string  `json:"id"`
	RoomNumber   string  `json:"room_number"`
	RoomTypeID   string  `json:"room_type_id"`
	RoomTypeName string  `json:"room_type_name"`
	BaseRate     float64 `json:"base_rate"`
	Floor        int     `json:"floor"`
	Status       string  `json:"status"`
	Notes        string  `json:"notes"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomTypeID = model.RoomTypeID
	r.RoomTypeName = model.RoomTypeName
	r.BaseRate = model.BaseRate
	r.Floor = model.Floor
	r.Status = model.Status
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type CreateRoomTypeRequest struct {
	Name        string  `json:"name"        validate:"required,max=50"`
	BaseRate    float64 `json:"base_rate"   validate:"required,gt=0"`
	Capacity    int     `json:"capacity"    validate:"required,gt=0"`
	Description string  `json:"description" validate:"omitempty,max=255"`
}

func (c *CreateRoomTypeRequest) ToModel(staff string) model.RoomType {
	return model.RoomType{
		ID:          uuid.NewString(),
		Name:        c.Name,
		BaseRate:    c.BaseRate,
		Capacity:    c.Capacity,
		Description: c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  staff,
			ModifiedBy: staff,
		},
	}
}

type UpdateRoomTypeRequest struct {
	Name        string   `db:"name"        json:"name"        validate:"omitempty,max=50"`
	BaseRate    *float64 `db:"base_rate"   json:"base_rate"   validate:"omitempty,gt=0"`
	Capacity    *int     `db:"capacity"    json:"capacity"    validate:"omitempty,gt=0"`
	Description string   `db:"description" json:"description" validate:"omitempty,max=255"`
}

type RoomTypeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	BaseRate    float64 `json:"base_rate"`
	Capacity    int     `json:"capacity"`
	Description string  `json:"description"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.Name = model.Name
	r.BaseRate = model.BaseRate
	r.Capacity = model.Capacity
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
