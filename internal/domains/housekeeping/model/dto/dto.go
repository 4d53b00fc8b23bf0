package dto

import (
	"github.com/google/uuid"

	"frontdesk/internal/domains/housekeeping/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateTaskRequest struct {
	RoomID     string  `json:"room_id"     validate:"required,uuid"`
	BookingID  *string `json:"booking_id"  validate:"omitempty,uuid"`
	TaskType   string  `json:"task_type"   validate:"required,oneof=checkout_cleaning daily_cleaning maintenance inspection"`
	AssignedTo *string `json:"assigned_to" validate:"omitempty,uuid"`
	Notes      string  `json:"notes"       validate:"omitempty,max=255"`
}

func (c *CreateTaskRequest) ToModel(staff string) model.Task {
	return model.Task{
		ID:         uuid.NewString(),
		RoomID:     c.RoomID,
		BookingID:  c.BookingID,
		TaskType:   c.TaskType,
		Status:     model.StatusPending,
		AssignedTo: c.AssignedTo,
		Notes:      c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  staff,
			ModifiedBy: staff,
		},
	}
}

type UpdateTaskRequest struct {
	Status     string  `db:"status"      json:"status"      validate:"omitempty,oneof=pending in_progress completed verified cancelled"`
	AssignedTo *string `db:"assigned_to" json:"assigned_to" validate:"omitempty,uuid"`
	Notes      string  `db:"notes"       json:"notes"       validate:"omitempty,max=255"`
}

type TaskResponse struct {
	ID          string  `json:"id"`
	RoomID      string  `json:"room_id"`
	RoomNumber  string  `json:"room_number"`
	BookingID   *string `json:"booking_id"`
	TaskType    string  `json:"task_type"`
	Status      string  `json:"status"`
	AssignedTo  *string `json:"assigned_to"`
	Notes       string  `json:"notes"`
	CompletedAt string  `json:"completed_at,omitempty"`
	gDto.Metadata
}

func (r *TaskResponse) FromModel(m model.Task) {
	r.ID = m.ID
	r.RoomID = m.RoomID
	r.RoomNumber = m.RoomNumber
	r.BookingID = m.BookingID
	r.TaskType = m.TaskType
	r.Status = m.Status
	r.AssignedTo = m.AssignedTo
	r.Notes = m.Notes

	if m.CompletedAt != nil {
		r.CompletedAt = m.CompletedAt.Format(constant.DateFormat)
	}

	r.Metadata.FromModel(m.Metadata)
}

type GetTasksResponse struct {
	Tasks     []TaskResponse `json:"tasks"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetTasksResponse) FromModels(models []model.Task, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tasks = make([]TaskResponse, len(models))
	for i, mod := range models {
		r.Tasks[i].FromModel(mod)
	}
}
