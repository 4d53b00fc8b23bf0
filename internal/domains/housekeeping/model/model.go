package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "housekeeping_tasks"
	EntityName = "housekeeping_task"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldBookingID   = "booking_id"
	FieldTaskType    = "task_type"
	FieldStatus      = "status"
	FieldAssignedTo  = "assigned_to"
	FieldNotes       = "notes"
	FieldCompletedAt = "completed_at"
)

const (
	TypeCheckoutCleaning = "checkout_cleaning"
	TypeDailyCleaning    = "daily_cleaning"
	TypeMaintenance      = "maintenance"
	TypeInspection       = "inspection"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusVerified   = "verified"
	StatusCancelled  = "cancelled"
)

type Task struct {
	ID          string     `db:"id"`
	RoomID      string     `db:"room_id"`
	BookingID   *string    `db:"booking_id"`
	TaskType    string     `db:"task_type"`
	Status      string     `db:"status"`
	AssignedTo  *string    `db:"assigned_to"`
	Notes       string     `db:"notes"`
	CompletedAt *time.Time `db:"completed_at"`

	RoomNumber string `db:"room_number" table:"rooms" column:"room_number"`

	model.Metadata
}

func (Task) GetJoinQuery() string {
	return "LEFT JOIN rooms ON rooms.id = housekeeping_tasks.room_id"
}
