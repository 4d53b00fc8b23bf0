package dto

import (
	"github.com/google/uuid"

	"frontdesk/internal/domains/staff/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateStaffRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email"     validate:"required,email,max=100"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
	Role     string `json:"role"      validate:"required,oneof=admin receptionist housekeeping"`
	Phone    string `json:"phone"     validate:"omitempty,max=20"`
}

// ToModel expects the password already hashed; the service owns hashing.
func (c *CreateStaffRequest) ToModel(hashedPassword, creator string) model.Staff {
	return model.Staff{
		ID:       uuid.NewString(),
		FullName: c.FullName,
		Email:    c.Email,
		Password: hashedPassword,
		Role:     c.Role,
		Phone:    c.Phone,
		IsActive: true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  creator,
			ModifiedBy: creator,
		},
	}
}

type UpdateStaffRequest struct {
	FullName string `db:"full_name" json:"full_name" validate:"omitempty,max=100"`
	Role     string `db:"role"      json:"role"      validate:"omitempty,oneof=admin receptionist housekeeping"`
	Phone    string `db:"phone"     json:"phone"     validate:"omitempty,max=20"`
	IsActive *bool  `db:"is_active" json:"is_active" validate:"omitempty"`
}

type StaffResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"is_active"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Role = model.Role
	r.Phone = model.Phone
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}

type StaffLogResponse struct {
	ID        string `json:"id"`
	StaffID   string `json:"staff_id"`
	Action    string `json:"action"`
	Detail    string `json:"detail"`
	CreatedAt string `json:"created_at"`
}

func (r *StaffLogResponse) FromModel(model model.StaffLog) {
	r.ID = model.ID
	r.StaffID = model.StaffID
	r.Action = model.Action
	r.Detail = model.Detail
	r.CreatedAt = model.CreatedAt.Format(constant.DateFormat)
}

type GetStaffLogsResponse struct {
	Logs      []StaffLogResponse `json:"logs"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetStaffLogsResponse) FromModels(models []model.StaffLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Logs = make([]StaffLogResponse, len(models))
	for i, mod := range models {
		r.Logs[i].FromModel(mod)
	}
}
