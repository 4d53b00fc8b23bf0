package dto

import (
	"github.com/google/uuid"

	"frontdesk/internal/domains/guest/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateGuestRequest struct {
	FullName      string `json:"full_name"       validate:"required,max=100"`
	Email         string `json:"email"           validate:"omitempty,email,max=100"`
	Phone         string `json:"phone"           validate:"required,max=20"`
	IDProofType   string `json:"id_proof_type"   validate:"omitempty,oneof=passport national_id driving_license"`
	IDProofNumber string `json:"id_proof_number" validate:"omitempty,max=50"`
	Address       string `json:"address"         validate:"omitempty,max=255"`
}

func (c *CreateGuestRequest) ToModel(staff string) model.Guest {
	return model.Guest{
		ID:            uuid.NewString(),
		FullName:      c.FullName,
		Email:         c.Email,
		Phone:         c.Phone,
		IDProofType:   c.IDProofType,
		IDProofNumber: c.IDProofNumber,
		Address:       c.Address,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  staff,
			ModifiedBy: staff,
		},
	}
}

type UpdateGuestRequest struct {
	FullName      string `db:"full_name"       json:"full_name"       validate:"omitempty,max=100"`
	Email         string `db:"email"           json:"email"           validate:"omitempty,email,max=100"`
	Phone         string `db:"phone"           json:"phone"           validate:"omitempty,max=20"`
	IDProofType   string `db:"id_proof_type"   json:"id_proof_type"   validate:"omitempty,oneof=passport national_id driving_license"`
	IDProofNumber string `db:"id_proof_number" json:"id_proof_number" validate:"omitempty,max=50"`
	Address       string `db:"address"         json:"address"         validate:"omitempty,max=255"`
}

type GuestResponse struct {
	ID            string `json:"id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	IDProofType   string `json:"id_proof_type"`
	IDProofNumber string `json:"id_proof_number"`
	Address       string `json:"address"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Phone = model.Phone
	r.IDProofType = model.IDProofType
	r.IDProofNumber = model.IDProofNumber
	r.Address = model.Address
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
