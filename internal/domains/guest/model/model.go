package model

import (
	"frontdesk/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID            = "id"
	FieldFullName      = "full_name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldIDProofType   = "id_proof_type"
	FieldIDProofNumber = "id_proof_number"
	FieldAddress       = "address"
)

type Guest struct {
	ID            string `db:"id"`
	FullName      string `db:"full_name"`
	Email         string `db:"email"`
	Phone         string `db:"phone"`
	IDProofType   string `db:"id_proof_type"`
	IDProofNumber string `db:"id_proof_number"`
	Address       string `db:"address"`
	model.Metadata
}
