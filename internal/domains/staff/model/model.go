package model

import (
	"frontdesk/shared/model"
)

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID       = "id"
	FieldFullName = "full_name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
	FieldPhone    = "phone"
	FieldIsActive = "is_active"
)

type Staff struct {
	ID       string `db:"id"`
	FullName string `db:"full_name"`
	Email    string `db:"email"`
	Password string `db:"password"`
	Role     string `db:"role"`
	Phone    string `db:"phone"`
	IsActive bool   `db:"is_active"`
	model.Metadata
}
