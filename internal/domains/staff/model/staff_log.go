package model

import (
	"time"
)

const (
	StaffLogTableName  = "staff_logs"
	StaffLogEntityName = "staff_log"

	FieldLogStaffID = "staff_id"
	FieldLogAction  = "action"
)

// Audit actions recorded against staff accounts.
const (
	ActionLogin          = "login"
	ActionBookingCreate  = "booking_create"
	ActionBookingUpdate  = "booking_update"
	ActionCheckIn        = "check_in"
	ActionCheckOut       = "check_out"
	ActionBookingCancel  = "booking_cancel"
	ActionBookingNoShow  = "booking_no_show"
	ActionPaymentUpdate  = "payment_update"
	ActionReportGenerate = "report_generate"
)

// StaffLog is an append-only audit row. It carries no modified metadata on
// purpose: audit entries are never edited.
type StaffLog struct {
	ID        string    `db:"id"`
	StaffID   string    `db:"staff_id"`
	Action    string    `db:"action"`
	Detail    string    `db:"detail"`
	CreatedAt time.Time `db:"created_at"`
}
