package dto

import (
	"time"

	"frontdesk/internal/domains/billing"
)

// ReportRequest carries the raw query-string values. Dates accept both
// DD/MM/YYYY and ISO input.
type ReportRequest struct {
	FromDate string
	ToDate   string
	Format   string
	Archive  bool
}

type ReportRow struct {
	BookingNumber  string  `json:"booking_number"`
	GuestName      string  `json:"guest_name"`
	Status         string  `json:"status"`
	Bucket         string  `json:"bucket"`
	CheckInDate    string  `json:"check_in_date"`
	CheckOutDate   string  `json:"check_out_date"`
	ActualCheckIn  string  `json:"actual_check_in,omitempty"`
	ActualCheckOut string  `json:"actual_check_out,omitempty"`
	TotalAmount    float64 `json:"total_amount"`
	AdvanceTotal   float64 `json:"advance_total"`
	ReceiptTotal   float64 `json:"receipt_total"`
	Outstanding    float64 `json:"outstanding"`
}

type ReportSummary struct {
	TotalBookings    int     `json:"total_bookings"`
	PrimaryCount     int     `json:"primary_count"`
	CancelledCount   int     `json:"cancelled_count"`
	NoShowCount      int     `json:"no_show_count"`
	PendingCount     int     `json:"pending_count"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalCollected   float64 `json:"total_collected"`
	TotalOutstanding float64 `json:"total_outstanding"`

	// Instruments is only populated on the revenue report, where collected
	// money is reconciled per payment instrument.
	Instruments *billing.InstrumentTotals `json:"instruments,omitempty"`
}

func (s *ReportSummary) Accumulate(row ReportRow) {
	s.TotalBookings++

	switch billing.Bucket(row.Bucket) {
	case billing.BucketCancelled:
		s.CancelledCount++
	case billing.BucketNoShow:
		s.NoShowCount++
	case billing.BucketPending:
		s.PendingCount++
	default:
		s.PrimaryCount++
		s.TotalRevenue += row.TotalAmount
	}

	s.TotalCollected += row.AdvanceTotal + row.ReceiptTotal
	s.TotalOutstanding += row.Outstanding
}

type ReportResponse struct {
	ReportType string        `json:"report_type"`
	FromDate   string        `json:"from_date"`
	ToDate     string        `json:"to_date"`
	Rows       []ReportRow   `json:"rows"`
	Summary    ReportSummary `json:"summary"`
	ArchiveURL string        `json:"archive_url,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
}
