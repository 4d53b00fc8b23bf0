package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/infras/s3"
	"frontdesk/internal/domains/billing"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	paymentModel "frontdesk/internal/domains/payment/model"
	paymentDto "frontdesk/internal/domains/payment/model/dto"
	paymentRepo "frontdesk/internal/domains/payment/repository"
	"frontdesk/internal/domains/report/model/dto"
	staffModel "frontdesk/internal/domains/staff/model"
	staffService "frontdesk/internal/domains/staff/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

const (
	ReportTypeBookings  = "bookings"
	ReportTypeCheckIns  = "check_ins"
	ReportTypeCheckOuts = "check_outs"
	ReportTypeRevenue   = "revenue"
)

var csvHeader = []string{
	"booking_number", "guest_name", "status", "bucket",
	"check_in_date", "check_out_date", "actual_check_in", "actual_check_out",
	"total_amount", "advance_total", "receipt_total", "outstanding",
}

type Report interface {
	Generate(ctx context.Context, reportType string, req dto.ReportRequest) (dto.ReportResponse, error)
	RenderCSV(report dto.ReportResponse) ([]byte, error)
}

type serviceImpl struct {
	bookingRepo  bookingRepo.Booking
	paymentRepo  paymentRepo.Payment
	staffService staffService.Staff
	storage      s3.S3
	cfg          *config.Config
	otel         otel.Otel
}

func New(bookingRepo bookingRepo.Booking, paymentRepo paymentRepo.Payment, staffService staffService.Staff, storage s3.S3, cfg *config.Config, otel otel.Otel) Report {
	return &serviceImpl{
		bookingRepo:  bookingRepo,
		paymentRepo:  paymentRepo,
		staffService: staffService,
		storage:      storage,
		cfg:          cfg,
		otel:         otel,
	}
}

// dateField returns the booking column a report type ranges over.
func dateField(reportType string) (string, error) {
	switch reportType {
	case ReportTypeBookings, ReportTypeRevenue:
		return bookingModel.FieldCheckInDate, nil
	case ReportTypeCheckIns:
		return bookingModel.FieldActualCheckIn, nil
	case ReportTypeCheckOuts:
		return bookingModel.FieldActualCheckOut, nil
	default:
		return "", failure.BadRequestFromString(fmt.Sprintf("unknown report type %q", reportType)) // nolint:wrapcheck
	}
}

func (s *serviceImpl) Generate(ctx context.Context, reportType string, req dto.ReportRequest) (res dto.ReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Generate")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("report_type", reportType)

	field, err := dateField(reportType)
	if err != nil {
		return res, err
	}

	from, err := shared.ParseFlexibleDate(req.FromDate)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid from_date: %v", err)) // nolint:wrapcheck
	}

	to, err := shared.ParseFlexibleDate(req.ToDate)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid to_date: %v", err)) // nolint:wrapcheck
	}

	if to.Before(from) {
		return res, failure.BadRequestFromString("to_date must not be before from_date") // nolint:wrapcheck
	}

	filter := shared.DateRangeFilter(field, bookingModel.TableName, from, to)

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s.%s", bookingModel.TableName, field),
		SortDir: "ASC",
	}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for report")

		return res, fmt.Errorf("failed to get bookings for report: %w", err)
	}

	payments, err := s.paymentsByBooking(ctx, bookings)
	if err != nil {
		return res, err
	}

	res.ReportType = reportType
	res.FromDate = from.Format(constant.DateOnlyFormat)
	res.ToDate = to.Format(constant.DateOnlyFormat)
	res.GeneratedAt = timezone.Now()
	res.Rows = make([]dto.ReportRow, 0, len(bookings))

	for _, booking := range bookings {
		row := buildRow(booking, payments[booking.ID])
		res.Summary.Accumulate(row)
		res.Rows = append(res.Rows, row)
	}

	// The revenue report reconciles what was collected per instrument.
	if reportType == ReportTypeRevenue {
		instruments := billing.InstrumentTotals{}
		for _, booking := range bookings {
			instruments = instruments.Add(billing.PaymentInstruments(paymentDto.ToBillingBreakdown(payments[booking.ID])))
		}

		res.Summary.Instruments = &instruments
	}

	if req.Archive {
		url, err := s.archive(ctx, res)
		if err != nil {
			log.Error().Err(err).Msg("failed to archive report")

			return res, fmt.Errorf("failed to archive report: %w", err)
		}

		res.ArchiveURL = url
	}

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)
	s.staffService.RecordLog(ctx, staff, staffModel.ActionReportGenerate,
		fmt.Sprintf("%s report generated for %s to %s", reportType, res.FromDate, res.ToDate))

	return res, nil
}

func (s *serviceImpl) paymentsByBooking(ctx context.Context, bookings []bookingModel.Booking) (map[string]paymentModel.PaymentBreakdown, error) {
	result := make(map[string]paymentModel.PaymentBreakdown, len(bookings))
	if len(bookings) == 0 {
		return result, nil
	}

	ids := make([]string, len(bookings))
	for i, booking := range bookings {
		ids[i] = booking.ID
	}

	rows, err := s.paymentRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{gDto.Filter{
			Table:    paymentModel.TableName,
			Field:    paymentModel.FieldBookingID,
			Operator: gDto.FilterOperatorIn,
			Value:    ids,
		}},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments for report")

		return result, fmt.Errorf("failed to get payments for report: %w", err)
	}

	for _, row := range rows {
		result[row.BookingID] = row
	}

	return result, nil
}

func buildRow(booking bookingModel.Booking, payment paymentModel.PaymentBreakdown) dto.ReportRow {
	totals := billing.PaymentTotals(paymentDto.ToBillingBreakdown(payment))

	row := dto.ReportRow{
		BookingNumber: booking.BookingNumber,
		GuestName:     booking.GuestName,
		Status:        booking.Status,
		Bucket:        string(billing.ClassifyStatus(booking.Status)),
		CheckInDate:   booking.CheckInDate.Format(constant.DateOnlyFormat),
		CheckOutDate:  booking.CheckOutDate.Format(constant.DateOnlyFormat),
		TotalAmount:   booking.TotalAmount,
		AdvanceTotal:  totals.AdvanceTotal,
		ReceiptTotal:  totals.ReceiptTotal,
		Outstanding:   totals.Outstanding,
	}

	if booking.ActualCheckIn != nil {
		row.ActualCheckIn = booking.ActualCheckIn.Format(constant.DateFormat)
	}

	if booking.ActualCheckOut != nil {
		row.ActualCheckOut = booking.ActualCheckOut.Format(constant.DateFormat)
	}

	return row
}

func (s *serviceImpl) RenderCSV(report dto.ReportResponse) ([]byte, error) {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range report.Rows {
		record := []string{
			row.BookingNumber,
			row.GuestName,
			row.Status,
			row.Bucket,
			row.CheckInDate,
			row.CheckOutDate,
			row.ActualCheckIn,
			row.ActualCheckOut,
			strconv.FormatFloat(row.TotalAmount, 'f', 2, 64),
			strconv.FormatFloat(row.AdvanceTotal, 'f', 2, 64),
			strconv.FormatFloat(row.ReceiptTotal, 'f', 2, 64),
			strconv.FormatFloat(row.Outstanding, 'f', 2, 64),
		}

		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *serviceImpl) archive(ctx context.Context, report dto.ReportResponse) (string, error) {
	data, err := s.RenderCSV(report)
	if err != nil {
		return constant.Empty, err
	}

	fileName := fmt.Sprintf("%s_%s_%s_%d.csv", report.ReportType, report.FromDate, report.ToDate, time.Now().Unix())

	url, err := s.storage.UploadFileBytes(
		ctx,
		constant.Empty,
		s.cfg.External.S3.ReportDirectory,
		fileName,
		constant.ContentTypeCSV,
		data,
	)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to upload report archive: %w", err)
	}

	return url, nil
}
