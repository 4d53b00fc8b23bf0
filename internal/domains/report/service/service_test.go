package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	s3Mocks "frontdesk/infras/s3/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	paymentMocks "frontdesk/internal/domains/payment/mocks"
	paymentModel "frontdesk/internal/domains/payment/model"
	"frontdesk/internal/domains/report/model/dto"
	"frontdesk/internal/domains/report/service"
	staffMocks "frontdesk/internal/domains/staff/service/mocks"
	"frontdesk/shared/failure"
)

type reportMockSet struct {
	bookingRepo *bookingMocks.MockBooking
	paymentRepo *paymentMocks.MockPayment
	staff       *staffMocks.MockStaff
	storage     *s3Mocks.MockS3
}

func newReportService(t *testing.T) (service.Report, reportMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	set := reportMockSet{
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		paymentRepo: paymentMocks.NewMockPayment(ctrl),
		staff:       staffMocks.NewMockStaff(ctrl),
		storage:     s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.External.S3.ReportDirectory = "reports"

	svc := service.New(set.bookingRepo, set.paymentRepo, set.staff, set.storage, cfg, mocks.NewOtel())

	return svc, set
}

func float(v float64) *float64 {
	return &v
}

func reportFixtures() ([]bookingModel.Booking, []paymentModel.PaymentBreakdown) {
	bookings := []bookingModel.Booking{
		{
			ID:            "booking-1",
			BookingNumber: "BK-20260301-AAAAAA",
			GuestName:     "Asha Rao",
			Status:        bookingModel.StatusCheckedOut,
			CheckInDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			CheckOutDate:  time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
			TotalAmount:   3000,
		},
		{
			ID:            "booking-2",
			BookingNumber: "BK-20260302-BBBBBB",
			GuestName:     "Ravi Iyer",
			Status:        bookingModel.StatusCancelled,
			CheckInDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			CheckOutDate:  time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
			TotalAmount:   2000,
		},
	}

	payments := []paymentModel.PaymentBreakdown{
		{
			ID:          "payment-1",
			BookingID:   "booking-1",
			AdvanceCash: float(1000),
			ReceiptCard: float(500),
			TotalAmount: 3000,
		},
	}

	return bookings, payments
}

func TestReportService_Generate(t *testing.T) {
	t.Run("bookings report sums rows into the summary", func(t *testing.T) {
		svc, set := newReportService(t)

		bookings, payments := reportFixtures()

		set.bookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookings, nil)
		set.paymentRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(payments, nil)
		set.staff.EXPECT().RecordLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

		res, err := svc.Generate(context.Background(), service.ReportTypeBookings, dto.ReportRequest{
			FromDate: "2026-03-01",
			ToDate:   "2026-03-07",
		})

		assert.NoError(t, err)
		assert.Equal(t, service.ReportTypeBookings, res.ReportType)
		assert.Equal(t, "2026-03-01", res.FromDate)
		assert.Equal(t, "2026-03-07", res.ToDate)
		assert.Len(t, res.Rows, 2)

		first := res.Rows[0]
		assert.Equal(t, "BK-20260301-AAAAAA", first.BookingNumber)
		assert.Equal(t, "primary", first.Bucket)
		assert.Equal(t, 1000.0, first.AdvanceTotal)
		assert.Equal(t, 500.0, first.ReceiptTotal)
		assert.Equal(t, 1500.0, first.Outstanding)

		second := res.Rows[1]
		assert.Equal(t, "cancelled", second.Bucket)
		assert.Equal(t, 0.0, second.AdvanceTotal)

		assert.Equal(t, 2, res.Summary.TotalBookings)
		assert.Equal(t, 1, res.Summary.PrimaryCount)
		assert.Equal(t, 1, res.Summary.CancelledCount)
		assert.Equal(t, 3000.0, res.Summary.TotalRevenue)
		assert.Empty(t, res.ArchiveURL)
	})

	t.Run("revenue report reconciles per instrument", func(t *testing.T) {
		svc, set := newReportService(t)

		bookings, payments := reportFixtures()
		payments[0].ReceiptCash = float(250)
		payments[0].AdvanceUPI = float(100)

		set.bookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookings, nil)
		set.paymentRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(payments, nil)
		set.staff.EXPECT().RecordLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

		res, err := svc.Generate(context.Background(), service.ReportTypeRevenue, dto.ReportRequest{
			FromDate: "2026-03-01",
			ToDate:   "2026-03-07",
		})

		assert.NoError(t, err)
		if assert.NotNil(t, res.Summary.Instruments) {
			assert.Equal(t, 1250.0, res.Summary.Instruments.Cash)
			assert.Equal(t, 500.0, res.Summary.Instruments.Card)
			assert.Equal(t, 100.0, res.Summary.Instruments.UPI)
			assert.Equal(t, 0.0, res.Summary.Instruments.Bank)
		}
	})

	t.Run("non-revenue report carries no instrument summary", func(t *testing.T) {
		svc, set := newReportService(t)

		bookings, payments := reportFixtures()

		set.bookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookings, nil)
		set.paymentRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(payments, nil)
		set.staff.EXPECT().RecordLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

		res, err := svc.Generate(context.Background(), service.ReportTypeBookings, dto.ReportRequest{
			FromDate: "2026-03-01",
			ToDate:   "2026-03-07",
		})

		assert.NoError(t, err)
		assert.Nil(t, res.Summary.Instruments)
	})

	t.Run("archive uploads the rendered csv", func(t *testing.T) {
		svc, set := newReportService(t)

		bookings, payments := reportFixtures()

		set.bookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookings, nil)
		set.paymentRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(payments, nil)
		set.storage.EXPECT().UploadFileBytes(gomock.Any(), gomock.Any(), "reports", gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/reports/archive.csv", nil)
		set.staff.EXPECT().RecordLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

		res, err := svc.Generate(context.Background(), service.ReportTypeBookings, dto.ReportRequest{
			FromDate: "2026-03-01",
			ToDate:   "2026-03-07",
			Archive:  true,
		})

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/reports/archive.csv", res.ArchiveURL)
	})

	t.Run("unknown report type", func(t *testing.T) {
		svc, _ := newReportService(t)

		_, err := svc.Generate(context.Background(), "occupancy", dto.ReportRequest{
			FromDate: "2026-03-01",
			ToDate:   "2026-03-07",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("invalid from date", func(t *testing.T) {
		svc, _ := newReportService(t)

		_, err := svc.Generate(context.Background(), service.ReportTypeBookings, dto.ReportRequest{
			FromDate: "yesterday",
			ToDate:   "2026-03-07",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("inverted date range", func(t *testing.T) {
		svc, _ := newReportService(t)

		_, err := svc.Generate(context.Background(), service.ReportTypeBookings, dto.ReportRequest{
			FromDate: "2026-03-07",
			ToDate:   "2026-03-01",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("empty range yields an empty report", func(t *testing.T) {
		svc, set := newReportService(t)

		set.bookingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		set.staff.EXPECT().RecordLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

		res, err := svc.Generate(context.Background(), service.ReportTypeRevenue, dto.ReportRequest{
			FromDate: "2026-03-01",
			ToDate:   "2026-03-07",
		})

		assert.NoError(t, err)
		assert.Empty(t, res.Rows)
		assert.Equal(t, 0, res.Summary.TotalBookings)
	})
}

func TestReportService_RenderCSV(t *testing.T) {
	svc, _ := newReportService(t)

	report := dto.ReportResponse{
		ReportType: service.ReportTypeBookings,
		FromDate:   "2026-03-01",
		ToDate:     "2026-03-07",
		Rows: []dto.ReportRow{
			{
				BookingNumber: "BK-20260301-AAAAAA",
				GuestName:     "Asha Rao",
				Status:        bookingModel.StatusCheckedOut,
				Bucket:        "primary",
				CheckInDate:   "2026-03-01",
				CheckOutDate:  "2026-03-04",
				TotalAmount:   3000,
				AdvanceTotal:  1000,
				ReceiptTotal:  500,
				Outstanding:   1500,
			},
		},
	}

	data, err := svc.RenderCSV(report)
	assert.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 2)

	header := records[0]
	assert.Equal(t, "booking_number", header[0])
	assert.Equal(t, "outstanding", header[len(header)-1])

	row := records[1]
	assert.Equal(t, "BK-20260301-AAAAAA", row[0])
	assert.Equal(t, "Asha Rao", row[1])
	assert.Equal(t, "3000.00", row[8])
	assert.Equal(t, "1000.00", row[9])
	assert.Equal(t, "500.00", row[10])
	assert.Equal(t, "1500.00", row[11])
}
