package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/billing"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	guestMocks "frontdesk/internal/domains/guest/mocks"
	housekeepingMocks "frontdesk/internal/domains/housekeeping/service/mocks"
	notificationMocks "frontdesk/internal/domains/notification/service/mocks"
	paymentMocks "frontdesk/internal/domains/payment/service/mocks"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	staffMocks "frontdesk/internal/domains/staff/service/mocks"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

type bookingMockSet struct {
	repo         *bookingMocks.MockBooking
	legRepo      *bookingMocks.MockBookingRoom
	guestRepo    *guestMocks.MockGuest
	roomRepo     *roomMocks.MockRoom
	payment      *paymentMocks.MockPayment
	housekeeping *housekeepingMocks.MockHousekeeping
	notifier     *notificationMocks.MockNotifier
	staff        *staffMocks.MockStaff
	cache        *cacheMocks.MockRedisCache
}

func newBookingService(t *testing.T) (service.Booking, bookingMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	set := bookingMockSet{
		repo:         bookingMocks.NewMockBooking(ctrl),
		legRepo:      bookingMocks.NewMockBookingRoom(ctrl),
		guestRepo:    guestMocks.NewMockGuest(ctrl),
		roomRepo:     roomMocks.NewMockRoom(ctrl),
		payment:      paymentMocks.NewMockPayment(ctrl),
		housekeeping: housekeepingMocks.NewMockHousekeeping(ctrl),
		notifier:     notificationMocks.NewMockNotifier(ctrl),
		staff:        staffMocks.NewMockStaff(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	// Cache invalidation runs on a background goroutine after each write.
	set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Hotel.BookingNumberPrefix = "BK"
	cfg.Hotel.NoShowGraceHours = 2
	cfg.Cache.TTL = 60

	svc := service.New(
		set.repo,
		set.legRepo,
		set.guestRepo,
		set.roomRepo,
		set.payment,
		set.housekeeping,
		set.notifier,
		set.staff,
		cfg,
		set.cache,
		mocks.NewOtel(),
	)

	return svc, set
}

func TestBookingService_Create(t *testing.T) {
	availableRoom := roomModel.Room{
		ID:         "room-1",
		RoomNumber: "101",
		Status:     roomModel.StatusAvailable,
		BaseRate:   1500,
	}

	tests := []struct {
		name       string
		req        dto.CreateBookingRequest
		setupMock  func(set bookingMockSet)
		wantErr    bool
		wantCode   int
		wantAmount float64
	}{
		{
			name: "successful booking",
			req: dto.CreateBookingRequest{
				GuestID:      "guest-1",
				RoomIDs:      []string{"room-1"},
				CheckInDate:  "2026-03-01",
				CheckOutDate: "2026-03-04",
			},
			setupMock: func(set bookingMockSet) {
				set.guestRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom, nil)
				set.legRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
				set.repo.EXPECT().CreateWithRooms(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				set.payment.EXPECT().EnsureBreakdown(gomock.Any(), gomock.Any(), 4500.0).Return(nil)
				set.staff.EXPECT().RecordLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
				set.notifier.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantAmount: 4500,
		},
		{
			name: "invalid check-in date",
			req: dto.CreateBookingRequest{
				GuestID:      "guest-1",
				RoomIDs:      []string{"room-1"},
				CheckInDate:  "not-a-date",
				CheckOutDate: "2026-03-04",
			},
			setupMock: func(set bookingMockSet) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "zero night stay",
			req: dto.CreateBookingRequest{
				GuestID:      "guest-1",
				RoomIDs:      []string{"room-1"},
				CheckInDate:  "2026-03-01",
				CheckOutDate: "2026-03-01",
			},
			setupMock: func(set bookingMockSet) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown guest",
			req: dto.CreateBookingRequest{
				GuestID:      "guest-404",
				RoomIDs:      []string{"room-1"},
				CheckInDate:  "2026-03-01",
				CheckOutDate: "2026-03-04",
			},
			setupMock: func(set bookingMockSet) {
				set.guestRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "room under maintenance",
			req: dto.CreateBookingRequest{
				GuestID:      "guest-1",
				RoomIDs:      []string{"room-1"},
				CheckInDate:  "2026-03-01",
				CheckOutDate: "2026-03-04",
			},
			setupMock: func(set bookingMockSet) {
				maintenance := availableRoom
				maintenance.Status = roomModel.StatusMaintenance

				set.guestRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(maintenance, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "overlapping dates",
			req: dto.CreateBookingRequest{
				GuestID:      "guest-1",
				RoomIDs:      []string{"room-1"},
				CheckInDate:  "2026-03-01",
				CheckOutDate: "2026-03-04",
			},
			setupMock: func(set bookingMockSet) {
				set.guestRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				set.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom, nil)
				set.legRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newBookingService(t)
			tt.setupMock(set)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Contains(t, res.BookingNumber, "BK-")
			assert.Equal(t, model.StatusReserved, res.Status)
			assert.Equal(t, tt.wantAmount, res.TotalAmount)
			assert.Len(t, res.Rooms, 1)
		})
	}
}

func TestBookingService_CheckIn(t *testing.T) {
	reserved := model.Booking{
		ID:            "booking-1",
		BookingNumber: "BK-20260301-ABCDEF",
		GuestID:       "guest-1",
		Status:        model.StatusReserved,
		TotalAmount:   4500,
	}

	legs := []model.BookingRoom{
		{ID: "leg-1", BookingID: "booking-1", RoomID: "room-1", Status: model.StatusReserved},
		{ID: "leg-2", BookingID: "booking-1", RoomID: "room-2", Status: model.StatusReserved},
	}

	t.Run("successful check-in", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reserved, nil)
		set.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		set.legRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(legs, nil)
		set.legRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		set.roomRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		set.staff.EXPECT().RecordLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
		set.notifier.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any(), gomock.Any())

		res, err := svc.CheckIn(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, model.StatusCheckedIn, res.Booking.Status)
		assert.Empty(t, res.FailedRooms)
	})

	t.Run("room failure is collected, not fatal", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reserved, nil)
		set.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		set.legRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(legs, nil)
		gomock.InOrder(
			set.legRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError),
			set.legRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		)
		set.roomRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		set.staff.EXPECT().RecordLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
		set.notifier.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any(), gomock.Any())

		res, err := svc.CheckIn(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Len(t, res.FailedRooms, 1)
		assert.Equal(t, "room-1", res.FailedRooms[0].RoomID)
	})

	t.Run("already checked in", func(t *testing.T) {
		svc, set := newBookingService(t)

		checkedIn := reserved
		checkedIn.Status = model.StatusCheckedIn

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedIn, nil)

		_, err := svc.CheckIn(context.Background(), "booking-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("booking not found", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.CheckIn(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_Checkout(t *testing.T) {
	checkedIn := model.Booking{
		ID:            "booking-1",
		BookingNumber: "BK-20260301-ABCDEF",
		GuestID:       "guest-1",
		Status:        model.StatusCheckedIn,
		CheckInDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate:  time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		TotalAmount:   3000,
	}

	// The service mutates the slice returned by GetAll, so each subtest gets a
	// fresh copy to avoid cross-subtest pollution.
	legs := func() []model.BookingRoom {
		return []model.BookingRoom{
			{ID: "leg-1", BookingID: "booking-1", RoomID: "room-1", Status: model.StatusCheckedIn},
		}
	}

	t.Run("on-time checkout has no adjustment", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedIn, nil)
		set.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		set.legRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(legs(), nil)
		set.legRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		set.roomRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		set.housekeeping.EXPECT().EnqueueCheckoutCleaning(gomock.Any(), "room-1", "booking-1")
		set.payment.EXPECT().ApplyAdjustment(gomock.Any(), "booking-1", 0.0, 3000.0).Return(nil)
		set.staff.EXPECT().RecordLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
		set.notifier.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any(), gomock.Any())

		res, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
			ActualCheckOut: "2026-03-04",
		}, "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, billing.AdjustmentNone, res.Proration.Kind)
		assert.Equal(t, 3000.0, res.Proration.FinalAmount)
		assert.Equal(t, model.StatusCheckedOut, res.Booking.Status)
	})

	t.Run("omitted checkout date defaults to today without a late charge", func(t *testing.T) {
		svc, set := newBookingService(t)

		now := timezone.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

		onSchedule := checkedIn
		onSchedule.CheckInDate = today.AddDate(0, 0, -3)
		onSchedule.CheckOutDate = today

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(onSchedule, nil)
		set.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		set.legRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(legs(), nil)
		set.legRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		set.roomRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		set.housekeeping.EXPECT().EnqueueCheckoutCleaning(gomock.Any(), "room-1", "booking-1")
		set.payment.EXPECT().ApplyAdjustment(gomock.Any(), "booking-1", 0.0, 3000.0).Return(nil)
		set.staff.EXPECT().RecordLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
		set.notifier.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any(), gomock.Any())

		res, err := svc.Checkout(context.Background(), dto.CheckoutRequest{}, "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, billing.AdjustmentNone, res.Proration.Kind)
		assert.Equal(t, 0.0, res.Proration.Adjustment)
		assert.Equal(t, 3000.0, res.Proration.FinalAmount)
	})

	t.Run("early checkout without reason is rejected", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedIn, nil)

		_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
			ActualCheckOut: "2026-03-03",
		}, "booking-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("early checkout refunds unused nights", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedIn, nil)
		set.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		set.legRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(legs(), nil)
		set.legRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		set.roomRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		set.housekeeping.EXPECT().EnqueueCheckoutCleaning(gomock.Any(), "room-1", "booking-1")
		set.payment.EXPECT().ApplyAdjustment(gomock.Any(), "booking-1", -1000.0, 2000.0).Return(nil)
		set.staff.EXPECT().RecordLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
		set.notifier.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any(), gomock.Any())

		res, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
			ActualCheckOut: "2026-03-03",
			Reason:         "guest left a day early",
		}, "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, billing.AdjustmentRefund, res.Proration.Kind)
		assert.Equal(t, -1000.0, res.Proration.Adjustment)
		assert.Equal(t, 2000.0, res.Proration.FinalAmount)
	})

	t.Run("checkout requires checked-in status", func(t *testing.T) {
		svc, set := newBookingService(t)

		reserved := checkedIn
		reserved.Status = model.StatusReserved

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reserved, nil)

		_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{}, "booking-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestBookingService_Update(t *testing.T) {
	reserved := model.Booking{
		ID:            "booking-1",
		BookingNumber: "BK-20260301-ABCDEF",
		GuestID:       "guest-1",
		Status:        model.StatusReserved,
	}

	t.Run("reserved booking is confirmed", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reserved, nil)
		set.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusConfirmed, fields[model.FieldStatus])

				return nil
			})
		set.legRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		set.staff.EXPECT().RecordLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

		err := svc.Update(context.Background(), dto.UpdateBookingRequest{Status: model.StatusConfirmed}, "booking-1")

		assert.NoError(t, err)
	})

	t.Run("checked-in booking cannot be moved back", func(t *testing.T) {
		svc, set := newBookingService(t)

		checkedIn := reserved
		checkedIn.Status = model.StatusCheckedIn

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedIn, nil)

		err := svc.Update(context.Background(), dto.UpdateBookingRequest{Status: model.StatusReserved}, "booking-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("booking not found", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		err := svc.Update(context.Background(), dto.UpdateBookingRequest{Status: model.StatusConfirmed}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_Cancel(t *testing.T) {
	reserved := model.Booking{
		ID:            "booking-1",
		BookingNumber: "BK-20260301-ABCDEF",
		GuestID:       "guest-1",
		Status:        model.StatusReserved,
	}

	t.Run("successful cancel", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reserved, nil)
		set.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		set.legRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		set.staff.EXPECT().RecordLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
		set.notifier.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any(), gomock.Any())

		err := svc.Cancel(context.Background(), dto.CancelBookingRequest{Reason: "plans changed"}, "booking-1")

		assert.NoError(t, err)
	})

	t.Run("cannot cancel a checked-out booking", func(t *testing.T) {
		svc, set := newBookingService(t)

		checkedOut := reserved
		checkedOut.Status = model.StatusCheckedOut

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(checkedOut, nil)

		err := svc.Cancel(context.Background(), dto.CancelBookingRequest{Reason: "too late"}, "booking-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestBookingService_NoShow(t *testing.T) {
	t.Run("rejected inside the grace period", func(t *testing.T) {
		svc, set := newBookingService(t)

		booking := model.Booking{
			ID:          "booking-1",
			Status:      model.StatusReserved,
			CheckInDate: time.Now().Add(-1 * time.Hour),
		}

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)

		err := svc.NoShow(context.Background(), "booking-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("allowed once the grace period has passed", func(t *testing.T) {
		svc, set := newBookingService(t)

		booking := model.Booking{
			ID:            "booking-1",
			BookingNumber: "BK-20260301-ABCDEF",
			Status:        model.StatusReserved,
			CheckInDate:   time.Now().Add(-26 * time.Hour),
		}

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		set.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		set.legRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		set.staff.EXPECT().RecordLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
		set.notifier.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any(), gomock.Any())

		err := svc.NoShow(context.Background(), "booking-1")

		assert.NoError(t, err)
	})
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("live booking cannot be deleted", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{
			ID:     "booking-1",
			Status: model.StatusReserved,
		}, nil)

		err := svc.Delete(context.Background(), "booking-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("cancelled booking is deleted with its legs", func(t *testing.T) {
		svc, set := newBookingService(t)

		set.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{
			ID:     "booking-1",
			Status: model.StatusCancelled,
		}, nil)
		set.legRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		set.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), "booking-1")

		assert.NoError(t, err)
	})
}
