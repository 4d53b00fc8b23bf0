package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/billing"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/repository"
	guestModel "frontdesk/internal/domains/guest/model"
	guestRepo "frontdesk/internal/domains/guest/repository"
	housekeepingService "frontdesk/internal/domains/housekeeping/service"
	notificationModel "frontdesk/internal/domains/notification/model"
	notificationService "frontdesk/internal/domains/notification/service"
	paymentService "frontdesk/internal/domains/payment/service"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	staffModel "frontdesk/internal/domains/staff/model"
	staffService "frontdesk/internal/domains/staff/service"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	CheckIn(ctx context.Context, id string) (dto.CheckInResponse, error)
	Checkout(ctx context.Context, req dto.CheckoutRequest, id string) (dto.CheckoutResponse, error)
	Cancel(ctx context.Context, req dto.CancelBookingRequest, id string) error
	NoShow(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Booking
	roomLegRepo  repository.BookingRoom
	guestRepo    guestRepo.Guest
	roomRepo     roomRepo.Room
	payment      paymentService.Payment
	housekeeping housekeepingService.Housekeeping
	notifier     notificationService.Notifier
	staffService staffService.Staff
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	roomLegRepo repository.BookingRoom,
	guestRepo guestRepo.Guest,
	roomRepo roomRepo.Room,
	payment paymentService.Payment,
	housekeeping housekeepingService.Housekeeping,
	notifier notificationService.Notifier,
	staffService staffService.Staff,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomLegRepo:  roomLegRepo,
		guestRepo:    guestRepo,
		roomRepo:     roomRepo,
		payment:      payment,
		housekeeping: housekeeping,
		notifier:     notifier,
		staffService: staffService,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, id string) {
	c := context.WithoutCancel(ctx)

	if id != constant.Empty {
		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}
	}

	shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(c, s.cache, cacheCountBooking)
}

func (s *serviceImpl) newBookingNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])

	return fmt.Sprintf("%s-%s-%s", s.cfg.Hotel.BookingNumberPrefix, timezone.Now().Format("20060102"), suffix)
}

// roomOverlapFilter matches live legs of a room whose dates intersect the
// requested stay. Same-day turnover is allowed: a leg checking out on the
// new check-in day does not overlap.
func roomOverlapFilter(roomID string, checkIn, checkOut time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.BookingRoomTableName,
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
			},
			gDto.Filter{
				Table:    model.BookingRoomTableName,
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{model.StatusPending, model.StatusReserved, model.StatusConfirmed, model.StatusCheckedIn},
			},
			gDto.Filter{
				Table:    model.BookingRoomTableName,
				Field:    model.FieldCheckInDate,
				Operator: gDto.FilterOperatorLess,
				ArgName:  "overlap_check_out",
				Value:    checkOut,
			},
			gDto.Filter{
				Table:    model.BookingRoomTableName,
				Field:    model.FieldCheckOutDate,
				Operator: gDto.FilterOperatorGreater,
				ArgName:  "overlap_check_in",
				Value:    checkIn,
			},
		},
	}
}

func legsByBookingFilter(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{gDto.Filter{
			Table:    model.BookingRoomTableName,
			Field:    model.FieldBookingID,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingID,
		}},
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	checkIn, err := shared.ParseFlexibleDate(req.CheckInDate)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid check-in date: %v", err)) // nolint:wrapcheck
	}

	checkOut, err := shared.ParseFlexibleDate(req.CheckOutDate)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid check-out date: %v", err)) // nolint:wrapcheck
	}

	nights := billing.StayDays(checkIn, checkOut)
	if nights <= 0 {
		return res, failure.BadRequestFromString("stay must be at least one night") // nolint:wrapcheck
	}

	guestExists, err := s.guestRepo.Exist(ctx, shared.FilterByID(req.GuestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return res, fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !guestExists {
		return res, failure.BadRequestFromString("guest does not exist") // nolint:wrapcheck
	}

	status := model.StatusReserved
	if req.Status != constant.Empty {
		status = req.Status
	}

	bookingID := uuid.NewString()
	now := timezone.Now()

	legs := make([]model.BookingRoom, 0, len(req.RoomIDs))
	total := 0.0

	for _, roomID := range req.RoomIDs {
		room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			log.Error().Err(err).Str("room_id", roomID).Msg("failed to get room")

			return res, fmt.Errorf("failed to get room: %w", err)
		}

		if room.ID == constant.Empty {
			return res, failure.BadRequestFromString(fmt.Sprintf("room %s does not exist", roomID)) // nolint:wrapcheck
		}

		if room.Status == roomModel.StatusMaintenance {
			return res, failure.Conflict(fmt.Sprintf("room %s is under maintenance", room.RoomNumber)) // nolint:wrapcheck
		}

		overlapping, err := s.roomLegRepo.Count(ctx, roomOverlapFilter(roomID, checkIn, checkOut))
		if err != nil {
			log.Error().Err(err).Str("room_id", roomID).Msg("failed to check room availability")

			return res, fmt.Errorf("failed to check room availability: %w", err)
		}

		if overlapping > 0 {
			return res, failure.Conflict(fmt.Sprintf("room %s is already booked for those dates", room.RoomNumber)) // nolint:wrapcheck
		}

		legTotal := room.BaseRate * float64(nights)
		total += legTotal

		legs = append(legs, model.BookingRoom{
			ID:           uuid.NewString(),
			BookingID:    bookingID,
			RoomID:       roomID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			Status:       status,
			Rate:         room.BaseRate,
			Nights:       nights,
			Total:        legTotal,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  staff,
				ModifiedBy: staff,
			},
		})
	}

	booking := model.Booking{
		ID:            bookingID,
		BookingNumber: s.newBookingNumber(),
		GuestID:       req.GuestID,
		StaffID:       staff,
		Status:        status,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		TotalAmount:   total,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  staff,
			ModifiedBy: staff,
		},
	}

	if err = s.repo.CreateWithRooms(ctx, booking, legs); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = s.payment.EnsureBreakdown(ctx, bookingID, total); err != nil {
		log.Error().Err(err).Msg("failed to create payment breakdown for booking")

		return res, fmt.Errorf("failed to create payment breakdown: %w", err)
	}

	s.staffService.RecordLog(ctx, staff, staffModel.ActionBookingCreate, fmt.Sprintf("booking %s created", booking.BookingNumber))
	s.notifier.PublishBookingEvent(ctx, notificationModel.EventBookingCreated, notificationModel.BookingEvent{
		BookingID:     bookingID,
		BookingNumber: booking.BookingNumber,
		GuestID:       booking.GuestID,
		Status:        booking.Status,
		TotalAmount:   total,
	})

	res.FromModel(booking)
	res.AttachRooms(legs)

	go s.invalidateBookingCaches(ctx, constant.Empty)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	legs, err := s.roomLegRepo.GetAll(ctx, gDto.QueryParams{}, legsByBookingFilter(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking rooms")

		return res, fmt.Errorf("failed to get booking rooms: %w", err)
	}

	res.FromModel(booking)
	res.AttachRooms(legs)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Update moves a booking between its pre-arrival statuses, typically to
// confirm a reservation. Check-in and later transitions have their own
// operations.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	booking, err := s.getForTransition(ctx, id, model.StatusPending, model.StatusReserved, model.StatusConfirmed)
	if err != nil {
		return err
	}

	now := timezone.Now()

	fields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedBy: staff,
		constant.FieldModifiedAt: now,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	if err = s.roomLegRepo.Update(ctx, fields, legsByBookingFilter(id)); err != nil {
		log.Error().Err(err).Msg("failed to update booking rooms")

		return fmt.Errorf("failed to update booking rooms: %w", err)
	}

	s.staffService.RecordLog(ctx, staff, staffModel.ActionBookingUpdate, fmt.Sprintf("booking %s moved to %s", booking.BookingNumber, req.Status))

	go s.invalidateBookingCaches(ctx, id)

	return nil
}

func (s *serviceImpl) getForTransition(ctx context.Context, id string, allowed ...string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	for _, status := range allowed {
		if booking.Status == status {
			return booking, nil
		}
	}

	return booking, failure.Conflict(fmt.Sprintf("booking is %s", booking.Status)) // nolint:wrapcheck
}

func (s *serviceImpl) CheckIn(ctx context.Context, id string) (res dto.CheckInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	booking, err := s.getForTransition(ctx, id, model.StatusPending, model.StatusReserved, model.StatusConfirmed)
	if err != nil {
		return res, err
	}

	now := timezone.Now()
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	fields := map[string]any{
		model.FieldStatus:        model.StatusCheckedIn,
		model.FieldActualCheckIn: now,
		constant.FieldModifiedBy: staff,
		constant.FieldModifiedAt: now,
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to check in booking")

		return res, fmt.Errorf("failed to check in booking: %w", err)
	}

	legs, err := s.roomLegRepo.GetAll(ctx, gDto.QueryParams{}, legsByBookingFilter(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking rooms")

		return res, fmt.Errorf("failed to get booking rooms: %w", err)
	}

	for i := range legs {
		leg := &legs[i]
		if leg.Status == model.StatusCancelled {
			continue
		}

		legFields := map[string]any{
			model.FieldStatus:        model.StatusCheckedIn,
			model.FieldActualCheckIn: now,
			constant.FieldModifiedBy: staff,
			constant.FieldModifiedAt: now,
		}

		if err := s.roomLegRepo.Update(ctx, legFields, shared.FilterByID(leg.ID, model.FieldBookingRoomID, model.BookingRoomTableName)); err != nil {
			log.Error().Err(err).Str("room_id", leg.RoomID).Msg("failed to check in booking room")
			res.FailedRooms = append(res.FailedRooms, dto.RoomFailure{RoomID: leg.RoomID, Error: err.Error()})

			continue
		}

		roomFields := map[string]any{
			roomModel.FieldStatus:    roomModel.StatusOccupied,
			constant.FieldModifiedBy: staff,
			constant.FieldModifiedAt: now,
		}

		if err := s.roomRepo.Update(ctx, roomFields, shared.FilterByID(leg.RoomID, roomModel.FieldID, roomModel.TableName)); err != nil {
			log.Error().Err(err).Str("room_id", leg.RoomID).Msg("failed to mark room occupied")
			res.FailedRooms = append(res.FailedRooms, dto.RoomFailure{RoomID: leg.RoomID, Error: err.Error()})
		}

		leg.Status = model.StatusCheckedIn
		leg.ActualCheckIn = &now
	}

	booking.Status = model.StatusCheckedIn
	booking.ActualCheckIn = &now

	s.staffService.RecordLog(ctx, staff, staffModel.ActionCheckIn, fmt.Sprintf("booking %s checked in", booking.BookingNumber))
	s.notifier.PublishBookingEvent(ctx, notificationModel.EventBookingCheckedIn, notificationModel.BookingEvent{
		BookingID:     booking.ID,
		BookingNumber: booking.BookingNumber,
		GuestID:       booking.GuestID,
		Status:        booking.Status,
		TotalAmount:   booking.TotalAmount,
	})

	res.Booking.FromModel(booking)
	res.Booking.AttachRooms(legs)

	go s.invalidateBookingCaches(ctx, id)

	return res, nil
}

// Checkout settles a stay: the bill is re-rated against the actual checkout
// date, rooms go to cleaning, and a housekeeping task is raised per room.
// Individual room failures are collected rather than aborting the whole
// checkout.
func (s *serviceImpl) Checkout(ctx context.Context, req dto.CheckoutRequest, id string) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	booking, err := s.getForTransition(ctx, id, model.StatusCheckedIn)
	if err != nil {
		return res, err
	}

	now := timezone.Now()

	actualOut, err := req.ParseActualCheckout(now)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid actual checkout date: %v", err)) // nolint:wrapcheck
	}

	proration, err := billing.Prorate(booking.CheckInDate, booking.CheckOutDate, actualOut, booking.TotalAmount)
	if err != nil {
		return res, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	if proration.Kind == billing.AdjustmentRefund && req.Reason == constant.Empty {
		return res, failure.BadRequestFromString("early checkout requires a reason") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	fields := map[string]any{
		model.FieldStatus:         model.StatusCheckedOut,
		model.FieldActualCheckOut: actualOut,
		model.FieldTotalAmount:    proration.FinalAmount,
		constant.FieldModifiedBy:  staff,
		constant.FieldModifiedAt:  now,
	}

	if proration.Kind == billing.AdjustmentRefund {
		fields[model.FieldEarlyCheckoutReason] = req.Reason
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to check out booking")

		return res, fmt.Errorf("failed to check out booking: %w", err)
	}

	legs, err := s.roomLegRepo.GetAll(ctx, gDto.QueryParams{}, legsByBookingFilter(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking rooms")

		return res, fmt.Errorf("failed to get booking rooms: %w", err)
	}

	for i := range legs {
		leg := &legs[i]
		if leg.Status == model.StatusCancelled || leg.Status == model.StatusCheckedOut {
			continue
		}

		legFields := map[string]any{
			model.FieldStatus:         model.StatusCheckedOut,
			model.FieldActualCheckOut: actualOut,
			constant.FieldModifiedBy:  staff,
			constant.FieldModifiedAt:  now,
		}

		if err := s.roomLegRepo.Update(ctx, legFields, shared.FilterByID(leg.ID, model.FieldBookingRoomID, model.BookingRoomTableName)); err != nil {
			log.Error().Err(err).Str("room_id", leg.RoomID).Msg("failed to check out booking room")
			res.FailedRooms = append(res.FailedRooms, dto.RoomFailure{RoomID: leg.RoomID, Error: err.Error()})

			continue
		}

		roomFields := map[string]any{
			roomModel.FieldStatus:    roomModel.StatusCleaning,
			constant.FieldModifiedBy: staff,
			constant.FieldModifiedAt: now,
		}

		if err := s.roomRepo.Update(ctx, roomFields, shared.FilterByID(leg.RoomID, roomModel.FieldID, roomModel.TableName)); err != nil {
			log.Error().Err(err).Str("room_id", leg.RoomID).Msg("failed to mark room cleaning")
			res.FailedRooms = append(res.FailedRooms, dto.RoomFailure{RoomID: leg.RoomID, Error: err.Error()})

			continue
		}

		s.housekeeping.EnqueueCheckoutCleaning(ctx, leg.RoomID, id)

		leg.Status = model.StatusCheckedOut
		leg.ActualCheckOut = &actualOut
	}

	if err = s.payment.ApplyAdjustment(ctx, id, proration.Adjustment, proration.FinalAmount); err != nil {
		log.Error().Err(err).Msg("failed to apply checkout price adjustment")

		return res, fmt.Errorf("failed to apply checkout price adjustment: %w", err)
	}

	booking.Status = model.StatusCheckedOut
	booking.ActualCheckOut = &actualOut
	booking.TotalAmount = proration.FinalAmount

	if proration.Kind == billing.AdjustmentRefund {
		booking.EarlyCheckoutReason = &req.Reason
	}

	s.staffService.RecordLog(ctx, staff, staffModel.ActionCheckOut, fmt.Sprintf("booking %s checked out (%s)", booking.BookingNumber, proration.Reason))
	s.notifier.PublishBookingEvent(ctx, notificationModel.EventBookingCheckedOut, notificationModel.BookingEvent{
		BookingID:     booking.ID,
		BookingNumber: booking.BookingNumber,
		GuestID:       booking.GuestID,
		Status:        booking.Status,
		TotalAmount:   booking.TotalAmount,
		Adjustment:    proration.Adjustment,
		Reason:        proration.Reason,
	})

	res.Proration = proration
	res.Booking.FromModel(booking)
	res.Booking.AttachRooms(legs)

	go s.invalidateBookingCaches(ctx, id)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, req dto.CancelBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	booking, err := s.getForTransition(ctx, id, model.StatusPending, model.StatusReserved, model.StatusConfirmed)
	if err != nil {
		return err
	}

	now := timezone.Now()

	fields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		model.FieldCancelReason:  req.Reason,
		constant.FieldModifiedBy: staff,
		constant.FieldModifiedAt: now,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	legFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedBy: staff,
		constant.FieldModifiedAt: now,
	}

	if err = s.roomLegRepo.Update(ctx, legFields, legsByBookingFilter(id)); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking rooms")

		return fmt.Errorf("failed to cancel booking rooms: %w", err)
	}

	s.staffService.RecordLog(ctx, staff, staffModel.ActionBookingCancel, fmt.Sprintf("booking %s cancelled: %s", booking.BookingNumber, req.Reason))
	s.notifier.PublishBookingEvent(ctx, notificationModel.EventBookingCancelled, notificationModel.BookingEvent{
		BookingID:     booking.ID,
		BookingNumber: booking.BookingNumber,
		GuestID:       booking.GuestID,
		Status:        model.StatusCancelled,
		TotalAmount:   booking.TotalAmount,
		Reason:        req.Reason,
	})

	go s.invalidateBookingCaches(ctx, id)

	return nil
}

func (s *serviceImpl) NoShow(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.NoShow")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	booking, err := s.getForTransition(ctx, id, model.StatusPending, model.StatusReserved, model.StatusConfirmed)
	if err != nil {
		return err
	}

	// Guests get a grace window past the scheduled check-in before the
	// booking can be written off.
	grace := time.Duration(s.cfg.Hotel.NoShowGraceHours) * time.Hour
	if timezone.Now().Before(booking.CheckInDate.Add(grace)) {
		return failure.BadRequestFromString("booking cannot be marked no-show before the check-in grace period ends") // nolint:wrapcheck
	}

	now := timezone.Now()

	fields := map[string]any{
		model.FieldStatus:        model.StatusNoShow,
		constant.FieldModifiedBy: staff,
		constant.FieldModifiedAt: now,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark booking as no-show")

		return fmt.Errorf("failed to mark booking as no-show: %w", err)
	}

	legFields := map[string]any{
		model.FieldStatus:        model.StatusNoShow,
		constant.FieldModifiedBy: staff,
		constant.FieldModifiedAt: now,
	}

	if err = s.roomLegRepo.Update(ctx, legFields, legsByBookingFilter(id)); err != nil {
		log.Error().Err(err).Msg("failed to mark booking rooms as no-show")

		return fmt.Errorf("failed to mark booking rooms as no-show: %w", err)
	}

	s.staffService.RecordLog(ctx, staff, staffModel.ActionBookingNoShow, fmt.Sprintf("booking %s marked no-show", booking.BookingNumber))
	s.notifier.PublishBookingEvent(ctx, notificationModel.EventBookingNoShow, notificationModel.BookingEvent{
		BookingID:     booking.ID,
		BookingNumber: booking.BookingNumber,
		GuestID:       booking.GuestID,
		Status:        model.StatusNoShow,
		TotalAmount:   booking.TotalAmount,
	})

	go s.invalidateBookingCaches(ctx, id)

	return nil
}

// Delete removes a terminal booking. Live bookings must be cancelled first.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, err = s.getForTransition(ctx, id, model.StatusCancelled, model.StatusNoShow)
	if err != nil {
		return err
	}

	if err = s.roomLegRepo.Delete(ctx, legsByBookingFilter(id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking rooms")

		return fmt.Errorf("failed to delete booking rooms: %w", err)
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go s.invalidateBookingCaches(ctx, id)

	return nil
}
