package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/payment/model"
	"frontdesk/internal/domains/payment/model/dto"
	"frontdesk/internal/domains/payment/repository"
	staffModel "frontdesk/internal/domains/staff/model"
	staffService "frontdesk/internal/domains/staff/service"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

const cacheGetPayment = "payment:get"

type Payment interface {
	GetByBooking(ctx context.Context, bookingID string) (dto.PaymentResponse, error)
	Update(ctx context.Context, req dto.UpdatePaymentRequest, bookingID string) (dto.PaymentResponse, error)
	EnsureBreakdown(ctx context.Context, bookingID string, totalAmount float64) error
	ApplyAdjustment(ctx context.Context, bookingID string, adjustment, finalAmount float64) error
}

type serviceImpl struct {
	repo         repository.Payment
	bookingRepo  bookingRepo.Booking
	staffService staffService.Staff
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Payment, bookingRepo bookingRepo.Booking, staffService staffService.Staff, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Payment {
	return &serviceImpl{
		repo:         repo,
		bookingRepo:  bookingRepo,
		staffService: staffService,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func bookingFilter(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{gDto.Filter{
			Table:    model.TableName,
			Field:    model.FieldBookingID,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingID,
		}},
	}
}

func (s *serviceImpl) GetByBooking(ctx context.Context, bookingID string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.GetByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPayment, bookingID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	breakdown, err := s.repo.Get(ctx, bookingFilter(bookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment breakdown")

		return res, fmt.Errorf("failed to get payment breakdown: %w", err)
	}

	if breakdown.ID == constant.Empty {
		return res, failure.NotFound("payment breakdown not found") // nolint:wrapcheck
	}

	res.FromModel(breakdown)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payment breakdown to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePaymentRequest, bookingID string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("payment update cannot be empty") // nolint:wrapcheck
	}

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	bookingExists, err := s.bookingRepo.Exist(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return res, fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !bookingExists {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	filter := bookingFilter(bookingID)

	breakdown, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment breakdown")

		return res, fmt.Errorf("failed to get payment breakdown: %w", err)
	}

	if breakdown.ID == constant.Empty {
		return res, failure.NotFound("payment breakdown not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, staff)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update payment breakdown")

		return res, fmt.Errorf("failed to update payment breakdown: %w", err)
	}

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload payment breakdown")

		return res, fmt.Errorf("failed to reload payment breakdown: %w", err)
	}

	s.staffService.RecordLog(ctx, staff, staffModel.ActionPaymentUpdate, fmt.Sprintf("payment updated for booking %s", bookingID))

	res.FromModel(updated)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPayment, bookingID)); err != nil {
			log.Error().Err(err).Msg("failed to delete payment breakdown from cache")
		}
	}()

	return res, nil
}

// EnsureBreakdown creates the booking's payment row if it does not exist
// yet. Booking creation calls this so every booking has exactly one row.
func (s *serviceImpl) EnsureBreakdown(ctx context.Context, bookingID string, totalAmount float64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.EnsureBreakdown")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	exists, err := s.repo.Exist(ctx, bookingFilter(bookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if payment breakdown exists")

		return fmt.Errorf("failed to check if payment breakdown exists: %w", err)
	}

	if exists {
		return nil
	}

	if err = s.repo.Insert(ctx, dto.NewBreakdown(bookingID, totalAmount, staff)); err != nil {
		log.Error().Err(err).Msg("failed to create payment breakdown")

		return fmt.Errorf("failed to create payment breakdown: %w", err)
	}

	return nil
}

// ApplyAdjustment writes the checkout proration into the ledger: the signed
// adjustment and the re-rated total.
func (s *serviceImpl) ApplyAdjustment(ctx context.Context, bookingID string, adjustment, finalAmount float64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.ApplyAdjustment")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)
	filter := bookingFilter(bookingID)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if payment breakdown exists")

		return fmt.Errorf("failed to check if payment breakdown exists: %w", err)
	}

	if !exists {
		return failure.NotFound("payment breakdown not found") // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldPriceAdjustment: adjustment,
		model.FieldTotalAmount:     finalAmount,
		constant.FieldModifiedBy:   staff,
		constant.FieldModifiedAt:   timezone.Now(),
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to apply price adjustment")

		return fmt.Errorf("failed to apply price adjustment: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPayment, bookingID)); err != nil {
			log.Error().Err(err).Msg("failed to delete payment breakdown from cache")
		}
	}()

	return nil
}
