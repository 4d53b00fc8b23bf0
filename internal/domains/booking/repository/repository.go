package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
)

type Booking interface {
	CreateWithRooms(ctx context.Context, booking model.Booking, rooms []model.BookingRoom) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	rooms gRepo.Repository[model.BookingRoom]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		rooms:      gRepo.NewRepository[model.BookingRoom](model.BookingRoomEntityName, model.BookingRoomTableName, model.FieldBookingRoomID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CreateWithRooms inserts a booking and all of its room legs in a single
// transaction; a booking without legs must never exist.
func (r *repositoryImpl) CreateWithRooms(ctx context.Context, booking model.Booking, rooms []model.BookingRoom) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateWithRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := r.db.Write.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback booking transaction")
			}
		}
	}()

	if err = r.InsertTx(ctx, tx, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if err = r.rooms.InsertBulkTx(ctx, tx, rooms); err != nil {
		return fmt.Errorf("failed to insert booking rooms: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	return nil
}

type BookingRoom interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BookingRoom, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingRoom, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type bookingRoomRepositoryImpl struct {
	gRepo.Repository[model.BookingRoom]
	db   *postgres.Connection
	otel otel.Otel
}

func NewBookingRoom(db *postgres.Connection, otel otel.Otel) BookingRoom {
	return &bookingRoomRepositoryImpl{
		Repository: gRepo.NewRepository[model.BookingRoom](model.BookingRoomEntityName, model.BookingRoomTableName, model.FieldBookingRoomID, db, otel),
		db:         db,
		otel:       otel,
	}
}
