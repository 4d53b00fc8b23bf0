package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/staff/model"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
)

type Staff interface {
	Insert(ctx context.Context, model model.Staff) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Staff, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Staff, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Staff]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Staff {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Staff](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// StaffLog is append-only; no update or delete is exposed.
type StaffLog interface {
	Insert(ctx context.Context, model model.StaffLog) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.StaffLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type staffLogRepositoryImpl struct {
	gRepo.Repository[model.StaffLog]
	db   *postgres.Connection
	otel otel.Otel
}

func NewStaffLog(db *postgres.Connection, otel otel.Otel) StaffLog {
	return &staffLogRepositoryImpl{
		Repository: gRepo.NewRepository[model.StaffLog](model.StaffLogEntityName, model.StaffLogTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
