package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/housekeeping/model"
	"frontdesk/internal/domains/housekeeping/model/dto"
	"frontdesk/internal/domains/housekeeping/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

const (
	cacheGetTask    = "housekeeping:get"
	cacheGetAllTask = "housekeeping:gets"
)

// validTransitions enumerates the allowed status moves. Verified and
// cancelled are terminal; completed work still awaits a supervisor's check.
var validTransitions = map[string][]string{
	model.StatusPending:    {model.StatusInProgress, model.StatusCancelled},
	model.StatusInProgress: {model.StatusCompleted, model.StatusCancelled},
	model.StatusCompleted:  {model.StatusVerified},
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

type Housekeeping interface {
	Create(ctx context.Context, req dto.CreateTaskRequest) (dto.TaskResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTasksResponse, error)
	Get(ctx context.Context, id string) (dto.TaskResponse, error)
	Update(ctx context.Context, req dto.UpdateTaskRequest, id string) error
	Delete(ctx context.Context, id string) error
	EnqueueCheckoutCleaning(ctx context.Context, roomID, bookingID string)
}

type serviceImpl struct {
	repo     repository.Housekeeping
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Housekeeping, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Housekeeping {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTaskRequest) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return res, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	task := req.ToModel(staff)

	if err = s.repo.Insert(ctx, task); err != nil {
		log.Error().Err(err).Msg("failed to create housekeeping task")

		return res, fmt.Errorf("failed to create housekeeping task: %w", err)
	}

	res.FromModel(task)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTask)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTasksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTask, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count housekeeping tasks")

		return res, fmt.Errorf("failed to count housekeeping tasks: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping tasks")

		return res, fmt.Errorf("failed to get housekeeping tasks: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save housekeeping tasks to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTask, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	task, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping task")

		return res, fmt.Errorf("failed to get housekeeping task: %w", err)
	}

	if task.ID == constant.Empty {
		return res, failure.NotFound("housekeeping task not found") // nolint:wrapcheck
	}

	res.FromModel(task)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save housekeeping task to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTaskRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	task, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping task")

		return fmt.Errorf("failed to get housekeeping task: %w", err)
	}

	if task.ID == constant.Empty {
		return failure.NotFound("housekeeping task not found") // nolint:wrapcheck
	}

	if req.Status != constant.Empty && req.Status != task.Status {
		if !transitionAllowed(task.Status, req.Status) {
			return failure.BadRequestFromString(fmt.Sprintf("cannot move task from %s to %s", task.Status, req.Status)) // nolint:wrapcheck
		}
	}

	updatedFields := shared.TransformFields(req, staff)

	if req.Status == model.StatusCompleted && task.Status != model.StatusCompleted {
		updatedFields[model.FieldCompletedAt] = timezone.Now()
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update housekeeping task")

		return fmt.Errorf("failed to update housekeeping task: %w", err)
	}

	// Only a verified checkout cleaning puts the room back into circulation;
	// completion alone leaves it in cleaning until a supervisor signs off.
	verifying := req.Status == model.StatusVerified && task.Status != model.StatusVerified
	if verifying && task.TaskType == model.TypeCheckoutCleaning {
		roomFields := map[string]any{
			roomModel.FieldStatus:    roomModel.StatusAvailable,
			constant.FieldModifiedBy: staff,
			constant.FieldModifiedAt: timezone.Now(),
		}

		if err = s.roomRepo.Update(ctx, roomFields, shared.FilterByID(task.RoomID, roomModel.FieldID, roomModel.TableName)); err != nil {
			log.Error().Err(err).Str("room_id", task.RoomID).Msg("failed to mark room available")

			return fmt.Errorf("failed to mark room available: %w", err)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTask, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete housekeeping task from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTask)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if housekeeping task exists")

		return fmt.Errorf("failed to check if housekeeping task exists: %w", err)
	}

	if !exist {
		return failure.NotFound("housekeeping task not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete housekeeping task")

		return fmt.Errorf("failed to delete housekeeping task: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTask, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete housekeeping task from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTask)
	}()

	return nil
}

// EnqueueCheckoutCleaning creates the post-checkout cleaning task. Failures
// are logged and swallowed: checkout already succeeded and the desk can
// raise the task by hand.
func (s *serviceImpl) EnqueueCheckoutCleaning(ctx context.Context, roomID, bookingID string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".housekeeping.EnqueueCheckoutCleaning")
	defer scope.End()

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	task := dto.CreateTaskRequest{
		RoomID:    roomID,
		BookingID: &bookingID,
		TaskType:  model.TypeCheckoutCleaning,
		Notes:     "cleaning after checkout",
	}

	if err := s.repo.Insert(ctx, task.ToModel(staff)); err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to enqueue checkout cleaning task")

		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTask)
	}()
}
