package service

import (
	"context"
	"encoding/json"
	"time"

	"second-brain-be/internal/dto"
	"second-brain-be/internal/entity"
	"second-brain-be/internal/pkg/logger"
	"second-brain-be/internal/pkg/serverutils"
	"second-brain-be/internal/repository/specification"
	"second-brain-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITaskService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	List(ctx context.Context, userId uuid.UUID, filter dto.ListTasksFilter) ([]*dto.TaskResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type taskService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewTaskService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService, log logger.ILogger) ITaskService {
	return &taskService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

// parseDueDate accepts RFC3339 or a bare date. Anything else is rejected
// outright rather than stored as a sentinel value.
func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, *raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", *raw); err == nil {
		return &t, nil
	}
	return nil, serverutils.NewValidationError("Invalid due date")
}

func (s *taskService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()
	task := entity.Task{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Habit:       req.Habit,
		Completed:   false, // never settable at creation
		UserId:      userId,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uow.TaskRepository().Create(ctx, &task); err != nil {
		return nil, err
	}

	s.publishCapture(ctx, dto.CaptureRecordedMessage{
		Kind:       dto.CaptureKindTask,
		Id:         task.Id,
		UserId:     userId,
		OccurredAt: now,
	})

	return dto.NewTaskResponse(&task), nil
}

func (s *taskService) List(ctx context.Context, userId uuid.UUID, filter dto.ListTasksFilter) ([]*dto.TaskResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OwnedBy{UserID: userId},
		specification.ByCompleted{Completed: filter.Completed},
		specification.WithTags{},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	// habit=false performs no filtering, mirroring the inbox asymmetry.
	if filter.Habit {
		specs = append(specs, specification.HabitOnly{})
	}

	tasks, err := uow.TaskRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return dto.NewTaskResponses(tasks), nil
}

func (s *taskService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	task, err := uow.TaskRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, serverutils.NewNotFoundError("Task not found")
	}

	task.Title = req.Title
	task.Description = req.Description
	task.DueDate = dueDate
	if req.Habit != nil {
		task.Habit = *req.Habit
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	task.UpdatedAt = time.Now()

	if err := uow.TaskRepository().Update(ctx, task); err != nil {
		return nil, err
	}
	return dto.NewTaskResponse(task), nil
}

func (s *taskService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	task, err := uow.TaskRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if task == nil {
		return serverutils.NewNotFoundError("Task not found")
	}

	return uow.TaskRepository().Delete(ctx, id)
}

func (s *taskService) publishCapture(ctx context.Context, msg dto.CaptureRecordedMessage) {
	payload, err := json.Marshal(msg)
	if err == nil {
		err = s.publisherService.Publish(ctx, payload)
	}
	if err != nil {
		s.log.Warn("task", "failed to publish capture event", map[string]interface{}{
			"task_id": msg.Id,
			"error":   err.Error(),
		})
	}
}
