package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	apperrors "github.com/Zzz-puppy/working-calendar/internal/errors"
	model "github.com/Zzz-puppy/working-calendar/internal/models"
	repository "github.com/Zzz-puppy/working-calendar/internal/repositories"
)

type TaskService struct {
	repo   *repository.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo *repository.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

// CreateTaskInput carries the caller-supplied fields of a new task.
// Nil optional fields take their defaults.
type CreateTaskInput struct {
	Date     string
	Title    string
	Progress *int
	Category *string
	Priority *int
}

// UpdateTaskInput carries a partial update; only non-nil fields are
// applied, everything else is left untouched.
type UpdateTaskInput struct {
	Date     *string
	Title    *string
	Progress *int
	Category *string
	Priority *int
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID string, in CreateTaskInput) (*model.Task, error) {
	var fields []apperrors.FieldError
	fields = checkDate(fields, "date", in.Date)
	fields = checkTitle(fields, in.Title)

	progress := 0
	if in.Progress != nil {
		progress = *in.Progress
		fields = checkProgress(fields, progress)
	}

	category := model.DefaultCategory
	if in.Category != nil {
		category = *in.Category
	}

	priority := model.PriorityLow
	if in.Priority != nil {
		priority = *in.Priority
		fields = checkPriority(fields, priority)
	}

	if len(fields) > 0 {
		return nil, apperrors.NewValidation(fields...)
	}

	task, err := s.repo.Create(ctx, ownerID, in.Date, strings.TrimSpace(in.Title), progress, category, priority)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to create task")
		return nil, apperrors.ErrInternal
	}

	s.logger.Info().Str("task_id", task.ID).Str("owner_id", ownerID).Msg("created task")
	return task, nil
}

// wrapStoreError passes typed failures (not-found, validation) through
// unchanged and converts anything else into a generic internal error,
// logging the real cause instead of surfacing it.
func (s *TaskService) wrapStoreError(err error, ownerID, msg string) error {
	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		return err
	}
	s.logger.Error().Err(err).Str("owner_id", ownerID).Msg(msg)
	return apperrors.ErrInternal
}

func (s *TaskService) GetTask(ctx context.Context, ownerID, id string) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, s.wrapStoreError(err, ownerID, "failed to get task")
	}
	return task, nil
}

// nonNil keeps empty listings JSON-encoding as [] instead of null.
func nonNil(tasks []model.Task) []model.Task {
	if tasks == nil {
		return []model.Task{}
	}
	return tasks
}

func (s *TaskService) ListTasks(ctx context.Context, ownerID string) ([]model.Task, error) {
	tasks, err := s.repo.ListAll(ctx, ownerID)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to list tasks")
		return nil, apperrors.ErrInternal
	}
	return nonNil(tasks), nil
}

func (s *TaskService) ListTasksByDate(ctx context.Context, ownerID, date string) ([]model.Task, error) {
	if fields := checkDate(nil, "date", date); len(fields) > 0 {
		return nil, apperrors.NewValidation(fields...)
	}

	tasks, err := s.repo.ListByDate(ctx, ownerID, date)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to list tasks by date")
		return nil, apperrors.ErrInternal
	}
	return nonNil(tasks), nil
}

func (s *TaskService) ListTasksByRange(ctx context.Context, ownerID, start, end string) ([]model.Task, error) {
	var fields []apperrors.FieldError
	fields = checkDate(fields, "start", start)
	fields = checkDate(fields, "end", end)
	if len(fields) == 0 && start > end {
		fields = append(fields, apperrors.Field("start", "must not be after end"))
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidation(fields...)
	}

	tasks, err := s.repo.ListByRange(ctx, ownerID, start, end)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to list tasks by range")
		return nil, apperrors.ErrInternal
	}
	return nonNil(tasks), nil
}

func (s *TaskService) UpdateTask(ctx context.Context, ownerID, id string, in UpdateTaskInput) (*model.Task, error) {
	var fields []apperrors.FieldError
	updates := make(map[string]interface{})

	if in.Date != nil {
		fields = checkDate(fields, "date", *in.Date)
		updates["date"] = *in.Date
	}
	if in.Title != nil {
		fields = checkTitle(fields, *in.Title)
		updates["title"] = strings.TrimSpace(*in.Title)
	}
	if in.Progress != nil {
		fields = checkProgress(fields, *in.Progress)
		updates["progress"] = *in.Progress
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.Priority != nil {
		fields = checkPriority(fields, *in.Priority)
		updates["priority"] = *in.Priority
	}

	if len(updates) == 0 {
		fields = append(fields, apperrors.Field("fields", "at least one updatable field is required"))
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidation(fields...)
	}

	task, err := s.repo.UpdateFields(ctx, ownerID, id, updates)
	if err != nil {
		return nil, s.wrapStoreError(err, ownerID, "failed to update task")
	}

	s.logger.Info().Str("task_id", id).Str("owner_id", ownerID).Msg("updated task")
	return task, nil
}

func (s *TaskService) UpdateProgress(ctx context.Context, ownerID, id string, progress int) (*model.Task, error) {
	if fields := checkProgress(nil, progress); len(fields) > 0 {
		return nil, apperrors.NewValidation(fields...)
	}

	task, err := s.repo.UpdateProgress(ctx, ownerID, id, progress)
	if err != nil {
		return nil, s.wrapStoreError(err, ownerID, "failed to update progress")
	}

	s.logger.Info().Str("task_id", id).Str("owner_id", ownerID).Int("progress", progress).Msg("updated progress")
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, ownerID, id string) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		return s.wrapStoreError(err, ownerID, "failed to delete task")
	}

	s.logger.Info().Str("task_id", id).Str("owner_id", ownerID).Msg("deleted task")
	return nil
}
