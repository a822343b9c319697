package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/Zzz-puppy/working-calendar/internal/errors"
	model "github.com/Zzz-puppy/working-calendar/internal/models"
)

// TaskRepository is the single source of truth for task records. Every
// query conjoins owner_id into the WHERE clause; there is no code path that
// reaches a task by id alone.
type TaskRepository struct {
	db *gorm.DB

	// now feeds touch(); swapped in tests to control timestamps.
	now func() time.Time
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db, now: time.Now}
}

// touch is the one place mutation timestamps come from. Creation uses the
// same clock, so updated_at >= created_at holds for every record.
func (r *TaskRepository) touch() time.Time {
	return r.now().UTC()
}

func (r *TaskRepository) Create(ctx context.Context, ownerID, date, title string, progress int, category string, priority int) (*model.Task, error) {
	now := r.touch()
	task := &model.Task{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Date:      date,
		Title:     title,
		Progress:  progress,
		Category:  category,
		Priority:  priority,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, ownerID, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		First(&task, "id = ? AND owner_id = ?", id, ownerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// listOrder keeps every listing operation on the same contract: ascending
// by date, ties broken by ascending creation time.
const listOrder = "date asc, created_at asc"

func (r *TaskRepository) ListAll(ctx context.Context, ownerID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order(listOrder).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListByDate(ctx context.Context, ownerID, date string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND date = ?", ownerID, date).
		Order(listOrder).
		Find(&tasks).Error
	return tasks, err
}

// ListByRange returns tasks with start <= date <= end. Dates are canonical
// YYYY-MM-DD strings, so the string comparison is chronological.
func (r *TaskRepository) ListByRange(ctx context.Context, ownerID, start, end string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND date >= ? AND date <= ?", ownerID, start, end).
		Order(listOrder).
		Find(&tasks).Error
	return tasks, err
}

// UpdateFields applies the supplied columns plus updated_at as one UPDATE
// statement conjoined on (id, owner_id). A concurrent writer either commits
// entirely before or entirely after; callers never observe a mixed record.
func (r *TaskRepository) UpdateFields(ctx context.Context, ownerID, id string, fields map[string]interface{}) (*model.Task, error) {
	updates := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates["updated_at"] = r.touch()

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrTaskNotFound
	}

	return r.FindByID(ctx, ownerID, id)
}

func (r *TaskRepository) UpdateProgress(ctx context.Context, ownerID, id string, progress int) (*model.Task, error) {
	return r.UpdateFields(ctx, ownerID, id, map[string]interface{}{"progress": progress})
}

func (r *TaskRepository) Delete(ctx context.Context, ownerID, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}
