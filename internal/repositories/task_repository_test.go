package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	apperrors "github.com/Zzz-puppy/working-calendar/internal/errors"
	model "github.com/Zzz-puppy/working-calendar/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(&model.Task{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func TestCreateAndFindRoundTrip(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task, err := repo.Create(ctx, "owner-a", "2024-05-01", "write report", 30, "work", model.PriorityHigh)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if task.ID == "" {
		t.Error("expected task ID to be set")
	}
	if !task.UpdatedAt.Equal(task.CreatedAt) {
		t.Errorf("expected updated_at == created_at at creation, got %v and %v", task.UpdatedAt, task.CreatedAt)
	}

	fetched, err := repo.FindByID(ctx, "owner-a", task.ID)
	if err != nil {
		t.Fatalf("failed to find task: %v", err)
	}
	if fetched.Date != "2024-05-01" || fetched.Title != "write report" ||
		fetched.Progress != 30 || fetched.Category != "work" || fetched.Priority != model.PriorityHigh {
		t.Errorf("round trip mismatch: %+v", fetched)
	}
}

func TestFindByIDForeignOwner(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task, err := repo.Create(ctx, "owner-a", "2024-05-01", "mine", 0, model.DefaultCategory, model.PriorityLow)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if _, err := repo.FindByID(ctx, "owner-b", task.ID); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound for foreign owner, got %v", err)
	}
}

func TestListOrdering(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	// Fixed clock so the created_at tie-break is deterministic.
	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	step := 0
	repo.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Second)
	}

	if _, err := repo.Create(ctx, "owner-a", "2024-05-03", "third day", 0, model.DefaultCategory, model.PriorityLow); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if _, err := repo.Create(ctx, "owner-a", "2024-05-01", "first day, later insert", 0, model.DefaultCategory, model.PriorityLow); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if _, err := repo.Create(ctx, "owner-a", "2024-05-01", "first day, latest insert", 0, model.DefaultCategory, model.PriorityLow); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	tasks, err := repo.ListAll(ctx, "owner-a")
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}

	wantTitles := []string{"first day, later insert", "first day, latest insert", "third day"}
	for i, want := range wantTitles {
		if tasks[i].Title != want {
			t.Errorf("position %d: expected %q, got %q", i, want, tasks[i].Title)
		}
	}
}

func TestListByRangeInclusive(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	for _, date := range []string{"2024-04-30", "2024-05-01", "2024-05-15", "2024-05-31", "2024-06-01"} {
		if _, err := repo.Create(ctx, "owner-a", date, "task "+date, 0, model.DefaultCategory, model.PriorityLow); err != nil {
			t.Fatalf("failed to create task: %v", err)
		}
	}

	tasks, err := repo.ListByRange(ctx, "owner-a", "2024-05-01", "2024-05-31")
	if err != nil {
		t.Fatalf("failed to list range: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks in range, got %d", len(tasks))
	}
	if tasks[0].Date != "2024-05-01" || tasks[2].Date != "2024-05-31" {
		t.Errorf("expected inclusive bounds, got %s .. %s", tasks[0].Date, tasks[len(tasks)-1].Date)
	}
}

func TestListByDateScopedToOwner(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, "owner-a", "2024-05-01", "a's task", 0, model.DefaultCategory, model.PriorityLow); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if _, err := repo.Create(ctx, "owner-b", "2024-05-01", "b's task", 0, model.DefaultCategory, model.PriorityLow); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	tasks, err := repo.ListByDate(ctx, "owner-a", "2024-05-01")
	if err != nil {
		t.Fatalf("failed to list by date: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "a's task" {
		t.Errorf("expected only owner-a's task, got %+v", tasks)
	}
}

func TestUpdateFieldsIsPartial(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	step := 0
	repo.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Second)
	}

	task, err := repo.Create(ctx, "owner-a", "2024-05-01", "original", 10, "work", model.PriorityMedium)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	updated, err := repo.UpdateFields(ctx, "owner-a", task.ID, map[string]interface{}{"progress": 80})
	if err != nil {
		t.Fatalf("failed to update task: %v", err)
	}

	if updated.Progress != 80 {
		t.Errorf("expected progress 80, got %d", updated.Progress)
	}
	if updated.Title != "original" || updated.Date != "2024-05-01" ||
		updated.Category != "work" || updated.Priority != model.PriorityMedium {
		t.Errorf("unrelated fields changed: %+v", updated)
	}
	if !updated.CreatedAt.Equal(task.CreatedAt) {
		t.Error("created_at must never change")
	}
	if !updated.UpdatedAt.After(task.UpdatedAt) {
		t.Errorf("expected updated_at to advance: %v -> %v", task.UpdatedAt, updated.UpdatedAt)
	}
}

func TestUpdateFieldsForeignOwner(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task, err := repo.Create(ctx, "owner-a", "2024-05-01", "mine", 0, model.DefaultCategory, model.PriorityLow)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if _, err := repo.UpdateFields(ctx, "owner-b", task.ID, map[string]interface{}{"progress": 99}); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound for foreign owner, got %v", err)
	}

	// The record is untouched.
	fetched, err := repo.FindByID(ctx, "owner-a", task.ID)
	if err != nil {
		t.Fatalf("failed to find task: %v", err)
	}
	if fetched.Progress != 0 {
		t.Errorf("expected progress unchanged, got %d", fetched.Progress)
	}
}

func TestDeleteTwice(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task, err := repo.Create(ctx, "owner-a", "2024-05-01", "ephemeral", 0, model.DefaultCategory, model.PriorityLow)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if err := repo.Delete(ctx, "owner-a", task.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := repo.Delete(ctx, "owner-a", task.ID); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on second delete, got %v", err)
	}
	if err := repo.Delete(ctx, "owner-a", "no-such-id"); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound for unknown id, got %v", err)
	}
}
