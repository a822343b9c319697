package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/Zzz-puppy/working-calendar/internal/errors"
	model "github.com/Zzz-puppy/working-calendar/internal/models"
	repository "github.com/Zzz-puppy/working-calendar/internal/repositories"
)

// StatsService derives rollups by reading through the task repository.
// It keeps no state of its own; grouping happens over the fetched rows.
type StatsService struct {
	repo   *repository.TaskRepository
	logger zerolog.Logger
}

func NewStatsService(repo *repository.TaskRepository, logger zerolog.Logger) *StatsService {
	return &StatsService{repo: repo, logger: logger}
}

// DailyRollup aggregates the tasks sharing one calendar day.
type DailyRollup struct {
	Date            string `json:"date"`
	Count           int    `json:"count"`
	AverageProgress int    `json:"average_progress"`
}

type MonthlyStats struct {
	Total           int           `json:"total"`
	AverageProgress int           `json:"average_progress"`
	Daily           []DailyRollup `json:"daily"`
}

// Monthly rolls up one owner's tasks for one calendar month. The window is
// [first day, last day] inclusive; the last day comes from the zeroth day
// of the following month, so leap years fall out of the time package.
func (s *StatsService) Monthly(ctx context.Context, ownerID string, year, month int) (*MonthlyStats, error) {
	var fields []apperrors.FieldError
	if year < 1970 {
		fields = append(fields, apperrors.Field("year", "must be 1970 or later"))
	}
	if month < 1 || month > 12 {
		fields = append(fields, apperrors.Field("month", "must be between 1 and 12"))
	}
	if len(fields) > 0 {
		return nil, apperrors.NewValidation(fields...)
	}

	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	start := fmt.Sprintf("%04d-%02d-01", year, month)
	end := fmt.Sprintf("%04d-%02d-%02d", year, month, lastDay)

	tasks, err := s.repo.ListByRange(ctx, ownerID, start, end)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to load tasks for monthly stats")
		return nil, apperrors.ErrInternal
	}

	sum := 0
	for _, t := range tasks {
		sum += t.Progress
	}

	return &MonthlyStats{
		Total:           len(tasks),
		AverageProgress: roundAverage(sum, len(tasks)),
		Daily:           rollupByDate(tasks),
	}, nil
}

// DailyCompletion rolls up every distinct date the owner has ever recorded
// a task for, ascending by date.
func (s *StatsService) DailyCompletion(ctx context.Context, ownerID string) ([]DailyRollup, error) {
	tasks, err := s.repo.ListAll(ctx, ownerID)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to load tasks for daily stats")
		return nil, apperrors.ErrInternal
	}
	return rollupByDate(tasks), nil
}

// rollupByDate groups an already date-ordered task sequence into one entry
// per distinct date. It never returns nil, so an owner with no tasks rolls
// up to an empty list rather than a JSON null.
func rollupByDate(tasks []model.Task) []DailyRollup {
	rollups := make([]DailyRollup, 0)

	var sum int
	for i, t := range tasks {
		if i == 0 || t.Date != rollups[len(rollups)-1].Date {
			rollups = append(rollups, DailyRollup{Date: t.Date})
			sum = 0
		}
		entry := &rollups[len(rollups)-1]
		entry.Count++
		sum += t.Progress
		entry.AverageProgress = roundAverage(sum, entry.Count)
	}

	return rollups
}

// roundAverage rounds sum/count to the nearest integer with halves rounding
// up. Progress is never negative, so math.Round's half-away-from-zero is
// exactly half-up here. A zero count yields zero, never a division error.
func roundAverage(sum, count int) int {
	if count == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(count)))
}
