package validators

import (
	apperrors "github.com/Zzz-puppy/working-calendar/internal/errors"
	dto "github.com/Zzz-puppy/working-calendar/internal/http/dto"
)

// Request-shape checks only; bounds and canonical-form checks belong to
// the service layer, which re-validates in front of the store.

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	var fields []apperrors.FieldError
	if r.Date == "" {
		fields = append(fields, apperrors.Field("date", "is required"))
	}
	if r.Title == "" {
		fields = append(fields, apperrors.Field("title", "is required"))
	}
	if len(fields) > 0 {
		return apperrors.NewValidation(fields...)
	}
	return nil
}

func ValidateUpdateProgressRequest(r *dto.UpdateProgressRequest) error {
	if r.Progress == nil {
		return apperrors.NewValidation(apperrors.Field("progress", "is required"))
	}
	return nil
}
