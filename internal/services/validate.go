package services

import (
	"strings"
	"time"

	apperrors "github.com/Zzz-puppy/working-calendar/internal/errors"
	model "github.com/Zzz-puppy/working-calendar/internal/models"
)

// Field validation lives here, in front of the store, so that every entry
// point rejects out-of-range input before any persistence attempt. Bounds
// are rejected, never clamped.

func canonicalDate(s string) bool {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return false
	}
	// Re-formatting catches non-canonical spellings like 2024-5-1.
	return t.Format(model.DateLayout) == s
}

func checkDate(fields []apperrors.FieldError, name, value string) []apperrors.FieldError {
	if !canonicalDate(value) {
		return append(fields, apperrors.Field(name, "must be a calendar day in YYYY-MM-DD form"))
	}
	return fields
}

func checkTitle(fields []apperrors.FieldError, value string) []apperrors.FieldError {
	if strings.TrimSpace(value) == "" {
		return append(fields, apperrors.Field("title", "must not be empty"))
	}
	return fields
}

func checkProgress(fields []apperrors.FieldError, value int) []apperrors.FieldError {
	if value < 0 || value > 100 {
		return append(fields, apperrors.Field("progress", "must be between 0 and 100"))
	}
	return fields
}

func checkPriority(fields []apperrors.FieldError, value int) []apperrors.FieldError {
	if value < model.PriorityLow || value > model.PriorityHigh {
		return append(fields, apperrors.Field("priority", "must be 1, 2 or 3"))
	}
	return fields
}
