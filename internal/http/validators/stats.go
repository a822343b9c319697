package validators

import (
	"strconv"

	apperrors "github.com/Zzz-puppy/working-calendar/internal/errors"
)

// ParseMonthlyStatsQuery turns the year/month query parameters into
// integers. Range checks (year >= 1970, month in [1,12]) happen in the
// stats service.
func ParseMonthlyStatsQuery(yearParam, monthParam string) (int, int, error) {
	var fields []apperrors.FieldError

	year, err := strconv.Atoi(yearParam)
	if err != nil {
		fields = append(fields, apperrors.Field("year", "must be an integer"))
	}
	month, err := strconv.Atoi(monthParam)
	if err != nil {
		fields = append(fields, apperrors.Field("month", "must be an integer"))
	}

	if len(fields) > 0 {
		return 0, 0, apperrors.NewValidation(fields...)
	}
	return year, month, nil
}

// ValidateRangeQuery checks presence of the range bounds; canonical form
// and ordering are re-checked by the service.
func ValidateRangeQuery(start, end string) error {
	var fields []apperrors.FieldError
	if start == "" {
		fields = append(fields, apperrors.Field("start", "is required"))
	}
	if end == "" {
		fields = append(fields, apperrors.Field("end", "is required"))
	}
	if len(fields) > 0 {
		return apperrors.NewValidation(fields...)
	}
	return nil
}
