package schedule

import (
	"github.com/staffhub-ops/hr-backend-go/internal/pkg/validator"
)

type UpsertScheduleRequest struct {
	StaffID       string  `json:"staff_id"`
	Date          string  `json:"date"`
	Kind          string  `json:"kind"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
	BreakIncluded bool    `json:"break_included"`
}

func (r *UpsertScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Kind, []string{string(KindWork), string(KindDayOff)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be work or day_off",
		})
	}

	if r.Kind == string(KindWork) {
		if r.StartTime == nil || !validator.IsValidClock(*r.StartTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time is required for work entries (HH:mm)",
			})
		}
		if r.EndTime == nil || !validator.IsValidClock(*r.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time is required for work entries (HH:mm)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleResponse struct {
	ID            string  `json:"id"`
	StaffID       string  `json:"staff_id"`
	Date          string  `json:"date"`
	Kind          string  `json:"kind"`
	StartTime     *string `json:"start_time,omitempty"`
	EndTime       *string `json:"end_time,omitempty"`
	BreakIncluded bool    `json:"break_included"`
}

type CreateHolidayRequest struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
