package schedule

import (
	"context"
	"fmt"

	"github.com/staffhub-ops/hr-backend-go/internal/domain/schedule"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/staff"
)

type ScheduleServiceImpl struct {
	scheduleRepo schedule.ScheduleRepository
	holidayRepo  schedule.HolidayRepository
	staffRepo    staff.StaffRepository
}

func NewScheduleService(
	scheduleRepo schedule.ScheduleRepository,
	holidayRepo schedule.HolidayRepository,
	staffRepo staff.StaffRepository,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		holidayRepo:  holidayRepo,
		staffRepo:    staffRepo,
	}
}

func toResponse(entry schedule.ScheduleEntry) schedule.ScheduleResponse {
	return schedule.ScheduleResponse{
		ID:            entry.ID,
		StaffID:       entry.StaffID,
		Date:          entry.Date,
		Kind:          string(entry.Kind),
		StartTime:     entry.StartTime,
		EndTime:       entry.EndTime,
		BreakIncluded: entry.BreakIncluded,
	}
}

// Upsert implements schedule.ScheduleService. Day-off entries never carry
// shift times even when the request supplies them.
func (s *ScheduleServiceImpl) Upsert(ctx context.Context, req schedule.UpsertScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	if !member.IsActive {
		return schedule.ScheduleResponse{}, staff.ErrStaffInactive
	}

	entry := schedule.ScheduleEntry{
		StaffID:       req.StaffID,
		Date:          req.Date,
		Kind:          schedule.Kind(req.Kind),
		BreakIncluded: req.BreakIncluded,
	}
	if entry.Kind == schedule.KindWork {
		entry.StartTime = req.StartTime
		entry.EndTime = req.EndTime
	}

	saved, err := s.scheduleRepo.Upsert(ctx, entry)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to upsert schedule entry: %w", err)
	}
	return toResponse(saved), nil
}

// ListByStaffAndRange implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListByStaffAndRange(ctx context.Context, staffID, from, to string) ([]schedule.ScheduleResponse, error) {
	entries, err := s.scheduleRepo.ListByStaffAndRange(ctx, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule entries: %w", err)
	}

	responses := make([]schedule.ScheduleResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toResponse(entry))
	}
	return responses, nil
}

// Delete implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Delete(ctx context.Context, staffID, date string) error {
	if err := s.scheduleRepo.DeleteCascade(ctx, staffID, date); err != nil {
		return fmt.Errorf("failed to delete schedule entry: %w", err)
	}
	return nil
}

// CreateHoliday implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) CreateHoliday(ctx context.Context, req schedule.CreateHolidayRequest) (schedule.PublicHoliday, error) {
	if err := req.Validate(); err != nil {
		return schedule.PublicHoliday{}, err
	}

	holiday, err := s.holidayRepo.Create(ctx, schedule.PublicHoliday{
		Date: req.Date,
		Name: req.Name,
	})
	if err != nil {
		return schedule.PublicHoliday{}, fmt.Errorf("failed to create public holiday: %w", err)
	}
	return holiday, nil
}

// DeleteHoliday implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}

// ListHolidays implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListHolidays(ctx context.Context, from, to string) ([]schedule.PublicHoliday, error) {
	holidays, err := s.holidayRepo.ListByRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list public holidays: %w", err)
	}
	return holidays, nil
}
