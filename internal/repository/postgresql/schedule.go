package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/schedule"
	"github.com/staffhub-ops/hr-backend-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// GetByStaffAndDate implements schedule.ScheduleRepository.
func (s *scheduleRepository) GetByStaffAndDate(ctx context.Context, staffID, date string) (*schedule.ScheduleEntry, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, staff_id, date::text, kind, start_time, end_time, break_included,
			   created_at, updated_at
		FROM schedule_entries
		WHERE staff_id = $1 AND date = $2
	`

	var entry schedule.ScheduleEntry
	err := q.QueryRow(ctx, query, staffID, date).Scan(
		&entry.ID, &entry.StaffID, &entry.Date, &entry.Kind,
		&entry.StartTime, &entry.EndTime, &entry.BreakIncluded,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get schedule entry: %w", err)
	}
	return &entry, nil
}

// ListByStaffAndRange implements schedule.ScheduleRepository.
func (s *scheduleRepository) ListByStaffAndRange(ctx context.Context, staffID, from, to string) ([]schedule.ScheduleEntry, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, staff_id, date::text, kind, start_time, end_time, break_included,
			   created_at, updated_at
		FROM schedule_entries
		WHERE staff_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule entries: %w", err)
	}
	defer rows.Close()

	var entries []schedule.ScheduleEntry
	for rows.Next() {
		var entry schedule.ScheduleEntry
		if err := rows.Scan(
			&entry.ID, &entry.StaffID, &entry.Date, &entry.Kind,
			&entry.StartTime, &entry.EndTime, &entry.BreakIncluded,
			&entry.CreatedAt, &entry.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan schedule entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Upsert implements schedule.ScheduleRepository.
func (s *scheduleRepository) Upsert(ctx context.Context, entry schedule.ScheduleEntry) (schedule.ScheduleEntry, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO schedule_entries (staff_id, date, kind, start_time, end_time, break_included)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (staff_id, date) DO UPDATE
		SET kind = EXCLUDED.kind,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			break_included = EXCLUDED.break_included,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.StaffID, entry.Date, entry.Kind,
		entry.StartTime, entry.EndTime, entry.BreakIncluded,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return schedule.ScheduleEntry{}, fmt.Errorf("failed to upsert schedule entry: %w", err)
	}
	return entry, nil
}

// DeleteCascade implements schedule.ScheduleRepository. The schedule entry
// and any attendance record for the same day go in one transaction.
func (s *scheduleRepository) DeleteCascade(ctx context.Context, staffID, date string) error {
	return WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM schedule_entries WHERE staff_id = $1 AND date = $2`, staffID, date)
		if err != nil {
			return fmt.Errorf("failed to delete schedule entry: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return schedule.ErrScheduleNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM attendance_records WHERE staff_id = $1 AND date = $2`, staffID, date); err != nil {
			return fmt.Errorf("failed to delete attendance for schedule day: %w", err)
		}
		return nil
	})
}

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) schedule.HolidayRepository {
	return &holidayRepository{db: db}
}

// Create implements schedule.HolidayRepository.
func (h *holidayRepository) Create(ctx context.Context, holiday schedule.PublicHoliday) (schedule.PublicHoliday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		INSERT INTO public_holidays (date, name)
		VALUES ($1, $2)
		ON CONFLICT (date) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, holiday.Date, holiday.Name).Scan(&holiday.ID, &holiday.CreatedAt)
	if err != nil {
		return schedule.PublicHoliday{}, fmt.Errorf("failed to create public holiday: %w", err)
	}
	return holiday, nil
}

// Delete implements schedule.HolidayRepository.
func (h *holidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, h.db)

	tag, err := q.Exec(ctx, `DELETE FROM public_holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete public holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrHolidayNotFound
	}
	return nil
}

// ListByRange implements schedule.HolidayRepository.
func (h *holidayRepository) ListByRange(ctx context.Context, from, to string) ([]schedule.PublicHoliday, error) {
	q := GetQuerier(ctx, h.db)

	query := `
		SELECT id, date::text, name, created_at
		FROM public_holidays
		WHERE date BETWEEN $1 AND $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list public holidays: %w", err)
	}
	defer rows.Close()

	var holidays []schedule.PublicHoliday
	for rows.Next() {
		var holiday schedule.PublicHoliday
		if err := rows.Scan(&holiday.ID, &holiday.Date, &holiday.Name, &holiday.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan public holiday: %w", err)
		}
		holidays = append(holidays, holiday)
	}
	return holidays, rows.Err()
}
