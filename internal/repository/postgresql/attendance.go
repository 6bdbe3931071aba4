package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/attendance"
	"github.com/staffhub-ops/hr-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, staff_id, date::text,
	check_in, check_out, break_start, break_end,
	overtime_status, approved_overtime_minutes, processed, decided_at,
	created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.AttendanceRecord, error) {
	var record attendance.AttendanceRecord
	err := row.Scan(
		&record.ID, &record.StaffID, &record.Date,
		&record.CheckIn, &record.CheckOut, &record.BreakStart, &record.BreakEnd,
		&record.OvertimeStatus, &record.ApprovedOvertimeMinutes, &record.Processed, &record.DecidedAt,
		&record.CreatedAt, &record.UpdatedAt,
	)
	return record, err
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE id = $1`

	record, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return record, nil
}

// GetByStaffAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByStaffAndDate(ctx context.Context, staffID, date string) (*attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE staff_id = $1 AND date = $2`

	record, err := scanAttendance(q.QueryRow(ctx, query, staffID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record by staff and date: %w", err)
	}
	return &record, nil
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			staff_id, date, check_in, check_out, break_start, break_end,
			overtime_status, approved_overtime_minutes, processed
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.StaffID,
		record.Date,
		record.CheckIn,
		record.CheckOut,
		record.BreakStart,
		record.BreakEnd,
		record.OvertimeStatus,
		record.ApprovedOvertimeMinutes,
		record.Processed,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return record, nil
}

// UpdateTimes implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpdateTimes(ctx context.Context, id string, patch attendance.TimePatch) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_in = $2, check_out = $3, break_start = $4, break_end = $5,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, patch.CheckIn, patch.CheckOut, patch.BreakStart, patch.BreakEnd)
	if err != nil {
		return fmt.Errorf("failed to update attendance times: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// ListByStaffAndRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByStaffAndRange(ctx context.Context, staffID, from, to string) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE staff_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// ListPendingWithCheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListPendingWithCheckOut(ctx context.Context, filter attendance.CandidateFilter) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE overtime_status = 'pending'
		  AND processed = FALSE
		  AND check_in IS NOT NULL
		  AND check_out IS NOT NULL
	`
	args := []interface{}{}
	if filter.From != "" {
		args = append(args, filter.From)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filter.To != "" {
		args = append(args, filter.To)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	if filter.StaffID != "" {
		args = append(args, filter.StaffID)
		query += fmt.Sprintf(" AND staff_id = $%d", len(args))
	}
	query += " ORDER BY date, staff_id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Decide implements attendance.AttendanceRepository. decided_at comes from
// the database clock, never from the caller.
func (a *attendanceRepository) Decide(ctx context.Context, id string, status attendance.OvertimeStatus, approvedMinutes int) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET overtime_status = $2, approved_overtime_minutes = $3,
			processed = TRUE, decided_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND processed = FALSE
	`

	tag, err := q.Exec(ctx, query, id, status, approvedMinutes)
	if err != nil {
		return fmt.Errorf("failed to record overtime decision: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either the record is gone or it was already decided; disambiguate
		// for the caller.
		if _, err := a.GetByID(ctx, id); err != nil {
			return err
		}
		return attendance.ErrAlreadyProcessed
	}
	return nil
}

// RevertDecision implements attendance.AttendanceRepository.
func (a *attendanceRepository) RevertDecision(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET overtime_status = 'pending', approved_overtime_minutes = 0,
			processed = FALSE, decided_at = NULL, updated_at = NOW()
		WHERE id = $1 AND processed = TRUE
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to revert overtime decision: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := a.GetByID(ctx, id); err != nil {
			return err
		}
		return attendance.ErrNotProcessed
	}
	return nil
}
