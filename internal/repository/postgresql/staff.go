package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/staff"
	"github.com/staffhub-ops/hr-backend-go/internal/pkg/database"
)

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}

// GetByID implements staff.StaffRepository.
func (s *staffRepository) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, code, full_name, email, phone, is_active, created_at, updated_at
		FROM staff
		WHERE id = $1
	`

	var member staff.Staff
	err := q.QueryRow(ctx, query, id).Scan(
		&member.ID, &member.Code, &member.FullName, &member.Email,
		&member.Phone, &member.IsActive, &member.CreatedAt, &member.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff member: %w", err)
	}
	return member, nil
}

// ListActive implements staff.StaffRepository.
func (s *staffRepository) ListActive(ctx context.Context) ([]staff.Staff, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, code, full_name, email, phone, is_active, created_at, updated_at
		FROM staff
		WHERE is_active = TRUE
		ORDER BY code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active staff: %w", err)
	}
	defer rows.Close()

	var members []staff.Staff
	for rows.Next() {
		var member staff.Staff
		if err := rows.Scan(
			&member.ID, &member.Code, &member.FullName, &member.Email,
			&member.Phone, &member.IsActive, &member.CreatedAt, &member.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan staff member: %w", err)
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

// GetJobHistory implements staff.StaffRepository.
func (s *staffRepository) GetJobHistory(ctx context.Context, staffID string) ([]staff.JobHistoryEntry, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, staff_id, position, department, pay_type,
			   base_salary, hourly_rate, standard_daily_hours, start_date, created_at
		FROM job_history
		WHERE staff_id = $1
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to get job history: %w", err)
	}
	defer rows.Close()

	var history []staff.JobHistoryEntry
	for rows.Next() {
		var entry staff.JobHistoryEntry
		if err := rows.Scan(
			&entry.ID, &entry.StaffID, &entry.Position, &entry.Department, &entry.PayType,
			&entry.BaseSalary, &entry.HourlyRate, &entry.StandardDailyHours, &entry.StartDate, &entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job history entry: %w", err)
		}
		history = append(history, entry)
	}
	return history, rows.Err()
}
