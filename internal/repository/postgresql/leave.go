package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/leave"
	"github.com/staffhub-ops/hr-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `
	id, staff_id, leave_type, start_date::text, end_date::text, total_days,
	status, reason, decided_by, decided_at, created_at, updated_at
`

func scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	err := row.Scan(
		&req.ID, &req.StaffID, &req.LeaveType, &req.StartDate, &req.EndDate, &req.TotalDays,
		&req.Status, &req.Reason, &req.DecidedBy, &req.DecidedAt, &req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

// Create implements leave.LeaveRepository.
func (l *leaveRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (staff_id, leave_type, start_date, end_date, total_days, status, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.StaffID, req.LeaveType, req.StartDate, req.EndDate,
		req.TotalDays, req.Status, req.Reason,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return req, nil
}

// GetByID implements leave.LeaveRepository.
func (l *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE id = $1`

	req, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return req, nil
}

// ListByStaffAndRange implements leave.LeaveRepository.
func (l *leaveRepository) ListByStaffAndRange(ctx context.Context, staffID, from, to string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE staff_id = $1 AND start_date <= $3 AND end_date >= $2
		ORDER BY start_date
	`

	return l.queryMany(ctx, q, query, staffID, from, to)
}

// ListApprovedOverlapping implements leave.LeaveRepository.
func (l *leaveRepository) ListApprovedOverlapping(ctx context.Context, staffID, from, to string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE staff_id = $1 AND status = 'approved'
		  AND start_date <= $3 AND end_date >= $2
		ORDER BY start_date
	`

	return l.queryMany(ctx, q, query, staffID, from, to)
}

func (l *leaveRepository) queryMany(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// UpdateStatus implements leave.LeaveRepository. decided_at is the database
// clock at commit time.
func (l *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status, decidedBy string) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests
		SET status = $2, decided_by = $3, decided_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, status, decidedBy)
	if err != nil {
		return fmt.Errorf("failed to update leave status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := l.GetByID(ctx, id); err != nil {
			return err
		}
		return leave.ErrLeaveRequestAlreadyProcessed
	}
	return nil
}
