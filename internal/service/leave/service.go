package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub-ops/hr-backend-go/internal/domain/leave"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/staff"
)

type LeaveServiceImpl struct {
	leaveRepo leave.LeaveRepository
	staffRepo staff.StaffRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository, staffRepo staff.StaffRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo: leaveRepo,
		staffRepo: staffRepo,
	}
}

func toResponse(req leave.LeaveRequest) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:        req.ID,
		StaffID:   req.StaffID,
		LeaveType: req.LeaveType,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		TotalDays: req.TotalDays,
		Status:    string(req.Status),
		Reason:    req.Reason,
	}
}

func inclusiveDays(startDate, endDate string) float64 {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return 0
	}
	return end.Sub(start).Hours()/24 + 1
}

// Submit implements leave.LeaveService. New requests always start pending.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	member, err := s.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !member.IsActive {
		return leave.LeaveResponse{}, staff.ErrStaffInactive
	}

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		StaffID:   req.StaffID,
		LeaveType: req.LeaveType,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		TotalDays: inclusiveDays(req.StartDate, req.EndDate),
		Status:    leave.StatusPending,
		Reason:    req.Reason,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return toResponse(created), nil
}

func (s *LeaveServiceImpl) decide(ctx context.Context, id, decidedBy string, status leave.Status) (leave.LeaveResponse, error) {
	req, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if req.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	if err := s.leaveRepo.UpdateStatus(ctx, id, status, decidedBy); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave status: %w", err)
	}

	updated, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return toResponse(updated), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id, decidedBy string) (leave.LeaveResponse, error) {
	return s.decide(ctx, id, decidedBy, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, id, decidedBy string) (leave.LeaveResponse, error) {
	return s.decide(ctx, id, decidedBy, leave.StatusRejected)
}

// ListByStaffAndRange implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByStaffAndRange(ctx context.Context, staffID, from, to string) ([]leave.LeaveResponse, error) {
	requests, err := s.leaveRepo.ListByStaffAndRange(ctx, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}
	return responses, nil
}
