package leave

import "context"

type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByStaffAndRange(ctx context.Context, staffID, from, to string) ([]LeaveRequest, error)

	// ListApprovedOverlapping returns approved requests whose [start,end]
	// range overlaps [from,to].
	ListApprovedOverlapping(ctx context.Context, staffID, from, to string) ([]LeaveRequest, error)

	// UpdateStatus transitions the request; the decision timestamp is
	// assigned by the store at commit time.
	UpdateStatus(ctx context.Context, id string, status Status, decidedBy string) error
}

type LeaveService interface {
	Submit(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, id, decidedBy string) (LeaveResponse, error)
	Reject(ctx context.Context, id, decidedBy string) (LeaveResponse, error)
	ListByStaffAndRange(ctx context.Context, staffID, from, to string) ([]LeaveResponse, error)
}
