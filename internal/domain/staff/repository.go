package staff

import "context"

type StaffRepository interface {
	GetByID(ctx context.Context, id string) (Staff, error)
	ListActive(ctx context.Context) ([]Staff, error)
	GetJobHistory(ctx context.Context, staffID string) ([]JobHistoryEntry, error)
}
