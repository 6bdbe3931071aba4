package attendance

import "context"

// ImportService is the two-phase bulk reconciliation engine. Analyze reads
// and classifies without writing; Apply must be handed the identical tabular
// text and re-derives its writes from it.
type ImportService interface {
	Analyze(ctx context.Context, tabularText string) (AnalyzeResult, error)
	Apply(ctx context.Context, tabularText string) (ApplyResult, error)
}

type OvertimeService interface {
	Candidates(ctx context.Context, filter CandidateFilter) ([]OvertimeCandidate, error)
	Approve(ctx context.Context, id string, req ApproveOvertimeRequest) error
	Reject(ctx context.Context, id string) error
	Revert(ctx context.Context, id string) error
	BulkDecide(ctx context.Context, req BulkDecideRequest) (BulkDecideResult, error)
}
