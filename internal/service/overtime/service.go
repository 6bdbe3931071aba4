package overtime

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/staffhub-ops/hr-backend-go/internal/domain/attendance"
	"github.com/staffhub-ops/hr-backend-go/internal/domain/schedule"
	"github.com/staffhub-ops/hr-backend-go/internal/pkg/timeutil"
	"golang.org/x/sync/errgroup"
)

// Shifts longer than this raw span are assumed to contain a fixed unpaid
// break when no explicit break pair was clocked. Fixed business rule.
const (
	autoBreakTriggerMinutes = 300
	autoBreakMinutes        = 60
	scheduleBreakMinutes    = 60
)

type OvertimeServiceImpl struct {
	attendanceRepo   attendance.AttendanceRepository
	scheduleRepo     schedule.ScheduleRepository
	norm             *timeutil.Normalizer
	thresholdMinutes int
}

func NewOvertimeService(
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.ScheduleRepository,
	norm *timeutil.Normalizer,
	thresholdMinutes int,
) attendance.OvertimeService {
	return &OvertimeServiceImpl{
		attendanceRepo:   attendanceRepo,
		scheduleRepo:     scheduleRepo,
		norm:             norm,
		thresholdMinutes: thresholdMinutes,
	}
}

// Computation is the classifier's arithmetic for a single record.
type Computation struct {
	WorkedMinutes    int
	BreakMinutes     int
	ScheduledMinutes int
	OvertimeMinutes  int
	HasSchedule      bool
	IsCandidate      bool
}

// Compute derives worked vs. scheduled minutes for one attendance record.
// A day-off entry counts as no schedule: the whole shift is overtime
// territory.
func Compute(norm *timeutil.Normalizer, record attendance.AttendanceRecord, entry *schedule.ScheduleEntry, thresholdMinutes int) (Computation, error) {
	if record.CheckIn == nil || record.CheckOut == nil {
		return Computation{}, attendance.ErrMissingCheckOut
	}

	rawMinutes := int(record.CheckOut.Sub(*record.CheckIn).Minutes())

	breakMinutes := 0
	switch {
	case record.BreakStart != nil && record.BreakEnd != nil:
		breakMinutes = int(record.BreakEnd.Sub(*record.BreakStart).Minutes())
	case rawMinutes > autoBreakTriggerMinutes:
		breakMinutes = autoBreakMinutes
	}

	worked := rawMinutes - breakMinutes

	hasSchedule := entry != nil && entry.Kind == schedule.KindWork &&
		entry.StartTime != nil && entry.EndTime != nil
	scheduled := 0
	if hasSchedule {
		start := norm.Clock(record.Date, *entry.StartTime)
		end := norm.Clock(record.Date, *entry.EndTime)
		if start == nil || end == nil {
			return Computation{}, fmt.Errorf("schedule entry for %s/%s has malformed times", record.StaffID, record.Date)
		}
		scheduled = int(end.Sub(*start).Minutes())
		if entry.BreakIncluded {
			scheduled -= scheduleBreakMinutes
		}
	}

	overtime := worked - scheduled

	isCandidate := false
	if hasSchedule {
		isCandidate = overtime >= thresholdMinutes
	} else {
		isCandidate = overtime > 0
	}

	return Computation{
		WorkedMinutes:    worked,
		BreakMinutes:     breakMinutes,
		ScheduledMinutes: scheduled,
		OvertimeMinutes:  overtime,
		HasSchedule:      hasSchedule,
		IsCandidate:      isCandidate,
	}, nil
}

// Candidates implements attendance.OvertimeService.
func (s *OvertimeServiceImpl) Candidates(ctx context.Context, filter attendance.CandidateFilter) ([]attendance.OvertimeCandidate, error) {
	records, err := s.attendanceRepo.ListPendingWithCheckOut(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending attendance: %w", err)
	}

	candidates := make([]attendance.OvertimeCandidate, 0, len(records))
	for _, record := range records {
		entry, err := s.scheduleRepo.GetByStaffAndDate(ctx, record.StaffID, record.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch schedule for %s/%s: %w", record.StaffID, record.Date, err)
		}

		comp, err := Compute(s.norm, record, entry, s.thresholdMinutes)
		if err != nil {
			if errors.Is(err, attendance.ErrMissingCheckOut) {
				continue
			}
			return nil, err
		}
		if !comp.IsCandidate {
			continue
		}

		candidates = append(candidates, attendance.OvertimeCandidate{
			Record:           record,
			WorkedMinutes:    comp.WorkedMinutes,
			BreakMinutes:     comp.BreakMinutes,
			ScheduledMinutes: comp.ScheduledMinutes,
			OvertimeMinutes:  comp.OvertimeMinutes,
			HasSchedule:      comp.HasSchedule,
		})
	}

	return candidates, nil
}

// Approve implements attendance.OvertimeService. The manager may adjust the
// approved minute count; absent an adjustment the computed figure stands.
func (s *OvertimeServiceImpl) Approve(ctx context.Context, id string, req attendance.ApproveOvertimeRequest) error {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record.Processed {
		return attendance.ErrAlreadyProcessed
	}

	minutes := 0
	if req.ApprovedMinutes != nil {
		minutes = *req.ApprovedMinutes
	} else {
		entry, err := s.scheduleRepo.GetByStaffAndDate(ctx, record.StaffID, record.Date)
		if err != nil {
			return fmt.Errorf("failed to fetch schedule: %w", err)
		}
		comp, err := Compute(s.norm, record, entry, s.thresholdMinutes)
		if err != nil {
			return err
		}
		minutes = comp.OvertimeMinutes
	}

	return s.attendanceRepo.Decide(ctx, id, attendance.OvertimeApproved, minutes)
}

// Reject implements attendance.OvertimeService. Approved minutes are forced
// to zero.
func (s *OvertimeServiceImpl) Reject(ctx context.Context, id string) error {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record.Processed {
		return attendance.ErrAlreadyProcessed
	}

	return s.attendanceRepo.Decide(ctx, id, attendance.OvertimeRejected, 0)
}

// Revert implements attendance.OvertimeService. It clears the decision and
// makes the record re-eligible for classification.
func (s *OvertimeServiceImpl) Revert(ctx context.Context, id string) error {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !record.Processed {
		return attendance.ErrNotProcessed
	}

	return s.attendanceRepo.RevertDecision(ctx, id)
}

// BulkDecide applies one decision to every record in the currently filtered
// candidate set. Writes are issued concurrently and settle independently;
// the call blocks until all have settled.
func (s *OvertimeServiceImpl) BulkDecide(ctx context.Context, req attendance.BulkDecideRequest) (attendance.BulkDecideResult, error) {
	candidates, err := s.Candidates(ctx, req.Filter)
	if err != nil {
		return attendance.BulkDecideResult{}, err
	}

	var (
		g         errgroup.Group
		mu        sync.Mutex
		processed int
		failures  []attendance.DecisionError
	)
	for _, candidate := range candidates {
		id := candidate.Record.ID
		minutes := candidate.OvertimeMinutes
		g.Go(func() error {
			var decideErr error
			switch req.Decision {
			case attendance.BulkApprove:
				decideErr = s.attendanceRepo.Decide(ctx, id, attendance.OvertimeApproved, minutes)
			case attendance.BulkReject:
				decideErr = s.attendanceRepo.Decide(ctx, id, attendance.OvertimeRejected, 0)
			default:
				decideErr = fmt.Errorf("unknown bulk decision %q", req.Decision)
			}

			mu.Lock()
			if decideErr != nil {
				failures = append(failures, attendance.DecisionError{RecordID: id, Message: decideErr.Error()})
			} else {
				processed++
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if failures == nil {
		failures = []attendance.DecisionError{}
	}
	return attendance.BulkDecideResult{Processed: processed, Errors: failures}, nil
}
