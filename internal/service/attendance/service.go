package attendance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/staffhub-ops/hr-backend-go/internal/domain/attendance"
	"github.com/staffhub-ops/hr-backend-go/internal/pkg/timeutil"
	"golang.org/x/sync/errgroup"
)

type ImportServiceImpl struct {
	repo attendance.AttendanceRepository
	norm *timeutil.Normalizer
}

func NewImportService(repo attendance.AttendanceRepository, norm *timeutil.Normalizer) attendance.ImportService {
	return &ImportServiceImpl{repo: repo, norm: norm}
}

// classify runs the full read-only pass: parse, resolve lookups, classify
// every row. Both Analyze and Apply go through here so the two phases are
// deterministic over identical input.
func (s *ImportServiceImpl) classify(ctx context.Context, tabularText string) ([]attendance.RowClassification, error) {
	rows, err := parseTabular(tabularText)
	if err != nil {
		return nil, err
	}

	results := make([]attendance.RowClassification, 0, len(rows))
	for _, row := range rows {
		lr, err := s.resolve(ctx, row)
		if err != nil {
			return nil, err
		}
		results = append(results, classifyRow(s.norm, row, lr))
	}
	return results, nil
}

// resolve fetches whatever stored state the classifier needs for one row.
// Only well-formed rows hit the store; a store failure here is
// infrastructural and aborts the call, unlike row-level outcomes.
func (s *ImportServiceImpl) resolve(ctx context.Context, row attendance.ImportRow) (lookupResult, error) {
	if _, ok := validateRow(row); !ok {
		return lookupResult{}, nil
	}

	if row.DocID != "" {
		record, err := s.repo.GetByID(ctx, row.DocID)
		if err != nil {
			if errors.Is(err, attendance.ErrAttendanceNotFound) {
				return lookupResult{idNotFound: true}, nil
			}
			return lookupResult{}, fmt.Errorf("failed to fetch attendance %s: %w", row.DocID, err)
		}
		return lookupResult{target: &record}, nil
	}

	hit, err := s.repo.GetByStaffAndDate(ctx, row.StaffID, row.Date)
	if err != nil {
		return lookupResult{}, fmt.Errorf("failed to look up attendance by staff and date: %w", err)
	}
	return lookupResult{naturalHit: hit}, nil
}

// Analyze implements attendance.ImportService. It performs zero writes.
func (s *ImportServiceImpl) Analyze(ctx context.Context, tabularText string) (attendance.AnalyzeResult, error) {
	classifications, err := s.classify(ctx, tabularText)
	if err != nil {
		return attendance.AnalyzeResult{}, err
	}

	result := attendance.AnalyzeResult{
		Creates:   []attendance.RowClassification{},
		Updates:   []attendance.RowClassification{},
		NoChanges: []attendance.RowClassification{},
		Errors:    []attendance.RowClassification{},
	}
	for _, c := range classifications {
		switch c.Kind {
		case attendance.RowCreate:
			result.Creates = append(result.Creates, c)
		case attendance.RowUpdate:
			result.Updates = append(result.Updates, c)
		case attendance.RowNoChange:
			result.NoChanges = append(result.NoChanges, c)
		case attendance.RowError:
			result.Errors = append(result.Errors, c)
		}
	}
	return result, nil
}

// writeOutcome is the settled result of one row's write task.
type writeOutcome struct {
	row     int
	created bool
	updated bool
	err     error
}

// Apply implements attendance.ImportService. It re-derives its writes from
// the same tabular text used for analysis, then issues them concurrently.
// Each write succeeds or fails on its own; partial success is the expected
// steady state of a large import, so nothing is rolled back or retried.
func (s *ImportServiceImpl) Apply(ctx context.Context, tabularText string) (attendance.ApplyResult, error) {
	classifications, err := s.classify(ctx, tabularText)
	if err != nil {
		return attendance.ApplyResult{}, err
	}

	var (
		g        errgroup.Group
		mu       sync.Mutex
		outcomes []writeOutcome
	)
	for _, c := range classifications {
		switch c.Kind {
		case attendance.RowCreate:
			candidate := *c.Candidate
			row := c.RowNumber
			g.Go(func() error {
				_, createErr := s.repo.Create(ctx, candidate)
				mu.Lock()
				outcomes = append(outcomes, writeOutcome{row: row, created: createErr == nil, err: createErr})
				mu.Unlock()
				return nil
			})
		case attendance.RowUpdate:
			targetID, patch, row := c.TargetID, *c.Patch, c.RowNumber
			g.Go(func() error {
				updateErr := s.repo.UpdateTimes(ctx, targetID, patch)
				mu.Lock()
				outcomes = append(outcomes, writeOutcome{row: row, updated: updateErr == nil, err: updateErr})
				mu.Unlock()
				return nil
			})
		}
	}
	// Workers always return nil; Wait only blocks until every write has
	// settled.
	_ = g.Wait()

	processed := 0
	created := 0
	updated := 0
	for _, c := range classifications {
		if c.Kind != attendance.RowError {
			processed++
		}
	}

	// De-duplicate: at most one reported error per row, first occurrence
	// wins, analysis-time errors merged with write-time ones.
	errByRow := make(map[int]string)
	for _, c := range classifications {
		if c.Kind == attendance.RowError {
			if _, seen := errByRow[c.RowNumber]; !seen {
				errByRow[c.RowNumber] = c.Message
			}
		}
	}
	for _, o := range outcomes {
		if o.created {
			created++
		}
		if o.updated {
			updated++
		}
		if o.err != nil {
			if _, seen := errByRow[o.row]; !seen {
				errByRow[o.row] = o.err.Error()
			}
		}
	}

	errorList := make([]attendance.RowErrorItem, 0, len(errByRow))
	for row, message := range errByRow {
		errorList = append(errorList, attendance.RowErrorItem{Row: row, Message: message})
	}
	sort.Slice(errorList, func(i, j int) bool { return errorList[i].Row < errorList[j].Row })

	summary := fmt.Sprintf("Processed %d rows: %d created, %d updated, %d failed.",
		processed, created, updated, len(errorList))

	return attendance.ApplyResult{
		Summary:   summary,
		Processed: processed,
		Created:   created,
		Updated:   updated,
		Errors:    errorList,
	}, nil
}
