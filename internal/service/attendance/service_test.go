package attendance

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/staffhub-ops/hr-backend-go/internal/domain/attendance"
	"github.com/staffhub-ops/hr-backend-go/internal/pkg/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo is an in-memory attendance.AttendanceRepository used across
// the import and reconciliation tests.
type memoryRepo struct {
	mu      sync.Mutex
	records map[string]attendance.AttendanceRecord
	nextID  int

	createErr error
	creates   int
	updates   int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{records: make(map[string]attendance.AttendanceRecord)}
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (attendance.AttendanceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[id]
	if !ok {
		return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
	}
	return record, nil
}

func (m *memoryRepo) GetByStaffAndDate(_ context.Context, staffID, date string) (*attendance.AttendanceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, record := range m.records {
		if record.StaffID == staffID && record.Date == date {
			r := record
			return &r, nil
		}
	}
	return nil, nil
}

func (m *memoryRepo) Create(_ context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return attendance.AttendanceRecord{}, m.createErr
	}
	m.nextID++
	record.ID = fmt.Sprintf("rec-%d", m.nextID)
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	m.records[record.ID] = record
	m.creates++
	return record, nil
}

func (m *memoryRepo) UpdateTimes(_ context.Context, id string, patch attendance.TimePatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[id]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	record.CheckIn = patch.CheckIn
	record.CheckOut = patch.CheckOut
	record.BreakStart = patch.BreakStart
	record.BreakEnd = patch.BreakEnd
	m.records[id] = record
	m.updates++
	return nil
}

func (m *memoryRepo) ListByStaffAndRange(_ context.Context, staffID, from, to string) ([]attendance.AttendanceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []attendance.AttendanceRecord
	for _, record := range m.records {
		if record.StaffID == staffID && from <= record.Date && record.Date <= to {
			out = append(out, record)
		}
	}
	return out, nil
}

func (m *memoryRepo) ListPendingWithCheckOut(_ context.Context, filter attendance.CandidateFilter) ([]attendance.AttendanceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []attendance.AttendanceRecord
	for _, record := range m.records {
		if record.Processed || record.CheckIn == nil || record.CheckOut == nil {
			continue
		}
		if filter.StaffID != "" && record.StaffID != filter.StaffID {
			continue
		}
		if filter.From != "" && record.Date < filter.From {
			continue
		}
		if filter.To != "" && record.Date > filter.To {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

func (m *memoryRepo) Decide(_ context.Context, id string, status attendance.OvertimeStatus, approvedMinutes int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[id]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	if record.Processed {
		return attendance.ErrAlreadyProcessed
	}
	now := time.Now()
	record.OvertimeStatus = status
	record.ApprovedOvertimeMinutes = approvedMinutes
	record.Processed = true
	record.DecidedAt = &now
	m.records[id] = record
	return nil
}

func (m *memoryRepo) RevertDecision(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[id]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	if !record.Processed {
		return attendance.ErrNotProcessed
	}
	record.OvertimeStatus = attendance.OvertimePending
	record.ApprovedOvertimeMinutes = 0
	record.Processed = false
	record.DecidedAt = nil
	m.records[id] = record
	return nil
}

func (m *memoryRepo) seed(t *testing.T, record attendance.AttendanceRecord) attendance.AttendanceRecord {
	t.Helper()
	saved, err := m.Create(context.Background(), record)
	require.NoError(t, err)
	m.creates--
	return saved
}

func testNormalizer(t *testing.T) *timeutil.Normalizer {
	t.Helper()
	norm, err := timeutil.NewNormalizer("Asia/Bangkok")
	require.NoError(t, err)
	return norm
}

const csvHeader = "AttendanceDocId,StaffId,StaffName,Date,CheckInTime,CheckOutTime,BreakStartTime,BreakEndTime\n"

func TestAnalyzeClassifiesNewRowAsCreate(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewImportService(repo, testNormalizer(t))

	result, err := svc.Analyze(context.Background(),
		csvHeader+",s1,Ploy,2025-09-01,09:00,18:00,,\n")
	require.NoError(t, err)

	require.Len(t, result.Creates, 1)
	assert.Empty(t, result.Updates)
	assert.Empty(t, result.NoChanges)
	assert.Empty(t, result.Errors)

	create := result.Creates[0]
	assert.Equal(t, 2, create.RowNumber)
	require.NotNil(t, create.Candidate)
	assert.Equal(t, "s1", create.Candidate.StaffID)
	assert.Equal(t, attendance.OvertimePending, create.Candidate.OvertimeStatus)
	require.NotNil(t, create.Candidate.CheckIn)
	// 09:00 Bangkok wall clock is 02:00 UTC.
	assert.Equal(t, "2025-09-01T02:00:00Z", create.Candidate.CheckIn.UTC().Format(time.RFC3339))

	// Analysis must never write.
	assert.Equal(t, 0, repo.creates)
	assert.Equal(t, 0, repo.updates)
}

func TestAnalyzeDocIDPaths(t *testing.T) {
	repo := newMemoryRepo()
	norm := testNormalizer(t)
	svc := NewImportService(repo, norm)

	stored := repo.seed(t, attendance.AttendanceRecord{
		StaffID: "s1",
		Date:    "2025-09-01",
		CheckIn: norm.Clock("2025-09-01", "09:00"),
	})

	text := csvHeader +
		stored.ID + ",s1,Ploy,2025-09-01,09:00,18:00,,\n" + // differs: check_out added
		stored.ID + ",s1,Ploy,2025-09-01,09:00,,,\n" + // identical
		stored.ID + ",s2,Mek,2025-09-01,09:00,,,\n" + // identity mismatch
		"ghost,s1,Ploy,2025-09-01,09:00,,,\n" // unknown id

	result, err := svc.Analyze(context.Background(), text)
	require.NoError(t, err)

	require.Len(t, result.Updates, 1)
	update := result.Updates[0]
	assert.Equal(t, stored.ID, update.TargetID)
	require.Len(t, update.Diffs, 1)
	assert.Equal(t, "check_out", update.Diffs[0].Field)

	require.Len(t, result.NoChanges, 1)
	assert.Equal(t, 3, result.NoChanges[0].RowNumber)

	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0].Message, "different staff member")
	assert.Contains(t, result.Errors[1].Message, "identifier not found")
}

func TestAnalyzeEquivalentClockFormsAreNoChange(t *testing.T) {
	repo := newMemoryRepo()
	norm := testNormalizer(t)
	svc := NewImportService(repo, norm)

	stored := repo.seed(t, attendance.AttendanceRecord{
		StaffID: "s1",
		Date:    "2025-09-01",
		CheckIn: norm.Clock("2025-09-01", "09:00:00"),
	})

	// HH:mm versus HH:mm:ss for the same instant must not produce a diff.
	result, err := svc.Analyze(context.Background(),
		csvHeader+stored.ID+",s1,Ploy,2025-09-01,09:00,,,\n")
	require.NoError(t, err)

	assert.Len(t, result.NoChanges, 1)
	assert.Empty(t, result.Updates)
}

func TestAnalyzeDuplicateWithoutDocIDIsError(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewImportService(repo, testNormalizer(t))

	repo.seed(t, attendance.AttendanceRecord{StaffID: "s1", Date: "2025-09-01"})

	result, err := svc.Analyze(context.Background(),
		csvHeader+",s1,Ploy,2025-09-01,09:00,,,\n")
	require.NoError(t, err)

	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, "attendancedocid")
	assert.Empty(t, result.Creates)
	assert.Empty(t, result.Updates)
}

func TestAnalyzeRowLevelValidation(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewImportService(repo, testNormalizer(t))

	text := csvHeader +
		",,Ploy,2025-09-01,09:00,,,\n" + // missing staff id
		",s1,Ploy,,09:00,,,\n" + // missing date
		",s1,Ploy,01/09/2025,09:00,,,\n" + // bad date format
		",s1,Ploy,2025-09-01,9am,,,\n" // bad clock format

	result, err := svc.Analyze(context.Background(), text)
	require.NoError(t, err)

	require.Len(t, result.Errors, 4)
	assert.Contains(t, result.Errors[0].Message, "staff identifier")
	assert.Contains(t, result.Errors[1].Message, "missing date")
	assert.Contains(t, result.Errors[2].Message, "invalid date")
	assert.Contains(t, result.Errors[3].Message, "checkintime")
	assert.Equal(t, 0, repo.creates)
}

func TestAnalyzeStructuralErrors(t *testing.T) {
	svc := NewImportService(newMemoryRepo(), testNormalizer(t))

	_, err := svc.Analyze(context.Background(), "")
	assert.ErrorIs(t, err, attendance.ErrEmptyInput)

	_, err = svc.Analyze(context.Background(), csvHeader)
	assert.ErrorIs(t, err, attendance.ErrEmptyInput)

	_, err = svc.Analyze(context.Background(), "StaffName,CheckInTime\nPloy,09:00\n")
	assert.ErrorIs(t, err, attendance.ErrMissingRequiredColumns)
}

func TestApplyMixedBatch(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewImportService(repo, testNormalizer(t))

	seeded := repo.seed(t, attendance.AttendanceRecord{StaffID: "s2", Date: "2025-09-01"})

	text := csvHeader +
		",s1,Ploy,2025-09-01,09:00,18:00,,\n" + // create
		",s3,Mek,,09:00,,,\n" + // missing date
		",s2,Chai,2025-09-01,09:00,,,\n" // duplicate natural key

	result, err := svc.Apply(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 0, result.Updated)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 3, result.Errors[0].Row)
	assert.Equal(t, 4, result.Errors[1].Row)
	assert.Equal(t, "Processed 1 rows: 1 created, 0 updated, 2 failed.", result.Summary)

	// The seeded record was untouched.
	stored, err := repo.GetByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.CheckIn)
}

func TestApplyPartialWriteFailure(t *testing.T) {
	repo := newMemoryRepo()
	norm := testNormalizer(t)
	svc := NewImportService(repo, norm)

	stored := repo.seed(t, attendance.AttendanceRecord{
		StaffID: "s1",
		Date:    "2025-09-01",
		CheckIn: norm.Clock("2025-09-01", "08:00"),
	})
	repo.createErr = errors.New("disk full")

	text := csvHeader +
		",s9,New,2025-09-02,09:00,,,\n" + // create, will fail
		stored.ID + ",s1,Ploy,2025-09-01,09:30,,,\n" // update, succeeds

	result, err := svc.Apply(context.Background(), text)
	require.NoError(t, err)

	// One write failing never blocks the others.
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Updated)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)

	updated, err := repo.GetByID(context.Background(), stored.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.CheckIn)
	assert.Equal(t, "2025-09-01T02:30:00Z", updated.CheckIn.UTC().Format(time.RFC3339))
}

func TestApplyDeterministicOverIdenticalText(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewImportService(repo, testNormalizer(t))

	text := csvHeader + ",s1,Ploy,2025-09-01,09:00,18:00,,\n"

	analysis, err := svc.Analyze(context.Background(), text)
	require.NoError(t, err)
	require.Len(t, analysis.Creates, 1)

	result, err := svc.Apply(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)

	// Re-applying the same text now classifies the row as a natural-key
	// conflict, because the record exists and the row has no identifier.
	again, err := svc.Apply(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Created)
	require.Len(t, again.Errors, 1)
	assert.Contains(t, again.Errors[0].Message, "attendancedocid")
}
