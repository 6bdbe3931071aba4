package attendance

import "time"

// ========================================
// IMPORT / RECONCILIATION DTOs
// ========================================

// ImportRow is one parsed line of tabular time-clock input. All values are
// kept as the original strings; normalization happens during classification
// so that analyze and apply derive identical results from identical text.
type ImportRow struct {
	RowNumber      int
	DocID          string
	StaffID        string
	StaffName      string
	Date           string
	CheckInTime    string
	CheckOutTime   string
	BreakStartTime string
	BreakEndTime   string
}

type RowKind string

const (
	RowCreate   RowKind = "create"
	RowUpdate   RowKind = "update"
	RowNoChange RowKind = "no_change"
	RowError    RowKind = "error"
)

// FieldDiff records one comparison field that differs between the stored
// record and the imported row.
type FieldDiff struct {
	Field string     `json:"field"`
	From  *time.Time `json:"from"`
	To    *time.Time `json:"to"`
}

// TimePatch carries the row's normalized values for the fixed comparison
// field set. An update writes all four; a nil means the row's cell was
// empty and clears the stored value.
type TimePatch struct {
	CheckIn    *time.Time
	CheckOut   *time.Time
	BreakStart *time.Time
	BreakEnd   *time.Time
}

// RowClassification is the closed per-row outcome of the analysis phase.
// Exactly one of the Kind-specific fields is meaningful: Candidate for
// RowCreate, TargetID/Patch/Diffs for RowUpdate, Message for RowError.
type RowClassification struct {
	RowNumber int     `json:"row_number"`
	Kind      RowKind `json:"kind"`
	StaffID   string  `json:"staff_id,omitempty"`
	StaffName string  `json:"staff_name,omitempty"`
	Date      string  `json:"date,omitempty"`
	DocID     string  `json:"doc_id,omitempty"`

	Candidate *AttendanceRecord `json:"-"`
	TargetID  string            `json:"-"`
	Patch     *TimePatch        `json:"-"`
	Diffs     []FieldDiff       `json:"diffs,omitempty"`
	Message   string            `json:"message,omitempty"`
}

// AnalyzeResult is the four-bucket read-only breakdown of an import.
type AnalyzeResult struct {
	Creates   []RowClassification `json:"creates"`
	Updates   []RowClassification `json:"updates"`
	NoChanges []RowClassification `json:"no_changes"`
	Errors    []RowClassification `json:"errors"`
}

// RowErrorItem is one entry of the de-duplicated apply error list: at most
// one per affected row, first occurrence wins.
type RowErrorItem struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type ApplyResult struct {
	Summary   string         `json:"summary"`
	Processed int            `json:"processed"`
	Created   int            `json:"created"`
	Updated   int            `json:"updated"`
	Errors    []RowErrorItem `json:"errors"`
}

// ========================================
// OVERTIME DTOs
// ========================================

// OvertimeCandidate is an attendance record whose worked-minus-scheduled
// minutes exceed policy, awaiting a manager decision.
type OvertimeCandidate struct {
	Record           AttendanceRecord `json:"record"`
	WorkedMinutes    int              `json:"worked_minutes"`
	BreakMinutes     int              `json:"break_minutes"`
	ScheduledMinutes int              `json:"scheduled_minutes"`
	OvertimeMinutes  int              `json:"overtime_minutes"`
	HasSchedule      bool             `json:"has_schedule"`
}

type CandidateFilter struct {
	From    string `json:"from"`
	To      string `json:"to"`
	StaffID string `json:"staff_id"`
}

type ApproveOvertimeRequest struct {
	// ApprovedMinutes overrides the computed figure when the manager adjusts
	// it; nil approves the computed minutes as-is.
	ApprovedMinutes *int `json:"approved_minutes"`
}

type BulkDecision string

const (
	BulkApprove BulkDecision = "approve"
	BulkReject  BulkDecision = "reject"
)

type BulkDecideRequest struct {
	Decision BulkDecision    `json:"decision"`
	Filter   CandidateFilter `json:"filter"`
}

type DecisionError struct {
	RecordID string `json:"record_id"`
	Message  string `json:"message"`
}

type BulkDecideResult struct {
	Processed int             `json:"processed"`
	Errors    []DecisionError `json:"errors"`
}
