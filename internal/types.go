package internal

// CellKind classifies one raw spreadsheet cell before normalization.
type CellKind string

const (
	CellBlank CellKind = "blank"
	CellText  CellKind = "text"
	CellNum   CellKind = "number"
	CellTime  CellKind = "datetime"
)

// Cell is one cell of the source grid. Time is meaningful only for
// CellTime cells; Text carries the raw textual form otherwise.
type Cell struct {
	Kind CellKind
	Text string
	Time CellClock
}

// CellClock holds the decoded datetime of a CellTime cell as broken-out
// components, keeping the grid decoupled from time.Time formatting rules.
type CellClock struct {
	Year, Month, Day     int
	Hour, Minute, Second int
}

// TrackKind tags the normalized exam-track category.
type TrackKind string

const (
	TrackPhysics     TrackKind = "physics"
	TrackHistory     TrackKind = "history"
	TrackUnspecified TrackKind = "unspecified"
	TrackOther       TrackKind = "other"
)

// Track is the exam-track variant. Raw is set only for TrackOther and
// carries the unrecognized source value for the validator to report.
type Track struct {
	Kind TrackKind
	Raw  string
}

func (t Track) String() string {
	switch t.Kind {
	case TrackPhysics:
		return "物理"
	case TrackHistory:
		return "历史"
	case TrackOther:
		return t.Raw
	default:
		return ""
	}
}

// Submission is the canonical record extracted from one survey row.
// Optional fields are empty strings when absent.
type Submission struct {
	Nickname         string
	ExamYear         string
	Track            Track
	SZMock1Rank      string
	SZMock2Rank      string
	GaokaoScore      string
	GaokaoRank       string
	University       string
	Major            string
	UniversityReview string
	MajorReview      string
	Advice           string

	// SubmitTime feeds filename derivation at import time only.
	// It is never persisted and never required to be parseable.
	SubmitTime string
}

// CaseStatus is the per-record build outcome.
type CaseStatus string

const (
	CaseOK       CaseStatus = "ok"
	CaseDegraded CaseStatus = "degraded"
)

// PublishedCase is the per-build projection of one Submission used by the
// aggregation and index builders. It is rebuilt from scratch on every run.
type PublishedCase struct {
	Title            string
	Slug             string
	SourceFile       string
	Nickname         string
	University       string
	Major            string
	UniversityReview string
	MajorReview      string
	Advice           string
	Status           CaseStatus
	FailureReason    string
}

// BuildRun is one recorded build in the ledger.
type BuildRun struct {
	ID         int
	StartedAt  string
	Cases      int
	Degraded   int
	TokensNew  int
	TokensGone int
}

// LedgerRecord is one record row of a recorded build.
type LedgerRecord struct {
	BuildID    int
	Slug       string
	SourceFile string
	Title      string
	Status     string
}
