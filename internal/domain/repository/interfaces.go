package repository

import (
	"context"

	"BioPulse/internal/domain/models"
)

// HoldingsSource is one ETF holdings feed. Implementations fetch and
// normalize; they never filter below their configured weight threshold
// after returning.
type HoldingsSource interface {
	// Name identifies the feed in logs and metrics.
	Name() string
	// Source tags which merged weight field this feed populates.
	Source() models.ETFSource
	// Holdings returns normalized holdings at or above the weight threshold.
	Holdings(ctx context.Context) ([]models.RawHolding, error)
}

// ApprovalsSource is the regulatory filings feed.
type ApprovalsSource interface {
	// Recent returns filings whose primary submission falls inside the
	// configured lookback window. Single page, hard-capped.
	Recent(ctx context.Context) ([]*models.Approval, error)
	// ByCompany searches filings sponsored by the named company.
	ByCompany(ctx context.Context, company string) ([]*models.Approval, error)
}

// TrialsSource is the clinical-trials registry feed.
type TrialsSource interface {
	// Search returns up to the configured cap of registrations matching term.
	Search(ctx context.Context, term string) ([]*models.Trial, error)
}

// WebsiteProber discovers a company's canonical site and probes it for
// well-known sub-pages. A nil profile with nil error means "nothing found",
// not a failure.
type WebsiteProber interface {
	Probe(ctx context.Context, symbol string) (*models.WebsiteProfile, error)
}

// SnapshotStore holds the single current snapshot. Replace is atomic with
// respect to concurrent Current calls.
type SnapshotStore interface {
	Current() *models.Snapshot
	Replace(s *models.Snapshot)
}

// SnapshotSink persists a finished snapshot outside the process.
type SnapshotSink interface {
	Persist(ctx context.Context, s *models.Snapshot) error
}

type Metrics interface {
	RecordRun(status string, seconds float64)
	RecordAdapterError(adapter string)
	RecordDatasetSize(dataset string, n int)
}
