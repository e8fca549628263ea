package repository

import (
	"sync/atomic"

	"BioPulse/internal/domain/models"
	drepo "BioPulse/internal/domain/repository"
)

// SnapshotStore keeps the single current snapshot behind an atomic pointer.
// Readers always see a complete generation; Replace swaps the whole snapshot
// in one step and never blocks readers.
type SnapshotStore struct {
	current atomic.Pointer[models.Snapshot]
}

// NewSnapshotStore returns a store seeded with an empty snapshot, so the API
// serves empty lists rather than nils before the first run completes.
func NewSnapshotStore() *SnapshotStore {
	s := &SnapshotStore{}
	s.current.Store(models.EmptySnapshot())
	return s
}

func (s *SnapshotStore) Current() *models.Snapshot {
	return s.current.Load()
}

func (s *SnapshotStore) Replace(snap *models.Snapshot) {
	if snap == nil {
		return
	}
	s.current.Store(snap)
}

var _ drepo.SnapshotStore = (*SnapshotStore)(nil)
