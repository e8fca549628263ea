package repository

import (
	"context"
	"testing"
	"time"

	"BioPulse/internal/domain/models"
	"BioPulse/pkg/cache"
)

func TestCacheSinkRoundTrip(t *testing.T) {
	sink := NewCacheSink(cache.NewMemoryCache(), time.Hour)

	snap := &models.Snapshot{
		Companies:   []*models.Company{{Symbol: "VRTX", Name: "Vertex Pharmaceuticals"}},
		CollectedAt: time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC),
	}
	if err := sink.Persist(context.Background(), snap); err != nil {
		t.Fatalf("persist: %v", err)
	}

	restored, err := sink.Restore(context.Background())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored == nil {
		t.Fatal("expected restored snapshot")
	}
	if len(restored.Companies) != 1 || restored.Companies[0].Symbol != "VRTX" {
		t.Fatalf("restored content wrong: %+v", restored.Companies)
	}
	if !restored.CollectedAt.Equal(snap.CollectedAt) {
		t.Fatalf("timestamp changed: %s", restored.CollectedAt)
	}
}

func TestCacheSinkRestoreMiss(t *testing.T) {
	sink := NewCacheSink(cache.NewMemoryCache(), time.Hour)
	restored, err := sink.Restore(context.Background())
	if err != nil {
		t.Fatalf("miss must not be an error: %v", err)
	}
	if restored != nil {
		t.Fatalf("expected nil on cold cache, got %+v", restored)
	}
}
