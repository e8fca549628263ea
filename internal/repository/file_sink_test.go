package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"BioPulse/internal/domain/models"
	"BioPulse/pkg/logger"
)

func sinkLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.New(&logger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func TestFileSinkPersist(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir, sinkLogger(t))

	snap := &models.Snapshot{
		Companies:   []*models.Company{{Symbol: "GILD", Name: "Gilead Sciences", MarketCap: "$90.0B"}},
		Approvals:   []*models.Approval{},
		Trials:      []*models.Trial{{NCTID: "NCT001"}},
		Websites:    []*models.WebsiteProfile{},
		CollectedAt: time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC),
	}

	if err := sink.Persist(context.Background(), snap); err != nil {
		t.Fatalf("persist: %v", err)
	}

	for _, name := range []string{
		"companies_20240630.json",
		"fda_approvals_20240630.json",
		"clinical_trials_20240630.json",
		"company_websites_20240630.json",
		"biopulse_combined_20240630.json",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}

	b, err := os.ReadFile(filepath.Join(dir, "biopulse_combined_20240630.json"))
	if err != nil {
		t.Fatalf("read combined: %v", err)
	}
	var decoded models.Snapshot
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("combined not valid json: %v", err)
	}
	if len(decoded.Companies) != 1 || decoded.Companies[0].Symbol != "GILD" {
		t.Fatalf("combined content wrong: %+v", decoded.Companies)
	}

	// no temp files left behind
	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}

func TestFileSinkOverwritesSameDay(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir, sinkLogger(t))
	stamp := time.Date(2024, 6, 30, 8, 0, 0, 0, time.UTC)

	first := &models.Snapshot{Companies: []*models.Company{{Symbol: "OLD"}}, CollectedAt: stamp}
	second := &models.Snapshot{Companies: []*models.Company{{Symbol: "NEW"}}, CollectedAt: stamp.Add(4 * time.Hour)}

	if err := sink.Persist(context.Background(), first); err != nil {
		t.Fatalf("persist: %v", err)
	}
	if err := sink.Persist(context.Background(), second); err != nil {
		t.Fatalf("persist: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "companies_20240630.json"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var companies []*models.Company
	if err := json.Unmarshal(b, &companies); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(companies) != 1 || companies[0].Symbol != "NEW" {
		t.Fatalf("later run did not overwrite: %+v", companies)
	}
}
