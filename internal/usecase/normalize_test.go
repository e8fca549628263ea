package usecase

import (
	"testing"

	"BioPulse/internal/domain/models"
)

func TestNormalizeHoldings(t *testing.T) {
	in := []models.RawHolding{
		{Symbol: " gild ", Name: " Gilead Sciences ", Weight: 4.5},
		{Symbol: "", Name: "No Symbol", Weight: 1.0},
		{Symbol: "  ", Name: "Blank Symbol", Weight: 1.0},
		{Symbol: "MRNA", Name: "Moderna", Weight: -0.2},
	}

	out := NormalizeHoldings(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 holdings, got %d", len(out))
	}
	if out[0].Symbol != "GILD" || out[0].Name != "Gilead Sciences" {
		t.Fatalf("symbol not normalized: %+v", out[0])
	}
	if out[1].Weight != 0 {
		t.Fatalf("negative weight not clamped: %f", out[1].Weight)
	}
	// input untouched
	if in[0].Symbol != " gild " {
		t.Fatalf("input slice modified")
	}
}

func TestDedupTrials(t *testing.T) {
	in := []*models.Trial{
		{NCTID: "NCT001", Title: "first"},
		{NCTID: "NCT002", Title: "second"},
		{NCTID: "NCT001", Title: "duplicate"},
		{NCTID: "", Title: "no id"},
	}

	out := DedupTrials(in)
	if len(out) != 2 {
		t.Fatalf("expected 2 trials, got %d", len(out))
	}
	if out[0].Title != "first" {
		t.Fatalf("first occurrence not kept: %s", out[0].Title)
	}
	if out[1].NCTID != "NCT002" {
		t.Fatalf("order not preserved: %s", out[1].NCTID)
	}
}
