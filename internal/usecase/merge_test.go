package usecase

import (
	"testing"

	"BioPulse/internal/domain/models"
)

func fptr(v float64) *float64 { return &v }

func TestMergeHoldingsSingleSource(t *testing.T) {
	companies := MergeHoldings(HoldingSet{
		Source: models.SourceA,
		Holdings: []models.RawHolding{
			{Symbol: "GILD", Name: "Gilead Sciences", Weight: 4.5, MarketValue: fptr(2_000_000_000)},
		},
	})

	if len(companies) != 1 {
		t.Fatalf("expected 1 company, got %d", len(companies))
	}
	c := companies[0]
	if c.Symbol != "GILD" || c.Name != "Gilead Sciences" {
		t.Fatalf("unexpected company: %+v", c)
	}
	if c.ETFWeightA == nil || *c.ETFWeightA != 4.5 {
		t.Fatalf("expected weight_a 4.5, got %v", c.ETFWeightA)
	}
	if c.ETFWeightB != nil {
		t.Fatalf("expected nil weight_b, got %v", *c.ETFWeightB)
	}
	if c.MarketCap != "$2.0B" {
		t.Fatalf("expected $2.0B market cap, got %s", c.MarketCap)
	}
}

func TestMergeHoldingsSharedSymbol(t *testing.T) {
	companies := MergeHoldings(
		HoldingSet{Source: models.SourceA, Holdings: []models.RawHolding{
			{Symbol: "GILD", Name: "Gilead Sciences", Weight: 4.5},
		}},
		HoldingSet{Source: models.SourceB, Holdings: []models.RawHolding{
			{Symbol: "GILD", Name: "Gilead Sciences Inc", Weight: 3.1, MarketValue: fptr(90_000_000_000)},
		}},
	)

	if len(companies) != 1 {
		t.Fatalf("expected merged single company, got %d", len(companies))
	}
	c := companies[0]
	if c.ETFWeightA == nil || *c.ETFWeightA != 4.5 {
		t.Fatalf("weight_a lost in merge: %v", c.ETFWeightA)
	}
	if c.ETFWeightB == nil || *c.ETFWeightB != 3.1 {
		t.Fatalf("weight_b not set: %v", c.ETFWeightB)
	}
	// first source seeded the name; second must not replace it
	if c.Name != "Gilead Sciences" {
		t.Fatalf("name overwritten by later source: %s", c.Name)
	}
	// first source had no cap, second one backfills
	if c.MarketCap != "$90.0B" {
		t.Fatalf("market cap not backfilled: %s", c.MarketCap)
	}
}

func TestMergeHoldingsMarketCapFirstWriterWins(t *testing.T) {
	companies := MergeHoldings(
		HoldingSet{Source: models.SourceA, Holdings: []models.RawHolding{
			{Symbol: "VRTX", Name: "Vertex", Weight: 5.0, MarketValue: fptr(100_000_000_000)},
		}},
		HoldingSet{Source: models.SourceB, Holdings: []models.RawHolding{
			{Symbol: "VRTX", Name: "Vertex", Weight: 4.0, MarketValue: fptr(1)},
		}},
	)

	if companies[0].MarketCap != "$100.0B" {
		t.Fatalf("later source overwrote market cap: %s", companies[0].MarketCap)
	}
}

func TestMergeHoldingsPreservesInsertionOrder(t *testing.T) {
	companies := MergeHoldings(
		HoldingSet{Source: models.SourceA, Holdings: []models.RawHolding{
			{Symbol: "AMGN", Weight: 1},
			{Symbol: "GILD", Weight: 2},
		}},
		HoldingSet{Source: models.SourceB, Holdings: []models.RawHolding{
			{Symbol: "GILD", Weight: 3},
			{Symbol: "MRNA", Weight: 4},
		}},
	)

	want := []string{"AMGN", "GILD", "MRNA"}
	if len(companies) != len(want) {
		t.Fatalf("expected %d companies, got %d", len(want), len(companies))
	}
	for i, symbol := range want {
		if companies[i].Symbol != symbol {
			t.Fatalf("position %d: expected %s, got %s", i, symbol, companies[i].Symbol)
		}
	}
}

func TestMergeHoldingsIdempotent(t *testing.T) {
	sets := []HoldingSet{
		{Source: models.SourceA, Holdings: []models.RawHolding{
			{Symbol: "GILD", Name: "Gilead", Weight: 4.5, MarketValue: fptr(2e9)},
			{Symbol: "AMGN", Name: "Amgen", Weight: 3.0},
		}},
		{Source: models.SourceB, Holdings: []models.RawHolding{
			{Symbol: "GILD", Name: "Gilead", Weight: 3.1},
		}},
	}

	first := MergeHoldings(sets...)
	second := MergeHoldings(sets...)

	if len(first) != len(second) {
		t.Fatalf("merge not stable: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Symbol != second[i].Symbol || first[i].MarketCap != second[i].MarketCap {
			t.Fatalf("merge not idempotent at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestTopByWeight(t *testing.T) {
	companies := []*models.Company{
		{Symbol: "LOW", ETFWeightA: fptr(0.5)},
		{Symbol: "HIGH", ETFWeightB: fptr(6.0)},
		{Symbol: "MID", ETFWeightA: fptr(2.0), ETFWeightB: fptr(1.0)},
	}

	top := TopByWeight(companies, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2, got %d", len(top))
	}
	if top[0].Symbol != "HIGH" || top[1].Symbol != "MID" {
		t.Fatalf("unexpected ranking: %s, %s", top[0].Symbol, top[1].Symbol)
	}
	// the input slice order must survive
	if companies[0].Symbol != "LOW" {
		t.Fatalf("input slice reordered")
	}
}

func TestTopByWeightShortList(t *testing.T) {
	companies := []*models.Company{{Symbol: "ONLY", ETFWeightA: fptr(1)}}
	if got := TopByWeight(companies, 10); len(got) != 1 {
		t.Fatalf("expected 1, got %d", len(got))
	}
}
