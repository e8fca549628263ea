package usecase

import (
	"sort"

	"BioPulse/internal/domain/models"
	"BioPulse/pkg/util"
)

// HoldingSet is one source's normalized holdings tagged with the weight
// field it populates.
type HoldingSet struct {
	Source   models.ETFSource
	Holdings []models.RawHolding
}

// MergeHoldings folds per-source holding lists into one symbol-keyed company
// list. The first set seeds the mapping; later sets overwrite their own
// weight field and backfill market cap only when it is still absent. Output
// order is insertion order: the first set's order, then newly discovered
// symbols in arrival order. Idempotent under re-application with the same
// inputs.
func MergeHoldings(sets ...HoldingSet) []*models.Company {
	byISymbol := make(map[string]*models.Company)
	var order []*models.Company

	for _, set := range sets {
		for _, h := range set.Holdings {
			weight := h.Weight
			cap := util.FormatMarketValue(h.MarketValue)

			existing, ok := byISymbol[h.Symbol]
			if !ok {
				company := &models.Company{
					Symbol:    h.Symbol,
					Name:      h.Name,
					MarketCap: cap,
				}
				setWeight(company, set.Source, weight)
				byISymbol[h.Symbol] = company
				order = append(order, company)
				continue
			}

			// last writer wins for the source-specific weight
			setWeight(existing, set.Source, weight)
			// first writer wins for market cap
			if capAbsent(existing.MarketCap) && !capAbsent(cap) {
				existing.MarketCap = cap
			}
			if existing.Name == "" {
				existing.Name = h.Name
			}
		}
	}

	return order
}

func setWeight(c *models.Company, source models.ETFSource, weight float64) {
	w := weight
	switch source {
	case models.SourceA:
		c.ETFWeightA = &w
	case models.SourceB:
		c.ETFWeightB = &w
	}
}

// capAbsent treats both the zero value and the explicit "N/A" placeholder as
// missing, so a later source with a real value can fill them in.
func capAbsent(s string) bool {
	return s == "" || s == "N/A"
}

// TopByWeight returns the n heaviest companies without touching the input
// order. A company's rank weight is the larger of its two ETF weights.
func TopByWeight(companies []*models.Company, n int) []*models.Company {
	ranked := make([]*models.Company, len(companies))
	copy(ranked, companies)

	sort.SliceStable(ranked, func(i, j int) bool {
		return rankWeight(ranked[i]) > rankWeight(ranked[j])
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

func rankWeight(c *models.Company) float64 {
	var w float64
	if c.ETFWeightA != nil {
		w = *c.ETFWeightA
	}
	if c.ETFWeightB != nil && *c.ETFWeightB > w {
		w = *c.ETFWeightB
	}
	return w
}
