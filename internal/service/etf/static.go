package etf

import "BioPulse/internal/domain/models"

// staticHoldings is the last-resort tier: well-known large biotech names with
// no weight or market value claims. It only exists so a total feed outage
// still yields a usable company universe.
func staticHoldings() []models.RawHolding {
	known := []struct {
		symbol string
		name   string
	}{
		{"GILD", "Gilead Sciences Inc."},
		{"AMGN", "Amgen Inc."},
		{"VRTX", "Vertex Pharmaceuticals Incorporated"},
		{"REGN", "Regeneron Pharmaceuticals Inc."},
		{"BIIB", "Biogen Inc."},
		{"MRNA", "Moderna Inc."},
		{"BNTX", "BioNTech SE"},
		{"ALNY", "Alnylam Pharmaceuticals Inc."},
		{"BMRN", "BioMarin Pharmaceutical Inc."},
		{"SRPT", "Sarepta Therapeutics Inc."},
		{"INCY", "Incyte Corporation"},
		{"NBIX", "Neurocrine Biosciences Inc."},
		{"EXEL", "Exelixis Inc."},
		{"TECH", "Bio-Techne Corporation"},
		{"IONS", "Ionis Pharmaceuticals Inc."},
		{"CRSP", "CRISPR Therapeutics AG"},
		{"NTLA", "Intellia Therapeutics Inc."},
		{"BEAM", "Beam Therapeutics Inc."},
	}

	holdings := make([]models.RawHolding, 0, len(known))
	for _, k := range known {
		holdings = append(holdings, models.RawHolding{Symbol: k.symbol, Name: k.name})
	}
	return holdings
}
