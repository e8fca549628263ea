package usecase

import (
	"strings"

	"BioPulse/internal/domain/models"
)

// NormalizeHoldings trims and uppercases symbols, trims names, and drops
// records whose symbol is empty after trimming. Pure; the input slice is not
// modified.
func NormalizeHoldings(in []models.RawHolding) []models.RawHolding {
	out := make([]models.RawHolding, 0, len(in))
	for _, h := range in {
		symbol := strings.ToUpper(strings.TrimSpace(h.Symbol))
		if symbol == "" {
			continue
		}
		if h.Weight < 0 {
			h.Weight = 0
		}
		h.Symbol = symbol
		h.Name = strings.TrimSpace(h.Name)
		out = append(out, h)
	}
	return out
}

// DedupTrials collapses trials sharing an NCT ID, keeping the first
// occurrence, and drops records with an empty ID. Order is preserved.
func DedupTrials(in []*models.Trial) []*models.Trial {
	seen := make(map[string]struct{}, len(in))
	out := make([]*models.Trial, 0, len(in))
	for _, t := range in {
		id := strings.TrimSpace(t.NCTID)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, t)
	}
	return out
}
