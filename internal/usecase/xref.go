package usecase

import (
	"strings"

	"BioPulse/internal/domain/models"
)

// Cross-referencing is deliberately fuzzy: there is no shared identifier
// between the company universe and the regulatory/trials feeds, so records
// are associated by case-insensitive substring containment. The direction is
// fixed as company-name-in-sponsor: an approval or trial belongs to a
// company when the company's display name appears inside the record's
// sponsor field. Ambiguous names can over- or under-match; that is a known
// limitation of the join, not a defect to patch around.

// MatchApprovals returns the approvals whose sponsor contains the company
// display name.
func MatchApprovals(company *models.Company, approvals []*models.Approval) []*models.Approval {
	name := strings.ToLower(strings.TrimSpace(company.Name))
	if name == "" {
		return nil
	}
	var out []*models.Approval
	for _, a := range approvals {
		if strings.Contains(strings.ToLower(a.Company), name) {
			out = append(out, a)
		}
	}
	return out
}

// MatchTrials returns the trials whose lead sponsor contains the company
// display name.
func MatchTrials(company *models.Company, trials []*models.Trial) []*models.Trial {
	name := strings.ToLower(strings.TrimSpace(company.Name))
	if name == "" {
		return nil
	}
	var out []*models.Trial
	for _, t := range trials {
		if strings.Contains(strings.ToLower(t.Sponsor), name) {
			out = append(out, t)
		}
	}
	return out
}
