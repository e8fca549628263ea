package models

import "time"

// Snapshot is one complete, internally consistent generation of merged
// output data. A pipeline run replaces the whole thing; nothing patches a
// snapshot in place.
type Snapshot struct {
	Companies   []*Company        `json:"companies"`
	Approvals   []*Approval       `json:"fda_approvals"`
	Trials      []*Trial          `json:"clinical_trials"`
	Websites    []*WebsiteProfile `json:"company_websites"`
	CollectedAt time.Time         `json:"collection_timestamp"`
}

// EmptySnapshot is what the store holds before the first run completes.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Companies: []*Company{},
		Approvals: []*Approval{},
		Trials:    []*Trial{},
		Websites:  []*WebsiteProfile{},
	}
}

// Stats summarizes a snapshot for the /api/stats endpoint.
type Stats struct {
	CompaniesCount      int        `json:"companies_count"`
	FDAApprovalsCount   int        `json:"fda_approvals_count"`
	ClinicalTrialsCount int        `json:"clinical_trials_count"`
	WebsitesScraped     int        `json:"websites_scraped"`
	LastUpdated         *time.Time `json:"last_updated"`
}

// Stats derives endpoint counters from the snapshot.
func (s *Snapshot) Stats() Stats {
	st := Stats{
		CompaniesCount:      len(s.Companies),
		FDAApprovalsCount:   len(s.Approvals),
		ClinicalTrialsCount: len(s.Trials),
		WebsitesScraped:     len(s.Websites),
	}
	if !s.CollectedAt.IsZero() {
		t := s.CollectedAt
		st.LastUpdated = &t
	}
	return st
}

// CompanyDetail is the /api/company/{symbol} payload: the company plus its
// cross-referenced approvals, trials, and website probe data.
type CompanyDetail struct {
	Company   *Company        `json:"company"`
	Approvals []*Approval     `json:"fda_approvals"`
	Trials    []*Trial        `json:"clinical_trials"`
	Website   *WebsiteProfile `json:"website_data,omitempty"`
}
