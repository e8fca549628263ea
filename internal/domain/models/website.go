package models

import "time"

// WebsiteProfile holds best-effort web metadata probed for one company.
type WebsiteProfile struct {
	Symbol          string    `json:"symbol"`
	Website         string    `json:"website"`
	Title           string    `json:"title,omitempty"`
	Description     string    `json:"description,omitempty"`
	HasPipelinePage bool      `json:"has_pipeline_page"`
	HasInvestorPage bool      `json:"has_investor_page"`
	LastScraped     time.Time `json:"last_scraped"`
}
