package models

import "time"

// Requests and responses for collection HTTP endpoints. Defined in domain for
// consistency and reuse.

type CollectRequest struct {
	MaxCompanies int `query:"max_companies" json:"max_companies" default:"50" validate:"gte=1,lte=500"`
}

type CollectResponse struct {
	Status      string    `json:"status"` // "success" or "partial"
	Degraded    []string  `json:"degraded,omitempty"`
	CollectedAt time.Time `json:"collected_at"`
}
