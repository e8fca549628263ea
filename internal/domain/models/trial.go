package models

// Trial is one clinical-trial registration. NCTID is the dedup key across
// all search terms that contributed the record.
type Trial struct {
	NCTID          string `json:"nct_id"`
	Title          string `json:"title"`
	Status         string `json:"status"`
	Phase          string `json:"phase"`
	StudyType      string `json:"study_type"`
	Condition      string `json:"condition"`    // list joined with ", "
	Intervention   string `json:"intervention"` // list joined with ", "
	CompletionDate string `json:"completion_date"`
	StartDate      string `json:"start_date"`
	Sponsor        string `json:"sponsor"`
	Countries      string `json:"countries,omitempty"`
}
