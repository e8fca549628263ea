package models

// Approval is one regulatory filing reduced to its primary submission and
// primary product. The upstream fans out into many submissions/products per
// filing; only the first of each is retained.
type Approval struct {
	DrugName          string   `json:"drug_name"`
	GenericName       string   `json:"generic_name"`
	Company           string   `json:"company"`
	ApplicationNumber string   `json:"application_number"`
	ApprovalDate      string   `json:"approval_date"` // upstream YYYYMMDD, kept verbatim
	ApplicationType   string   `json:"application_type"`
	SubmissionStatus  string   `json:"submission_status"`
	MarketingStatus   string   `json:"marketing_status"`
	Route             []string `json:"route,omitempty"`
	DosageForm        string   `json:"dosage_form,omitempty"`
}
