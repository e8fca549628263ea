// Package trials implements the clinical-trials registry adapter on top of
// the ClinicalTrials.gov study_fields endpoint.
package trials

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"BioPulse/internal/domain/models"
	drepo "BioPulse/internal/domain/repository"
	"BioPulse/internal/service/ratelimit"
	xhttp "BioPulse/pkg/http"
)

var studyFields = []string{
	"NCTId", "BriefTitle", "OverallStatus", "Phase",
	"StudyType", "Condition", "InterventionName",
	"PrimaryCompletionDate", "StudyFirstPostDate",
	"LeadSponsorName", "LocationCountry",
}

// Client queries the registry one search term at a time, capped per term.
// Every call waits on the shared pacer first; that is the politeness
// contract toward the upstream, not a correctness requirement.
type Client struct {
	baseURL      string
	perTermLimit int
	client       *xhttp.Client
	pacer        *ratelimit.Pacer
}

// New creates the trials source.
func New(baseURL string, perTermLimit int, client *xhttp.Client, pacer *ratelimit.Pacer) *Client {
	if client == nil {
		client = xhttp.NewClient()
	}
	return &Client{
		baseURL:      baseURL,
		perTermLimit: perTermLimit,
		client:       client,
		pacer:        pacer,
	}
}

var _ drepo.TrialsSource = (*Client)(nil)

type studyFieldsResponse struct {
	StudyFieldsResponse struct {
		StudyFields []map[string][]string `json:"StudyFields"`
	} `json:"StudyFieldsResponse"`
}

// Search returns up to perTermLimit registrations matching term.
func (c *Client) Search(ctx context.Context, term string) ([]*models.Trial, error) {
	if c.pacer != nil {
		if err := c.pacer.Wait(ctx); err != nil {
			return nil, err
		}
	}

	query := url.Values{}
	query.Set("expr", fmt.Sprintf("%q", term))
	query.Set("fields", strings.Join(studyFields, ","))
	query.Set("fmt", "json")
	query.Set("min_rnk", "1")
	query.Set("max_rnk", strconv.Itoa(c.perTermLimit))

	var resp studyFieldsResponse
	if err := c.client.GetJSON(ctx, c.baseURL, query, &resp); err != nil {
		return nil, fmt.Errorf("trials search %q: %w", term, err)
	}

	records := resp.StudyFieldsResponse.StudyFields
	out := make([]*models.Trial, 0, len(records))
	for _, fields := range records {
		trial := &models.Trial{
			NCTID:          first(fields, "NCTId"),
			Title:          first(fields, "BriefTitle"),
			Status:         first(fields, "OverallStatus"),
			Phase:          first(fields, "Phase"),
			StudyType:      first(fields, "StudyType"),
			Condition:      strings.Join(fields["Condition"], ", "),
			Intervention:   strings.Join(fields["InterventionName"], ", "),
			CompletionDate: first(fields, "PrimaryCompletionDate"),
			StartDate:      first(fields, "StudyFirstPostDate"),
			Sponsor:        first(fields, "LeadSponsorName"),
			Countries:      strings.Join(fields["LocationCountry"], ", "),
		}
		out = append(out, trial)
	}
	return out, nil
}

// first returns the leading value of a study field, which the upstream
// always serves as a list.
func first(fields map[string][]string, key string) string {
	if vs := fields[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}
