// Package fda implements the regulatory approvals adapter on top of the
// openFDA drugsfda endpoint.
package fda

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"BioPulse/internal/domain/models"
	drepo "BioPulse/internal/domain/repository"
	xhttp "BioPulse/pkg/http"
	"BioPulse/pkg/util"
)

const (
	// rangeEnd closes the half-open date window; the upstream query syntax
	// needs an explicit upper bound.
	rangeEnd = "20991231"

	companyLimit = 50
)

// Client queries the drugsfda dataset. One page only; pagination beyond the
// configured cap is deliberately not attempted.
type Client struct {
	baseURL      string
	lookbackDays int
	limit        int
	client       *xhttp.Client
	now          func() time.Time
}

// New creates the approvals source.
func New(baseURL string, lookbackDays, limit int, client *xhttp.Client) *Client {
	if client == nil {
		client = xhttp.NewClient()
	}
	return &Client{
		baseURL:      baseURL,
		lookbackDays: lookbackDays,
		limit:        limit,
		client:       client,
		now:          time.Now,
	}
}

var _ drepo.ApprovalsSource = (*Client)(nil)

type drugsResponse struct {
	Results []struct {
		SponsorName       string `json:"sponsor_name"`
		ApplicationNumber string `json:"application_number"`
		Submissions       []struct {
			SubmissionType       string `json:"submission_type"`
			SubmissionStatus     string `json:"submission_status"`
			SubmissionStatusDate string `json:"submission_status_date"`
		} `json:"submissions"`
		Products []struct {
			BrandName         string   `json:"brand_name"`
			MarketingStatus   string   `json:"marketing_status"`
			DosageForm        string   `json:"dosage_form"`
			Route             []string `json:"route"`
			ActiveIngredients []struct {
				Name string `json:"name"`
			} `json:"active_ingredients"`
		} `json:"products"`
	} `json:"results"`
}

// Recent returns filings whose primary submission status date falls inside
// the lookback window.
func (c *Client) Recent(ctx context.Context) ([]*models.Approval, error) {
	from := util.LookbackDate(c.now(), c.lookbackDays)
	search := fmt.Sprintf("submissions.submission_status_date:[%s TO %s]", from, rangeEnd)
	return c.search(ctx, search, c.limit)
}

// ByCompany searches filings sponsored by the named company.
func (c *Client) ByCompany(ctx context.Context, company string) ([]*models.Approval, error) {
	search := fmt.Sprintf("sponsor_name:%q", company)
	return c.search(ctx, search, companyLimit)
}

func (c *Client) search(ctx context.Context, search string, limit int) ([]*models.Approval, error) {
	query := url.Values{}
	query.Set("search", search)
	query.Set("limit", fmt.Sprintf("%d", limit))

	var resp drugsResponse
	if err := c.client.GetJSON(ctx, c.baseURL+"/drug/drugsfda.json", query, &resp); err != nil {
		return nil, fmt.Errorf("fda search: %w", err)
	}

	approvals := make([]*models.Approval, 0, len(resp.Results))
	for _, drug := range resp.Results {
		a := &models.Approval{
			DrugName:          "Unknown",
			GenericName:       "Unknown",
			Company:           orUnknown(drug.SponsorName),
			ApplicationNumber: drug.ApplicationNumber,
		}

		// Only the primary submission and primary product per filing are
		// retained; the rest of the fan-out is dropped.
		if len(drug.Submissions) > 0 {
			sub := drug.Submissions[0]
			a.ApprovalDate = sub.SubmissionStatusDate
			a.ApplicationType = sub.SubmissionType
			a.SubmissionStatus = sub.SubmissionStatus
		}
		if len(drug.Products) > 0 {
			prod := drug.Products[0]
			a.DrugName = orUnknown(prod.BrandName)
			a.MarketingStatus = prod.MarketingStatus
			a.DosageForm = prod.DosageForm
			a.Route = prod.Route
			if len(prod.ActiveIngredients) > 0 && prod.ActiveIngredients[0].Name != "" {
				a.GenericName = prod.ActiveIngredients[0].Name
			}
		}
		approvals = append(approvals, a)
	}
	return approvals, nil
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
