package etf

import (
	"context"
	"fmt"
	"net/url"

	"BioPulse/internal/domain/models"
	drepo "BioPulse/internal/domain/repository"
	xhttp "BioPulse/pkg/http"
)

// FundBClient fetches holdings from the secondary ETF feed (Invesco-style
// JSON: holdings[] keyed by fundId query parameter).
type FundBClient struct {
	name      string
	url       string
	fundID    string
	minWeight float64
	client    *xhttp.Client
}

// NewFundBClient creates the secondary holdings source.
func NewFundBClient(name, rawURL, fundID string, minWeight float64, client *xhttp.Client) *FundBClient {
	if client == nil {
		client = xhttp.NewClient()
	}
	return &FundBClient{name: name, url: rawURL, fundID: fundID, minWeight: minWeight, client: client}
}

func (c *FundBClient) Name() string             { return c.name }
func (c *FundBClient) Source() models.ETFSource { return models.SourceB }

var _ drepo.HoldingsSource = (*FundBClient)(nil)

type fundBResponse struct {
	Holdings []struct {
		Ticker             string     `json:"ticker"`
		SecurityName       string     `json:"securityName"`
		PercentOfNetAssets flexFloat  `json:"percentOfNetAssets"`
		MarketValue        *flexFloat `json:"marketValue"`
	} `json:"holdings"`
}

func (c *FundBClient) Holdings(ctx context.Context) ([]models.RawHolding, error) {
	query := url.Values{}
	if c.fundID != "" {
		query.Set("fundId", c.fundID)
		query.Set("audienceType", "Investor")
	}

	var resp fundBResponse
	if err := c.client.GetJSON(ctx, c.url, query, &resp); err != nil {
		return nil, fmt.Errorf("%s holdings: %w", c.name, err)
	}

	holdings := make([]models.RawHolding, 0, len(resp.Holdings))
	for _, h := range resp.Holdings {
		if float64(h.PercentOfNetAssets) < c.minWeight {
			continue
		}
		holdings = append(holdings, models.RawHolding{
			Symbol:      h.Ticker,
			Name:        h.SecurityName,
			Weight:      float64(h.PercentOfNetAssets),
			MarketValue: h.MarketValue.ptr(),
		})
	}
	return holdings, nil
}
