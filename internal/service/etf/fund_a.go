package etf

import (
	"context"
	"fmt"

	"BioPulse/internal/domain/models"
	drepo "BioPulse/internal/domain/repository"
	xhttp "BioPulse/pkg/http"
)

// FundAClient fetches holdings from the primary ETF feed (SSGA-style JSON:
// fund.priceDate.holding[]).
type FundAClient struct {
	name      string
	url       string
	minWeight float64
	client    *xhttp.Client
}

// NewFundAClient creates the primary holdings source. Holdings with weight
// below minWeight are discarded before returning.
func NewFundAClient(name, url string, minWeight float64, client *xhttp.Client) *FundAClient {
	if client == nil {
		client = xhttp.NewClient()
	}
	return &FundAClient{name: name, url: url, minWeight: minWeight, client: client}
}

func (c *FundAClient) Name() string             { return c.name }
func (c *FundAClient) Source() models.ETFSource { return models.SourceA }

var _ drepo.HoldingsSource = (*FundAClient)(nil)

type fundAResponse struct {
	Fund struct {
		PriceDate struct {
			Holding []struct {
				Identifier    string     `json:"identifier"`
				Name          string     `json:"name"`
				PercentWeight flexFloat  `json:"percentWeight"`
				MarketValue   *flexFloat `json:"marketValue"`
			} `json:"holding"`
		} `json:"priceDate"`
	} `json:"fund"`
}

func (c *FundAClient) Holdings(ctx context.Context) ([]models.RawHolding, error) {
	var resp fundAResponse
	if err := c.client.GetJSON(ctx, c.url, nil, &resp); err != nil {
		return nil, fmt.Errorf("%s holdings: %w", c.name, err)
	}

	holdings := make([]models.RawHolding, 0, len(resp.Fund.PriceDate.Holding))
	for _, h := range resp.Fund.PriceDate.Holding {
		if float64(h.PercentWeight) < c.minWeight {
			continue
		}
		holdings = append(holdings, models.RawHolding{
			Symbol:      h.Identifier,
			Name:        h.Name,
			Weight:      float64(h.PercentWeight),
			MarketValue: h.MarketValue.ptr(),
		})
	}
	return holdings, nil
}
