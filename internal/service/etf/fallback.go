package etf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"BioPulse/internal/domain/models"
	drepo "BioPulse/internal/domain/repository"
	xhttp "BioPulse/pkg/http"
	"BioPulse/pkg/logger"

	"github.com/PuerkitoBio/goquery"
)

// TieredSource tries the wrapped API source first, then an HTML table scrape,
// then a bundled static list. The first tier yielding a non-empty result
// wins; later tiers are never consulted after a success.
type TieredSource struct {
	primary   drepo.HoldingsSource
	scrapeURL string
	minWeight float64
	client    *xhttp.Client
	log       *logger.Logger
}

// NewTieredSource wraps primary with scrape and static fallbacks.
func NewTieredSource(primary drepo.HoldingsSource, scrapeURL string, minWeight float64, client *xhttp.Client, log *logger.Logger) *TieredSource {
	if client == nil {
		client = xhttp.NewClient()
	}
	return &TieredSource{
		primary:   primary,
		scrapeURL: scrapeURL,
		minWeight: minWeight,
		client:    client,
		log:       log,
	}
}

func (t *TieredSource) Name() string             { return t.primary.Name() }
func (t *TieredSource) Source() models.ETFSource { return t.primary.Source() }

var _ drepo.HoldingsSource = (*TieredSource)(nil)

func (t *TieredSource) Holdings(ctx context.Context) ([]models.RawHolding, error) {
	holdings, err := t.primary.Holdings(ctx)
	if err == nil && len(holdings) > 0 {
		return holdings, nil
	}
	if err != nil && t.log != nil {
		t.log.Warn("primary holdings tier failed, trying scrape",
			logger.String("source", t.Name()), logger.Error(err))
	}

	if t.scrapeURL != "" {
		holdings, err = t.scrape(ctx)
		if err == nil && len(holdings) > 0 {
			return holdings, nil
		}
		if err != nil && t.log != nil {
			t.log.Warn("scrape holdings tier failed, using static list",
				logger.String("source", t.Name()), logger.Error(err))
		}
	}

	return staticHoldings(), nil
}

// scrape parses an HTML holdings table: first cell ticker, second cell name,
// last cell percentage weight.
func (t *TieredSource) scrape(ctx context.Context) ([]models.RawHolding, error) {
	resp, err := t.client.Get(ctx, t.scrapeURL, nil)
	if err != nil {
		return nil, fmt.Errorf("scrape %s: %w", t.scrapeURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("scrape %s: unexpected status %d", t.scrapeURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	var holdings []models.RawHolding
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}
		symbol := strings.TrimSpace(cells.Eq(0).Text())
		name := strings.TrimSpace(cells.Eq(1).Text())
		weightText := strings.TrimSpace(cells.Eq(cells.Length() - 1).Text())
		weightText = strings.TrimSuffix(weightText, "%")

		weight, err := strconv.ParseFloat(strings.ReplaceAll(weightText, ",", ""), 64)
		if err != nil || symbol == "" {
			return
		}
		if weight < t.minWeight {
			return
		}
		holdings = append(holdings, models.RawHolding{
			Symbol: symbol,
			Name:   name,
			Weight: weight,
		})
	})

	return holdings, nil
}
