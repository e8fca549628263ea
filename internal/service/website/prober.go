// Package website implements best-effort discovery of a company's canonical
// site plus probes for well-known sub-pages. Nothing in here fails hard: any
// transport or parse problem reads as "not found".
package website

import (
	"context"
	"fmt"
	"strings"
	"time"

	"BioPulse/internal/domain/models"
	drepo "BioPulse/internal/domain/repository"
	xhttp "BioPulse/pkg/http"

	"github.com/PuerkitoBio/goquery"
)

var (
	pipelinePaths = []string{"/pipeline", "/product-pipeline", "/research/pipeline"}
	investorPaths = []string{"/investors", "/investor-relations", "/ir"}

	// link hosts that are never a company's own site
	excludedHosts = []string{"yahoo", "sec.gov", "edgar"}
)

// Prober discovers a company website from a finance profile page and probes
// it for pipeline/investor pages.
type Prober struct {
	profileURL string // %s replaced with the ticker symbol
	client     *xhttp.Client
	now        func() time.Time
}

// New creates the website prober.
func New(profileURL string, client *xhttp.Client) *Prober {
	if client == nil {
		client = xhttp.NewClient(xhttp.WithTimeout(20 * time.Second))
	}
	return &Prober{profileURL: profileURL, client: client, now: time.Now}
}

var _ drepo.WebsiteProber = (*Prober)(nil)

// Probe returns a profile for the symbol, or (nil, nil) when no site could
// be discovered.
func (p *Prober) Probe(ctx context.Context, symbol string) (*models.WebsiteProfile, error) {
	site, err := p.discoverSite(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if site == "" {
		return nil, nil
	}

	profile := &models.WebsiteProfile{
		Symbol:      symbol,
		Website:     site,
		LastScraped: p.now().UTC(),
	}

	if doc := p.fetchDocument(ctx, site); doc != nil {
		profile.Title = strings.TrimSpace(doc.Find("title").First().Text())
		profile.Description = extractDescription(doc)
	}

	profile.HasPipelinePage = p.probeAny(ctx, site, pipelinePaths)
	profile.HasInvestorPage = p.probeAny(ctx, site, investorPaths)

	return profile, nil
}

// discoverSite scrapes the finance profile page for an outbound company link.
func (p *Prober) discoverSite(ctx context.Context, symbol string) (string, error) {
	doc := p.fetchDocument(ctx, fmt.Sprintf(p.profileURL, symbol))
	if doc == nil {
		return "", nil
	}

	// dedicated website link first
	if href, ok := doc.Find(`a[data-test="website-link"]`).First().Attr("href"); ok && href != "" {
		return strings.TrimSuffix(href, "/"), nil
	}

	// otherwise the first plausible external link
	var site string
	doc.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		href, _ := link.Attr("href")
		lower := strings.ToLower(href)
		if !strings.HasPrefix(lower, "http") {
			return true
		}
		if !strings.Contains(lower, ".com") && !strings.Contains(lower, ".org") && !strings.Contains(lower, ".net") {
			return true
		}
		for _, ex := range excludedHosts {
			if strings.Contains(lower, ex) {
				return true
			}
		}
		site = strings.TrimSuffix(href, "/")
		return false
	})

	return site, nil
}

func (p *Prober) fetchDocument(ctx context.Context, rawURL string) *goquery.Document {
	resp, err := p.client.Get(ctx, rawURL, nil)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil
	}
	return doc
}

// probeAny reports whether any candidate sub-path answers with a success
// status. Errors and non-2xx read as absent.
func (p *Prober) probeAny(ctx context.Context, site string, paths []string) bool {
	for _, path := range paths {
		if ctx.Err() != nil {
			return false
		}
		if p.client.Head(ctx, site+path) {
			return true
		}
	}
	return false
}

func extractDescription(doc *goquery.Document) string {
	if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok && content != "" {
		return clip(content, 500)
	}
	if content, ok := doc.Find(`meta[property="og:description"]`).First().Attr("content"); ok && content != "" {
		return clip(content, 500)
	}
	return ""
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
