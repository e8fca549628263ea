package website

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	xhttp "BioPulse/pkg/http"
)

func testProbeServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	var srv *httptest.Server

	mux.HandleFunc("/profile/VRTX", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><body>
			<a href="https://finance.yahoo.com/quote/VRTX">Quote</a>
			<a data-test="website-link" href="%s/site/">Company site</a>
		</body></html>`, srv.URL)
	})
	mux.HandleFunc("/site", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head>
			<title>Vertex Pharmaceuticals</title>
			<meta name="description" content="Serious diseases.">
		</head><body></body></html>`))
	})
	mux.HandleFunc("/site/pipeline", func(w http.ResponseWriter, r *http.Request) {})
	// investor paths intentionally 404

	srv = httptest.NewServer(mux)
	return srv
}

func TestProbeDiscoversSiteAndPages(t *testing.T) {
	srv := testProbeServer(t)
	defer srv.Close()

	p := New(srv.URL+"/profile/%s", xhttp.NewClient(xhttp.WithTimeout(2*time.Second)))
	p.now = func() time.Time { return time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC) }

	profile, err := p.Probe(context.Background(), "VRTX")
	if err != nil {
		t.Fatalf("probe: %v", err)
	}
	if profile == nil {
		t.Fatal("expected a profile")
	}
	if profile.Website != srv.URL+"/site" {
		t.Fatalf("trailing slash not stripped: %s", profile.Website)
	}
	if profile.Title != "Vertex Pharmaceuticals" {
		t.Fatalf("title not extracted: %q", profile.Title)
	}
	if profile.Description != "Serious diseases." {
		t.Fatalf("description not extracted: %q", profile.Description)
	}
	if !profile.HasPipelinePage {
		t.Fatal("pipeline page not detected")
	}
	if profile.HasInvestorPage {
		t.Fatal("investor page falsely detected")
	}
	if profile.LastScraped.IsZero() {
		t.Fatal("scrape timestamp missing")
	}
}

func TestProbeNoSiteFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><a href="https://finance.yahoo.com/x">internal</a></body></html>`))
	}))
	defer srv.Close()

	p := New(srv.URL+"/profile/%s", xhttp.NewClient())
	profile, err := p.Probe(context.Background(), "XXXX")
	if err != nil {
		t.Fatalf("probe: %v", err)
	}
	if profile != nil {
		t.Fatalf("expected nil profile, got %+v", profile)
	}
}

func TestDiscoverSiteFallbackLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>
			<a href="/internal">relative</a>
			<a href="https://finance.yahoo.com/quote/ACME">quote</a>
			<a href="https://www.sec.gov/cgi-bin/browse-edgar">filings</a>
			<a href="https://www.acmebio.com/">Acme Bio</a>
		</body></html>`))
	}))
	defer srv.Close()

	p := New(srv.URL+"/profile/%s", xhttp.NewClient())
	site, err := p.discoverSite(context.Background(), "ACME")
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if site != "https://www.acmebio.com" {
		t.Fatalf("expected first plausible external link, got %q", site)
	}
}

func TestProbeProfilePageUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := New(srv.URL+"/profile/%s", xhttp.NewClient())
	profile, err := p.Probe(context.Background(), "VRTX")
	if err != nil || profile != nil {
		t.Fatalf("unavailable profile page must read as not found, got %v %v", profile, err)
	}
}
