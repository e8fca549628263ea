package etf

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	xhttp "BioPulse/pkg/http"
)

func TestFundAHoldingsFiltersBelowThreshold(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"fund":{"priceDate":{"holding":[
			{"identifier":"GILD","name":"Gilead Sciences","percentWeight":"4.52","marketValue":"2,000,000,000"},
			{"identifier":"AMGN","name":"Amgen","percentWeight":0.1},
			{"identifier":"TINY","name":"Tiny Biotech","percentWeight":0.09}
		]}}}`))
	}))
	defer srv.Close()

	c := NewFundAClient("fund-a", srv.URL, 0.1, xhttp.NewClient())
	holdings, err := c.Holdings(context.Background())
	if err != nil {
		t.Fatalf("holdings: %v", err)
	}

	if len(holdings) != 2 {
		t.Fatalf("expected 2 holdings at threshold 0.1, got %d", len(holdings))
	}
	if holdings[0].Symbol != "GILD" || holdings[0].Weight != 4.52 {
		t.Fatalf("unexpected first holding: %+v", holdings[0])
	}
	if holdings[0].MarketValue == nil || *holdings[0].MarketValue != 2_000_000_000 {
		t.Fatalf("string market value not parsed: %v", holdings[0].MarketValue)
	}
	// boundary weight is kept, not dropped
	if holdings[1].Symbol != "AMGN" {
		t.Fatalf("threshold boundary dropped: %+v", holdings[1])
	}
	if holdings[1].MarketValue != nil {
		t.Fatalf("missing market value must stay nil")
	}
}

func TestFundAHoldingsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewFundAClient("fund-a", srv.URL, 0.1, xhttp.NewClient())
	if _, err := c.Holdings(context.Background()); err == nil {
		t.Fatal("expected error on upstream failure")
	}
}

func TestFundBHoldingsQueryAndParse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("fundId") != "IBB" || q.Get("audienceType") != "Investor" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"holdings":[
			{"ticker":"VRTX","securityName":"Vertex Pharmaceuticals","percentOfNetAssets":"5.2"},
			{"ticker":"PENNY","securityName":"Penny Bio","percentOfNetAssets":0.01}
		]}`))
	}))
	defer srv.Close()

	c := NewFundBClient("fund-b", srv.URL, "IBB", 0.1, xhttp.NewClient())
	holdings, err := c.Holdings(context.Background())
	if err != nil {
		t.Fatalf("holdings: %v", err)
	}
	if len(holdings) != 1 || holdings[0].Symbol != "VRTX" || holdings[0].Weight != 5.2 {
		t.Fatalf("unexpected holdings: %+v", holdings)
	}
}

func TestFlexFloatVariants(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{`1.5`, 1.5},
		{`"2.25"`, 2.25},
		{`"1,234.5"`, 1234.5},
		{`null`, 0},
		{`""`, 0},
		{`"n/a"`, 0},
	}
	for _, tc := range cases {
		var f flexFloat
		if err := f.UnmarshalJSON([]byte(tc.in)); err != nil {
			t.Fatalf("%s: %v", tc.in, err)
		}
		if float64(f) != tc.want {
			t.Fatalf("%s: expected %f, got %f", tc.in, tc.want, float64(f))
		}
	}
}
