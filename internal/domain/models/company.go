package models

// Company is one merged per-company view keyed by ticker symbol.
// Weight fields are independently nullable: a company held by only one ETF
// carries nil for the other.
type Company struct {
	Symbol     string   `json:"symbol"`
	Name       string   `json:"name"`
	Website    string   `json:"website,omitempty"`
	MarketCap  string   `json:"market_cap"` // "$1.2B" style, "N/A" when unknown
	ETFWeightA *float64 `json:"etf_weight_a,omitempty"`
	ETFWeightB *float64 `json:"etf_weight_b,omitempty"`
}

// RawHolding is one normalized ETF holding before merging.
type RawHolding struct {
	Symbol      string
	Name        string
	Weight      float64
	MarketValue *float64 // raw dollars; nil when the feed omits it
}

// ETFSource tags which feed a holding list came from so the merge engine
// knows which weight field to write.
type ETFSource int

const (
	SourceA ETFSource = iota // primary holdings feed (weight_a)
	SourceB                  // secondary holdings feed (weight_b)
)
