// Package etf implements the ETF holdings source adapters: two JSON feeds
// plus a tiered-fallback wrapper that degrades from API to HTML scrape to a
// bundled static list.
package etf

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// flexFloat decodes JSON numbers that upstreams serve inconsistently as
// numbers or quoted strings. Empty/unparseable values decode to zero.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	s := string(b)
	if strings.HasPrefix(s, `"`) {
		var unquoted string
		if err := json.Unmarshal(b, &unquoted); err != nil {
			*f = 0
			return nil
		}
		s = strings.ReplaceAll(strings.TrimSpace(unquoted), ",", "")
	}
	if s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

func (f *flexFloat) ptr() *float64 {
	if f == nil {
		return nil
	}
	v := float64(*f)
	return &v
}
