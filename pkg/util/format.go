package util

import (
	"fmt"
	"strings"
)

// FormatMarketValue renders a raw dollar magnitude as a display string:
// >= 1e9 in billions with one decimal, >= 1e6 in millions with one decimal,
// otherwise whole dollars with thousands separators. nil means "N/A".
func FormatMarketValue(value *float64) string {
	if value == nil {
		return "N/A"
	}
	v := *value
	switch {
	case v >= 1e9:
		return fmt.Sprintf("$%.1fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.1fM", v/1e6)
	default:
		return "$" + groupThousands(fmt.Sprintf("%.0f", v))
	}
}

func groupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	n := len(digits)
	if n <= 3 {
		if neg {
			return "-" + digits
		}
		return digits
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 && !(neg && b.Len() == 1) {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
