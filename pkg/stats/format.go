package stats

import (
	"fmt"
	"strconv"
)

// FormatNumber abbreviates n for display: 1.5M, 2.3K, 999.
// Values just below a threshold keep the smaller unit (999999 is "1000.0K").
func FormatNumber(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.Itoa(n)
	}
}
