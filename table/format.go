package table

import (
	"math"
	"strconv"

	"github.com/katalvlaran/nwcorner/transport"
)

// FormatNumber renders v for display:
//   - |v| ≤ Eps            → "0"
//   - within Eps of an int → that integer ("15", "-3")
//   - otherwise            → two decimals ("2.50")
func FormatNumber(v float64) string {
	if transport.IsZero(v) {
		return "0"
	}
	if r := math.Round(v); transport.IsZero(v - r) {
		return strconv.FormatFloat(r, 'f', 0, 64)
	}

	return strconv.FormatFloat(v, 'f', 2, 64)
}
