// Package input is the boundary between a user and the solver: it turns
// typed lines, YAML files or generators into a validated transport.Problem.
//
// Parsers return a *ValidationError for malformed input; only the Prompter
// retries, so everything handed to the solver has a valid shape.
package input

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseCount parses a strictly positive integer such as a supplier count.
func ParseCount(field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, invalid(field, "enter a positive integer")
	}

	return n, nil
}

// ParseNumbers parses exactly want space-separated non-negative numbers.
// A decimal comma is accepted in place of the point ("2,5" == "2.5").
// Values beyond the float64 range are rejected.
func ParseNumbers(field, raw string, want int) ([]float64, error) {
	parts := strings.Fields(strings.ReplaceAll(raw, ",", "."))
	if len(parts) != want {
		return nil, invalid(field, "enter exactly %d space-separated numbers", want)
	}

	out := make([]float64, len(parts))
	for k, tok := range parts {
		d, err := decimal.NewFromString(tok)
		if err != nil {
			return nil, invalid(field, "%q is not a number", tok)
		}
		if d.IsNegative() {
			return nil, invalid(field, "%q must not be negative", tok)
		}
		v := d.InexactFloat64()
		if math.IsInf(v, 0) {
			return nil, invalid(field, "%q is too large", tok)
		}
		out[k] = v
	}

	return out, nil
}
