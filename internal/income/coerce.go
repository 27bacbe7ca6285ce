package income

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts one cell into an amount in 만원. ok is false for the
// missing token, blank cells, anything that is not a number and non-finite
// values; callers must treat that as "no value", never as zero.
func ParseAmount(raw, missingToken string) (value float64, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" || s == missingToken {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func amountPtr(raw, missingToken string) *float64 {
	v, ok := ParseAmount(raw, missingToken)
	if !ok {
		return nil
	}
	return &v
}

func formatAmount(v *float64) string {
	if v == nil {
		return "NaN"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
