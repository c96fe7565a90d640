package gpa

import (
	"math"
	"strconv"

	"gradebook/internal/domain"
)

// Calculate returns the credit-weighted mean quality value of records.
// An empty list yields exactly 0 rather than dividing by zero. Records are
// assumed validated, so credits >= 1 and the denominator is never zero when
// the list is non-empty.
func Calculate(records domain.CreditList) float64 {
	if len(records) == 0 {
		return 0
	}
	var hours, points float64
	for _, r := range records {
		q, _ := domain.Quality(r.Grade)
		hours += float64(r.Credits)
		points += q * float64(r.Credits)
	}
	return points / hours
}

// Round rounds v half-up at two decimal places. math.Floor(x+0.5) rather than
// strconv's default rounding, which breaks ties to even.
func Round(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// Format renders v for display, rounded half-up to two decimals.
func Format(v float64) string {
	return strconv.FormatFloat(Round(v), 'f', 2, 64)
}
