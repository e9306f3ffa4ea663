package validation

import (
	"strconv"
	"strings"

	"github.com/jonathan/resume-validator/internal/schema"
)

// partialDate is a parsed date at year, year-month, or year-month-day
// precision. Month and Day are zero when absent.
type partialDate struct {
	Year  int
	Month int
	Day   int
}

// parsePartialDate parses a partial-date string. Inputs that do not match the
// partial-date pattern report ok=false.
func parsePartialDate(s string) (partialDate, bool) {
	if !schema.IsValidPartialDate(s) {
		return partialDate{}, false
	}

	var d partialDate
	parts := strings.SplitN(s, "-", 3)
	d.Year, _ = strconv.Atoi(parts[0])
	if len(parts) > 1 {
		d.Month, _ = strconv.Atoi(parts[1])
	}
	if len(parts) > 2 {
		d.Day, _ = strconv.Atoi(parts[2])
	}
	return d, true
}

// comparePartialDates compares a and b at the coarsest granularity both carry.
// "2020" and "2020-05" compare equal: partial precision is allowed, so a
// comparison that cannot be decided at the shared granularity is a tie.
// Returns -1 if a is earlier, 1 if a is later, and 0 otherwise.
func comparePartialDates(a, b partialDate) int {
	if a.Year != b.Year {
		return sign(a.Year - b.Year)
	}
	if a.Month == 0 || b.Month == 0 {
		return 0
	}
	if a.Month != b.Month {
		return sign(a.Month - b.Month)
	}
	if a.Day == 0 || b.Day == 0 {
		return 0
	}
	return sign(a.Day - b.Day)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
