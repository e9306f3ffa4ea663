package schema

import "regexp"

var (
	emailRegexp = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phoneRegexp = regexp.MustCompile(`^\+?[0-9][0-9 ().\-]{5,18}[0-9]$`)
	// Year, year-month, or year-month-day. Month and day ranges are checked at
	// the regex level only; day-of-month is not validated against the month.
	partialDateRegexp = regexp.MustCompile(`^[0-9]{4}(-(0[1-9]|1[0-2])(-(0[1-9]|[12][0-9]|3[01]))?)?$`)
)

// IsValidEmail reports whether s is a plausible local@domain.tld address.
func IsValidEmail(s string) bool {
	return emailRegexp.MatchString(s)
}

// IsValidPhone reports whether s is a loosely formatted international phone number.
func IsValidPhone(s string) bool {
	return phoneRegexp.MatchString(s)
}

// IsValidPartialDate reports whether s is a date at year, year-month, or
// year-month-day precision.
func IsValidPartialDate(s string) bool {
	return partialDateRegexp.MatchString(s)
}

// Named patterns referenced by the resume entity declarations.
var (
	Email       = &Pattern{Name: "email", Match: IsValidEmail}
	Phone       = &Pattern{Name: "phone", Match: IsValidPhone}
	PartialDate = &Pattern{Name: "partial-date", Match: IsValidPartialDate}
)
