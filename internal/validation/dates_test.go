package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePartialDate_Granularities(t *testing.T) {
	d, ok := parsePartialDate("2020")
	require.True(t, ok)
	assert.Equal(t, partialDate{Year: 2020}, d)

	d, ok = parsePartialDate("2020-05")
	require.True(t, ok)
	assert.Equal(t, partialDate{Year: 2020, Month: 5}, d)

	d, ok = parsePartialDate("2020-05-17")
	require.True(t, ok)
	assert.Equal(t, partialDate{Year: 2020, Month: 5, Day: 17}, d)
}

func TestParsePartialDate_Invalid(t *testing.T) {
	_, ok := parsePartialDate("May 2020")
	assert.False(t, ok)
	_, ok = parsePartialDate("")
	assert.False(t, ok)
	_, ok = parsePartialDate("2020-13")
	assert.False(t, ok)
}

func TestComparePartialDates_SameGranularity(t *testing.T) {
	a, _ := parsePartialDate("2019-01")
	b, _ := parsePartialDate("2021-06")
	assert.Equal(t, -1, comparePartialDates(a, b))
	assert.Equal(t, 1, comparePartialDates(b, a))
	assert.Equal(t, 0, comparePartialDates(a, a))
}

func TestComparePartialDates_CoarsestCommonGranularity(t *testing.T) {
	year, _ := parsePartialDate("2020")
	month, _ := parsePartialDate("2020-05")
	day, _ := parsePartialDate("2020-05-17")

	// A year-only value ties with anything in the same year.
	assert.Equal(t, 0, comparePartialDates(year, month))
	assert.Equal(t, 0, comparePartialDates(month, year))
	assert.Equal(t, 0, comparePartialDates(month, day))

	later, _ := parsePartialDate("2021-01")
	assert.Equal(t, -1, comparePartialDates(year, later))
}

func TestComparePartialDates_DayPrecision(t *testing.T) {
	a, _ := parsePartialDate("2020-05-01")
	b, _ := parsePartialDate("2020-05-31")
	assert.Equal(t, -1, comparePartialDates(a, b))
	assert.Equal(t, 1, comparePartialDates(b, a))
}
