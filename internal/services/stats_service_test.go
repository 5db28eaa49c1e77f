package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeBucketBoundaries(t *testing.T) {
	today := date(2026, time.August, 27)

	cases := []struct {
		name     string
		birthday time.Time
		want     string
	}{
		{"seventeen", date(2009, time.September, 1), "Under 18"},
		{"eighteen today", date(2008, time.August, 27), "18-24"},
		{"eighteen tomorrow", date(2008, time.August, 28), "Under 18"},
		{"twenty four", date(2002, time.August, 27), "18-24"},
		{"twenty five", date(2001, time.August, 27), "25-34"},
		{"thirty four", date(1992, time.August, 27), "25-34"},
		{"thirty five", date(1991, time.August, 27), "35-44"},
		{"forty five", date(1981, time.August, 27), "45-54"},
		{"fifty five", date(1971, time.August, 27), "55-64"},
		{"sixty four", date(1962, time.August, 28), "55-64"},
		{"sixty five today", date(1961, time.August, 27), "65+"},
		{"ninety", date(1936, time.March, 1), "65+"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ageBucket(tc.birthday, today))
		})
	}
}

func TestAgeBucketUsesCalendarAgeNotYearDiff(t *testing.T) {
	// Born late in the year: the year difference alone says 18, but the
	// birthday has not come around yet.
	today := date(2026, time.August, 27)
	birthday := date(2008, time.December, 25)

	assert.Equal(t, "Under 18", ageBucket(birthday, today))
}

func TestAgeBucketMonthBoundary(t *testing.T) {
	today := date(2026, time.August, 1)

	// Same month, day before and day after.
	assert.Equal(t, "18-24", ageBucket(date(2008, time.August, 1), today))
	assert.Equal(t, "Under 18", ageBucket(date(2008, time.August, 2), today))
	// Birthday next month.
	assert.Equal(t, "Under 18", ageBucket(date(2008, time.September, 15), today))
	// Birthday last month.
	assert.Equal(t, "18-24", ageBucket(date(2008, time.July, 15), today))
}
