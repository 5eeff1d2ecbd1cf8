package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddClampedDate(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		years  int
		months int
		days   int
		want   time.Time
	}{
		{
			name:   "one month simple",
			start:  time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, time.April, 10, 12, 0, 0, 0, time.UTC),
		},
		{
			name:   "jan 31 plus one month clamps to feb 29 in leap year",
			start:  time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "jan 31 plus one month clamps to feb 28 otherwise",
			start:  time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC),
			months: 1,
			want:   time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "cross year boundary",
			start:  time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC),
			months: 2,
			want:   time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "one year from leap day clamps",
			start: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
			years: 1,
			want:  time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "days cross month boundary",
			start: time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC),
			days:  7,
			want:  time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddClampedDate(tt.start, tt.years, tt.months, tt.days)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestElapsedCalendarMonths(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		from time.Time
		want int
	}{
		{
			name: "29 days is not a full month",
			from: now.AddDate(0, 0, -29),
			want: 0,
		},
		{
			name: "one month and one day",
			from: AddClampedDate(now, 0, -1, -1),
			want: 1,
		},
		{
			name: "exactly one month",
			from: AddClampedDate(now, 0, -1, 0),
			want: 1,
		},
		{
			name: "same instant",
			from: now,
			want: 0,
		},
		{
			name: "thirteen months",
			from: AddClampedDate(now, -1, -1, 0),
			want: 13,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ElapsedCalendarMonths(tt.from, now))
		})
	}
}

func TestElapsedCalendarDays(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, ElapsedCalendarDays(now.Add(-23*time.Hour), now))
	assert.Equal(t, 1, ElapsedCalendarDays(now.AddDate(0, 0, -1), now))
	assert.Equal(t, 7, ElapsedCalendarDays(now.AddDate(0, 0, -7), now))
	// Order does not matter.
	assert.Equal(t, 7, ElapsedCalendarDays(now, now.AddDate(0, 0, -7)))
}

func TestElapsedCalendarYears(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, ElapsedCalendarYears(now.AddDate(0, -11, 0), now))
	assert.Equal(t, 1, ElapsedCalendarYears(now.AddDate(-1, 0, 0), now))
	assert.Equal(t, 1, ElapsedCalendarYears(now.AddDate(-1, -11, 0), now))
}
