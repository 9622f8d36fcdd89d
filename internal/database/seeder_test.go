package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUpcomingWPSDeadlines(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want []time.Time
	}{
		{
			name: "past this month's deadline",
			now:  time.Date(2026, time.August, 30, 15, 4, 0, 0, time.UTC),
			want: []time.Time{
				time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
				time.Date(2026, time.October, 10, 0, 0, 0, 0, time.UTC),
				time.Date(2026, time.November, 10, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "before this month's deadline",
			now:  time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC),
			want: []time.Time{
				time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
				time.Date(2026, time.October, 10, 0, 0, 0, 0, time.UTC),
				time.Date(2026, time.November, 10, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "on the deadline day",
			now:  time.Date(2026, time.September, 10, 9, 30, 0, 0, time.UTC),
			want: []time.Time{
				time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
				time.Date(2026, time.October, 10, 0, 0, 0, 0, time.UTC),
				time.Date(2026, time.November, 10, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "rolls over the year end",
			now:  time.Date(2026, time.November, 20, 0, 0, 0, 0, time.UTC),
			want: []time.Time{
				time.Date(2026, time.December, 10, 0, 0, 0, 0, time.UTC),
				time.Date(2027, time.January, 10, 0, 0, 0, 0, time.UTC),
				time.Date(2027, time.February, 10, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := upcomingWPSDeadlines(tt.now, 3)

			assert.Equal(t, tt.want, got)

			seen := map[time.Time]bool{}
			for _, d := range got {
				assert.False(t, seen[d], "deadline %s seeded twice", d.Format("2006-01-02"))
				seen[d] = true
			}
		})
	}
}
