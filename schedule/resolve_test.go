package schedule

import (
	"testing"
	"time"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name    string
		date    string
		time    string
		want    time.Time
		wantSet bool
	}{
		{"date and time", "2024-05-01", "18:30", time.Date(2024, 5, 1, 18, 30, 0, 0, time.Local), true},
		{"time defaults to 09:00", "2024-05-01", "", time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local), true},
		{"empty date means no schedule", "", "18:30", time.Time{}, false},
		{"garbage date degrades silently", "not-a-date", "10:00", time.Time{}, false},
		{"impossible calendar day degrades silently", "2024-02-31", "10:00", time.Time{}, false},
		{"garbage time degrades silently", "2024-05-01", "25:99", time.Time{}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := Resolve(c.date, c.time)
			if ok != c.wantSet {
				t.Fatalf("Resolve(%q, %q) ok = %v; want %v", c.date, c.time, ok, c.wantSet)
			}
			if ok && !got.Equal(c.want) {
				t.Fatalf("Resolve(%q, %q) = %v; want %v", c.date, c.time, got, c.want)
			}
		})
	}
}
