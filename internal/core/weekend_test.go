package core

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNextWeekend_Weekdays(t *testing.T) {
	cases := []struct {
		today string
		want  WeekendDates
	}{
		// Monday
		{"2026-02-23", WeekendDates{"2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}},
		// Friday
		{"2026-02-27", WeekendDates{"2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}},
		// Saturday keeps today
		{"2026-02-28", WeekendDates{"2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}},
		// Sunday jumps to the following weekend
		{"2026-03-01", WeekendDates{"2026-03-06", "2026-03-07", "2026-03-08", "2026-03-09"}},
		// year boundary
		{"2026-12-30", WeekendDates{"2027-01-01", "2027-01-02", "2027-01-03", "2027-01-04"}},
	}

	for _, tc := range cases {
		got := NextWeekend(day(tc.today))
		if got != tc.want {
			t.Errorf("today %s: expected %+v, got %+v", tc.today, tc.want, got)
		}
	}
}

func TestNextWeekend_Properties(t *testing.T) {
	start := day("2026-01-01")
	for i := 0; i < 400; i++ {
		today := start.AddDate(0, 0, i)
		w := NextWeekend(today)

		sat := day(w.Saturday)
		if sat.Weekday() != time.Saturday {
			t.Fatalf("today %s: saturday %s is a %s", FormatDate(today), w.Saturday, sat.Weekday())
		}
		if sat.Before(day(FormatDate(today))) {
			t.Fatalf("today %s: saturday %s is in the past", FormatDate(today), w.Saturday)
		}
		if FormatDate(sat.AddDate(0, 0, 1)) != w.Sunday {
			t.Fatalf("today %s: sunday %s does not follow saturday", FormatDate(today), w.Sunday)
		}
		if FormatDate(sat.AddDate(0, 0, -1)) != w.Friday {
			t.Fatalf("today %s: friday %s does not precede saturday", FormatDate(today), w.Friday)
		}
		if FormatDate(day(w.Sunday).AddDate(0, 0, 1)) != w.Monday {
			t.Fatalf("today %s: monday %s does not follow sunday", FormatDate(today), w.Monday)
		}
	}
}

func TestNextWeekend_SaturdayIsToday(t *testing.T) {
	sat := time.Date(2026, 10, 17, 23, 30, 0, 0, time.Local)
	if got := NextWeekend(sat).Saturday; got != "2026-10-17" {
		t.Errorf("expected 2026-10-17, got %s", got)
	}
}

func TestWeekendDates_Dates(t *testing.T) {
	w := WeekendDates{"f", "sa", "su", "m"}
	got := w.Dates()
	if len(got) != 4 || got[0] != "f" || got[3] != "m" {
		t.Errorf("unexpected order: %v", got)
	}
}
