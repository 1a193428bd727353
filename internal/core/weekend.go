package core

import "time"

const dateLayout = "2006-01-02"

// NextWeekend returns the Friday-Monday span around the coming Saturday.
// On a Saturday that Saturday is used; on a Sunday the following one is.
func NextWeekend(today time.Time) WeekendDates {
	var saturday, sunday time.Time

	switch today.Weekday() {
	case time.Saturday:
		saturday = today
		sunday = today.AddDate(0, 0, 1)
	case time.Sunday:
		saturday = today.AddDate(0, 0, 6)
		sunday = today.AddDate(0, 0, 7)
	default:
		daysUntilSaturday := int(time.Saturday - today.Weekday())
		saturday = today.AddDate(0, 0, daysUntilSaturday)
		sunday = saturday.AddDate(0, 0, 1)
	}

	return WeekendDates{
		Friday:   FormatDate(saturday.AddDate(0, 0, -1)),
		Saturday: FormatDate(saturday),
		Sunday:   FormatDate(sunday),
		Monday:   FormatDate(sunday.AddDate(0, 0, 1)),
	}
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate reads a YYYY-MM-DD date in the local zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.Local)
}
