package core

import "strings"

const (
	eveningRange = "18:00-24:00"
	morningRange = "06:00-12:00"
)

// GenerateBatchQueries builds one query per date and destination, grouped by
// date. The evening window is only chosen when the date value itself carries
// "fri"; plain YYYY-MM-DD dates get the morning window.
func GenerateBatchQueries(destinations []Destination, origin Station, dates []string) []QueryRecord {
	queries := make([]QueryRecord, 0, len(dates)*len(destinations))

	for _, date := range dates {
		timeRange := morningRange
		if strings.Contains(date, "fri") {
			timeRange = eveningRange
		}
		for _, d := range destinations {
			queries = append(queries, QueryRecord{
				Destination: d.Name,
				URL:         BuildQueryURL(origin.Encoded, origin.Code, d.Encoded, d.Code, date),
				Date:        date,
				TimeRange:   timeRange,
			})
		}
	}

	return queries
}
