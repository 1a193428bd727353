package core

import "encoding/json"

type IntentType string

const (
	IntentUnknown       IntentType = "unknown"
	IntentRecommend     IntentType = "recommend"
	IntentQuerySpecific IntentType = "query_specific"
)

type DateHint string

const (
	DateThisWeekend DateHint = "this_weekend"
	DateNextWeekend DateHint = "next_weekend"
)

type TimePreference string

const (
	TimeEvening TimePreference = "evening"
	TimeMorning TimePreference = "morning"
)

// Station is a 12306 station. Encoded is the URL-safe form of Name as it
// appears in the fs/ts query parameters.
type Station struct {
	Name    string `json:"name" yaml:"name" validate:"required"`
	Code    string `json:"code" yaml:"code" validate:"required"`
	Encoded string `json:"encoded" yaml:"encoded"`
}

type Destination struct {
	Station    `yaml:",inline"`
	TravelTime string   `json:"travel_time" yaml:"travel_time" validate:"required"`
	Rating     float64  `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	PriceRange string   `json:"price_range" yaml:"price_range"`
	Highlights []string `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

type ScoredDestination struct {
	Destination
	Score float64 `json:"score"`
}

type WeekendDates struct {
	Friday   string `json:"friday"`
	Saturday string `json:"saturday"`
	Sunday   string `json:"sunday"`
	Monday   string `json:"monday"`
}

// Dates returns the four dates in calendar order.
func (w WeekendDates) Dates() []string {
	return []string{w.Friday, w.Saturday, w.Sunday, w.Monday}
}

// Intent is a coarse classification of a free-text request. Empty Date,
// TimePreference and Destination mean nothing was recognised and are
// written as JSON null.
type Intent struct {
	Type           IntentType     `json:"type"`
	Destination    string         `json:"destination"`
	Date           DateHint       `json:"date"`
	TimePreference TimePreference `json:"time_preference"`
}

func (i Intent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type           IntentType `json:"type"`
		Destination    *string    `json:"destination"`
		Date           *string    `json:"date"`
		TimePreference *string    `json:"time_preference"`
	}{
		Type:           i.Type,
		Destination:    nullable(i.Destination),
		Date:           nullable(string(i.Date)),
		TimePreference: nullable(string(i.TimePreference)),
	})
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Preferences carries what the user asked for into the ranker. Scoring does
// not read it yet.
type Preferences struct {
	Date           DateHint       `json:"date,omitempty"`
	TimePreference TimePreference `json:"time_preference,omitempty"`
}

func (i Intent) Preferences() Preferences {
	return Preferences{Date: i.Date, TimePreference: i.TimePreference}
}

type QueryRecord struct {
	Destination string `json:"destination"`
	URL         string `json:"url"`
	Date        string `json:"date"`
	TimeRange   string `json:"time_range"`
}
