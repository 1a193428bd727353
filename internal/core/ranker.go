package core

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// DefaultLimit is how many recommendations are returned when the caller has
// no preference.
const DefaultLimit = 5

var priceRangePattern = regexp.MustCompile(`¥(\d+)-(\d+)`)

// GenerateRecommendations scores every destination, orders them best first
// and keeps at most limit. Equal scores keep their input order.
func GenerateRecommendations(destinations []Destination, prefs Preferences, limit int) []ScoredDestination {
	if limit <= 0 {
		return []ScoredDestination{}
	}

	scored := make([]ScoredDestination, len(destinations))
	for i, d := range destinations {
		scored[i] = ScoredDestination{Destination: d, Score: ScoreDestination(d)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// ScoreDestination rates a destination out of 100: travel time up to 40,
// rating, price and number of highlights up to 20 each. A travel time or
// price range that cannot be parsed contributes nothing.
func ScoreDestination(d Destination) float64 {
	score := 0.0

	if minutes, ok := travelMinutes(d.TravelTime); ok {
		score += travelTimeScore(minutes)
	}

	score += d.Rating * 4

	if avg, ok := averagePrice(d.PriceRange); ok {
		score += priceScore(avg)
	}

	score += float64(min(len(d.Highlights)*4, 20))

	return score
}

func travelTimeScore(minutes int) float64 {
	switch {
	case minutes <= 90:
		return 40
	case minutes <= 150:
		return 35
	case minutes <= 210:
		return 25
	default:
		return 10
	}
}

func priceScore(avg float64) float64 {
	switch {
	case avg <= 200:
		return 20
	case avg <= 300:
		return 15
	case avg <= 400:
		return 10
	default:
		return 5
	}
}

// travelMinutes parses "H:MM". Anything after a second colon, such as
// seconds, is ignored.
func travelMinutes(s string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return hours*60 + mins, true
}

func averagePrice(s string) (float64, bool) {
	m := priceRangePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	low, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	high, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	return float64(low+high) / 2, true
}
