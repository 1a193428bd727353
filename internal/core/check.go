package core

import "fmt"

// CheckDestination lists the fields the scorer would silently skip.
func CheckDestination(d Destination) []string {
	var problems []string
	if _, ok := travelMinutes(d.TravelTime); !ok {
		problems = append(problems, fmt.Sprintf("%s: travel_time %q is not H:MM", d.Name, d.TravelTime))
	}
	if _, ok := averagePrice(d.PriceRange); !ok {
		problems = append(problems, fmt.Sprintf("%s: price_range %q is not ¥<low>-<high>", d.Name, d.PriceRange))
	}
	if d.Encoded == "" {
		problems = append(problems, fmt.Sprintf("%s: missing encoded station name", d.Name))
	}
	return problems
}
