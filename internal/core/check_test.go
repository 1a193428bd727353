package core

import "testing"

func TestCheckDestination(t *testing.T) {
	if got := CheckDestination(dest("ok", "1:30", 4, "¥100-200")); len(got) != 0 {
		t.Errorf("expected no problems, got %v", got)
	}

	bad := Destination{Station: Station{Name: "bad"}, TravelTime: "90min", PriceRange: "cheap"}
	if got := CheckDestination(bad); len(got) != 3 {
		t.Errorf("expected 3 problems, got %d: %v", len(got), got)
	}
}
