package core

import (
	"regexp"
	"strings"
)

var (
	recommendPhrases = []string{"推荐", "去哪玩", "有什么地方"}
	weekendPhrases   = []string{"这周末", "周末"}
	nextWeekPhrases  = []string{"下周"}
	eveningPhrases   = []string{"晚", "18点", "18:00"}
	morningPhrases   = []string{"早", "上午"}

	cityPattern = regexp.MustCompile(`去(.{2,3})(玩|玩玩|旅游|旅行)`)
)

// ParseIntent classifies a request by keyword. Matching is exact on the raw
// input. A "去<place>玩" style match wins over a recommendation phrase.
func ParseIntent(input string) Intent {
	intent := Intent{Type: IntentUnknown}

	if containsAny(input, recommendPhrases) {
		intent.Type = IntentRecommend
	}

	if m := cityPattern.FindStringSubmatch(input); m != nil {
		intent.Type = IntentQuerySpecific
		intent.Destination = m[1]
	}

	switch {
	case containsAny(input, weekendPhrases):
		intent.Date = DateThisWeekend
	case containsAny(input, nextWeekPhrases):
		intent.Date = DateNextWeekend
	}

	switch {
	case containsAny(input, eveningPhrases):
		intent.TimePreference = TimeEvening
	case containsAny(input, morningPhrases):
		intent.TimePreference = TimeMorning
	}

	return intent
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
