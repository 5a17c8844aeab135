package analytics

import (
	"sort"
	"strings"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
)

const (
	// NoScheduledTime marks activities without a clock time. Real values
	// stay within 0..1439, so it always sorts last.
	NoScheduledTime = 9999

	dayStartMinutes = 8 * 60
	minutesPerDay   = 24 * 60
)

type period struct {
	id    string
	label string
	lower int
	upper int
}

// Fixed buckets in minutes from 8am, in display order.
var periods = []period{
	{id: "morning", label: "Morning", lower: 0, upper: 240},
	{id: "afternoon", label: "Afternoon", lower: 240, upper: 540},
	{id: "evening", label: "Evening", lower: 540, upper: 780},
	{id: "night", label: "Night", lower: 780, upper: 960},
	{id: "late-night", label: "Late Night", lower: 960, upper: minutesPerDay},
	{id: "anytime", label: "Anytime", lower: NoScheduledTime, upper: NoScheduledTime + 1},
}

// twoDigits parses exactly two ASCII digits.
func twoDigits(s string) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

// parseClock accepts strict 24-hour "HH:MM".
func parseClock(s string) (int, int, bool) {
	hh, mm, found := strings.Cut(s, ":")
	if !found {
		return 0, 0, false
	}

	h, ok := twoDigits(hh)
	if !ok || h > 23 {
		return 0, 0, false
	}
	m, ok := twoDigits(mm)
	if !ok || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// MinutesFrom8am places a clock time on a logical day that starts at 08:00.
// 08:00 maps to 0 and 07:59 to 1439. A nil or unparsable time maps to
// NoScheduledTime.
func MinutesFrom8am(scheduled *string) int {
	if scheduled == nil {
		return NoScheduledTime
	}

	h, m, ok := parseClock(*scheduled)
	if !ok {
		return NoScheduledTime
	}

	total := h*60 + m
	if total >= dayStartMinutes {
		return total - dayStartMinutes
	}
	return total + (minutesPerDay - dayStartMinutes)
}

func activityMinutes(a domain.Activity) int {
	if a.Kind != domain.ActivityKindTimeBound {
		return NoScheduledTime
	}
	return MinutesFrom8am(a.ScheduledTime)
}

// SortByTime orders activities along the 8am timeline, breaking ties by name.
// The input slice is left untouched.
func SortByTime(activities []domain.Activity) []domain.Activity {
	sorted := make([]domain.Activity, len(activities))
	copy(sorted, activities)

	sort.SliceStable(sorted, func(i, j int) bool {
		mi, mj := activityMinutes(sorted[i]), activityMinutes(sorted[j])
		if mi != mj {
			return mi < mj
		}
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// GroupByPeriod buckets activities by time of day. Empty buckets are dropped
// and the rest keep the fixed period order; activities keep their input order
// inside a bucket.
func GroupByPeriod(sorted []domain.Activity) []domain.TimePeriod {
	groups := make([]domain.TimePeriod, 0, len(periods))

	for _, p := range periods {
		var members []domain.Activity
		for _, a := range sorted {
			m := activityMinutes(a)
			if m >= p.lower && m < p.upper {
				members = append(members, a)
			}
		}
		if len(members) == 0 {
			continue
		}

		groups = append(groups, domain.TimePeriod{
			ID:         p.id,
			Label:      p.label,
			Lower:      p.lower,
			Upper:      p.upper,
			Activities: members,
		})
	}

	return groups
}
