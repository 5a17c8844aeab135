package analytics

import (
	"time"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
)

// Streak counts the consecutive days ending at today on which the activity
// was completed. A missing completion today means a streak of 0.
func Streak(activityID domain.ID, logs domain.LogBook, today time.Time) int {
	streak := 0
	day := civil(today)

	// a run can never be longer than the number of logged dates
	for streak < len(logs) && logs.Completed(domain.FormatDate(day), activityID) {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak finds the longest run of consecutive completed days anywhere
// in the log history.
func LongestStreak(activityID domain.ID, logs domain.LogBook) int {
	// Dates is ascending, so days comes out in calendar order
	var days []time.Time
	for _, d := range logs.Dates() {
		if !logs.Completed(d, activityID) {
			continue
		}
		t, err := domain.ParseDate(d)
		if err != nil {
			continue
		}
		days = append(days, t)
	}

	if len(days) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest
}

// Streaks reports current and longest streaks for every activity.
func Streaks(activities []domain.Activity, logs domain.LogBook, today time.Time) []domain.ActivityStreak {
	streaks := make([]domain.ActivityStreak, 0, len(activities))
	for _, a := range activities {
		streaks = append(streaks, domain.ActivityStreak{
			ActivityID: a.ID,
			Name:       a.Name,
			Current:    Streak(a.ID, logs, today),
			Longest:    LongestStreak(a.ID, logs),
		})
	}
	return streaks
}
