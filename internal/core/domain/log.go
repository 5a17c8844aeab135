package domain

import (
	"errors"
	"sort"
	"strings"
	"time"
)

var (
	ErrInvalidDate      = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrUnauthorized     = errors.New("unauthorized")
)

// DateLayout is the civil calendar date format used for every log key.
const DateLayout = "2006-01-02"

// ParseDate parses a civil date. The result is midnight UTC and carries no
// timezone meaning; only its year, month and day are relevant.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// LogEntry is one persisted (user, activity, date) completion.
type LogEntry struct {
	UserID     ID        `json:"user_id" db:"user_id"`
	ActivityID ID        `json:"activity_id" db:"activity_id"`
	Date       string    `json:"date" db:"date"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// LogBook maps a civil date to the activities completed that day.
// A missing date means nothing was completed.
type LogBook map[string][]ID

func BuildLogBook(entries []LogEntry) LogBook {
	book := make(LogBook)
	for _, e := range entries {
		if book.Completed(e.Date, e.ActivityID) {
			continue
		}
		book[e.Date] = append(book[e.Date], e.ActivityID)
	}
	return book
}

func (l LogBook) Completed(date string, activityID ID) bool {
	for _, id := range l[date] {
		if id == activityID {
			return true
		}
	}
	return false
}

// Dates returns the logged dates in ascending order.
func (l LogBook) Dates() []string {
	dates := make([]string, 0, len(l))
	for d := range l {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// UniqueIDs deduplicates ids while keeping their first-seen order.
func UniqueIDs(ids []ID) []ID {
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[ID]bool, len(ids))
	out := make([]ID, 0, len(ids))
	for _, id := range ids {
		if id.IsZero() || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
