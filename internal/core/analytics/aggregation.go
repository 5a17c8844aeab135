package analytics

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
)

// PerformingWellThreshold separates healthy activities from the ones that need
// attention in the activity analytics view.
const PerformingWellThreshold = 70

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// percent rounds part/whole to a whole percentage, defined as 0 for an
// empty whole and clamped to [0,100].
func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	p := int(math.Round(float64(part) / float64(whole) * 100))
	return min(max(p, 0), 100)
}

func activitiesOf(categoryID domain.ID, activities []domain.Activity) []domain.Activity {
	var acts []domain.Activity
	for _, a := range activities {
		if a.CategoryID == categoryID {
			acts = append(acts, a)
		}
	}
	return acts
}

func countCompletions(acts []domain.Activity, logs domain.LogBook, dates domain.DateRange) int {
	completed := 0
	for _, a := range acts {
		for _, d := range dates {
			if logs.Completed(d, a.ID) {
				completed++
			}
		}
	}
	return completed
}

// CategoryCompletionRate is the share of (activity, date) pairs completed for
// the category's activities over the dates of the range up to today.
func CategoryCompletionRate(category domain.Category, activities []domain.Activity, logs domain.LogBook, dates domain.DateRange, today time.Time) int {
	valid := dates.UpTo(domain.FormatDate(today))
	acts := activitiesOf(category.ID, activities)

	possible := len(acts) * len(valid)
	return percent(countCompletions(acts, logs, valid), possible)
}

// ActivityCompletionRate is the share of dates up to today on which the
// activity was completed.
func ActivityCompletionRate(activity domain.Activity, logs domain.LogBook, dates domain.DateRange, today time.Time) int {
	valid := dates.UpTo(domain.FormatDate(today))
	return percent(countCompletions([]domain.Activity{activity}, logs, valid), len(valid))
}

func Trend(currentRate, previousRate int) int {
	return currentRate - previousRate
}

// CategoryPerformance rates every category over the range, in input order.
func CategoryPerformance(categories []domain.Category, activities []domain.Activity, logs domain.LogBook, dates domain.DateRange, today time.Time) []domain.CategoryRate {
	rates := make([]domain.CategoryRate, 0, len(categories))
	for _, c := range categories {
		rates = append(rates, domain.CategoryRate{
			CategoryID: c.ID,
			Name:       c.Name,
			Color:      c.Color,
			Rate:       CategoryCompletionRate(c, activities, logs, dates, today),
		})
	}
	return rates
}

// OverallCompletion summarises every activity over the range up to today.
// Log ids that no longer resolve to an activity are not counted.
func OverallCompletion(activities []domain.Activity, logs domain.LogBook, dates domain.DateRange, today time.Time) domain.Consistency {
	valid := dates.UpTo(domain.FormatDate(today))
	completed := countCompletions(activities, logs, valid)
	possible := len(activities) * len(valid)

	avg := 0
	if len(valid) > 0 {
		avg = int(math.Round(float64(completed) / float64(len(valid))))
	}

	return domain.Consistency{
		CompletionRate: percent(completed, possible),
		AvgPerDay:      avg,
		Completed:      completed,
		Possible:       possible,
	}
}

// ActivityPerformance reports each activity's rate over the range together
// with a chart series: one point per day for week and month ranges (future
// days carry no value) and one point per month for the year range. Reports
// are ordered by rate, best first.
func ActivityPerformance(activities []domain.Activity, logs domain.LogBook, kind RangeKind, today time.Time) []domain.ActivityReport {
	dates := RangeDates(kind, today)
	todayStr := domain.FormatDate(today)

	reports := make([]domain.ActivityReport, 0, len(activities))
	for _, a := range activities {
		var series []domain.ChartPoint
		if kind == RangeYear {
			series = monthlySeries(a, logs, dates, todayStr)
		} else {
			series = dailySeries(a, logs, dates, todayStr, kind)
		}

		reports = append(reports, domain.ActivityReport{
			ActivityID: a.ID,
			CategoryID: a.CategoryID,
			Name:       a.Name,
			Rate:       ActivityCompletionRate(a, logs, dates, today),
			Series:     series,
		})
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Rate > reports[j].Rate
	})
	return reports
}

func dailySeries(a domain.Activity, logs domain.LogBook, dates domain.DateRange, today string, kind RangeKind) []domain.ChartPoint {
	series := make([]domain.ChartPoint, 0, len(dates))
	for _, d := range dates {
		label := d
		if day, err := domain.ParseDate(d); err == nil {
			if kind == RangeMonth {
				label = strconv.Itoa(day.Day())
			} else {
				label = day.Weekday().String()[:3]
			}
		}

		point := domain.ChartPoint{Label: label}
		if d <= today {
			v := 0
			if logs.Completed(d, a.ID) {
				v = 100
			}
			point.Value = &v
		}
		series = append(series, point)
	}
	return series
}

func monthlySeries(a domain.Activity, logs domain.LogBook, dates domain.DateRange, today string) []domain.ChartPoint {
	var totals, counts [12]int
	for _, d := range dates {
		if d > today {
			continue
		}
		day, err := domain.ParseDate(d)
		if err != nil {
			continue
		}
		idx := int(day.Month()) - 1
		counts[idx]++
		if logs.Completed(d, a.ID) {
			totals[idx]++
		}
	}

	series := make([]domain.ChartPoint, 0, len(monthLabels))
	for i, label := range monthLabels {
		v := percent(totals[i], counts[i])
		series = append(series, domain.ChartPoint{Label: label, Value: &v})
	}
	return series
}

// SplitByThreshold partitions reports into those at or above threshold and
// the rest, keeping their order.
func SplitByThreshold(reports []domain.ActivityReport, threshold int) (well, attention []domain.ActivityReport) {
	well = []domain.ActivityReport{}
	attention = []domain.ActivityReport{}
	for _, r := range reports {
		if r.Rate >= threshold {
			well = append(well, r)
		} else {
			attention = append(attention, r)
		}
	}
	return well, attention
}

func TotalDailyHours(activities []domain.Activity) float64 {
	total := 0.0
	for _, a := range activities {
		total += a.DailyHours
	}
	return total
}

// RemainingHours is what is left of the day after the planned activities.
// It goes negative when the plan overcommits the day.
func RemainingHours(activities []domain.Activity) float64 {
	return domain.MaxDailyHours - TotalDailyHours(activities)
}
