package domain

import "errors"

var ErrSnapshotNotFound = errors.New("outcome snapshot not found")

// DateRange is an ascending, contiguous, duplicate-free run of civil dates.
type DateRange []string

// UpTo keeps the dates on or before today. ISO dates order lexically, so a
// string comparison is all that is needed.
func (r DateRange) UpTo(today string) DateRange {
	valid := make(DateRange, 0, len(r))
	for _, d := range r {
		if d <= today {
			valid = append(valid, d)
		}
	}
	return valid
}

func (r DateRange) First() string {
	if len(r) == 0 {
		return ""
	}
	return r[0]
}

func (r DateRange) Last() string {
	if len(r) == 0 {
		return ""
	}
	return r[len(r)-1]
}

type TimePeriod struct {
	ID         string     `json:"id"`
	Label      string     `json:"label"`
	Lower      int        `json:"lower"`
	Upper      int        `json:"upper"`
	Activities []Activity `json:"activities"`
}

type EnergyType string

const (
	EnergyRestorative EnergyType = "restorative"
	EnergyNeutral     EnergyType = "neutral"
	EnergyDraining    EnergyType = "draining"
)

type EnergyBreakdown struct {
	DrainingHours    float64 `json:"draining_hours"`
	RestorativeHours float64 `json:"restorative_hours"`
	NeutralHours     float64 `json:"neutral_hours"`
}

type CategoryRate struct {
	CategoryID ID     `json:"category_id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	Rate       int    `json:"rate"`
	Trend      int    `json:"trend"`
}

// ChartPoint is one bar of an activity chart. Value is nil for dates that
// have not happened yet.
type ChartPoint struct {
	Label string `json:"label"`
	Value *int   `json:"value"`
}

type ActivityReport struct {
	ActivityID ID           `json:"activity_id"`
	CategoryID ID           `json:"category_id"`
	Name       string       `json:"name"`
	Rate       int          `json:"rate"`
	Series     []ChartPoint `json:"series"`
}

type Consistency struct {
	CompletionRate int `json:"completion_rate"`
	AvgPerDay      int `json:"avg_completions_per_day"`
	Completed      int `json:"completed"`
	Possible       int `json:"possible"`
}

type ActivityStreak struct {
	ActivityID ID     `json:"activity_id"`
	Name       string `json:"name"`
	Current    int    `json:"current"`
	Longest    int    `json:"longest"`
}

type Horizon string

const (
	Horizon1Year  Horizon = "1yr"
	Horizon5Year  Horizon = "5yr"
	Horizon10Year Horizon = "10yr"
)

type Dimension string

const (
	DimensionCareer    Dimension = "career"
	DimensionHappiness Dimension = "happiness"
	DimensionLongevity Dimension = "longevity"
)

// Dimensions lists the outcome axes in display order.
var Dimensions = []Dimension{DimensionCareer, DimensionHappiness, DimensionLongevity}

type OutcomeMeta struct {
	TotalHoursTracked float64               `json:"total_hours_tracked"`
	ComplianceRate    int                   `json:"compliance_rate"`
	DimensionHours    map[Dimension]float64 `json:"dimension_hours"`
	BaseScores        map[Dimension]float64 `json:"base_scores"`
}

type OutcomeMatrix struct {
	Matrix map[Horizon]map[Dimension]int `json:"matrix"`
	Meta   OutcomeMeta                   `json:"meta"`
}

type ScoreLevel struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

type DimensionInfo struct {
	Icon        string `json:"icon"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Dashboard is the landing view: this week's consistency plus today's plan.
type Dashboard struct {
	Today          string           `json:"today"`
	Week           DateRange        `json:"week"`
	Consistency    Consistency      `json:"consistency"`
	Energy         EnergyBreakdown  `json:"energy"`
	TotalHours     float64          `json:"total_hours"`
	RemainingHours float64          `json:"remaining_hours"`
	Streaks        []ActivityStreak `json:"streaks"`
	Schedule       []TimePeriod     `json:"schedule"`
}

type CategoryAnalytics struct {
	Range      string         `json:"range"`
	Dates      DateRange      `json:"dates"`
	Categories []CategoryRate `json:"categories"`
}

type ActivityAnalytics struct {
	Range          string           `json:"range"`
	Reports        []ActivityReport `json:"reports"`
	PerformingWell []ActivityReport `json:"performing_well"`
	NeedsAttention []ActivityReport `json:"needs_attention"`
}
