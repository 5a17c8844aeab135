package analytics

import (
	"math"
	"strings"
	"time"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
)

// WeightProfile says how much an hour in a category counts toward each
// outcome dimension, in percent. Profiles need not sum to 100.
type WeightProfile struct {
	Career    float64
	Happiness float64
	Longevity float64
}

func (w WeightProfile) For(d domain.Dimension) float64 {
	switch d {
	case domain.DimensionCareer:
		return w.Career
	case domain.DimensionHappiness:
		return w.Happiness
	case domain.DimensionLongevity:
		return w.Longevity
	}
	return 0
}

type KeywordWeights struct {
	Keyword string
	Weights WeightProfile
}

type HorizonMultiplier struct {
	Horizon     domain.Horizon
	Compounding float64
	// Consistency is how much of the projection depends on past compliance.
	Consistency float64
}

// Projector holds the tunable constants of the outcome projection.
type Projector struct {
	Weights        []KeywordWeights
	DefaultWeights WeightProfile
	// ReferenceHours of weighted daily time earn ReferenceScore points.
	ReferenceHours   float64
	ReferenceScore   float64
	MaxScore         float64
	ComplianceWindow int
	Horizons         []HorizonMultiplier
}

func DefaultProjector() Projector {
	return Projector{
		Weights: []KeywordWeights{
			{"health", WeightProfile{20, 40, 80}},
			{"fitness", WeightProfile{15, 50, 85}},
			{"productivity", WeightProfile{80, 30, 20}},
			{"work", WeightProfile{85, 20, 10}},
			{"mindfulness", WeightProfile{25, 70, 60}},
			{"meditation", WeightProfile{20, 80, 55}},
			{"social", WeightProfile{40, 75, 45}},
			{"family", WeightProfile{20, 85, 50}},
			{"learning", WeightProfile{70, 45, 30}},
			{"education", WeightProfile{75, 40, 25}},
			{"hobby", WeightProfile{15, 80, 35}},
			{"creative", WeightProfile{35, 70, 30}},
			{"sleep", WeightProfile{30, 50, 90}},
			{"rest", WeightProfile{25, 55, 70}},
			{"exercise", WeightProfile{20, 55, 90}},
			{"nutrition", WeightProfile{15, 40, 85}},
			{"finance", WeightProfile{70, 35, 25}},
		},
		DefaultWeights:   WeightProfile{33, 33, 33},
		ReferenceHours:   4,
		ReferenceScore:   70,
		MaxScore:         100,
		ComplianceWindow: 30,
		Horizons: []HorizonMultiplier{
			{Horizon: domain.Horizon1Year, Compounding: 1.0, Consistency: 0.3},
			{Horizon: domain.Horizon5Year, Compounding: 1.5, Consistency: 0.5},
			{Horizon: domain.Horizon10Year, Compounding: 2.2, Consistency: 0.7},
		},
	}
}

// ProjectOutcomes scores career, happiness and longevity over the 1, 5 and
// 10 year horizons with the default constants.
func ProjectOutcomes(categories []domain.Category, activities []domain.Activity, logs domain.LogBook, today time.Time) domain.OutcomeMatrix {
	return DefaultProjector().Project(categories, activities, logs, today)
}

// WeightsFor returns the profile of the first keyword contained in the
// category name, ignoring case.
func (p Projector) WeightsFor(categoryName string) WeightProfile {
	name := strings.ToLower(categoryName)
	for _, kw := range p.Weights {
		if strings.Contains(name, kw.Keyword) {
			return kw.Weights
		}
	}
	return p.DefaultWeights
}

func (p Projector) baseScore(hours float64) float64 {
	if p.ReferenceHours <= 0 {
		return 0
	}
	return math.Min(hours/p.ReferenceHours*p.ReferenceScore, p.MaxScore)
}

// Compliance is the share of expected completions logged over the window
// ending at today. Every activity is expected once per day; logged ids
// that no longer resolve to an activity do not count.
func (p Projector) Compliance(activities []domain.Activity, logs domain.LogBook, today time.Time) float64 {
	known := make(map[domain.ID]bool, len(activities))
	for _, a := range activities {
		known[a.ID] = true
	}

	expected, completed := 0, 0
	day := civil(today)
	for i := 0; i < p.ComplianceWindow; i++ {
		date := domain.FormatDate(day.AddDate(0, 0, -i))
		expected += len(activities)
		for _, id := range domain.UniqueIDs(logs[date]) {
			if known[id] {
				completed++
			}
		}
	}

	if expected == 0 {
		return 0
	}
	return float64(completed) / float64(expected)
}

func (p Projector) Project(categories []domain.Category, activities []domain.Activity, logs domain.LogBook, today time.Time) domain.OutcomeMatrix {
	byID := make(map[domain.ID]domain.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	dimensionHours := make(map[domain.Dimension]float64, len(domain.Dimensions))
	for _, d := range domain.Dimensions {
		dimensionHours[d] = 0
	}

	for _, a := range activities {
		cat, ok := byID[a.CategoryID]
		if !ok {
			continue
		}
		weights := p.WeightsFor(cat.Name)
		for _, d := range domain.Dimensions {
			dimensionHours[d] += a.DailyHours * weights.For(d) / 100
		}
	}

	baseScores := make(map[domain.Dimension]float64, len(domain.Dimensions))
	for _, d := range domain.Dimensions {
		baseScores[d] = p.baseScore(dimensionHours[d])
	}

	compliance := p.Compliance(activities, logs, today)

	matrix := make(map[domain.Horizon]map[domain.Dimension]int, len(p.Horizons))
	for _, h := range p.Horizons {
		effective := compliance*h.Consistency + (1 - h.Consistency)

		scores := make(map[domain.Dimension]int, len(domain.Dimensions))
		for _, d := range domain.Dimensions {
			score := math.Round(baseScores[d] * h.Compounding * effective)
			scores[d] = int(math.Min(math.Max(score, 0), p.MaxScore))
		}
		matrix[h.Horizon] = scores
	}

	return domain.OutcomeMatrix{
		Matrix: matrix,
		Meta: domain.OutcomeMeta{
			TotalHoursTracked: TotalDailyHours(activities),
			ComplianceRate:    int(math.Round(compliance * 100)),
			DimensionHours:    dimensionHours,
			BaseScores:        baseScores,
		},
	}
}

// ScoreLevel labels a score for display.
func ScoreLevel(score int) domain.ScoreLevel {
	switch {
	case score >= 80:
		return domain.ScoreLevel{Label: "Excellent", Color: "#10b981"}
	case score >= 60:
		return domain.ScoreLevel{Label: "Good", Color: "#3b82f6"}
	case score >= 40:
		return domain.ScoreLevel{Label: "Moderate", Color: "#f59e0b"}
	case score >= 20:
		return domain.ScoreLevel{Label: "Fair", Color: "#f97316"}
	default:
		return domain.ScoreLevel{Label: "Needs Work", Color: "#ef4444"}
	}
}

func DimensionInfo(d domain.Dimension) domain.DimensionInfo {
	switch d {
	case domain.DimensionCareer:
		return domain.DimensionInfo{Icon: "💼", Label: "Career & Financial", Description: "Professional growth, skills, wealth building"}
	case domain.DimensionHappiness:
		return domain.DimensionInfo{Icon: "😊", Label: "Happiness & Well-being", Description: "Mental health, relationships, fulfillment"}
	case domain.DimensionLongevity:
		return domain.DimensionInfo{Icon: "💪", Label: "Longevity & Health", Description: "Physical health, energy, life quality"}
	}
	return domain.DimensionInfo{Icon: "📊", Label: string(d)}
}
