package analytics

import (
	"strings"
	"time"

	"github.com/comitanigiacomo/lifesync-engine/internal/core/domain"
)

type energyKeyword struct {
	keyword string
	energy  domain.EnergyType
}

// First match wins, so overlapping keywords resolve in this order.
var energyKeywords = []energyKeyword{
	{"health", domain.EnergyRestorative},
	{"fitness", domain.EnergyRestorative},
	{"sleep", domain.EnergyRestorative},
	{"rest", domain.EnergyRestorative},
	{"meditation", domain.EnergyRestorative},
	{"mindfulness", domain.EnergyRestorative},
	{"hobby", domain.EnergyRestorative},
	{"social", domain.EnergyNeutral},
	{"family", domain.EnergyNeutral},
	{"learning", domain.EnergyNeutral},
	{"work", domain.EnergyDraining},
	{"productivity", domain.EnergyDraining},
	{"finance", domain.EnergyDraining},
}

// EnergyClassifier maps a category name to its energy type.
type EnergyClassifier func(categoryName string) domain.EnergyType

// ClassifyEnergy matches the category name case-insensitively against the
// keyword table. Unmatched names are neutral.
func ClassifyEnergy(categoryName string) domain.EnergyType {
	name := strings.ToLower(categoryName)
	for _, k := range energyKeywords {
		if strings.Contains(name, k.keyword) {
			return k.energy
		}
	}
	return domain.EnergyNeutral
}

// EnergyBalance splits the hours actually completed over the range up to
// today by the energy type of each activity's category. Activities whose
// category cannot be found are skipped.
func EnergyBalance(activities []domain.Activity, categories []domain.Category, logs domain.LogBook, dates domain.DateRange, today time.Time, classify EnergyClassifier) domain.EnergyBreakdown {
	if classify == nil {
		classify = ClassifyEnergy
	}

	byID := make(map[domain.ID]domain.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	valid := dates.UpTo(domain.FormatDate(today))

	var balance domain.EnergyBreakdown
	for _, a := range activities {
		cat, ok := byID[a.CategoryID]
		if !ok {
			continue
		}

		hours := a.DailyHours * float64(countCompletions([]domain.Activity{a}, logs, valid))

		switch classify(cat.Name) {
		case domain.EnergyRestorative:
			balance.RestorativeHours += hours
		case domain.EnergyDraining:
			balance.DrainingHours += hours
		default:
			balance.NeutralHours += hours
		}
	}

	return balance
}
