package app

import (
	"time"

	"miami_hotels/internal/domain"
)

// DayClassOf classifies a date for pricing. Saturday and Sunday are
// weekend nights; everything else is a weekday night.
func DayClassOf(d time.Time) domain.DayClass {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return domain.Weekend
	}
	return domain.Weekday
}

// CostFor prices one hotel for a stay: each night's rate is looked up
// by (tier, day class of that date) and summed. An empty date list
// yields a zero total and no nights. Inputs are never mutated.
func CostFor(h domain.Hotel, tier domain.CustomerTier, dates []time.Time) domain.CostBreakdown {
	out := domain.CostBreakdown{Hotel: h.Name, Rating: h.Rating}
	if len(dates) == 0 {
		return out
	}
	out.Nights = make([]domain.NightCharge, 0, len(dates))
	for _, d := range dates {
		day := DayClassOf(d)
		rate := h.Rate(tier, day)
		out.Nights = append(out.Nights, domain.NightCharge{Date: d, Day: day, Rate: rate})
		out.Total += rate
	}
	return out
}
