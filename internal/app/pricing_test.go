package app_test

import (
	"testing"
	"time"

	"miami_hotels/internal/app"
	"miami_hotels/internal/domain"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(app.DateLayout, s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return d
}

func TestDayClassOf(t *testing.T) {
	cases := []struct {
		day  string
		want domain.DayClass
	}{
		{"16Mar2009", domain.Weekday}, // Monday
		{"20Mar2009", domain.Weekday}, // Friday
		{"21Mar2009", domain.Weekend}, // Saturday
		{"22Mar2009", domain.Weekend}, // Sunday
	}
	for _, tc := range cases {
		if got := app.DayClassOf(date(t, tc.day)); got != tc.want {
			t.Fatalf("%s: got %v want %v", tc.day, got, tc.want)
		}
	}
}

func TestCostFor_AllWeekdaysIsRateTimesNights(t *testing.T) {
	h := domain.Hotel{Name: "Lakewood", Rating: 3, Rates: domain.RateCard{
		WeekdayRegular: 110, WeekdayRewards: 80, WeekendRegular: 90, WeekendRewards: 80,
	}}
	dates := []time.Time{date(t, "16Mar2009"), date(t, "17Mar2009"), date(t, "18Mar2009")}

	bd := app.CostFor(h, domain.Regular, dates)
	if bd.Total != 3*110 {
		t.Fatalf("total: %d", bd.Total)
	}
	if len(bd.Nights) != 3 {
		t.Fatalf("nights: %d", len(bd.Nights))
	}
	for i, n := range bd.Nights {
		if n.Day != domain.Weekday || n.Rate != 110 {
			t.Fatalf("night %d: %+v", i, n)
		}
		if !n.Date.Equal(dates[i]) {
			t.Fatalf("night %d out of order: %v", i, n.Date)
		}
	}
}

func TestCostFor_AllWeekendsIsRateTimesNights(t *testing.T) {
	h := domain.Hotel{Name: "Ridgewood", Rating: 5, Rates: domain.RateCard{
		WeekdayRegular: 220, WeekdayRewards: 100, WeekendRegular: 150, WeekendRewards: 40,
	}}
	dates := []time.Time{date(t, "21Mar2009"), date(t, "22Mar2009")}

	bd := app.CostFor(h, domain.Rewards, dates)
	if bd.Total != 2*40 {
		t.Fatalf("total: %d", bd.Total)
	}
}

func TestCostFor_EmptyDates(t *testing.T) {
	h := domain.Hotel{Name: "Bridgewood", Rating: 4}
	bd := app.CostFor(h, domain.Regular, nil)
	if bd.Total != 0 || len(bd.Nights) != 0 {
		t.Fatalf("expected zero breakdown, got %+v", bd)
	}
}
