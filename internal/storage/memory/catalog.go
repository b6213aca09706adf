// Package memory holds the built-in hotel catalog: the fixed Miami set
// the quoting rules were written against.
package memory

import (
	"context"

	"miami_hotels/internal/domain"
)

type Catalog struct{ hotels []domain.Hotel }

func New() *Catalog {
	return &Catalog{hotels: []domain.Hotel{
		{Name: "Lakewood", Rating: 3, Rates: domain.RateCard{WeekdayRegular: 110, WeekdayRewards: 80, WeekendRegular: 90, WeekendRewards: 80}},
		{Name: "Bridgewood", Rating: 4, Rates: domain.RateCard{WeekdayRegular: 160, WeekdayRewards: 110, WeekendRegular: 60, WeekendRewards: 50}},
		{Name: "Ridgewood", Rating: 5, Rates: domain.RateCard{WeekdayRegular: 220, WeekdayRewards: 100, WeekendRegular: 150, WeekendRewards: 40}},
	}}
}

// ListHotels returns a copy; the backing catalog stays immutable.
func (c *Catalog) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	out := make([]domain.Hotel, len(c.hotels))
	copy(out, c.hotels)
	return out, nil
}
