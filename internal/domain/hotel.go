package domain

// CustomerTier is the pricing category a stay is quoted under.
type CustomerTier int

const (
	Regular CustomerTier = iota
	Rewards
)

func (t CustomerTier) String() string {
	if t == Rewards {
		return "Rewards"
	}
	return "Regular"
}

// DayClass splits the week for pricing: Saturday and Sunday are
// weekend nights, Monday through Friday are weekday nights.
type DayClass int

const (
	Weekday DayClass = iota
	Weekend
)

func (d DayClass) String() string {
	if d == Weekend {
		return "weekend"
	}
	return "weekday"
}

// RateCard holds the four nightly rates of a hotel, one per
// (tier, day class) combination.
type RateCard struct {
	WeekdayRegular int
	WeekdayRewards int
	WeekendRegular int
	WeekendRewards int
}

// Hotel is one immutable catalog entry. Rating matters only when two
// hotels quote the same total: the higher-rated one wins.
type Hotel struct {
	Name   string
	Rating int
	Rates  RateCard
}

// Rate returns the nightly rate for the given tier and day class.
func (h Hotel) Rate(t CustomerTier, d DayClass) int {
	if t == Rewards {
		if d == Weekend {
			return h.Rates.WeekendRewards
		}
		return h.Rates.WeekdayRewards
	}
	if d == Weekend {
		return h.Rates.WeekendRegular
	}
	return h.Rates.WeekdayRegular
}
