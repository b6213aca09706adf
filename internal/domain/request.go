package domain

import "time"

// StayRequest is one parsed quote request: the customer tier plus the
// stay dates exactly as given (order kept, duplicates allowed).
type StayRequest struct {
	Tier  CustomerTier
	Dates []time.Time
}

// NightCharge is a single night of a breakdown: the date, how it was
// classified, and the rate that applied.
type NightCharge struct {
	Date time.Time
	Day  DayClass
	Rate int
}

// CostBreakdown itemizes one hotel's cost for a request, one night per
// requested date in request order.
type CostBreakdown struct {
	Hotel  string
	Rating int
	Total  int
	Nights []NightCharge
}

// SelectionResult is the quote verdict: the cheapest hotel's name plus
// every hotel's breakdown in selection order (total ascending, rating
// descending, catalog order on a full tie).
type SelectionResult struct {
	Cheapest   string
	Tier       CustomerTier
	Breakdowns []CostBreakdown
}
