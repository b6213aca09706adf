package app

import (
	"fmt"
	"strings"
	"time"

	"miami_hotels/internal/domain"
)

// DateLayout matches request dates like "16Mar2009".
const DateLayout = "02Jan2006"

// ParseStayRequest turns a raw request line of the form
// "<Tier>: <date>, <date>, ..." into a StayRequest.
//
// Tier matching is exact (case-sensitive). A trailing "(...)" block on
// a date token is a day-of-week annotation; it is documentation only
// and is stripped without being checked against the actual weekday.
// Empty tokens between commas are skipped; a list with no tokens left
// is rejected. Date order and duplicates are preserved.
func ParseStayRequest(raw string) (domain.StayRequest, error) {
	tierSeg, dateSeg, found := strings.Cut(raw, ":")
	if !found {
		return domain.StayRequest{}, fmt.Errorf("%w: %q", domain.ErrMalformedRequest, raw)
	}

	tier, err := parseTier(strings.TrimSpace(tierSeg))
	if err != nil {
		return domain.StayRequest{}, err
	}

	var dates []time.Time
	for _, tok := range strings.Split(strings.TrimSpace(dateSeg), ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		clean := tok
		if i := strings.Index(clean, "("); i >= 0 {
			clean = strings.TrimSpace(clean[:i])
		}
		d, err := time.Parse(DateLayout, clean)
		if err != nil {
			// report the token as the caller wrote it, annotation included
			return domain.StayRequest{}, fmt.Errorf("%w: %q (expected DDMmmYYYY)", domain.ErrInvalidDateFormat, tok)
		}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return domain.StayRequest{}, domain.ErrEmptyDateList
	}

	return domain.StayRequest{Tier: tier, Dates: dates}, nil
}

func parseTier(s string) (domain.CustomerTier, error) {
	switch s {
	case "Regular":
		return domain.Regular, nil
	case "Rewards":
		return domain.Rewards, nil
	}
	return 0, fmt.Errorf("%w: %q (expected Regular or Rewards)", domain.ErrUnknownCustomerTier, s)
}
