package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"sort"
	"time"

	"miami_hotels/internal/domain"
)

// QuoteService evaluates quote requests against an immutable catalog.
// The catalog slice is never written after construction, so Evaluate
// is safe for any number of concurrent callers without locking.
type QuoteService struct {
	catalog  []domain.Hotel
	cache    domain.Cache // optional; nil disables caching
	cacheTTL time.Duration
}

func NewQuoteService(catalog []domain.Hotel, c domain.Cache, ttl time.Duration) *QuoteService {
	// private copy so later mutation of the caller's slice cannot reach us
	own := make([]domain.Hotel, len(catalog))
	copy(own, catalog)
	return &QuoteService{catalog: own, cache: c, cacheTTL: ttl}
}

// Catalog returns the hotels in catalog order. The slice is a copy;
// callers cannot reach the live catalog through it.
func (s *QuoteService) Catalog() []domain.Hotel {
	out := make([]domain.Hotel, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Evaluate parses raw, prices every catalog hotel, and picks the
// cheapest. Breakdowns are ordered by total ascending, then rating
// descending, then catalog order (stable). Only successful results are
// cached: the catalog never changes within a process, so an identical
// request line always yields an identical result.
func (s *QuoteService) Evaluate(ctx context.Context, raw string) (domain.SelectionResult, error) {
	key := quoteKey(raw)
	if s.cache != nil {
		var cached domain.SelectionResult
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}

	req, err := ParseStayRequest(raw)
	if err != nil {
		return domain.SelectionResult{}, err
	}
	if len(s.catalog) == 0 {
		return domain.SelectionResult{}, errors.New("catalog is empty")
	}

	bds := make([]domain.CostBreakdown, 0, len(s.catalog))
	for _, h := range s.catalog {
		bds = append(bds, CostFor(h, req.Tier, req.Dates))
	}
	sort.SliceStable(bds, func(i, j int) bool {
		if bds[i].Total != bds[j].Total {
			return bds[i].Total < bds[j].Total
		}
		return bds[i].Rating > bds[j].Rating
	})

	res := domain.SelectionResult{Cheapest: bds[0].Hotel, Tier: req.Tier, Breakdowns: bds}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, res, int(s.cacheTTL.Seconds()))
	}
	return res, nil
}

func quoteKey(raw string) string {
	sum := sha1.Sum([]byte(raw))
	return "quote:" + hex.EncodeToString(sum[:])
}
