package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"miami_hotels/internal/adapters/observability"
	"miami_hotels/internal/app"
	"miami_hotels/internal/domain"
)

type Handlers struct{ Q *app.QuoteService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/hotels", h.listHotels)
	s.mux.Post("/v1/quotes", h.createQuote)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// ---- wire shapes ----

type quoteRequest struct {
	Request string `json:"request"`
}

type nightResponse struct {
	Date string `json:"date"`
	Day  string `json:"day"`
	Rate int    `json:"rate"`
}

type breakdownResponse struct {
	Hotel  string          `json:"hotel"`
	Rating int             `json:"rating"`
	Total  int             `json:"total"`
	Nights []nightResponse `json:"nights"`
}

type quoteResponse struct {
	Cheapest   string              `json:"cheapest"`
	Tier       string              `json:"tier"`
	Breakdowns []breakdownResponse `json:"breakdowns"`
}

type hotelResponse struct {
	Name           string `json:"name"`
	Rating         int    `json:"rating"`
	WeekdayRegular int    `json:"weekday_regular"`
	WeekdayRewards int    `json:"weekday_rewards"`
	WeekendRegular int    `json:"weekend_regular"`
	WeekendRewards int    `json:"weekend_rewards"`
}

func toQuoteResponse(res domain.SelectionResult) quoteResponse {
	out := quoteResponse{
		Cheapest:   res.Cheapest,
		Tier:       res.Tier.String(),
		Breakdowns: make([]breakdownResponse, 0, len(res.Breakdowns)),
	}
	for _, bd := range res.Breakdowns {
		b := breakdownResponse{
			Hotel:  bd.Hotel,
			Rating: bd.Rating,
			Total:  bd.Total,
			Nights: make([]nightResponse, 0, len(bd.Nights)),
		}
		for _, n := range bd.Nights {
			b.Nights = append(b.Nights, nightResponse{
				Date: n.Date.Format(app.DateLayout),
				Day:  n.Day.String(),
				Rate: n.Rate,
			})
		}
		out.Breakdowns = append(out.Breakdowns, b)
	}
	return out
}

// problemTitle maps a parse failure to its problem title; every kind in
// the taxonomy is a 400.
func problemTitle(err error) (string, string) {
	switch {
	case errors.Is(err, domain.ErrMalformedRequest):
		return "Malformed Request", "malformed_request"
	case errors.Is(err, domain.ErrUnknownCustomerTier):
		return "Unknown Customer Tier", "unknown_tier"
	case errors.Is(err, domain.ErrInvalidDateFormat):
		return "Invalid Date Format", "invalid_date"
	case errors.Is(err, domain.ErrEmptyDateList):
		return "Empty Date List", "empty_dates"
	}
	return "Bad Request", "error"
}

// ---- handlers ----

func (h *Handlers) createQuote(w http.ResponseWriter, r *http.Request) {
	var in quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be JSON with a \"request\" field")
		return
	}

	res, err := h.Q.Evaluate(r.Context(), in.Request)
	if err != nil {
		title, outcome := problemTitle(err)
		observability.ObserveQuote("unknown", outcome)
		writeProblem(w, http.StatusBadRequest, title, err.Error())
		return
	}
	observability.ObserveQuote(res.Tier.String(), "ok")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toQuoteResponse(res)); err != nil {
		log.Error().Err(err).Msg("failed to write createQuote body")
	}
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	hotels := h.Q.Catalog()
	resp := make([]hotelResponse, 0, len(hotels))
	for _, hl := range hotels {
		resp = append(resp, hotelResponse{
			Name:           hl.Name,
			Rating:         hl.Rating,
			WeekdayRegular: hl.Rates.WeekdayRegular,
			WeekdayRewards: hl.Rates.WeekdayRewards,
			WeekendRegular: hl.Rates.WeekendRegular,
			WeekendRewards: hl.Rates.WeekendRewards,
		})
	}

	etag, body := calcETagAndBody(resp)
	// The catalog never changes within a process, so the ETag is stable.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listHotels body")
	}
}
