package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpserver "miami_hotels/internal/adapters/http_server"
	"miami_hotels/internal/app"
	"miami_hotels/internal/storage/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	hotels, err := memory.New().ListHotels(context.Background())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	q := app.NewQuoteService(hotels, nil, 10*time.Minute)

	srv := httpserver.New(0, 0) // rate limiting off in tests
	srv.MountHandlers(&httpserver.Handlers{Q: q})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func postQuote(t *testing.T, ts *httptest.Server, request string) *http.Response {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"request": request})
	res, err := http.Post(ts.URL+"/v1/quotes", "application/json", strings.NewReader(string(body)))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	t.Cleanup(func() { _ = res.Body.Close() })
	return res
}

func TestCreateQuote_OK(t *testing.T) {
	ts := newTestServer(t)
	res := postQuote(t, ts, "Regular: 20Mar2009(fri), 21Mar2009(sat), 22Mar2009(sun)")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", res.StatusCode)
	}

	var out struct {
		Cheapest   string `json:"cheapest"`
		Tier       string `json:"tier"`
		Breakdowns []struct {
			Hotel  string `json:"hotel"`
			Total  int    `json:"total"`
			Nights []struct {
				Date string `json:"date"`
				Day  string `json:"day"`
				Rate int    `json:"rate"`
			} `json:"nights"`
		} `json:"breakdowns"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Cheapest != "Bridgewood" || out.Tier != "Regular" {
		t.Fatalf("unexpected verdict: %+v", out)
	}
	if len(out.Breakdowns) != 3 || out.Breakdowns[0].Total != 280 {
		t.Fatalf("unexpected breakdowns: %+v", out.Breakdowns)
	}
	nights := out.Breakdowns[0].Nights
	if len(nights) != 3 || nights[0].Day != "weekday" || nights[1].Day != "weekend" {
		t.Fatalf("unexpected nights: %+v", nights)
	}
	if nights[0].Date != "20Mar2009" {
		t.Fatalf("night date: %s", nights[0].Date)
	}
}

func TestCreateQuote_ValidationProblems(t *testing.T) {
	ts := newTestServer(t)
	cases := []struct {
		name      string
		request   string
		wantTitle string
	}{
		{"unknown tier", "Premium: 16Mar2009", "Unknown Customer Tier"},
		{"empty date list", "Regular: ", "Empty Date List"},
		{"missing separator", "Regular 16Mar2009", "Malformed Request"},
		{"bad date", "Regular: 99Mar2009", "Invalid Date Format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := postQuote(t, ts, tc.request)
			if res.StatusCode != http.StatusBadRequest {
				t.Fatalf("status: %d", res.StatusCode)
			}
			if ct := res.Header.Get("Content-Type"); ct != "application/problem+json" {
				t.Fatalf("content-type: %s", ct)
			}
			var p struct {
				Title  string `json:"title"`
				Detail string `json:"detail"`
			}
			if err := json.NewDecoder(res.Body).Decode(&p); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if p.Title != tc.wantTitle {
				t.Fatalf("title: got %q want %q", p.Title, tc.wantTitle)
			}
		})
	}
}

func TestCreateQuote_BadDateDetailNamesToken(t *testing.T) {
	ts := newTestServer(t)
	res := postQuote(t, ts, "Regular: 17Foo2009(tues)")
	var p struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(res.Body).Decode(&p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(p.Detail, "17Foo2009(tues)") {
		t.Fatalf("detail missing offending token: %s", p.Detail)
	}
}

func TestCreateQuote_NonJSONBody(t *testing.T) {
	ts := newTestServer(t)
	res, err := http.Post(ts.URL+"/v1/quotes", "application/json", strings.NewReader("not json"))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status: %d", res.StatusCode)
	}
}

func TestListHotels_CatalogAndETag(t *testing.T) {
	ts := newTestServer(t)
	res, err := http.Get(ts.URL + "/v1/hotels")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status: %d", res.StatusCode)
	}
	etag := res.Header.Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}

	var hotels []struct {
		Name           string `json:"name"`
		Rating         int    `json:"rating"`
		WeekdayRegular int    `json:"weekday_regular"`
	}
	if err := json.NewDecoder(res.Body).Decode(&hotels); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(hotels) != 3 || hotels[0].Name != "Lakewood" || hotels[0].WeekdayRegular != 110 {
		t.Fatalf("unexpected catalog: %+v", hotels)
	}

	// Conditional re-fetch short-circuits.
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/hotels", nil)
	req.Header.Set("If-None-Match", etag)
	res2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET 2: %v", err)
	}
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusNotModified {
		t.Fatalf("status 2: %d", res2.StatusCode)
	}
}

func TestRateLimit_RejectsBurstOverflow(t *testing.T) {
	hotels, err := memory.New().ListHotels(context.Background())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	q := app.NewQuoteService(hotels, nil, 0)

	srv := httpserver.New(1, 2) // 1 rps, burst of 2
	srv.MountHandlers(&httpserver.Handlers{Q: q})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	var limited bool
	for i := 0; i < 5; i++ {
		res, err := http.Get(ts.URL + "/healthz")
		if err != nil {
			t.Fatalf("GET: %v", err)
		}
		res.Body.Close()
		if res.StatusCode == http.StatusTooManyRequests {
			limited = true
		}
	}
	if !limited {
		t.Fatal("expected at least one 429")
	}
}
