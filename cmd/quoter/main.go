// quoter evaluates request lines in bulk against the built-in catalog:
// one request per argument, or one per stdin line when no arguments are
// given. Example line:
//
//	Regular: 20Mar2009(fri), 21Mar2009(sat), 22Mar2009(sun)
package main

import (
	"bufio"
	"context"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"miami_hotels/internal/adapters/observability"
	"miami_hotels/internal/app"
	"miami_hotels/internal/shared"
	"miami_hotels/internal/storage/memory"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	hotels, err := memory.New().ListHotels(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog load failed")
	}
	q := app.NewQuoteService(hotels, nil, 0)

	requests := os.Args[1:]
	if len(requests) == 0 {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				requests = append(requests, line)
			}
		}
		if err := sc.Err(); err != nil {
			log.Fatal().Err(err).Msg("read stdin failed")
		}
	}
	if len(requests) == 0 {
		log.Fatal().Msg("no requests given (pass them as args or stdin lines)")
	}

	log.Info().Int("requests", len(requests)).Int("workers", cfg.Workers).Msg("quoter starting")

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for i, raw := range requests {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(line int, req string) {
			defer wg.Done()
			defer sem.Release(1)

			res, err := q.Evaluate(ctx, req)
			if err != nil {
				log.Warn().Int("line", line).Str("request", req).Err(err).Msg("quote failed")
				return
			}
			log.Info().
				Int("line", line).
				Str("request", req).
				Str("cheapest", res.Cheapest).
				Int("total", res.Breakdowns[0].Total).
				Msg("quote ok")
		}(i+1, raw)
	}

	wg.Wait()
	log.Info().Msg("quoting completed")
}
