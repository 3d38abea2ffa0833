package forecast

import (
	"context"
	"log"
	"sync"
	"time"
)

// Service orchestrates the provider fetches for today and tomorrow and
// assembles the combined ForecastResult. It holds no state between
// refreshes; the latest result lives in the store.
type Service struct {
	fetcher DayFetcher
	store   Store
}

// NewService creates a new Service.
func NewService(fetcher DayFetcher, store Store) *Service {
	return &Service{
		fetcher: fetcher,
		store:   store,
	}
}

// Refresh fetches today's and tomorrow's samples, analyzes each day, and
// resolves the current status. The two fetches run concurrently and fail
// independently: a failed day degrades to empty data and never prevents
// the other day from producing a result. Refresh itself never fails.
func (s *Service) Refresh(ctx context.Context, now time.Time) ForecastResult {
	now = now.UTC()
	today := now
	tomorrow := now.AddDate(0, 0, 1)

	var (
		wg              sync.WaitGroup
		todaySamples    []Sample
		tomorrowSamples []Sample
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		todaySamples = s.fetchDay(ctx, today)
	}()
	go func() {
		defer wg.Done()
		tomorrowSamples = s.fetchDay(ctx, tomorrow)
	}()
	wg.Wait()

	log.Printf("forecast: refreshed with %d samples today, %d tomorrow", len(todaySamples), len(tomorrowSamples))

	return ForecastResult{
		Today:            todaySamples,
		Tomorrow:         tomorrowSamples,
		TodayAnalysis:    AnalyzeDay(todaySamples),
		TomorrowAnalysis: AnalyzeDay(tomorrowSamples),
		CurrentStatus:    ResolveCurrent(now, todaySamples),
		RefreshedAt:      now,
	}
}

// fetchDay performs one fetch and degrades any failure to "no data".
func (s *Service) fetchDay(ctx context.Context, day time.Time) []Sample {
	samples, err := s.fetcher.FetchDay(ctx, day)
	if err != nil {
		log.Printf("provider %s fetch failed for %s: %v", s.fetcher.Name(), day.Format("2006-01-02"), err)
		return nil
	}
	return samples
}

// RefreshAndStore runs one refresh cycle and publishes the result.
func (s *Service) RefreshAndStore(ctx context.Context) {
	result := s.Refresh(ctx, time.Now().UTC())
	s.store.SetLatest(result)
}

// Latest delegates to the underlying store.
func (s *Service) Latest() (ForecastResult, error) {
	return s.store.Latest()
}
