package forecast

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeFetcher serves canned samples per calendar day and can fail selected
// days.
type fakeFetcher struct {
	samples map[string][]Sample
	fail    map[string]bool
	calls   []string
}

func (f *fakeFetcher) Name() string { return "fake" }

func (f *fakeFetcher) FetchDay(_ context.Context, day time.Time) ([]Sample, error) {
	key := day.Format("2006-01-02")
	f.calls = append(f.calls, key)
	if f.fail[key] {
		return nil, errors.New("boom")
	}
	return f.samples[key], nil
}

// fakeStore records the published results.
type fakeStore struct {
	results []ForecastResult
}

func (s *fakeStore) SetLatest(result ForecastResult) {
	s.results = append(s.results, result)
}

func (s *fakeStore) Latest() (ForecastResult, error) {
	if len(s.results) == 0 {
		return ForecastResult{}, errors.New("empty")
	}
	return s.results[len(s.results)-1], nil
}

func TestRefreshTomorrowFetchFails(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	fetcher := &fakeFetcher{
		samples: map[string][]Sample{
			"2025-01-15": {
				{Date: "2025-01-15T09:55:00Z", Pressure: -45},
				{Date: "2025-01-15T10:00:00Z", Pressure: -40},
			},
		},
		fail: map[string]bool{"2025-01-16": true},
	}

	service := NewService(fetcher, &fakeStore{})
	result := service.Refresh(context.Background(), now)

	if result.TodayAnalysis == nil {
		t.Fatal("todayAnalysis is nil, want analysis of the two samples")
	}
	if result.TodayAnalysis.SampleCount != 2 {
		t.Errorf("today sampleCount = %d, want 2", result.TodayAnalysis.SampleCount)
	}
	if result.TomorrowAnalysis != nil {
		t.Errorf("tomorrowAnalysis = %+v, want nil after fetch failure", result.TomorrowAnalysis)
	}
	if result.Tomorrow != nil {
		t.Errorf("tomorrow samples = %v, want nil", result.Tomorrow)
	}
	if !result.RefreshedAt.Equal(now) {
		t.Errorf("refreshedAt = %v, want %v", result.RefreshedAt, now)
	}
	if result.CurrentStatus.Timestamp != "2025-01-15T10:00:00Z" {
		t.Errorf("currentStatus.Timestamp = %s, want the nearest 10:00 sample", result.CurrentStatus.Timestamp)
	}
}

func TestRefreshFetchesBothDays(t *testing.T) {
	now := time.Date(2025, 1, 15, 23, 50, 0, 0, time.UTC)
	fetcher := &fakeFetcher{samples: map[string][]Sample{}}

	service := NewService(fetcher, &fakeStore{})
	result := service.Refresh(context.Background(), now)

	if len(fetcher.calls) != 2 {
		t.Fatalf("fetch calls = %v, want exactly today and tomorrow", fetcher.calls)
	}
	seen := map[string]bool{}
	for _, c := range fetcher.calls {
		seen[c] = true
	}
	if !seen["2025-01-15"] || !seen["2025-01-16"] {
		t.Errorf("fetch calls = %v, want 2025-01-15 and 2025-01-16", fetcher.calls)
	}

	// Both days empty: analyses nil, status unknown, still no error.
	if result.TodayAnalysis != nil || result.TomorrowAnalysis != nil {
		t.Error("analyses should be nil for empty days")
	}
	if result.CurrentStatus.Band != BandUnknown {
		t.Errorf("currentStatus.Band = %s, want %s", result.CurrentStatus.Band, BandUnknown)
	}
}

func TestRefreshAndStorePublishes(t *testing.T) {
	fetcher := &fakeFetcher{samples: map[string][]Sample{}}
	st := &fakeStore{}
	service := NewService(fetcher, st)

	service.RefreshAndStore(context.Background())

	if len(st.results) != 1 {
		t.Fatalf("published %d results, want 1", len(st.results))
	}
	if st.results[0].RefreshedAt.IsZero() {
		t.Error("published result has zero refreshedAt")
	}
}
