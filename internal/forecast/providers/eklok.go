package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/nlgrid/eklok-forecast/internal/forecast"
)

// DefaultBaseURL is the public Eklok price-detail endpoint.
const DefaultBaseURL = "https://eklok.nl/api/pricedetail"

// EklokProvider implements the forecast.DayFetcher interface for the Stedin
// Eklok API. The API serves five-minute samples per calendar day with a
// range of -100 (very favorable) to +100 (peak load); times are in UTC.
type EklokProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewEklokProvider creates the provider. baseURL falls back to the public
// endpoint when empty; limiter may be nil to disable rate limiting.
func NewEklokProvider(client *http.Client, baseURL string, limiter *rate.Limiter) *EklokProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "eklok",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &EklokProvider{
		name:    "eklok",
		baseURL: baseURL,
		httpCfg: HTTPClientConfig{
			Client:  client,
			Limiter: limiter,
		},
		circuit: cb,
	}
}

func (p *EklokProvider) Name() string {
	return p.name
}

// FetchDay retrieves the samples for one calendar day. Any transport or
// protocol failure is returned as an error; the caller treats it as "no
// data for this day".
func (p *EklokProvider) FetchDay(ctx context.Context, day time.Time) ([]forecast.Sample, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("date", day.Format("2006-01-02"))

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		return req, nil
	}

	resp, err := doRequest(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return decodeSamples(body)
}

// rawRecord is one element of the provider payload. Range is a pointer so
// an absent value can be distinguished from zero and defaulted to the
// worst-case 100.
type rawRecord struct {
	Date  string   `json:"date"`
	Range *float64 `json:"range"`
	Color string   `json:"color"`
}

// decodeSamples accepts both response shapes the API is known to produce:
// an {"data": [...]} envelope and a bare array.
func decodeSamples(body []byte) ([]forecast.Sample, error) {
	var envelope struct {
		Data []rawRecord `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		return toSamples(envelope.Data), nil
	}

	var records []rawRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("malformed response body: %w", err)
	}
	return toSamples(records), nil
}

func toSamples(records []rawRecord) []forecast.Sample {
	samples := make([]forecast.Sample, 0, len(records))
	for _, r := range records {
		pressure := 100.0
		if r.Range != nil {
			pressure = *r.Range
		}
		samples = append(samples, forecast.Sample{
			Date:     r.Date,
			Pressure: pressure,
			Color:    r.Color,
		})
	}
	return samples
}
