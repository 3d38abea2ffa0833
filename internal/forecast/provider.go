package forecast

import (
	"context"
	"time"
)

// DayFetcher abstracts the remote grid-load provider. FetchDay retrieves
// the ordered five-minute samples for one calendar day; an error means no
// data is available for that day, never a fatal condition for the caller.
type DayFetcher interface {
	Name() string
	FetchDay(ctx context.Context, day time.Time) ([]Sample, error)
}

// Store is the contract the latest-result cell (and any future persistent
// store) must satisfy. SetLatest swaps the whole result so readers never
// observe a partial refresh.
type Store interface {
	SetLatest(result ForecastResult)
	Latest() (ForecastResult, error)
}
