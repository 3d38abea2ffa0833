package forecast

import (
	"time"
)

// Band is the three-way qualitative classification of a pressure value.
type Band string

const (
	BandGreen   Band = "green"
	BandOrange  Band = "orange"
	BandRed     Band = "red"
	BandUnknown Band = "unknown"
)

// Sample is a single five-minute grid-load observation as delivered by the
// provider. Pressure runs from -100 (very favorable moment to use energy)
// to +100 (peak load). Timestamps are kept as the raw provider string;
// stages that need an instant parse it and skip samples that fail to parse.
type Sample struct {
	Date     string  `json:"date"`
	Pressure float64 `json:"range"`
	Color    string  `json:"color,omitempty"`
}

// Timestamp parses the sample's raw provider timestamp. The provider sends
// ISO-8601 times, usually Z-suffixed; offset-less values are taken as UTC.
func (s Sample) Timestamp() (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s.Date); err == nil {
		return ts, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", s.Date, time.UTC)
}

// HourBucket is one of the 24 fixed UTC hour-of-day aggregation slots of a
// day. AveragePressure is nil for hours without any contributing sample,
// in which case Color is BandUnknown.
type HourBucket struct {
	Hour            int      `json:"hour"`
	AveragePressure *float64 `json:"averagePressure"`
	Color           Band     `json:"color"`
}

// Moment is a raw sample projected down to its timestamp and pressure.
type Moment struct {
	Date     string  `json:"date"`
	Pressure float64 `json:"range"`
}

// DayAnalysis summarizes one day of raw samples. Average, min and max are
// computed over the raw five-minute pressures; the band hour counts are
// computed over the 24 hourly buckets, so an hour is green only when its
// hourly average classifies green. Callers receive nil instead of a
// DayAnalysis when the day had no data.
type DayAnalysis struct {
	AveragePressure float64      `json:"averagePressure"`
	MinPressure     float64      `json:"minPressure"`
	MaxPressure     float64      `json:"maxPressure"`
	GreenHours      int          `json:"greenHours"`
	OrangeHours     int          `json:"orangeHours"`
	RedHours        int          `json:"redHours"`
	BestMoments     []Moment     `json:"bestMoments"`
	GreenMoments    []Sample     `json:"greenMoments"`
	Hourly          []HourBucket `json:"hourly"`
	SampleCount     int          `json:"sampleCount"`
}

// CurrentStatus classifies the sample nearest in time to the refresh
// instant. Band is BandUnknown and Pressure the worst-case sentinel 100
// when no sample was available.
type CurrentStatus struct {
	Band        Band    `json:"band"`
	Pressure    float64 `json:"range"`
	Color       string  `json:"color"`
	IsFavorable bool    `json:"isFavorable"`
	Timestamp   string  `json:"timestamp,omitempty"`
}

// ForecastResult is the complete outcome of one refresh cycle. It is
// rebuilt wholesale on every refresh and never mutated afterwards.
type ForecastResult struct {
	Today            []Sample      `json:"today"`
	Tomorrow         []Sample      `json:"tomorrow"`
	TodayAnalysis    *DayAnalysis  `json:"todayAnalysis,omitempty"`
	TomorrowAnalysis *DayAnalysis  `json:"tomorrowAnalysis,omitempty"`
	CurrentStatus    CurrentStatus `json:"currentStatus"`
	RefreshedAt      time.Time     `json:"refreshedAt"`
}
