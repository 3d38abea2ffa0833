package forecast

import "time"

// worstPressure is the sentinel reported when no sample is available.
const worstPressure = 100

// ResolveCurrent classifies the sample nearest in time to now. Samples with
// an unparseable timestamp are skipped; on equidistant ties the earlier
// sample in input order wins. When no usable sample exists the status is
// unknown with the worst-case pressure.
func ResolveCurrent(now time.Time, today []Sample) CurrentStatus {
	unknown := CurrentStatus{
		Band:     BandUnknown,
		Pressure: worstPressure,
		Color:    "gray",
	}
	if len(today) == 0 {
		return unknown
	}

	var nearest *Sample
	var nearestDiff time.Duration
	for i := range today {
		ts, err := today[i].Timestamp()
		if err != nil {
			continue
		}
		diff := now.Sub(ts)
		if diff < 0 {
			diff = -diff
		}
		if nearest == nil || diff < nearestDiff {
			nearest = &today[i]
			nearestDiff = diff
		}
	}
	if nearest == nil {
		return unknown
	}

	color := nearest.Color
	if color == "" {
		color = string(Classify(nearest.Pressure))
	}
	return CurrentStatus{
		Band:        Classify(nearest.Pressure),
		Pressure:    nearest.Pressure,
		Color:       color,
		IsFavorable: nearest.Pressure <= -30,
		Timestamp:   nearest.Date,
	}
}
