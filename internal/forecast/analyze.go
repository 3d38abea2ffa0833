package forecast

import "sort"

const (
	maxBestMoments  = 5
	maxGreenMoments = 10
)

// AnalyzeDay summarizes one day of raw samples. It returns nil when there
// is no data, which callers must treat as "nothing published for this day"
// rather than as an error.
func AnalyzeDay(samples []Sample) *DayAnalysis {
	if len(samples) == 0 {
		return nil
	}

	sum := samples[0].Pressure
	min := samples[0].Pressure
	max := samples[0].Pressure
	for _, s := range samples[1:] {
		sum += s.Pressure
		if s.Pressure < min {
			min = s.Pressure
		}
		if s.Pressure > max {
			max = s.Pressure
		}
	}

	hourly := AggregateHourly(samples)

	// Hour counts come from the hourly averages, not the raw samples: an
	// hour is green only when its average classifies green. Hours without
	// data count toward none of the bands.
	var greenHours, orangeHours, redHours int
	for _, b := range hourly {
		switch b.Color {
		case BandGreen:
			greenHours++
		case BandOrange:
			orangeHours++
		case BandRed:
			redHours++
		}
	}

	return &DayAnalysis{
		AveragePressure: round1(sum / float64(len(samples))),
		MinPressure:     min,
		MaxPressure:     max,
		GreenHours:      greenHours,
		OrangeHours:     orangeHours,
		RedHours:        redHours,
		BestMoments:     bestMoments(samples),
		GreenMoments:    greenMoments(samples),
		Hourly:          hourly,
		SampleCount:     len(samples),
	}
}

// bestMoments returns the up-to-five lowest-pressure raw samples, sorted
// ascending by pressure. The sort is stable so equal pressures keep their
// original order.
func bestMoments(samples []Sample) []Moment {
	moments := make([]Moment, 0, len(samples))
	for _, s := range samples {
		moments = append(moments, Moment{Date: s.Date, Pressure: s.Pressure})
	}
	sort.SliceStable(moments, func(i, j int) bool {
		return moments[i].Pressure < moments[j].Pressure
	})
	if len(moments) > maxBestMoments {
		moments = moments[:maxBestMoments]
	}
	return moments
}

// greenMoments returns the first up-to-ten green samples in original order,
// each carrying a color (the provider's when present, the classified band
// otherwise).
func greenMoments(samples []Sample) []Sample {
	var moments []Sample
	for _, s := range samples {
		if Classify(s.Pressure) != BandGreen {
			continue
		}
		if s.Color == "" {
			s.Color = string(BandGreen)
		}
		moments = append(moments, s)
		if len(moments) == maxGreenMoments {
			break
		}
	}
	return moments
}
