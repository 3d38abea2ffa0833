package forecast

// Flat read accessors over a ForecastResult, used by the presentation
// layer. All of them are pure and nil-safe.

// IsGoodMoment reports whether the sample nearest to the refresh instant
// classified green.
func (r ForecastResult) IsGoodMoment() bool {
	return r.CurrentStatus.IsFavorable
}

// CurrentPressure returns the pressure of the nearest sample, or the
// worst-case sentinel when the status is unknown.
func (r ForecastResult) CurrentPressure() float64 {
	return r.CurrentStatus.Pressure
}

// BestMoment returns the single most favorable moment of the day, if any.
func (a *DayAnalysis) BestMoment() (Moment, bool) {
	if a == nil || len(a.BestMoments) == 0 {
		return Moment{}, false
	}
	return a.BestMoments[0], true
}

// PopulatedHours counts the hour buckets that received at least one sample.
func (a *DayAnalysis) PopulatedHours() int {
	if a == nil {
		return 0
	}
	var n int
	for _, b := range a.Hourly {
		if b.AveragePressure != nil {
			n++
		}
	}
	return n
}
