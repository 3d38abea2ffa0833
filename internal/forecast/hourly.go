package forecast

import "math"

// AggregateHourly groups five-minute samples into 24 fixed UTC hour-of-day
// buckets. It always returns exactly 24 buckets in hour order, regardless
// of how many samples exist or which hours they span. Samples whose
// timestamp fails to parse are skipped. The bucket color is classified on
// the unrounded mean; the stored average is rounded to one decimal.
func AggregateHourly(samples []Sample) []HourBucket {
	var sums [24]float64
	var counts [24]int

	for _, s := range samples {
		ts, err := s.Timestamp()
		if err != nil {
			continue
		}
		hour := ts.UTC().Hour()
		sums[hour] += s.Pressure
		counts[hour]++
	}

	buckets := make([]HourBucket, 24)
	for hour := 0; hour < 24; hour++ {
		buckets[hour] = HourBucket{Hour: hour, Color: BandUnknown}
		if counts[hour] == 0 {
			continue
		}
		avg := sums[hour] / float64(counts[hour])
		rounded := round1(avg)
		buckets[hour].AveragePressure = &rounded
		buckets[hour].Color = Classify(avg)
	}
	return buckets
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
