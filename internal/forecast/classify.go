package forecast

// Classify maps a pressure value to its band. Boundary values belong to the
// lower band: -30 is still green, +30 is still orange. The same thresholds
// apply to raw five-minute samples and to hourly averages.
func Classify(pressure float64) Band {
	switch {
	case pressure <= -30:
		return BandGreen
	case pressure <= 30:
		return BandOrange
	default:
		return BandRed
	}
}
