package ordering

// Project estimates stock on hand at delivery time: the latest counted
// quantity minus expected consumption over the remaining days. The result may
// go negative; the size of the deficit feeds urgency ranking, so it is not
// clamped to zero.
func Project(currentCount, dailyUsage float64, daysUntil int) float64 {
	return currentCount - dailyUsage*float64(daysUntil)
}
