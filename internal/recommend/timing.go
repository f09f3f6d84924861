package recommend

import (
	"habitTrackerAPI/utils"
)

// Timing thresholds, in minutes.
const (
	minTimingSamples = 3

	// A new time is only proposed when it differs from the selected
	// time by more than two hours.
	significantShift = 120

	// A completion within half an hour of the selected time counts as
	// on-time for the success rate.
	onTimeWindow = 30
)

// TimingAnalysis is derived from a habit's logged actual completion
// times against its selected clock time.
type TimingAnalysis struct {
	RecommendedTime string  `json:"recommended_time"`
	Changed         bool    `json:"changed"`
	SuccessRate     float64 `json:"success_rate"`
	AvgDeviation    float64 `json:"avg_deviation"`
	Samples         int     `json:"samples"`
}

// AnalyzeTiming averages the actual completion times (HH:MM) and
// proposes replacing selectedTime when the average is more than two
// hours away. With fewer than three usable samples the selected time
// is kept unchanged rather than failing.
func AnalyzeTiming(actualTimes []string, selectedTime string) TimingAnalysis {
	analysis := TimingAnalysis{RecommendedTime: selectedTime}

	selected, err := utils.ClockToMinutes(selectedTime)
	if err != nil {
		return analysis
	}

	var minutes []int
	for _, t := range actualTimes {
		m, err := utils.ClockToMinutes(t)
		if err != nil {
			continue
		}
		minutes = append(minutes, m)
	}
	analysis.Samples = len(minutes)
	if len(minutes) == 0 {
		return analysis
	}

	var total, deviationSum, onTime int
	for _, m := range minutes {
		total += m
		d := absInt(selected - m)
		deviationSum += d
		if d <= onTimeWindow {
			onTime++
		}
	}
	analysis.SuccessRate = float64(onTime) / float64(len(minutes))
	analysis.AvgDeviation = float64(deviationSum) / float64(len(minutes))

	if len(minutes) < minTimingSamples {
		return analysis
	}

	average := total / len(minutes)
	if absInt(selected-average) > significantShift {
		analysis.RecommendedTime = utils.MinutesToClock(average)
		analysis.Changed = true
	}
	return analysis
}
