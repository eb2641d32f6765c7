package briefing

import (
	"fmt"
	"math"
	"strings"

	"github.com/2beens/runintel/internal/recovery"
)

const (
	hrvNotableDiffMs = 3.0
	rhrNotablyLowBpm = -2.0
	maxObservations  = 2
)

// observations collects the notable metric phrases, strongest signal
// first. The summary keeps at most the first two.
func observations(today recovery.Sample, agg Aggregates) []string {
	var obs []string

	if today.HRV != nil && agg.HRV30dBaseline != nil {
		diff := *today.HRV - *agg.HRV30dBaseline
		if math.Abs(diff) > hrvNotableDiffMs {
			direction := "above"
			if diff < 0 {
				direction = "below"
			}
			obs = append(obs, fmt.Sprintf(
				"HRV is %.0f ms, %.0f %s your %.0f ms baseline",
				*today.HRV, math.Abs(diff), direction, *agg.HRV30dBaseline,
			))
		}
	}

	if agg.RHRDiff != nil && today.RestingHR != nil && agg.RHR30dBaseline != nil {
		switch {
		case agg.RHRElevated:
			obs = append(obs, fmt.Sprintf(
				"resting HR is %.0f bpm, %.0f above your %.0f bpm baseline",
				*today.RestingHR, *agg.RHRDiff, *agg.RHR30dBaseline,
			))
		case *agg.RHRDiff <= rhrNotablyLowBpm:
			obs = append(obs, fmt.Sprintf(
				"resting HR is %.0f bpm, %.0f below your %.0f bpm baseline",
				*today.RestingHR, -*agg.RHRDiff, *agg.RHR30dBaseline,
			))
		}
	}

	if agg.HRV7dCV != nil && *agg.HRV7dCV > cvHighPct {
		obs = append(obs, fmt.Sprintf(
			"day-to-day HRV swings are high this week (CV %.0f%%)", *agg.HRV7dCV,
		))
	}

	if agg.HRVDropping && len(agg.HRVLast3) == 3 {
		obs = append(obs, fmt.Sprintf(
			"HRV has dropped three days straight (%.0f, %.0f, %.0f ms)",
			agg.HRVLast3[0], agg.HRVLast3[1], agg.HRVLast3[2],
		))
	}

	if agg.StrainHigh && agg.StrainTypical3d != nil {
		obs = append(obs, fmt.Sprintf(
			"3-day strain load is %.0f vs your typical %.0f",
			agg.Strain3d, *agg.StrainTypical3d,
		))
	}

	return obs
}

func closingClause(status Status) string {
	switch status {
	case StatusPrimed:
		return "Green light."
	case StatusRecovery:
		return "Back off and let your body absorb the training."
	default:
		return "Train accordingly."
	}
}

var fallbackSummaries = map[Status]string{
	StatusPrimed:   "All signals look good.",
	StatusSolid:    "Metrics are steady around your baseline.",
	StatusCautious: "Some signals point to extra fatigue.",
	StatusRecovery: "Your body is asking for rest.",
}

func summarize(status Status, today recovery.Sample, agg Aggregates) string {
	obs := observations(today, agg)
	if len(obs) == 0 {
		return fallbackSummaries[status] + " " + closingClause(status)
	}

	if len(obs) > maxObservations {
		obs = obs[:maxObservations]
	}
	summary := strings.Join(obs, " and ")
	summary = strings.ToUpper(summary[:1]) + summary[1:]
	return summary + ". " + closingClause(status)
}

// play picks the single recommended action for the day.
func play(status Status, agg Aggregates) string {
	switch status {
	case StatusPrimed:
		return "Good day for a tempo effort. Try 3 miles at 8:00/mi."
	case StatusSolid:
		if agg.StrainHigh {
			return "Strain has been high, keep today under 5 miles."
		}
		return "Stick to your normal easy pace. Solid day to build mileage."
	case StatusCautious:
		if agg.HRVDropping {
			return "If you feel off in the first mile, cut it short. Listen to your body."
		}
		return "Keep today's run under 5 miles at conversational pace."
	case StatusRecovery:
		return "Consider taking today off or cross-training. Your streak won't suffer from one easy day."
	}
	return ""
}
