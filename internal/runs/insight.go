package runs

import (
	"fmt"
	"strings"
	"time"

	"github.com/2beens/runintel/internal/recovery"
)

const (
	// runs within this pace window count as comparable effort
	similarPaceWindowSecs = 30
	// fewer comparable runs than this and there is no baseline yet
	minSimilarRuns = 3
	// HR deltas within this band are treated as noise
	hrNoiseBandBpm = 3.0
)

// CoachingInsight compares today's run against similar-pace runs from
// the last 30 days and turns the heart rate delta into a one-liner.
// Today's recovery context, when present, is appended.
func CoachingInsight(today Run, history []Run, rec *recovery.Sample) string {
	recoveryLine := recoveryContextLine(rec)

	todayPaceSecs, paceOK := PaceToSeconds(today.PacePerMile)
	if !paceOK || today.AvgHR == nil {
		return withRecoveryLine(
			"Run logged! Add more data points for coaching insights.",
			recoveryLine,
		)
	}

	paceDisplay := SecondsToPace(todayPaceSecs)
	similar := similarPaceRuns(today.Date, todayPaceSecs, history)

	if len(similar) < minSimilarRuns {
		return withRecoveryLine(
			fmt.Sprintf(
				"Building your baseline at %s/mi. Log a few more runs and I'll start giving pace recommendations.",
				paceDisplay,
			),
			recoveryLine,
		)
	}

	var hrSum float64
	for _, run := range similar {
		hrSum += float64(*run.AvgHR)
	}
	avgSimilarHR := hrSum / float64(len(similar))
	hrDiff := float64(*today.AvgHR) - avgSimilarHR

	var insight string
	switch {
	case hrDiff < -hrNoiseBandBpm:
		// HR dropped at the same pace, fitness improving
		fasterPace := SecondsToPace(todayPaceSecs - 10)
		insight = fmt.Sprintf(
			"Your avg HR at %s/mi has dropped from %.0f to %.0f bpm. Your body has adapted. Try %s/mi next run.",
			paceDisplay, avgSimilarHR, float64(*today.AvgHR), fasterPace,
		)
	case hrDiff > hrNoiseBandBpm && rec != nil && rec.Score != nil && *rec.Score < 50:
		insight = fmt.Sprintf(
			"HR was %.0f bpm higher than usual at this pace. Recovery was only %.0f%% -- your body needs rest. Don't push pace tomorrow.",
			hrDiff, *rec.Score,
		)
	case hrDiff > hrNoiseBandBpm:
		insight = "HR was a bit elevated today. Could be heat, caffeine, or sleep. Nothing to worry about."
	default:
		insight = fmt.Sprintf(
			"Solid run. You're consistent at %s/mi. Keep building here.",
			paceDisplay,
		)
	}

	return withRecoveryLine(insight, recoveryLine)
}

// similarPaceRuns filters history to the prior 30 days with a pace
// within the comparable window, today excluded.
func similarPaceRuns(todayDate string, todayPaceSecs int, history []Run) []Run {
	today, err := time.Parse(DateLayout, todayDate)
	if err != nil {
		return nil
	}
	cutoff := today.AddDate(0, 0, -30)

	var similar []Run
	for _, run := range history {
		if run.AvgHR == nil {
			continue
		}
		paceSecs, ok := PaceToSeconds(run.PacePerMile)
		if !ok {
			continue
		}

		runDate, err := time.Parse(DateLayout, run.Date)
		if err != nil {
			continue
		}
		if runDate.Before(cutoff) || !runDate.Before(today) {
			continue
		}

		diff := paceSecs - todayPaceSecs
		if diff < 0 {
			diff = -diff
		}
		if diff <= similarPaceWindowSecs {
			similar = append(similar, run)
		}
	}
	return similar
}

func recoveryContextLine(rec *recovery.Sample) string {
	if rec == nil || rec.Score == nil {
		return ""
	}

	color := "red"
	switch {
	case *rec.Score >= 67:
		color = "green"
	case *rec.Score >= 34:
		color = "yellow"
	}

	parts := []string{fmt.Sprintf("Recovery: %.0f%% (%s)", *rec.Score, color)}
	if rec.RestingHR != nil {
		parts = append(parts, fmt.Sprintf("RHR: %.0f bpm", *rec.RestingHR))
	}
	if rec.HRV != nil {
		parts = append(parts, fmt.Sprintf("HRV: %.1f ms", *rec.HRV))
	}
	return strings.Join(parts, ". ") + "."
}

func withRecoveryLine(insight, recoveryLine string) string {
	if recoveryLine == "" {
		return insight
	}
	return insight + " " + recoveryLine
}
