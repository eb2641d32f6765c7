package briefing

import (
	"math"

	"github.com/2beens/runintel/internal/recovery"
	"github.com/2beens/runintel/internal/runs"
)

const (
	rhrElevatedDiffBpm   = 3
	recTrendingDownDelta = 5
	strainHighFactor     = 1.25
)

// Aggregates holds the derived metrics the classifier and narrative
// work from. An absent input stays nil, it is never coerced to zero.
// Strain is the exception, missing strain contributes nothing to the
// sums.
type Aggregates struct {
	HRV7dAvg       *float64
	HRV30dBaseline *float64
	HRV7dCV        *float64
	HRVDropping    bool
	HRVLast3       []float64

	RHR7dAvg       *float64
	RHR30dBaseline *float64
	RHRDiff        *float64
	RHRElevated    bool

	Rec3dAvg        *float64
	Rec7dAvg        *float64
	RecTrendingDown bool

	Strain3d        float64
	StrainTypical3d *float64
	StrainHigh      bool
}

// Aggregate computes rolling metrics over the trailing recovery and run
// history, both ascending by date. It never fails, thin history simply
// leaves the corresponding fields nil.
func Aggregate(today recovery.Sample, recoveryHistory []recovery.Sample, runHistory []runs.Run) Aggregates {
	var agg Aggregates

	var hrvValues, rhrValues, recValues []float64
	for _, sample := range recoveryHistory {
		if sample.HRV != nil {
			hrvValues = append(hrvValues, *sample.HRV)
		}
		if sample.RestingHR != nil {
			rhrValues = append(rhrValues, *sample.RestingHR)
		}
		if sample.Score != nil {
			recValues = append(recValues, *sample.Score)
		}
	}

	hrv7d := lastN(hrvValues, 7)
	agg.HRV7dAvg = mean(hrv7d)
	agg.HRV30dBaseline = mean(hrvValues)
	if len(hrv7d) >= 3 && agg.HRV7dAvg != nil && *agg.HRV7dAvg > 0 {
		cv := stdev(hrv7d) / *agg.HRV7dAvg * 100
		agg.HRV7dCV = &cv
	}
	if len(hrvValues) >= 3 {
		last3 := lastN(hrvValues, 3)
		agg.HRVLast3 = last3
		agg.HRVDropping = last3[0] > last3[1] && last3[1] > last3[2]
	}

	agg.RHR7dAvg = mean(lastN(rhrValues, 7))
	agg.RHR30dBaseline = mean(rhrValues)
	if today.RestingHR != nil && agg.RHR30dBaseline != nil {
		diff := *today.RestingHR - *agg.RHR30dBaseline
		agg.RHRDiff = &diff
		agg.RHRElevated = diff >= rhrElevatedDiffBpm
	}

	agg.Rec3dAvg = mean(lastN(recValues, 3))
	agg.Rec7dAvg = mean(lastN(recValues, 7))
	if agg.Rec3dAvg != nil && agg.Rec7dAvg != nil {
		agg.RecTrendingDown = *agg.Rec3dAvg < *agg.Rec7dAvg-recTrendingDownDelta
	}

	var strainValues []float64
	for _, run := range runHistory {
		if run.Strain != nil {
			strainValues = append(strainValues, *run.Strain)
		}
	}
	for _, strain := range lastN(strainValues, 3) {
		agg.Strain3d += strain
	}
	if len(strainValues) > 0 {
		var total float64
		for _, strain := range strainValues {
			total += strain
		}
		typical := total / float64(len(strainValues)) * 3
		agg.StrainTypical3d = &typical
		if typical > 0 {
			agg.StrainHigh = agg.Strain3d > typical*strainHighFactor
		}
	}

	return agg
}

func lastN(values []float64, n int) []float64 {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	m := sum / float64(len(values))
	return &m
}

// stdev is the sample standard deviation, callers guard len >= 2.
func stdev(values []float64) float64 {
	m := *mean(values)
	var sumSq float64
	for _, v := range values {
		sumSq += (v - m) * (v - m)
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}
