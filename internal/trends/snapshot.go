package trends

import (
	"time"

	"github.com/2beens/runintel/internal/recovery"
	"github.com/2beens/runintel/internal/runs"
)

type SnapshotMetric struct {
	Metric    string    `json:"metric"`
	Last7d    float64   `json:"last_7d"`
	Last30d   float64   `json:"last_30d"`
	Diff      float64   `json:"diff"`
	Direction Direction `json:"direction,omitempty"`
}

// BuildSnapshot compares the trailing 7 days against the trailing 30,
// anchored at the newest run date. Metrics missing either window are
// left out.
func BuildSnapshot(allRuns []runs.Run, recoveryHistory []recovery.Sample) []SnapshotMetric {
	anchor := ""
	for _, run := range allRuns {
		if run.Date > anchor {
			anchor = run.Date
		}
	}
	if anchor == "" {
		for _, sample := range recoveryHistory {
			if sample.Date > anchor {
				anchor = sample.Date
			}
		}
	}
	anchorDay, err := time.Parse(runs.DateLayout, anchor)
	if err != nil {
		return nil
	}
	d7 := runs.DateOf(anchorDay.AddDate(0, 0, -7))
	d30 := runs.DateOf(anchorDay.AddDate(0, 0, -30))

	var hr7, hr30, strain7, strain30 []float64
	for _, run := range allRuns {
		if run.Date < d30 {
			continue
		}
		recent := run.Date >= d7
		if run.AvgHR != nil {
			hr30 = append(hr30, float64(*run.AvgHR))
			if recent {
				hr7 = append(hr7, float64(*run.AvgHR))
			}
		}
		if run.Strain != nil {
			strain30 = append(strain30, *run.Strain)
			if recent {
				strain7 = append(strain7, *run.Strain)
			}
		}
	}

	var rec7, rec30, hrv7, hrv30, rhr7, rhr30 []float64
	for _, sample := range recoveryHistory {
		if sample.Date < d30 {
			continue
		}
		recent := sample.Date >= d7
		if sample.Score != nil {
			rec30 = append(rec30, *sample.Score)
			if recent {
				rec7 = append(rec7, *sample.Score)
			}
		}
		if sample.HRV != nil {
			hrv30 = append(hrv30, *sample.HRV)
			if recent {
				hrv7 = append(hrv7, *sample.HRV)
			}
		}
		if sample.RestingHR != nil {
			rhr30 = append(rhr30, *sample.RestingHR)
			if recent {
				rhr7 = append(rhr7, *sample.RestingHR)
			}
		}
	}

	var snapshot []SnapshotMetric
	appendMetric := func(name string, v7, v30 []float64, lowerIsBetter, directed bool) {
		if len(v7) == 0 || len(v30) == 0 {
			return
		}
		m7 := meanOf(v7)
		m30 := meanOf(v30)
		diff := m7 - m30
		metric := SnapshotMetric{
			Metric:  name,
			Last7d:  round1(m7),
			Last30d: round1(m30),
			Diff:    round1(diff),
		}
		if directed {
			metric.Direction = trendDirection(diff, lowerIsBetter)
		}
		snapshot = append(snapshot, metric)
	}

	appendMetric("avg_hr", hr7, hr30, true, true)
	appendMetric("avg_strain", strain7, strain30, false, false)
	appendMetric("recovery", rec7, rec30, false, true)
	appendMetric("hrv", hrv7, hrv30, false, true)
	appendMetric("resting_hr", rhr7, rhr30, true, true)

	return snapshot
}
