// Package briefing turns recovery and run history into a morning
// readiness assessment: a status with a headline, a short evidence
// based summary, and one recommended action.
package briefing

import (
	"math"

	"github.com/2beens/runintel/internal/recovery"
	"github.com/2beens/runintel/internal/runs"
)

type Metrics struct {
	RecoveryScore *float64 `json:"recovery_score"`
	HRVToday      *float64 `json:"hrv_today"`
	RHRToday      *float64 `json:"rhr_today"`
	HRV7dCV       *float64 `json:"hrv_7d_cv"`
}

type Briefing struct {
	Status   Status  `json:"status"`
	Headline string  `json:"headline"`
	Emoji    string  `json:"emoji"`
	Color    string  `json:"color"`
	Summary  string  `json:"summary"`
	Play     string  `json:"play"`
	Metrics  Metrics `json:"metrics"`
}

// Generate produces the morning briefing, or nil when today has
// neither a recovery score nor an HRV reading. It is a pure function
// of its inputs, identical history yields an identical briefing.
func Generate(today recovery.Sample, recoveryHistory []recovery.Sample, runHistory []runs.Run) *Briefing {
	if today.Score == nil && today.HRV == nil {
		return nil
	}

	agg := Aggregate(today, recoveryHistory, runHistory)
	status := classify(newSignals(today, agg))
	style := statusStyles[status]

	return &Briefing{
		Status:   status,
		Headline: style.Headline,
		Emoji:    style.Emoji,
		Color:    style.Color,
		Summary:  summarize(status, today, agg),
		Play:     play(status, agg),
		Metrics: Metrics{
			RecoveryScore: round1(today.Score),
			HRVToday:      round1(today.HRV),
			RHRToday:      round0(today.RestingHR),
			HRV7dCV:       round1(agg.HRV7dCV),
		},
	}
}

func round1(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := math.Round(*v*10) / 10
	return &r
}

func round0(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := math.Round(*v)
	return &r
}
