package briefing

import (
	"github.com/2beens/runintel/internal/recovery"
)

type Status string

const (
	StatusPrimed   Status = "primed"
	StatusSolid    Status = "solid"
	StatusCautious Status = "cautious"
	StatusRecovery Status = "recovery"
)

const (
	scorePrimedMin   = 67.0
	scoreSolidMin    = 50.0
	scoreRecoveryMax = 34.0

	hrvBelowMarginMs     = 5.0
	hrvWellBelowMarginMs = 10.0
	cvHighPct            = 15.0
	cvLowPct             = 10.0
)

type signals struct {
	score    *float64
	hrvToday *float64

	hrvAbove     bool
	hrvBelow     bool
	hrvWellBelow bool
	rhrElevated  bool
	cvHigh       bool
	cvLow        bool
}

func newSignals(today recovery.Sample, agg Aggregates) signals {
	s := signals{
		score:       today.Score,
		hrvToday:    today.HRV,
		rhrElevated: agg.RHRElevated,
	}
	if today.HRV != nil && agg.HRV30dBaseline != nil {
		baseline := *agg.HRV30dBaseline
		s.hrvAbove = *today.HRV >= baseline
		s.hrvBelow = *today.HRV < baseline-hrvBelowMarginMs
		s.hrvWellBelow = *today.HRV < baseline-hrvWellBelowMarginMs
	}
	if agg.HRV7dCV != nil {
		s.cvHigh = *agg.HRV7dCV > cvHighPct
		s.cvLow = *agg.HRV7dCV <= cvLowPct
	}
	return s
}

type classificationRule struct {
	status  Status
	matches func(s signals) bool
}

// classificationRules are evaluated top to bottom, first match wins.
// The priority order is part of the contract, do not reorder.
var classificationRules = []classificationRule{
	{StatusPrimed, func(s signals) bool {
		return s.score != nil && *s.score >= scorePrimedMin &&
			s.hrvAbove && !s.rhrElevated && s.cvLow
	}},
	{StatusSolid, func(s signals) bool {
		return s.score != nil && *s.score >= scoreSolidMin &&
			!s.rhrElevated && !s.hrvWellBelow
	}},
	{StatusRecovery, func(s signals) bool {
		return s.score != nil && *s.score < scoreRecoveryMax &&
			(s.hrvWellBelow || (s.rhrElevated && s.cvHigh))
	}},
	{StatusCautious, func(s signals) bool {
		return s.score != nil && *s.score < scoreSolidMin
	}},
	{StatusCautious, func(s signals) bool {
		return s.hrvBelow || s.rhrElevated || s.cvHigh
	}},
}

func classify(s signals) Status {
	for _, rule := range classificationRules {
		if rule.matches(s) {
			return rule.status
		}
	}
	return StatusSolid
}

type statusStyle struct {
	Headline string
	Emoji    string
	Color    string
}

var statusStyles = map[Status]statusStyle{
	StatusPrimed:   {"You're primed. Push it today.", "🚀", "#00F19F"},
	StatusSolid:    {"Solid foundation. Normal training.", "✅", "#FFD600"},
	StatusCautious: {"Your body is working hard. Go easy today.", "⚠️", "#FF8C00"},
	StatusRecovery: {"Recovery mode. Protect your streak.", "🛑", "#FF4D4D"},
}
