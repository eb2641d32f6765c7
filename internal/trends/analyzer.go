// Package trends computes the long-horizon fitness report: monthly
// heart rate, HRV and strain trends, HR zone shifts, recovery
// patterns, and pace-based efficiency analysis over manually logged
// runs.
package trends

import (
	"math"
	"sort"
	"time"

	"github.com/2beens/runintel/internal/recovery"
	"github.com/2beens/runintel/internal/runs"
)

type Direction string

const (
	DirectionImproving Direction = "improving"
	DirectionDeclining Direction = "declining"
	DirectionSteady    Direction = "steady"
)

const (
	// diffs smaller than this count as noise
	steadyBand = 1.0

	recentMonthsShown = 6
	maxPaceMinutes    = 15.0

	minZoneRuns        = 4
	minWeekdaySamples  = 14
	minStrainLinkPairs = 10
	minDriftRuns       = 5
	minDriftSimilar    = 4
	driftPaceBandMin   = 0.25
	driftHRBandBpm     = 3.0
)

// trendDirection classifies a first-third vs last-third diff.
func trendDirection(diff float64, lowerIsBetter bool) Direction {
	if math.Abs(diff) < steadyBand {
		return DirectionSteady
	}
	if lowerIsBetter == (diff < 0) {
		return DirectionImproving
	}
	return DirectionDeclining
}

type MonthlyValue struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

type MonthlySeries struct {
	// last six months, ascending
	Monthly []MonthlyValue `json:"monthly"`
	// mean of the last third of all months minus the first third
	Diff      float64   `json:"diff"`
	Direction Direction `json:"direction,omitempty"`
}

// monthlySeries averages the values per calendar month and compares
// the first third of the months against the last third. Needs at
// least two values, nil otherwise.
func monthlySeries(dates []string, values []float64, lowerIsBetter, directed bool) *MonthlySeries {
	if len(values) < 2 {
		return nil
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for i, date := range dates {
		if len(date) < 7 {
			continue
		}
		month := date[:7]
		sums[month] += values[i]
		counts[month]++
	}

	months := make([]string, 0, len(sums))
	for month := range sums {
		months = append(months, month)
	}
	sort.Strings(months)

	monthlyAvgs := make([]float64, len(months))
	for i, month := range months {
		monthlyAvgs[i] = sums[month] / float64(counts[month])
	}

	third := len(months) / 3
	if third < 1 {
		third = 1
	}
	firstThird := meanOf(monthlyAvgs[:third])
	lastThird := meanOf(monthlyAvgs[len(monthlyAvgs)-third:])
	diff := lastThird - firstThird

	series := &MonthlySeries{Diff: round1(diff)}
	if directed {
		series.Direction = trendDirection(diff, lowerIsBetter)
	}

	start := 0
	if len(months) > recentMonthsShown {
		start = len(months) - recentMonthsShown
	}
	for i := start; i < len(months); i++ {
		series.Monthly = append(series.Monthly, MonthlyValue{
			Month: months[i],
			Value: round1(monthlyAvgs[i]),
		})
	}

	return series
}

type ZonePct struct {
	Zone string  `json:"zone"`
	Pct  float64 `json:"pct"`
}

type ZoneChange struct {
	Zone      string  `json:"zone"`
	EarlyPct  float64 `json:"early_pct"`
	RecentPct float64 `json:"recent_pct"`
}

type ZoneShift struct {
	Overall      []ZonePct    `json:"overall"`
	EarlyLowPct  float64      `json:"early_low_pct"`
	RecentLowPct float64      `json:"recent_low_pct"`
	Signal       string       `json:"signal"`
	ByZone       []ZoneChange `json:"by_zone,omitempty"`
}

var zoneLabels = []string{"zone_0", "zone_1", "zone_2", "zone_3", "zone_4", "zone_5"}

func zoneMillis(run runs.Run) ([6]float64, bool) {
	ptrs := [6]*int{
		run.ZoneZeroMilli, run.ZoneOneMilli, run.ZoneTwoMilli,
		run.ZoneThreeMilli, run.ZoneFourMilli, run.ZoneFiveMilli,
	}
	var millis [6]float64
	any := false
	for i, p := range ptrs {
		if p != nil {
			millis[i] = float64(*p)
			any = true
		}
	}
	return millis, any
}

// zoneShift compares the share of time spent in the low HR zones
// (0 through 2) between the first and second half of the zone-tracked
// runs. More low-zone time at steady training is a fitness signal.
func zoneShift(allRuns []runs.Run) *ZoneShift {
	var zoneRuns [][6]float64
	for _, run := range allRuns {
		if millis, ok := zoneMillis(run); ok {
			zoneRuns = append(zoneRuns, millis)
		}
	}
	if len(zoneRuns) < minZoneRuns {
		return nil
	}

	sumZones := func(group [][6]float64) ([6]float64, float64) {
		var totals [6]float64
		var grand float64
		for _, millis := range group {
			for i, v := range millis {
				totals[i] += v
				grand += v
			}
		}
		return totals, grand
	}

	totals, grandTotal := sumZones(zoneRuns)
	if grandTotal == 0 {
		return nil
	}

	shift := &ZoneShift{}
	for i, label := range zoneLabels {
		shift.Overall = append(shift.Overall, ZonePct{
			Zone: label,
			Pct:  round1(totals[i] / grandTotal * 100),
		})
	}

	mid := len(zoneRuns) / 2
	earlyTotals, earlyGrand := sumZones(zoneRuns[:mid])
	recentTotals, recentGrand := sumZones(zoneRuns[mid:])
	if earlyGrand == 0 || recentGrand == 0 {
		return shift
	}

	earlyLow := (earlyTotals[0] + earlyTotals[1] + earlyTotals[2]) / earlyGrand * 100
	recentLow := (recentTotals[0] + recentTotals[1] + recentTotals[2]) / recentGrand * 100
	shift.EarlyLowPct = round1(earlyLow)
	shift.RecentLowPct = round1(recentLow)

	switch diff := recentLow - earlyLow; {
	case diff > 2:
		shift.Signal = "more_low_zone_time"
	case diff < -2:
		shift.Signal = "less_low_zone_time"
	default:
		shift.Signal = "stable"
	}

	for i, label := range zoneLabels {
		earlyPct := earlyTotals[i] / earlyGrand * 100
		recentPct := recentTotals[i] / recentGrand * 100
		if math.Abs(recentPct-earlyPct) >= 1 {
			shift.ByZone = append(shift.ByZone, ZoneChange{
				Zone:      label,
				EarlyPct:  round1(earlyPct),
				RecentPct: round1(recentPct),
			})
		}
	}

	return shift
}

type BandCounts struct {
	Green  int `json:"green"`
	Yellow int `json:"yellow"`
	Red    int `json:"red"`
}

type RecoveryMonths struct {
	Monthly []MonthlyValue `json:"monthly"`
	Last30d BandCounts     `json:"last_30_days"`
}

func recoveryByMonth(history []recovery.Sample) *RecoveryMonths {
	var dates []string
	var scores []float64
	for _, sample := range history {
		if sample.Score != nil {
			dates = append(dates, sample.Date)
			scores = append(scores, *sample.Score)
		}
	}

	series := monthlySeries(dates, scores, false, false)
	if series == nil {
		return nil
	}
	months := &RecoveryMonths{Monthly: series.Monthly}

	// band counts over the 30 days trailing the newest sample
	latest, err := time.Parse(recovery.DateLayout, dates[len(dates)-1])
	if err != nil {
		return months
	}
	cutoff := recovery.DateOf(latest.AddDate(0, 0, -30))
	for i, date := range dates {
		if date < cutoff {
			continue
		}
		switch score := scores[i]; {
		case score >= 67:
			months.Last30d.Green++
		case score >= 34:
			months.Last30d.Yellow++
		default:
			months.Last30d.Red++
		}
	}

	return months
}

type WeekdayScore struct {
	Day   string  `json:"day"`
	Score float64 `json:"score"`
}

type WeekdayRecovery struct {
	Days  []WeekdayScore `json:"days"`
	Best  string         `json:"best"`
	Worst string         `json:"worst"`
}

var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// recoveryByWeekday needs at least two weeks of scored samples.
func recoveryByWeekday(history []recovery.Sample) *WeekdayRecovery {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	total := 0
	for _, sample := range history {
		if sample.Score == nil {
			continue
		}
		date, err := time.Parse(recovery.DateLayout, sample.Date)
		if err != nil {
			continue
		}
		day := date.Weekday().String()
		sums[day] += *sample.Score
		counts[day]++
		total++
	}
	if total < minWeekdaySamples {
		return nil
	}

	byDay := &WeekdayRecovery{}
	var bestScore, worstScore float64
	for _, day := range weekdayOrder {
		if counts[day] == 0 {
			continue
		}
		score := sums[day] / float64(counts[day])
		byDay.Days = append(byDay.Days, WeekdayScore{Day: day, Score: round1(score)})
		if byDay.Best == "" || score > bestScore {
			byDay.Best = day
			bestScore = score
		}
		if byDay.Worst == "" || score < worstScore {
			byDay.Worst = day
			worstScore = score
		}
	}

	return byDay
}

type StrainRecoveryLink struct {
	LowThreshold  float64 `json:"low_threshold"`
	HighThreshold float64 `json:"high_threshold"`
	LowAvg        float64 `json:"low_strain_next_day_recovery"`
	MidAvg        float64 `json:"mid_strain_next_day_recovery"`
	HighAvg       float64 `json:"high_strain_next_day_recovery"`
	// how much recovery a high strain day costs vs a low one
	CostPct float64 `json:"cost_pct"`
	Costly  bool    `json:"costly"`
}

// strainRecoveryLink pairs each strained run with the recovery score
// of the following day and splits the pairs into strain terciles.
func strainRecoveryLink(allRuns []runs.Run, history []recovery.Sample) *StrainRecoveryLink {
	scoreByDate := make(map[string]float64)
	for _, sample := range history {
		if sample.Score != nil {
			scoreByDate[sample.Date] = *sample.Score
		}
	}

	type pair struct{ strain, nextRecovery float64 }
	var pairs []pair
	for _, run := range allRuns {
		if run.Strain == nil {
			continue
		}
		date, err := time.Parse(runs.DateLayout, run.Date)
		if err != nil {
			continue
		}
		nextDay := runs.DateOf(date.AddDate(0, 0, 1))
		if score, ok := scoreByDate[nextDay]; ok {
			pairs = append(pairs, pair{*run.Strain, score})
		}
	}
	if len(pairs) < minStrainLinkPairs {
		return nil
	}

	strains := make([]float64, len(pairs))
	for i, p := range pairs {
		strains[i] = p.strain
	}
	lowThresh := quantile(strains, 0.33)
	highThresh := quantile(strains, 0.67)

	var low, mid, high []float64
	for _, p := range pairs {
		switch {
		case p.strain <= lowThresh:
			low = append(low, p.nextRecovery)
		case p.strain <= highThresh:
			mid = append(mid, p.nextRecovery)
		default:
			high = append(high, p.nextRecovery)
		}
	}

	link := &StrainRecoveryLink{
		LowThreshold:  round1(lowThresh),
		HighThreshold: round1(highThresh),
		LowAvg:        round1(meanOf(low)),
		MidAvg:        round1(meanOf(mid)),
		HighAvg:       round1(meanOf(high)),
	}
	cost := meanOf(low) - meanOf(high)
	link.CostPct = round1(cost)
	link.Costly = cost > 5
	return link
}

type Efficiency struct {
	// avg HR divided by pace minutes, early vs recent third
	EarlyRatio  float64   `json:"early_ratio"`
	RecentRatio float64   `json:"recent_ratio"`
	ChangePct   float64   `json:"change_pct"`
	Direction   Direction `json:"direction"`
}

// efficiencyAnalysis compares HR per pace minute between the first
// and last third of the pace-logged runs. Lower means the same pace
// costs fewer heartbeats.
func efficiencyAnalysis(paceRuns []paceRun) *Efficiency {
	var ratios []float64
	for _, run := range paceRuns {
		if run.avgHR != nil {
			ratios = append(ratios, float64(*run.avgHR)/run.paceMin)
		}
	}
	if len(ratios) < 2 {
		return nil
	}

	third := len(ratios) / 3
	if third < 1 {
		third = 1
	}
	early := meanOf(ratios[:third])
	recent := meanOf(ratios[len(ratios)-third:])
	change := (recent - early) / early * 100

	return &Efficiency{
		EarlyRatio:  round1(early),
		RecentRatio: round1(recent),
		ChangePct:   round1(change),
		Direction:   trendDirection(change, true),
	}
}

type CardiacDrift struct {
	TypicalPace string  `json:"typical_pace"`
	EarlyHR     float64 `json:"early_avg_hr"`
	RecentHR    float64 `json:"recent_avg_hr"`
	DiffBpm     float64 `json:"diff_bpm"`
	Signal      string  `json:"signal"`
}

// cardiacDrift checks whether HR creeps up at a near-constant pace,
// comparing runs within a quarter minute of the median pace.
func cardiacDrift(paceRuns []paceRun) *CardiacDrift {
	var withHR []paceRun
	for _, run := range paceRuns {
		if run.avgHR != nil {
			withHR = append(withHR, run)
		}
	}
	if len(withHR) < minDriftRuns {
		return nil
	}

	paces := make([]float64, len(withHR))
	for i, run := range withHR {
		paces[i] = run.paceMin
	}
	medianPace := median(paces)

	var similar []paceRun
	for _, run := range withHR {
		if run.paceMin >= medianPace-driftPaceBandMin && run.paceMin <= medianPace+driftPaceBandMin {
			similar = append(similar, run)
		}
	}
	if len(similar) < minDriftSimilar {
		return nil
	}

	mid := len(similar) / 2
	var earlyHR, recentHR []float64
	for _, run := range similar[:mid] {
		earlyHR = append(earlyHR, float64(*run.avgHR))
	}
	for _, run := range similar[mid:] {
		recentHR = append(recentHR, float64(*run.avgHR))
	}

	early := meanOf(earlyHR)
	recent := meanOf(recentHR)
	diff := recent - early

	drift := &CardiacDrift{
		TypicalPace: runs.SecondsToPace(int(math.Round(medianPace * 60))),
		EarlyHR:     round1(early),
		RecentHR:    round1(recent),
		DiffBpm:     round1(diff),
	}
	switch {
	case diff > driftHRBandBpm:
		drift.Signal = "possible_fatigue"
	case diff < -driftHRBandBpm:
		drift.Signal = "fitness_improving"
	default:
		drift.Signal = "stable"
	}
	return drift
}

type ShoeStats struct {
	Shoe    string   `json:"shoe"`
	Runs    int      `json:"runs"`
	AvgPace string   `json:"avg_pace"`
	AvgHR   *float64 `json:"avg_hr"`
}

func shoeBreakdown(paceRuns []paceRun) []ShoeStats {
	type shoeAgg struct {
		paceSum float64
		count   int
		hrSum   float64
		hrCount int
	}
	byShoe := make(map[string]*shoeAgg)
	var order []string
	for _, run := range paceRuns {
		if run.shoes == "" {
			continue
		}
		agg, ok := byShoe[run.shoes]
		if !ok {
			agg = &shoeAgg{}
			byShoe[run.shoes] = agg
			order = append(order, run.shoes)
		}
		agg.paceSum += run.paceMin
		agg.count++
		if run.avgHR != nil {
			agg.hrSum += float64(*run.avgHR)
			agg.hrCount++
		}
	}
	sort.Strings(order)

	var stats []ShoeStats
	for _, shoe := range order {
		agg := byShoe[shoe]
		entry := ShoeStats{
			Shoe:    shoe,
			Runs:    agg.count,
			AvgPace: runs.SecondsToPace(int(math.Round(agg.paceSum / float64(agg.count) * 60))),
		}
		if agg.hrCount > 0 {
			avgHR := round1(agg.hrSum / float64(agg.hrCount))
			entry.AvgHR = &avgHR
		}
		stats = append(stats, entry)
	}
	return stats
}

type Report struct {
	TotalRuns          int                 `json:"total_runs"`
	AvgHRMonthly       *MonthlySeries      `json:"avg_hr_monthly,omitempty"`
	RestingHRMonthly   *MonthlySeries      `json:"resting_hr_monthly,omitempty"`
	HRVMonthly         *MonthlySeries      `json:"hrv_monthly,omitempty"`
	StrainMonthly      *MonthlySeries      `json:"strain_monthly,omitempty"`
	ZoneShift          *ZoneShift          `json:"zone_shift,omitempty"`
	RecoveryMonthly    *RecoveryMonths     `json:"recovery_monthly,omitempty"`
	RecoveryByWeekday  *WeekdayRecovery    `json:"recovery_by_weekday,omitempty"`
	StrainRecoveryLink *StrainRecoveryLink `json:"strain_recovery_link,omitempty"`
	Efficiency         *Efficiency         `json:"efficiency,omitempty"`
	CardiacDrift       *CardiacDrift       `json:"cardiac_drift,omitempty"`
	Shoes              []ShoeStats         `json:"shoes,omitempty"`
}

// paceRun is a run with a usable manually logged pace.
type paceRun struct {
	date    string
	paceMin float64
	avgHR   *int
	shoes   string
}

// paceLoggedRuns filters to runs with a parseable pace under 15 min/mi.
func paceLoggedRuns(allRuns []runs.Run) []paceRun {
	var filtered []paceRun
	for _, run := range allRuns {
		paceSecs, ok := runs.PaceToSeconds(run.PacePerMile)
		if !ok {
			continue
		}
		paceMin := float64(paceSecs) / 60
		if paceMin <= 0 || paceMin >= maxPaceMinutes {
			continue
		}
		filtered = append(filtered, paceRun{
			date:    run.Date,
			paceMin: paceMin,
			avgHR:   run.AvgHR,
			shoes:   run.Shoes,
		})
	}
	return filtered
}

// BuildReport computes the full trend report. Both histories are
// ascending by date. Sections without enough data are left out.
func BuildReport(allRuns []runs.Run, recoveryHistory []recovery.Sample) Report {
	report := Report{TotalRuns: len(allRuns)}

	var hrDates []string
	var hrValues []float64
	var strainDates []string
	var strainValues []float64
	for _, run := range allRuns {
		if run.AvgHR != nil {
			hrDates = append(hrDates, run.Date)
			hrValues = append(hrValues, float64(*run.AvgHR))
		}
		if run.Strain != nil {
			strainDates = append(strainDates, run.Date)
			strainValues = append(strainValues, *run.Strain)
		}
	}
	report.AvgHRMonthly = monthlySeries(hrDates, hrValues, true, true)
	report.StrainMonthly = monthlySeries(strainDates, strainValues, false, false)

	var rhrDates, hrvDates []string
	var rhrValues, hrvValues []float64
	for _, sample := range recoveryHistory {
		if sample.RestingHR != nil {
			rhrDates = append(rhrDates, sample.Date)
			rhrValues = append(rhrValues, *sample.RestingHR)
		}
		if sample.HRV != nil {
			hrvDates = append(hrvDates, sample.Date)
			hrvValues = append(hrvValues, *sample.HRV)
		}
	}
	report.RestingHRMonthly = monthlySeries(rhrDates, rhrValues, true, true)
	report.HRVMonthly = monthlySeries(hrvDates, hrvValues, false, true)

	report.ZoneShift = zoneShift(allRuns)
	report.RecoveryMonthly = recoveryByMonth(recoveryHistory)
	report.RecoveryByWeekday = recoveryByWeekday(recoveryHistory)
	report.StrainRecoveryLink = strainRecoveryLink(allRuns, recoveryHistory)

	paceRuns := paceLoggedRuns(allRuns)
	report.Efficiency = efficiencyAnalysis(paceRuns)
	report.CardiacDrift = cardiacDrift(paceRuns)
	report.Shoes = shoeBreakdown(paceRuns)

	return report
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// quantile with linear interpolation between the closest ranks.
func quantile(values []float64, q float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	frac := pos - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*frac
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
