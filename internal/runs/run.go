package runs

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Run is one logged run. Distance and duration come from the user,
// everything else is filled in from the matching whoop workout when
// available, so most fields are pointers.
type Run struct {
	ID                  int      `json:"id,omitempty"`
	Date                string   `json:"date"`
	DistanceMiles       float64  `json:"distance_miles"`
	TimeMinutes         float64  `json:"time_minutes"`
	PacePerMile         string   `json:"pace_per_mile"`
	AvgHR               *int     `json:"avg_hr"`
	MaxHR               *int     `json:"max_hr"`
	Strain              *float64 `json:"strain"`
	WhoopDistanceMeters *float64 `json:"whoop_distance_meters"`
	ZoneZeroMilli       *int     `json:"zone_zero_milli"`
	ZoneOneMilli        *int     `json:"zone_one_milli"`
	ZoneTwoMilli        *int     `json:"zone_two_milli"`
	ZoneThreeMilli      *int     `json:"zone_three_milli"`
	ZoneFourMilli       *int     `json:"zone_four_milli"`
	ZoneFiveMilli       *int     `json:"zone_five_milli"`
	Shoes               string   `json:"shoes"`
}

func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// PaceToSeconds converts "7:49" to 469. Returns 0 and false for
// anything that is not a M:SS pace string.
func PaceToSeconds(pace string) (int, bool) {
	parts := strings.Split(pace, ":")
	if len(parts) != 2 {
		return 0, false
	}
	mins, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	secs, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return mins*60 + secs, true
}

// SecondsToPace converts 469 to "7:49".
func SecondsToPace(secs int) string {
	if secs <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// FormatPace converts total time and distance into a pace string.
func FormatPace(totalMinutes, distanceMiles float64) string {
	if distanceMiles <= 0 {
		return "N/A"
	}
	paceMinutes := totalMinutes / distanceMiles
	mins := int(paceMinutes)
	secs := int((paceMinutes - float64(mins)) * 60)
	return fmt.Sprintf("%d:%02d", mins, secs)
}
