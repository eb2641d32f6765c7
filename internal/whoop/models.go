package whoop

import "time"

// API reference: https://developer.whoop.com/api/

type ZoneDurations struct {
	ZoneZeroMilli  *int `json:"zone_zero_milli"`
	ZoneOneMilli   *int `json:"zone_one_milli"`
	ZoneTwoMilli   *int `json:"zone_two_milli"`
	ZoneThreeMilli *int `json:"zone_three_milli"`
	ZoneFourMilli  *int `json:"zone_four_milli"`
	ZoneFiveMilli  *int `json:"zone_five_milli"`
}

type WorkoutScore struct {
	Strain           *float64      `json:"strain"`
	AverageHeartRate *int          `json:"average_heart_rate"`
	MaxHeartRate     *int          `json:"max_heart_rate"`
	Kilojoule        *float64      `json:"kilojoule"`
	DistanceMeter    *float64      `json:"distance_meter"`
	ZoneDurations    ZoneDurations `json:"zone_durations"`
}

type Workout struct {
	ID         string        `json:"id"`
	SportName  string        `json:"sport_name"`
	Start      time.Time     `json:"start"`
	End        time.Time     `json:"end"`
	ScoreState string        `json:"score_state"`
	Score      *WorkoutScore `json:"score"`
}

type RecoveryScore struct {
	RecoveryScore    *float64 `json:"recovery_score"`
	HRVRmssdMilli    *float64 `json:"hrv_rmssd_milli"`
	RestingHeartRate *float64 `json:"resting_heart_rate"`
}

type RecoveryRecord struct {
	CycleID    int64          `json:"cycle_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	ScoreState string         `json:"score_state"`
	Score      *RecoveryScore `json:"score"`
}

type UserProfile struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
