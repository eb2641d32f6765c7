package recovery

import "time"

const DateLayout = "2006-01-02"

// Sample is a single day of recovery metrics pulled from the whoop API.
// Metric fields are pointers, a day can miss any of them.
type Sample struct {
	ID        int      `json:"id,omitempty"`
	Date      string   `json:"date"`
	Score     *float64 `json:"recovery_score"`
	HRV       *float64 `json:"hrv"`
	RestingHR *float64 `json:"resting_hr"`
}

func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}
