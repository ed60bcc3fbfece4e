package schedule

import "time"

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Config is the single optional scheduled-export configuration. NextRun is
// derived from the frequency whenever the config is saved; scheduled runs
// themselves are simulated and never executed by this system.
type Config struct {
	Enabled     bool      `json:"enabled"`
	Frequency   Frequency `json:"frequency"`
	Destination string    `json:"destination"`
	Template    string    `json:"template"`
	NextRun     time.Time `json:"nextRun"`
}
