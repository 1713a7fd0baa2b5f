package entity

import "time"

const (
	TimeEntryInProgress = "in_progress"
	TimeEntryCompleted  = "completed"
)

type TimeEntry struct {
	ID           uint64     `json:"id"`
	UserID       uint64     `json:"userId"`
	ClockIn      time.Time  `json:"clockIn"`
	ClockOut     *time.Time `json:"clockOut"`
	TotalHours   *float64   `json:"totalHours"`
	BreakMinutes int        `json:"breakMinutes"`
	Notes        *string    `json:"notes"`
	Status       string     `json:"status"`
}

// ClockOutInput is the only payload clock-out accepts. The close time,
// total hours and status are computed server side, never client supplied.
type ClockOutInput struct {
	Notes string `json:"notes"`
}

// TimeEntryClose carries the fields the storage layer is allowed to set
// when completing an open entry.
type TimeEntryClose struct {
	ClockOut   time.Time
	TotalHours float64
	Notes      string
}
