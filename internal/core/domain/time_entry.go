package domain

import "time"

// DateLayout is the calendar-day format used for TimeEntry.Date. Dates carry
// no time component; the ISO form also sorts and range-compares correctly as
// a plain string.
const DateLayout = "2006-01-02"

// MaxHoursPerDay caps the summed entry lengths per owner per calendar date.
const MaxHoursPerDay = 24.0

// TimeEntry is a single logged block of work hours. Entries are owned by a
// User and are destroyed together with their owner.
type TimeEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Length    float64   `json:"length"`
	Note      string    `json:"note,omitempty"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidDate reports whether s is a well-formed calendar day.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
