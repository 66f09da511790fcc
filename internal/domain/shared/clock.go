package shared

import "time"

// Clock exposes the current in-universe campaign date
type Clock interface {
	Today() time.Time
}

// CampaignCalendar is the mutable campaign date advanced one day per turn
type CampaignCalendar struct {
	current time.Time
}

// NewCampaignCalendar creates a calendar positioned at date (truncated to the day)
func NewCampaignCalendar(date time.Time) *CampaignCalendar {
	return &CampaignCalendar{current: TruncateToDay(date)}
}

// Today returns the current campaign date
func (c *CampaignCalendar) Today() time.Time {
	return c.current
}

// AdvanceDay moves the campaign forward by one day
func (c *CampaignCalendar) AdvanceDay() time.Time {
	c.current = c.current.AddDate(0, 0, 1)
	return c.current
}

// SetDate jumps the calendar to a specific date
func (c *CampaignCalendar) SetDate(date time.Time) {
	c.current = TruncateToDay(date)
}

// FixedClock always reports the same date, useful in tests
type FixedClock struct {
	Date time.Time
}

// Today returns the fixed date
func (f FixedClock) Today() time.Time {
	return f.Date
}

// NewDate builds a UTC calendar date
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TruncateToDay drops the time-of-day component and normalizes to UTC
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from start to end
func DaysBetween(start, end time.Time) int {
	return int(TruncateToDay(end).Sub(TruncateToDay(start)).Hours() / 24)
}
