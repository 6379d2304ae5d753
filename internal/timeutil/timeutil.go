package timeutil

import "time"

const (
	// ClockLayout renders a 12-hour start time such as "7:00 PM".
	ClockLayout = "3:04 PM"
	// DayHourLayout renders a compact weekday and hour such as "Sat 7PM".
	DayHourLayout = "Mon 3PM"
)

// FormatClock formats t in loc using ClockLayout. A nil loc keeps t's location.
func FormatClock(t time.Time, loc *time.Location) string {
	return In(t, loc).Format(ClockLayout)
}

// FormatDayHour formats t in loc using DayHourLayout.
func FormatDayHour(t time.Time, loc *time.Location) string {
	return In(t, loc).Format(DayHourLayout)
}

// In converts t into loc, leaving it untouched when loc is nil.
func In(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return t.In(loc)
}

// LoadLocation resolves an IANA zone name for display. Empty means time.Local;
// an unknown zone also yields time.Local along with the lookup error.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local, err
	}
	return loc, nil
}
