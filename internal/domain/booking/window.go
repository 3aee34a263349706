package booking

import (
	"time"

	"github.com/bookmycut/salon-scheduler/internal/httperr"
)

const clockLayout = "15:04"

// Window is a half-open [Start, End) time-of-day interval in minutes since
// midnight.
type Window struct {
	Start int
	End   int
}

// ParseClock parses a "15:04" string into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// NewWindow builds a Window from "15:04" strings, requiring start < end.
func NewWindow(startStr, endStr string) (Window, error) {
	start, err := ParseClock(startStr)
	if err != nil {
		return Window{}, httperr.ErrBadRequest("invalid_time", "The start time is not a valid HH:MM value.")
	}
	end, err := ParseClock(endStr)
	if err != nil {
		return Window{}, httperr.ErrBadRequest("invalid_time", "The end time is not a valid HH:MM value.")
	}
	w := Window{Start: start, End: end}
	if !w.Valid() {
		return Window{}, httperr.ErrBadRequest("invalid_time_order", "The end time must be after the start time.")
	}
	return w, nil
}

func (w Window) Valid() bool {
	return w.Start < w.End
}

// Overlaps reports strict half-open overlap: windows that merely touch at a
// boundary do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.Start < other.End && w.End > other.Start
}

// Within reports whether w is fully contained in outer.
func (w Window) Within(outer Window) bool {
	return w.Start >= outer.Start && w.End <= outer.End
}

func (w Window) StartClock() string {
	return minutesToClock(w.Start)
}

func (w Window) EndClock() string {
	return minutesToClock(w.End)
}

func minutesToClock(m int) string {
	return time.Date(0, 1, 1, m/60, m%60, 0, 0, time.UTC).Format(clockLayout)
}

// InPast reports whether date+start already passed relative to now.
// A past date always qualifies; today's date qualifies when the start time
// is earlier than the current clock.
func InPast(date time.Time, w Window, now time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if d.Before(today) {
		return true
	}
	if d.Equal(today) {
		nowMin := now.Hour()*60 + now.Minute()
		return w.Start < nowMin
	}
	return false
}
