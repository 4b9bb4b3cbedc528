// Package timeslot parses 12-hour wall-clock strings and decides
// whether two booking intervals on the same venue and date collide.
// Intervals are half-open: a reservation ending at 10:00 AM does not
// conflict with one starting at 10:00 AM.
package timeslot

import (
    "fmt"
    "strconv"
    "strings"
)

// Interval is a half-open time range [Start, End) expressed in
// minutes since midnight.
type Interval struct {
    Start int
    End   int
}

// ParseClock converts a wall-clock string in "hh:mm AM/PM" format to
// minutes since midnight.  "12:00 AM" maps to 0 and "12:00 PM" to
// 720; any other PM hour gains twelve hours.  Malformed input (no
// meridian, non-numeric hour or minute, out-of-range values) returns
// an error rather than a coerced value.
func ParseClock(s string) (int, error) {
    fields := strings.Fields(strings.TrimSpace(s))
    if len(fields) != 2 {
        return 0, fmt.Errorf("timeslot: %q is not in hh:mm AM/PM format", s)
    }
    meridian := strings.ToUpper(fields[1])
    if meridian != "AM" && meridian != "PM" {
        return 0, fmt.Errorf("timeslot: %q has invalid meridian %q", s, fields[1])
    }
    hhmm := strings.Split(fields[0], ":")
    if len(hhmm) != 2 {
        return 0, fmt.Errorf("timeslot: %q is not in hh:mm AM/PM format", s)
    }
    hour, err := strconv.Atoi(hhmm[0])
    if err != nil {
        return 0, fmt.Errorf("timeslot: invalid hour in %q", s)
    }
    minute, err := strconv.Atoi(hhmm[1])
    if err != nil {
        return 0, fmt.Errorf("timeslot: invalid minute in %q", s)
    }
    if hour < 1 || hour > 12 {
        return 0, fmt.Errorf("timeslot: hour out of range in %q", s)
    }
    if minute < 0 || minute > 59 {
        return 0, fmt.Errorf("timeslot: minute out of range in %q", s)
    }
    if meridian == "PM" && hour != 12 {
        hour += 12
    }
    if meridian == "AM" && hour == 12 {
        hour = 0
    }
    return hour*60 + minute, nil
}

// ParseInterval builds an Interval from start and end clock strings.
// The end must be strictly after the start.
func ParseInterval(start, end string) (Interval, error) {
    s, err := ParseClock(start)
    if err != nil {
        return Interval{}, err
    }
    e, err := ParseClock(end)
    if err != nil {
        return Interval{}, err
    }
    if e <= s {
        return Interval{}, fmt.Errorf("timeslot: interval %s-%s ends before it starts", start, end)
    }
    return Interval{Start: s, End: e}, nil
}

// Overlaps reports whether two half-open intervals intersect.
// Touching boundaries (a.End == b.Start) are not an overlap.
func (a Interval) Overlaps(b Interval) bool {
    return a.Start < b.End && b.Start < a.End
}
