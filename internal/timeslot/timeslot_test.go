package timeslot

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
    cases := []struct {
        in   string
        want int
    }{
        {"12:00 AM", 0},
        {"12:30 AM", 30},
        {"01:00 AM", 60},
        {"08:00 AM", 480},
        {"11:59 AM", 719},
        {"12:00 PM", 720},
        {"12:45 PM", 765},
        {"01:00 PM", 780},
        {"11:59 PM", 1439},
        {"9:05 am", 545},
        {"9:05 pm", 1265},
    }
    for _, tc := range cases {
        got, err := ParseClock(tc.in)
        require.NoError(t, err, tc.in)
        assert.Equal(t, tc.want, got, tc.in)
    }
}

func TestParseClockRejectsMalformed(t *testing.T) {
    bad := []string{
        "",
        "08:00",       // missing meridian
        "08:00 XM",    // unknown meridian
        "8 AM",        // no minutes
        "ab:00 AM",    // non-numeric hour
        "08:cd PM",    // non-numeric minute
        "13:00 PM",    // hour out of 12h range
        "00:00 AM",    // hour zero not valid in 12h clock
        "08:60 AM",    // minute out of range
        "08:00 AM PM", // trailing garbage
    }
    for _, in := range bad {
        _, err := ParseClock(in)
        assert.Error(t, err, "expected error for %q", in)
    }
}

func TestParseIntervalOrdering(t *testing.T) {
    _, err := ParseInterval("10:00 AM", "09:00 AM")
    assert.Error(t, err)

    _, err = ParseInterval("09:00 AM", "09:00 AM")
    assert.Error(t, err)

    iv, err := ParseInterval("09:00 AM", "10:00 AM")
    require.NoError(t, err)
    assert.Equal(t, Interval{Start: 540, End: 600}, iv)
}

func TestOverlaps(t *testing.T) {
    mk := func(start, end string) Interval {
        iv, err := ParseInterval(start, end)
        require.NoError(t, err)
        return iv
    }

    // Boundary-touching intervals do not conflict.
    a := mk("09:00 AM", "10:00 AM")
    b := mk("10:00 AM", "11:00 AM")
    assert.False(t, a.Overlaps(b))
    assert.False(t, b.Overlaps(a))

    // Partial intersection conflicts.
    c := mk("09:00 AM", "11:00 AM")
    d := mk("10:00 AM", "12:00 PM")
    assert.True(t, c.Overlaps(d))
    assert.True(t, d.Overlaps(c))

    // Identical intervals conflict.
    assert.True(t, a.Overlaps(mk("09:00 AM", "10:00 AM")))

    // Containment conflicts.
    assert.True(t, c.Overlaps(mk("09:30 AM", "10:30 AM")))

    // Intervals spanning noon behave like any other range.
    e := mk("11:00 AM", "01:00 PM")
    f := mk("12:30 PM", "02:00 PM")
    assert.True(t, e.Overlaps(f))
    assert.False(t, e.Overlaps(mk("01:00 PM", "02:00 PM")))
}
