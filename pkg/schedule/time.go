package schedule

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// MinutesOfDay parses an "HH:MM" clock value into minutes since midnight.
// Hours must be zero-padded to two digits. "24:00" is accepted as the
// closing-edge boundary.
func MinutesOfDay(s string) (int, error) {
	if s == "24:00" {
		return minutesPerDay, nil
	}
	// time.Parse("15:04", ...) tolerates single-digit hours like "9:30".
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid HH:MM time %q", s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid HH:MM time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinutes renders minutes since midnight as "HH:MM".
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Overlaps reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect. Touching endpoints do not overlap, so back-to-back
// bookings are legal.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
