package format

import (
	"fmt"
	"math"
)

// formatTimestamp renders a second offset as HH:MM:SS<sep>mmm with the given
// millisecond separator (',' for SRT, '.' for VTT). Negative offsets clamp to
// zero. Milliseconds round half-up; a fraction that rounds to a full second
// carries into the seconds field. Hours widen past two digits as needed.
func formatTimestamp(seconds float64, sep byte) string {
	if seconds < 0 {
		seconds = 0
	}
	millis := int64(math.Floor(seconds*1000 + 0.5))

	h := millis / 3_600_000
	m := (millis % 3_600_000) / 60_000
	s := (millis % 60_000) / 1000
	ms := millis % 1000

	return fmt.Sprintf("%02d:%02d:%02d%c%03d", h, m, s, sep, ms)
}

func srtTimestamp(seconds float64) string { return formatTimestamp(seconds, ',') }
func vttTimestamp(seconds float64) string { return formatTimestamp(seconds, '.') }
